// Command unhuffman decompresses a .huffman file using the frequency table
// stored next to it.
//
//     unhuffman [-echo] [-table] [-codes] [-alphabet N] NAME.huffman
//
// The table is read from NAME.huffman.table and the decoded data is written
// to NAME.decoded/NAME.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/unhuffman"
	"github.com/chronos-tachyon/unhuffman/internal/logger"
)

type options struct {
	echo      bool
	dumpTable bool
	dumpCodes bool
	alphabet  int
}

func main() {
	var opts options
	flag.BoolVar(&opts.echo, "echo", false, "also write the decoded data to stdout")
	flag.BoolVar(&opts.dumpTable, "table", false, "print the frequency table")
	flag.BoolVar(&opts.dumpCodes, "codes", false, "print the reconstructed codeword table")
	flag.IntVar(&opts.alphabet, "alphabet", huffman.DefaultAlphabetSize, "number of symbols in the alphabet")
	flag.Parse()

	logg := logger.New(os.Stderr, "unhuffman: ")

	name, err := payloadName(flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logg.Errorf("%v", err)
		os.Exit(2)
	}

	if err := run(name, opts, os.Stdout, logg); err != nil {
		logg.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(name string, opts options, stdout io.Writer, logg logger.Logger) error {
	p, err := derivePaths(name)
	if err != nil {
		return err
	}

	payload, err := os.Open(p.Payload)
	if err != nil {
		return errors.Wrap(err, "failed to open payload")
	}
	defer payload.Close()

	tableFile, err := os.Open(p.Table)
	if err != nil {
		return errors.Wrap(err, "frequency table cannot be found")
	}
	table, err := huffman.ReadFrequencyTable(tableFile)
	tableFile.Close()
	if err != nil {
		return err
	}

	if opts.dumpTable {
		if _, err := table.Dump(stdout); err != nil {
			return err
		}
	}

	cfg := huffman.DefaultOptions()
	cfg.AlphabetSize = opts.alphabet

	tree, err := huffman.BuildTree(table, cfg)
	if err != nil {
		return err
	}

	if opts.dumpCodes {
		if _, err := tree.Codes().Dump(stdout); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(p.OutputDir, 0o777); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	out, err := os.Create(p.Output)
	if err != nil {
		return errors.Wrap(err, "failed to create decoded file")
	}

	var sink io.Writer = out
	if opts.echo {
		sink = io.MultiWriter(out, stdout)
	}

	stats, err := huffman.DecodePayload(tree, payload, sink, cfg)
	closeErr := out.Close()
	if huffman.IsWarning(err) {
		logg.Warnf("%s: %v", p.Payload, err)
		err = nil
	}
	if err != nil {
		return err
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "failed to close decoded file")
	}

	if opts.echo {
		io.WriteString(stdout, "\n")
	}
	logg.Infof("decoded %d symbols from %d bits into %s", stats.Symbols, stats.Bits, p.Output)
	return nil
}
