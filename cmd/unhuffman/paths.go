package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	huffmanMarker = "huffman"
	huffmanExt    = ".huffman"
	tableExt      = ".table"
	decodedExt    = ".decoded"
)

// paths holds every file name derived from one payload name.
type paths struct {
	Payload   string
	Table     string
	OutputDir string
	Output    string
}

// derivePaths maps "dir/notes.txt.huffman" to the table
// "dir/notes.txt.huffman.table" and the output
// "dir/notes.txt.decoded/notes.txt".
func derivePaths(name string) (paths, error) {
	if !strings.Contains(name, huffmanMarker) {
		return paths{}, errors.Errorf("wrong file format: %q does not name a .huffman file", name)
	}
	i := strings.Index(name, huffmanExt)
	if i <= 0 {
		return paths{}, errors.Errorf("wrong file format: %q has no %s extension", name, huffmanExt)
	}
	base := name[:i]
	dir := base + decodedExt
	return paths{
		Payload:   name,
		Table:     name + tableExt,
		OutputDir: dir,
		Output:    filepath.Join(dir, filepath.Base(base)),
	}, nil
}

// payloadName picks the payload file from the command line, or prompts for
// it when none was given.
func payloadName(args []string, in io.Reader, out io.Writer) (string, error) {
	switch len(args) {
	case 0:
		fmt.Fprint(out, "Please enter the file to be decompressed: ")
		sc := bufio.NewScanner(in)
		sc.Split(bufio.ScanWords)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", errors.Wrap(err, "failed to read file name")
			}
			return "", errors.New("no file name given")
		}
		return sc.Text(), nil
	case 1:
		return args[0], nil
	default:
		return "", errors.New("too many arguments supplied")
	}
}
