package huffman

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FrequencyTable maps each Symbol (the index) to its count in the original
// plaintext.  A count of 0 means the symbol is absent from the alphabet.
type FrequencyTable []uint8

// ReadFrequencyTable reads a raw frequency table: one byte per symbol, in
// ascending symbol order starting at 0.
func ReadFrequencyTable(r io.Reader) (FrequencyTable, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxAlphabetSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read frequency table")
	}
	if len(raw) > MaxAlphabetSize {
		return nil, errors.Wrapf(ErrQueueOverflow, "frequency table has more than %d entries", MaxAlphabetSize)
	}
	return FrequencyTable(raw), nil
}

// NumSymbols returns the number of symbols with a positive count.
func (table FrequencyTable) NumSymbols() int {
	var n int
	for _, freq := range table {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable listing of every symbol with a positive
// count to the given writer.
func (table FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for index, freq := range table {
		if freq == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tFreq(%v) = %d\n", Symbol(index), freq)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the table as an array of integers.
func (table FrequencyTable) MarshalJSON() ([]byte, error) {
	counts := make([]int, len(table))
	for index, freq := range table {
		counts[index] = int(freq)
	}
	return json.Marshal(counts)
}

// UnmarshalJSON parses an array of integers in the range 0 .. 255.
func (table *FrequencyTable) UnmarshalJSON(raw []byte) error {
	var counts []int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return err
	}
	if len(counts) > MaxAlphabetSize {
		return errors.Wrapf(ErrQueueOverflow, "frequency table has %d entries, max %d", len(counts), MaxAlphabetSize)
	}
	out := make(FrequencyTable, len(counts))
	for index, count := range counts {
		if count < 0 || count > 0xff {
			return errors.Errorf("frequency for symbol %d out of range: %d", index, count)
		}
		out[index] = uint8(count)
	}
	*table = out
	return nil
}
