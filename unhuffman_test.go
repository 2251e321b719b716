package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompress(t *testing.T) {
	table := makeTable(map[byte]uint8{'A': 5, 'B': 2, 'C': 1, 'D': 1})

	var out bytes.Buffer
	stats, err := Decompress(table, strings.NewReader("9\n\x89\x80"), &out, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "ABCD", out.String())
	require.Equal(t, Stats{Symbols: 4, Bits: 9}, stats)
}

func TestDecompress_Degenerate(t *testing.T) {
	var out bytes.Buffer
	stats, err := Decompress(makeTable(map[byte]uint8{'A': 5}), strings.NewReader("3\n\x00"), &out, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "AAA", out.String())
	require.Equal(t, int64(3), stats.Symbols)
}

func TestDecompress_TrailingGarbage(t *testing.T) {
	table := makeTable(map[byte]uint8{'A': 3, 'B': 1, 'C': 1})

	var out bytes.Buffer
	stats, err := Decompress(table, strings.NewReader("4\n\x80"), &out, Options{BufferSize: 1})
	require.ErrorIs(t, err, ErrTrailingGarbage)
	require.True(t, stats.Garbage)
	require.Equal(t, "AB", out.String())
}

func TestDecompress_StructuralErrorsWriteNothing(t *testing.T) {
	testData := []struct {
		name    string
		table   FrequencyTable
		payload string
		err     error
	}{
		{"EmptyAlphabet", make(FrequencyTable, DefaultAlphabetSize), "3\n\xff", ErrEmptyAlphabet},
		{"MalformedHeader", makeTable(map[byte]uint8{'A': 1, 'B': 1}), "x3\n\xff", ErrMalformedHeader},
		{"Overflow", bytes.Repeat([]byte{1}, DefaultAlphabetSize+1), "3\n\xff", ErrQueueOverflow},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var out bytes.Buffer
			stats, err := Decompress(row.table, strings.NewReader(row.payload), &out, DefaultOptions())
			require.ErrorIs(t, err, row.err)
			require.False(t, IsWarning(err))
			require.Zero(t, out.Len())
			require.Equal(t, Stats{}, stats)
		})
	}
}
