package huffman

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadHeaderValidCases(t *testing.T) {
	t.Run("Newline", func(t *testing.T) {
		r := bufio.NewReader(strings.NewReader("9\n\x89\x80"))
		num, err := ReadHeader(r)
		require.NoError(t, err)
		require.Equal(t, uint64(9), num)

		rest, err := r.Peek(2)
		require.NoError(t, err)
		require.Equal(t, []byte{0x89, 0x80}, rest)
	})

	t.Run("Zero", func(t *testing.T) {
		num, err := ReadHeader(strings.NewReader("0\n"))
		require.NoError(t, err)
		require.Equal(t, uint64(0), num)
	})

	t.Run("LeadingWhitespace", func(t *testing.T) {
		num, err := ReadHeader(strings.NewReader(" \t\r\n1234567890 "))
		require.NoError(t, err)
		require.Equal(t, uint64(1234567890), num)
	})

	t.Run("LeadingZero", func(t *testing.T) {
		num, err := ReadHeader(strings.NewReader("0042\n"))
		require.NoError(t, err)
		require.Equal(t, uint64(42), num)
	})

	t.Run("SeparatorIsAnyByte", func(t *testing.T) {
		r := strings.NewReader("12\x00\x01")
		num, err := ReadHeader(r)
		require.NoError(t, err)
		require.Equal(t, uint64(12), num)
		require.Equal(t, 1, r.Len())
	})
}

func TestReadHeaderInvalidCases(t *testing.T) {
	for name, input := range map[string]string{
		"Empty":          "",
		"OnlyWhitespace": "  \n",
		"Negative":       "-3\n",
		"NotANumber":     "hello, world!",
		"NoSeparator":    "42",
		"Overflow":       "99999999999999999999999\n",
	} {
		input := input
		t.Run(name, func(t *testing.T) {
			num, err := ReadHeader(strings.NewReader(input))
			require.Equal(t, uint64(0), num)
			require.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}
