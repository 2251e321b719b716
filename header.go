package huffman

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// ReadHeader parses the payload header: optional leading ASCII whitespace, a
// non-negative decimal bit count, and exactly one separator byte, which is
// consumed and discarded.  The reader is left positioned at the first byte
// of packed bits.
func ReadHeader(r io.ByteReader) (uint64, error) {
	ch, err := r.ReadByte()
	for err == nil && isSpace(ch) {
		ch, err = r.ReadByte()
	}
	if err != nil {
		return 0, headerError(err, "missing bit count")
	}

	var num uint64
	var digits int
	for err == nil {
		digit := ch - '0'
		if digit > 9 {
			break
		}
		if num > (math.MaxUint64-uint64(digit))/10 {
			return 0, errors.Wrap(ErrMalformedHeader, "bit count overflows")
		}
		num = num*10 + uint64(digit)
		digits++
		ch, err = r.ReadByte()
	}
	if digits == 0 {
		return 0, errors.Wrapf(ErrMalformedHeader, "unexpected byte %q in bit count", ch)
	}
	if err != nil {
		// the byte that ended the digits is the separator; without one
		// there is nothing to skip
		return 0, headerError(err, "missing separator")
	}
	return num, nil
}

func headerError(err error, msg string) error {
	if errors.Is(err, io.EOF) {
		return errors.Wrap(ErrMalformedHeader, msg)
	}
	return errors.Wrap(err, "failed to read payload header")
}
