package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyAlphabet is returned when no symbol has a positive frequency,
	// so that no tree can be built.
	ErrEmptyAlphabet = errors.New("empty alphabet: no symbol has a positive frequency")

	// ErrQueueOverflow is returned when the frequency table names more
	// symbols than the configured alphabet can hold.
	ErrQueueOverflow = errors.New("priority queue overflow")

	// ErrQueueUnderflow is returned when a node is extracted from an empty
	// priority queue.
	ErrQueueUnderflow = errors.New("priority queue underflow")

	// ErrMalformedHeader is returned when the payload's bit count is not a
	// non-negative decimal integer followed by a separator byte.
	ErrMalformedHeader = errors.New("malformed payload header")

	// ErrTruncatedPayload is returned when the payload holds fewer bits
	// than its header declares.
	ErrTruncatedPayload = errors.New("payload truncated")

	// ErrTrailingGarbage is returned when the declared bits end in the
	// middle of a codeword.  It is a warning: every symbol decoded before
	// it is valid and has already been delivered.
	ErrTrailingGarbage = errors.New("trailing garbage: payload ended mid-codeword")
)

// IsWarning reports whether err is a warning-level condition, i.e. one that
// leaves the output produced so far intact.
func IsWarning(err error) bool {
	return errors.Is(err, ErrTrailingGarbage)
}
