package items

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *IndexError via errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a position outside [0, Len) passed to a positional
// operation. The sequence is never modified when one is returned.
type IndexError struct {
	Op    string // Operation that rejected the index ("update", "remove", "get")
	Index int    // Index supplied by the caller
	Len   int    // Length of the sequence at the time of the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
