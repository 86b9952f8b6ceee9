package linked_list

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("linked_list: index out of bounds")

// OutOfBoundsError is returned by Insert when there is no element before
// the requested position.
type OutOfBoundsError struct {
	Index uint64
	Len   uint64 // elements present when the insert failed
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("linked_list: insert at %d into list of length %d", e.Index, e.Len)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
