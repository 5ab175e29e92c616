package numwords

import (
	"errors"
	"fmt"
)

// ErrUnsupportedNumber is matched by every *UnsupportedNumberError via
// errors.Is.
var ErrUnsupportedNumber = errors.New("numwords: unsupported number")

// UnsupportedNumberError reports a number whose magnitude is at or above the
// ceiling of the Limit passed to SpeakWithin.
type UnsupportedNumberError struct {
	Number  int64  // original signed input
	Ceiling uint64 // exclusive magnitude ceiling that was exceeded
}

func (e *UnsupportedNumberError) Error() string {
	return fmt.Sprintf("numwords: the number %d is not yet supported", e.Number)
}

// Is reports whether target is ErrUnsupportedNumber.
func (e *UnsupportedNumberError) Is(target error) bool {
	return target == ErrUnsupportedNumber
}
