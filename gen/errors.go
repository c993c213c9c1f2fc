package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks a generator built from invalid arguments, such as
	// an empty range or a non-positive weight. It is raised by panicking at
	// construction time since it is a programming error.
	ErrPrecondition = errors.New("gen: precondition violated")

	// ErrExhausted is returned when a filtered generator gives up.
	ErrExhausted = errors.New("gen: generation exhausted")
)

// ExhaustedError reports a Filter that rejected every candidate within its budget.
type ExhaustedError struct {
	Retries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v after %d rejected candidates", ErrExhausted, e.Retries)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

func precondition(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, args...)...))
}

// recoverExhausted converts an exhaustion panic into an error return. Any
// other panic keeps unwinding.
func recoverExhausted(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*ExhaustedError); ok {
		*err = e
		return
	}
	panic(r)
}
