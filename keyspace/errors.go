package keyspace

import "fmt"

// BadKeyTypeError reports a command whose declared kind disagrees with the
// kind already stored at the key. The handler must not have mutated
// anything before returning this.
type BadKeyTypeError struct{}

func (e *BadKeyTypeError) Error() string {
	return "Attempted to index a key with a bad type."
}

// BadStateError reports an uncategorised invalid operation: numeric overflow
// on incr/decr, a by parameter outside i32 range, or similar.
type BadStateError struct {
	Reason string
}

func (e *BadStateError) Error() string {
	return e.Reason
}

func badState(format string, args ...any) error {
	return &BadStateError{Reason: fmt.Sprintf(format, args...)}
}
