package journal

import "errors"

// ErrMissingInput marks a request that lacked something the user must
// provide. Match it with errors.Is; the error text is the message to show.
var ErrMissingInput = errors.New("journal: missing input")

// InputError carries a user-facing message for a missing input.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrMissingInput
}

// MissingInput returns an InputError with msg.
func MissingInput(msg string) error {
	return &InputError{Message: msg}
}
