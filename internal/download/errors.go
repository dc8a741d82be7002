package download

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned by Start when the request is not acceptable.
	ErrValidation = errors.New("validation error")

	// ErrAlreadyRunning is returned by Start while another download is active.
	ErrAlreadyRunning = errors.New("a download is already in progress")
)

// EngineError is any failure surfaced by the extraction engine. Message is what
// the user sees.
type EngineError struct {
	Message string
	Cause   error
}

func (e *EngineError) Error() string {
	return e.Message
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

// AsEngineError converts err into an *EngineError, keeping an existing one.
func AsEngineError(err error) *EngineError {
	if err == nil {
		return nil
	}
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee
	}
	return &EngineError{Message: err.Error(), Cause: err}
}

// panicError wraps a value recovered from a panicking engine.
func panicError(recovered any) *EngineError {
	if err, ok := recovered.(error); ok {
		return &EngineError{Message: err.Error(), Cause: err}
	}
	return &EngineError{Message: fmt.Sprint(recovered)}
}
