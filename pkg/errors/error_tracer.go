package errors

import "github.com/pkg/errors"

// ErrorTracer carries an error up the call stack together with the stack
// trace of the point where it was first traced.
type ErrorTracer struct {
	Message string
	Err     error
}

// StackTracer is implemented by errors that know where they were created.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// TracerFromError wraps err in an ErrorTracer, recording a stack trace unless
// err already has one. An *ErrorTracer is returned unchanged so callers can
// trace at every layer without nesting.
func TracerFromError(err error) *ErrorTracer {
	if tracer, ok := err.(*ErrorTracer); ok {
		return tracer
	}

	traced := err
	if _, ok := err.(StackTracer); !ok {
		traced = errors.WithStack(err)
	}
	return &ErrorTracer{
		Message: err.Error(),
		Err:     traced,
	}
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// StackTrace returns the recorded stack trace, or nil when there is none.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if st, ok := e.Err.(StackTracer); ok {
		return st.StackTrace()
	}
	return nil
}
