package models

type CustomError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CustomError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *CustomError) ErrorCode() string {
	return e.Code
}

func (e *CustomError) Unwrap() error {
	return e.Cause
}

// Is matches on the taxonomy code so a wrapped copy produced by WithCause
// still satisfies errors.Is against the sentinel in consts.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	return ok && t.Code == e.Code
}

// WithCause returns a copy of the error carrying the underlying cause.
// The sentinel values in consts stay untouched.
func (e *CustomError) WithCause(cause error) *CustomError {
	return &CustomError{Code: e.Code, Message: e.Message, Cause: cause}
}
