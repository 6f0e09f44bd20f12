package app

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence failure")
)

type ShiftErrorCode string

const (
	ShiftErrInvalidInput ShiftErrorCode = "INVALID_INPUT"
	ShiftErrNotFound     ShiftErrorCode = "PROJECT_NOT_FOUND"
	ShiftErrPersistence  ShiftErrorCode = "PERSISTENCE_FAILURE"
)

// ShiftError carries a stable code for callers that render errors and
// matches the corresponding sentinel under errors.Is.
type ShiftError struct {
	Code    ShiftErrorCode
	Message string
	Err     error
}

func (e *ShiftError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ShiftError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *ShiftError) sentinel() error {
	switch e.Code {
	case ShiftErrInvalidInput:
		return ErrInvalidInput
	case ShiftErrNotFound:
		return ErrNotFound
	default:
		return ErrPersistence
	}
}
