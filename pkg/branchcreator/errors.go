package branchcreator

import (
	"errors"
	"fmt"
	"strings"
)

// Failure report texts.
const (
	failureReportPrefix  = "Action failed due to error: "
	UnknownFailureReport = "Action failed with an unknown error."
)

// OperationError wraps the error that stopped a branch creation with the state it happened in.
// Its message is the wrapped error's, unchanged.
type OperationError struct {
	State State
	Err   error
}

func (e *OperationError) Error() string {
	return e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// UnknownError is a failure that carries no usable message, such as a recovered panic.
type UnknownError struct {
	Value interface{}
}

func (e *UnknownError) Error() string {
	if e.Value == nil {
		return "unknown error"
	}
	return fmt.Sprintf("unknown error: %v", e.Value)
}

func (e *UnknownError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// recoveredError keeps a panicking error as is. Other values are unknown.
func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &UnknownError{Value: r}
}

func newOperationError(state State, err error) *OperationError {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		err = &UnknownError{Value: err}
	}
	return &OperationError{State: state, Err: err}
}

// FailureReport renders err as the single human-readable failure report.
func FailureReport(err error) string {
	var unknown *UnknownError
	if err == nil || errors.As(err, &unknown) || strings.TrimSpace(err.Error()) == "" {
		return UnknownFailureReport
	}
	return failureReportPrefix + err.Error()
}
