package forge

import "errors"

// Forge-specific errors.
var (
	ErrUnsupportedForge = errors.New("unsupported forge")
	ErrInvalidBaseURL   = errors.New("invalid forge API URL")
)

// Remote failure kinds, matched with errors.Is on a RemoteOperationError.
var (
	ErrReferenceNotFound  = errors.New("reference not found")
	ErrReferenceExists    = errors.New("reference already exists")
	ErrRepositoryNotFound = errors.New("repository not found or inaccessible")
	ErrUnauthorized       = errors.New("unauthorized access to forge API")
	ErrForbidden          = errors.New("forbidden access to forge API")
	ErrRateLimited        = errors.New("rate limited by forge API")
	ErrValidationFailed   = errors.New("request rejected by forge API")
	ErrConflict           = errors.New("conflict reported by forge API")
	ErrServer             = errors.New("forge API server error")
	ErrTransport          = errors.New("forge API unreachable")
	ErrRemote             = errors.New("forge API error")
)

// Operation names a remote branch operation.
type Operation string

// Remote branch operations.
const (
	OperationResolve Operation = "resolve"
	OperationCreate  Operation = "create"
)

// RemoteOperationError reports a request the forge rejected or could not complete.
// Its message is the provider's, unchanged.
type RemoteOperationError struct {
	// Operation is the branch operation that failed.
	Operation Operation
	// Ref is the reference the request was about.
	Ref string
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	// Message is the provider's diagnostic.
	Message string
	// Kind classifies the failure (ErrReferenceNotFound, ErrReferenceExists...).
	Kind error
	// Err is the underlying client error.
	Err error
}

func (e *RemoteOperationError) Error() string {
	return e.Message
}

// Unwrap exposes both the failure kind and the underlying client error.
func (e *RemoteOperationError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
