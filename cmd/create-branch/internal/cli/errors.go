package cli

// Failer reports a failed run to the workflow.
type Failer interface {
	Fail(err error) string
}

// ReportedError is an error already reported to the workflow.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// Report reports err through f and marks it as reported.
func Report(f Failer, err error) error {
	f.Fail(err)
	return &ReportedError{Err: err}
}
