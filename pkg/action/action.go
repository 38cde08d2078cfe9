// Package action reports the outcome of a run to a GitHub Actions workflow.
package action

import (
	"io"
	"strings"

	"github.com/lerenn/create-branch/pkg/branchcreator"
	"github.com/sethvargo/go-githubactions"
)

// SuccessMessageOutput is the name of the step output set on success.
const SuccessMessageOutput = "success-message"

// NewReporterParams contains parameters for creating a new Reporter.
type NewReporterParams struct {
	// Writer receives workflow commands. Defaults to stdout.
	Writer io.Writer
	// Getenv reads the runner environment (GITHUB_OUTPUT...). Defaults to os.Getenv.
	Getenv func(key string) string
}

// Reporter emits workflow commands for a single run.
type Reporter struct {
	action *githubactions.Action
}

// NewReporter creates a new Reporter.
func NewReporter(params NewReporterParams) *Reporter {
	var opts []githubactions.Option
	if params.Writer != nil {
		opts = append(opts, githubactions.WithWriter(params.Writer))
	}
	if params.Getenv != nil {
		opts = append(opts, githubactions.WithGetenv(params.Getenv))
	}

	return &Reporter{action: githubactions.New(opts...)}
}

// Mask hides secret from every subsequent workflow log line.
// The secret is trimmed like the inputs it comes from.
func (r *Reporter) Mask(secret string) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return
	}
	r.action.AddMask(secret)
}

// Succeed sets the success-message output and prints it.
func (r *Reporter) Succeed(message string) {
	r.action.SetOutput(SuccessMessageOutput, message)
	r.action.Infof("%s", message)
}

// Fail marks the step as failed with the failure report of err and returns that report.
func (r *Reporter) Fail(err error) string {
	report := branchcreator.FailureReport(err)
	r.action.Errorf("%s", report)
	return report
}
