package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/create-branch/pkg/branch"
	"golang.org/x/oauth2"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"

	headerRateRemaining = "X-RateLimit-Remaining"
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params Params) (*GitHub, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: params.Token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = params.Timeout

	client := github.NewClient(tc)

	if params.BaseURL != "" {
		baseURL, err := url.Parse(params.BaseURL)
		if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, params.BaseURL)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
	}

	if params.UserAgent != "" {
		client.UserAgent = params.UserAgent
	}

	return &GitHub{client: client}, nil
}

// ResolveBranchCommit reads heads/<branchName> and returns the commit it points to.
func (g *GitHub) ResolveBranchCommit(ctx context.Context, owner, repo, branchName string) (string, error) {
	refName := branch.HeadsRef(branchName)
	if branch.HasDotSegment(branchName) {
		return "", &RemoteOperationError{
			Operation: OperationResolve,
			Ref:       refName,
			Message:   fmt.Sprintf("Reference %s not found", refName),
			Kind:      ErrReferenceNotFound,
		}
	}

	ref, resp, err := g.client.Git.GetRef(ctx, owner, repo, refName)
	if err != nil {
		return "", g.handleGitHubError(OperationResolve, refName, err, resp)
	}

	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", &RemoteOperationError{
			Operation:  OperationResolve,
			Ref:        refName,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("reference %s does not point to an object", refName),
			Kind:       ErrRemote,
		}
	}

	return sha, nil
}

// CreateBranch creates refs/heads/<newBranchName> pointing at commit.
func (g *GitHub) CreateBranch(ctx context.Context, owner, repo, newBranchName, commit string) error {
	refName := branch.FullRef(newBranchName)

	_, resp, err := g.client.Git.CreateRef(ctx, owner, repo, &github.Reference{
		Ref:    github.String(refName),
		Object: &github.GitObject{SHA: github.String(commit)},
	})
	if err != nil {
		return g.handleGitHubError(OperationCreate, refName, err, resp)
	}

	return nil
}

// handleGitHubError converts a GitHub API error into a RemoteOperationError,
// keeping the provider's message.
func (g *GitHub) handleGitHubError(
	op Operation, refName string, err error, resp *github.Response,
) *RemoteOperationError {
	rErr := &RemoteOperationError{
		Operation: op,
		Ref:       refName,
		Message:   err.Error(),
		Kind:      ErrTransport,
		Err:       err,
	}

	var (
		rateErr  *github.RateLimitError
		abuseErr *github.AbuseRateLimitError
		ghErr    *github.ErrorResponse
	)
	switch {
	case errors.As(err, &rateErr):
		rErr.Message = messageOr(rateErr.Message, err)
	case errors.As(err, &abuseErr):
		rErr.Message = messageOr(abuseErr.Message, err)
	case errors.As(err, &ghErr):
		rErr.Message = messageOr(ghErr.Message, err)
	}

	if resp != nil && resp.Response != nil {
		rErr.StatusCode = resp.StatusCode
		rErr.Kind = kindForResponse(op, resp.Response, rErr.Message)
	}
	if rateErr != nil || abuseErr != nil {
		rErr.Kind = ErrRateLimited
	}

	return rErr
}

func kindForResponse(op Operation, resp *http.Response, message string) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		if resp.Header.Get(headerRateRemaining) == "0" {
			return ErrRateLimited
		}
		return ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		if op == OperationResolve {
			return ErrReferenceNotFound
		}
		return ErrRepositoryNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode == http.StatusUnprocessableEntity:
		if strings.Contains(strings.ToLower(message), "already exists") {
			return ErrReferenceExists
		}
		return ErrValidationFailed
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrRemote
	}
}

func messageOr(message string, err error) string {
	if message != "" {
		return message
	}
	return err.Error()
}
