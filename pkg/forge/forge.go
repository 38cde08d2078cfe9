// Package forge provides branch operations against hosted version-control providers.
package forge

import (
	"context"
	"fmt"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// BranchClient interface defines the branch operations a forge must provide.
type BranchClient interface {
	// ResolveBranchCommit returns the commit SHA the branch currently points to.
	ResolveBranchCommit(ctx context.Context, owner, repo, branchName string) (string, error)

	// CreateBranch creates a new branch pointing at the given commit.
	CreateBranch(ctx context.Context, owner, repo, newBranchName, commit string) error
}

// Provider builds a BranchClient authenticated with the given token.
type Provider func(token string) (BranchClient, error)

// Params contains parameters for creating a forge client.
type Params struct {
	// Token is the bearer credential sent with every request.
	Token string
	// BaseURL overrides the API root, e.g. for GitHub Enterprise.
	BaseURL string
	// UserAgent overrides the client user agent.
	UserAgent string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
}

// New returns the forge implementation registered under name.
func New(name string, params Params) (BranchClient, error) {
	switch name {
	case GitHubName:
		return NewGitHub(params)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
}

// NewProvider returns a Provider building name forges with params and the supplied token.
func NewProvider(name string, params Params) Provider {
	return func(token string) (BranchClient, error) {
		p := params
		p.Token = token
		return New(name, p)
	}
}
