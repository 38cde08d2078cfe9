// Package inputs validates the values the branch creation is driven by.
package inputs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lerenn/create-branch/pkg/branch"
)

// Input names, as declared by the action and exposed as CLI flags.
const (
	OwnerName       = "owner"
	RepoName        = "repo"
	BaseBranchName  = "base-branch"
	NewBranchName   = "new-branch"
	GitHubTokenName = "github-token"
)

// Names returns every input name in declaration order.
func Names() []string {
	return []string{OwnerName, RepoName, BaseBranchName, NewBranchName, GitHubTokenName}
}

// Raw holds the inputs exactly as they were supplied.
type Raw struct {
	Owner       string
	Repo        string
	BaseBranch  string
	NewBranch   string
	GitHubToken string
}

// Configuration is a validated, trimmed set of inputs. It is immutable once built.
type Configuration struct {
	owner      string
	repo       string
	baseBranch string
	newBranch  string
	token      string
}

// Owner returns the account owning the repository.
func (c Configuration) Owner() string { return c.owner }

// Repo returns the repository name.
func (c Configuration) Repo() string { return c.repo }

// BaseBranch returns the branch to branch from.
func (c Configuration) BaseBranch() string { return c.baseBranch }

// NewBranch returns the branch to create.
func (c Configuration) NewBranch() string { return c.newBranch }

// Token returns the bearer credential. Never log it.
func (c Configuration) Token() string { return c.token }

// Repository returns the "owner/repo" slug.
func (c Configuration) Repository() string {
	return c.owner + "/" + c.repo
}

// String implements fmt.Stringer without the credential.
func (c Configuration) String() string {
	return fmt.Sprintf("%s (%s -> %s)", c.Repository(), c.baseBranch, c.newBranch)
}

// LogValue implements slog.LogValuer without the credential.
func (c Configuration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(OwnerName, c.owner),
		slog.String(RepoName, c.repo),
		slog.String(BaseBranchName, c.baseBranch),
		slog.String(NewBranchName, c.newBranch),
	)
}

// Validate trims the raw inputs and checks them, in this order:
// all present, new branch name well formed, new branch distinct from base branch.
func Validate(raw Raw) (Configuration, error) {
	cfg := Configuration{
		owner:      strings.TrimSpace(raw.Owner),
		repo:       strings.TrimSpace(raw.Repo),
		baseBranch: strings.TrimSpace(raw.BaseBranch),
		newBranch:  strings.TrimSpace(raw.NewBranch),
		token:      strings.TrimSpace(raw.GitHubToken),
	}

	if cfg.owner == "" || cfg.repo == "" || cfg.baseBranch == "" || cfg.newBranch == "" || cfg.token == "" {
		return Configuration{}, ErrInputsEmpty
	}

	if err := branch.ValidateName(cfg.newBranch); err != nil {
		return Configuration{}, newInvalidBranchNameError(cfg.newBranch)
	}

	if cfg.newBranch == cfg.baseBranch {
		return Configuration{}, newSameBranchError(cfg.newBranch)
	}

	return cfg, nil
}
