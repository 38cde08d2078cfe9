// Package branchcreator creates a branch from the current commit of another one.
package branchcreator

import (
	"context"
	"fmt"

	"github.com/lerenn/create-branch/internal/base"
	"github.com/lerenn/create-branch/pkg/dependencies"
	"github.com/lerenn/create-branch/pkg/inputs"
)

// BranchCreator interface provides branch creation functionality.
type BranchCreator interface {
	// CreateBranch validates raw, resolves the base branch commit and creates the new branch on it.
	CreateBranch(ctx context.Context, raw inputs.Raw) (*Result, error)
}

// Result describes a created branch.
type Result struct {
	Configuration inputs.Configuration
	Commit        string
	Message       string
}

// NewBranchCreatorParams contains parameters for creating a new BranchCreator instance.
type NewBranchCreatorParams struct {
	Dependencies *dependencies.Dependencies
	Verbose      bool
}

type realBranchCreator struct {
	*base.Base
	deps *dependencies.Dependencies
}

// NewBranchCreator creates a new BranchCreator instance.
func NewBranchCreator(params NewBranchCreatorParams) (BranchCreator, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if deps.ForgeProvider == nil {
		return nil, dependencies.ErrForgeProviderMissing
	}

	return &realBranchCreator{
		Base: base.NewBase(base.NewBaseParams{
			Logger:  deps.Logger,
			Verbose: params.Verbose,
		}),
		deps: deps,
	}, nil
}

// SuccessMessage returns the message reported once the branch described by cfg is created.
func SuccessMessage(cfg inputs.Configuration) string {
	return fmt.Sprintf("Branch '%s' created successfully in the repository '%s' from '%s'.",
		cfg.NewBranch(), cfg.Repository(), cfg.BaseBranch())
}

// CreateBranch runs validating, resolving and creating in sequence and stops at the first failure.
func (b *realBranchCreator) CreateBranch(ctx context.Context, raw inputs.Raw) (result *Result, err error) {
	state := StateValidating

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, b.fail(state, recoveredError(r))
		}
	}()

	b.Printf("-> Validating inputs...")
	cfg, err := inputs.Validate(raw)
	if err != nil {
		return nil, b.fail(state, err)
	}
	b.Printf("Inputs validated for %s", cfg)

	state = b.transition(state, StateResolving)
	client, err := b.deps.ForgeProvider(cfg.Token())
	if err != nil {
		return nil, b.fail(state, err)
	}

	b.Printf("-> Fetching SHA for base branch: %s", cfg.BaseBranch())
	commit, err := client.ResolveBranchCommit(ctx, cfg.Owner(), cfg.Repo(), cfg.BaseBranch())
	if err != nil {
		return nil, b.fail(state, err)
	}
	b.Printf("<- SHA of the base branch (%s) obtained: %s", cfg.BaseBranch(), commit)

	state = b.transition(state, StateCreating)
	b.Printf("-> Creating branch: %s with SHA: %s", cfg.NewBranch(), commit)
	if err := client.CreateBranch(ctx, cfg.Owner(), cfg.Repo(), cfg.NewBranch(), commit); err != nil {
		return nil, b.fail(state, err)
	}

	b.transition(state, StateDone)
	b.Printf("Operation completed successfully!")

	return &Result{
		Configuration: cfg,
		Commit:        commit,
		Message:       SuccessMessage(cfg),
	}, nil
}

func (b *realBranchCreator) transition(from, to State) State {
	b.VerbosePrint("State: %s -> %s", from, to)
	return to
}

func (b *realBranchCreator) fail(state State, err error) error {
	b.transition(state, StateFailed)
	return newOperationError(state, err)
}
