package main

import (
	"github.com/lerenn/create-branch/cmd/create-branch/internal/cli"
	"github.com/lerenn/create-branch/pkg/action"
	"github.com/lerenn/create-branch/pkg/branchcreator"
	"github.com/lerenn/create-branch/pkg/config"
	"github.com/lerenn/create-branch/pkg/dependencies"
	"github.com/lerenn/create-branch/pkg/forge"
	"github.com/spf13/cobra"
)

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create-branch",
		Short: "Create a branch from the head of another one",
		Long: `Create a new branch on a hosted repository, pointing at the current commit of a base branch.

Inputs are read from flags, or from the INPUT_* variables GitHub Actions sets for a step.

Examples:
  create-branch --owner acme --repo widgets --base-branch main --new-branch feature/x --github-token "$TOKEN"
  INPUT_OWNER=acme INPUT_REPO=widgets ... create-branch`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reporter := action.NewReporter(action.NewReporterParams{Writer: cmd.OutOrStdout()})

			v, err := cli.NewViper(cmd.Flags())
			if err != nil {
				return cli.Report(reporter, err)
			}

			raw := cli.RawInputs(v)
			reporter.Mask(raw.GitHubToken)

			deps := dependencies.New().WithConfig(config.NewManager(cli.GetConfigPath(v)))
			cfg, err := cli.LoadConfig(v, deps)
			if err != nil {
				return cli.Report(reporter, err)
			}

			log, closeLog, err := cli.NewLogger(cfg, cmd.OutOrStdout(), v.GetBool(cli.QuietFlag))
			if err != nil {
				return cli.Report(reporter, err)
			}
			defer func() { _ = closeLog() }()

			deps = deps.
				WithLogger(log).
				WithForgeProvider(forge.NewProvider(cfg.Forge, forge.Params{
					BaseURL:   cfg.APIURL,
					UserAgent: cfg.UserAgent,
					Timeout:   cfg.Timeout,
				}))
			if err := deps.Validate(); err != nil {
				return cli.Report(reporter, err)
			}

			creator, err := branchcreator.NewBranchCreator(branchcreator.NewBranchCreatorParams{
				Dependencies: deps,
				Verbose:      v.GetBool(cli.VerboseFlag),
			})
			if err != nil {
				return cli.Report(reporter, err)
			}

			result, err := creator.CreateBranch(cmd.Context(), raw)
			if err != nil {
				return cli.Report(reporter, err)
			}

			reporter.Succeed(result.Message)
			return nil
		},
	}

	cli.RegisterFlags(rootCmd.Flags())

	return rootCmd
}
