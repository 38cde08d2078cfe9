//go:build e2e

package test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lerenn/create-branch/internal/githubmock"
	"github.com/lerenn/create-branch/pkg/action"
	"github.com/lerenn/create-branch/pkg/branchcreator"
	"github.com/lerenn/create-branch/pkg/config"
	"github.com/lerenn/create-branch/pkg/dependencies"
	"github.com/lerenn/create-branch/pkg/forge"
	"github.com/lerenn/create-branch/pkg/inputs"
	"github.com/lerenn/create-branch/pkg/logger"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	testOwner  = "acme"
	testRepo   = "widgets"
	testToken  = "ghs_e2etoken"
	baseBranch = "main"
	baseCommit = "6dcb09b5b57875f334f61aebed695e2e4193db5e"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	OutputPath string
	LogPath    string
	Server     *githubmock.Server
}

// RunResult holds what a single run reported to the workflow.
type RunResult struct {
	Result   *branchcreator.Result
	Err      error
	Report   string
	Commands string
	Outputs  string
}

// setupTestEnvironment starts a fake GitHub API and writes a config file pointing at it.
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()

	serverConfig := githubmock.NewServerConfig()
	serverConfig.Owner = testOwner
	serverConfig.Repo = testRepo
	serverConfig.Token = testToken
	serverConfig.Refs["refs/heads/"+baseBranch] = baseCommit
	server := githubmock.NewServer(t, serverConfig)

	logPath := filepath.Join(tempDir, "create-branch.log")
	testConfig := config.Config{
		Forge:         "github",
		APIURL:        server.APIURL(),
		UserAgent:     "create-branch-e2e",
		Timeout:       10 * time.Second,
		LogFile:       logPath,
		LogMaxSize:    1,
		LogMaxBackups: 1,
		LogMaxAge:     1,
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	configData, err := yaml.Marshal(testConfig)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, configData, 0644))

	outputPath := filepath.Join(tempDir, "github_output")
	require.NoError(t, os.WriteFile(outputPath, nil, 0644))

	return &TestSetup{
		TempDir:    tempDir,
		ConfigPath: configPath,
		OutputPath: outputPath,
		LogPath:    logPath,
		Server:     server,
	}
}

// rawInputs returns valid inputs creating newBranch from the base branch.
func rawInputs(newBranch string) inputs.Raw {
	return inputs.Raw{
		Owner:       testOwner,
		Repo:        testRepo,
		BaseBranch:  baseBranch,
		NewBranch:   newBranch,
		GitHubToken: testToken,
	}
}

// runCreateBranch wires the whole stack from the config file and runs it once.
func runCreateBranch(t *testing.T, setup *TestSetup, raw inputs.Raw) RunResult {
	t.Helper()

	require.NoError(t, os.Truncate(setup.OutputPath, 0))

	var commands bytes.Buffer
	reporter := action.NewReporter(action.NewReporterParams{
		Writer: &commands,
		Getenv: func(key string) string {
			if key == "GITHUB_OUTPUT" {
				return setup.OutputPath
			}
			return ""
		},
	})
	reporter.Mask(raw.GitHubToken)

	deps := dependencies.New().WithConfig(config.NewManager(setup.ConfigPath))
	cfg, err := deps.Config.GetConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	fileLogger, err := logger.NewFileLogger(logger.FileParams{
		Path:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, fileLogger.Close()) }()

	deps = deps.
		WithLogger(fileLogger).
		WithForgeProvider(forge.NewProvider(cfg.Forge, forge.Params{
			BaseURL:   cfg.APIURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		}))
	require.NoError(t, deps.Validate())

	creator, err := branchcreator.NewBranchCreator(branchcreator.NewBranchCreatorParams{
		Dependencies: deps,
		Verbose:      true,
	})
	require.NoError(t, err)

	res := RunResult{}
	res.Result, res.Err = creator.CreateBranch(t.Context(), raw)
	if res.Err != nil {
		res.Report = reporter.Fail(res.Err)
	} else {
		reporter.Succeed(res.Result.Message)
	}

	outputs, err := os.ReadFile(setup.OutputPath)
	require.NoError(t, err)
	res.Outputs = string(outputs)
	res.Commands = commands.String()

	return res
}
