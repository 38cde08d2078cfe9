//go:build unit

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lerenn/create-branch/pkg/action"
	"github.com/lerenn/create-branch/pkg/config"
	"github.com/lerenn/create-branch/pkg/config/mocks"
	"github.com/lerenn/create-branch/pkg/dependencies"
	"github.com/lerenn/create-branch/pkg/inputs"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("create-branch", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func testConfig() config.Config {
	return config.Config{
		Forge:     "github",
		UserAgent: "create-branch",
		Timeout:   30 * time.Second,
	}
}

func TestRawInputs_Flags(t *testing.T) {
	v, err := NewViper(newFlags(t,
		"--owner", "acme", "--repo", "widgets",
		"--base-branch", "main", "--new-branch", "feature/x",
		"--github-token", "tok"))
	require.NoError(t, err)

	assert.Equal(t, inputs.Raw{
		Owner:       "acme",
		Repo:        "widgets",
		BaseBranch:  "main",
		NewBranch:   "feature/x",
		GitHubToken: "tok",
	}, RawInputs(v))
}

func TestRawInputs_Env(t *testing.T) {
	t.Setenv("INPUT_OWNER", "acme")
	t.Setenv("INPUT_BASE-BRANCH", "main")
	t.Setenv("INPUT_GITHUB-TOKEN", "tok")

	v, err := NewViper(newFlags(t, "--owner", "other"))
	require.NoError(t, err)

	raw := RawInputs(v)
	assert.Equal(t, "other", raw.Owner)
	assert.Equal(t, "main", raw.BaseBranch)
	assert.Equal(t, "tok", raw.GitHubToken)
	assert.Empty(t, raw.Repo)
}

func TestGetConfigPath(t *testing.T) {
	v, err := NewViper(newFlags(t, "--config", "/tmp/custom.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", GetConfigPath(v))

	v, err = NewViper(newFlags(t))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(GetConfigPath(v), filepath.Join(".create-branch", "config.yaml")))
}

func TestLoadConfig_Overrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	manager.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)

	v, err := NewViper(newFlags(t, "--api-url", "https://ghe.example.com/api/v3/", "--log-file", "/tmp/cb.log"))
	require.NoError(t, err)

	cfg, err := LoadConfig(v, dependencies.New().WithConfig(manager))
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.APIURL)
	assert.Equal(t, "/tmp/cb.log", cfg.LogFile)
}

func TestLoadConfig_GitHubAPIURLEnv(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3")

	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	manager.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)

	v, err := NewViper(newFlags(t))
	require.NoError(t, err)

	cfg, err := LoadConfig(v, dependencies.New().WithConfig(manager))
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	manager.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)

	v, err := NewViper(newFlags(t, "--api-url", "not a url"))
	require.NoError(t, err)

	_, err = LoadConfig(v, dependencies.New().WithConfig(manager))
	assert.ErrorIs(t, err, config.ErrInvalidAPIURL)
}

func TestLoadConfig_ManagerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	manager.EXPECT().GetConfigWithFallback().Return(config.Config{}, errors.New("boom"))

	v, err := NewViper(newFlags(t))
	require.NoError(t, err)

	_, err = LoadConfig(v, dependencies.New().WithConfig(manager))
	assert.EqualError(t, err, "boom")
}

func TestLoadConfig_MissingManager(t *testing.T) {
	v, err := NewViper(newFlags(t))
	require.NoError(t, err)

	_, err = LoadConfig(v, dependencies.New())
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log, closeLog, err := NewLogger(testConfig(), &buf, false)
	require.NoError(t, err)
	log.Logf("hello %s", "world")
	require.NoError(t, closeLog())
	assert.Contains(t, buf.String(), "hello world")

	buf.Reset()
	log, closeLog, err = NewLogger(testConfig(), &buf, true)
	require.NoError(t, err)
	log.Logf("hello")
	require.NoError(t, closeLog())
	assert.Empty(t, buf.String())
}

func TestNewLogger_File(t *testing.T) {
	cfg := testConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "cb.log")

	var buf bytes.Buffer
	log, closeLog, err := NewLogger(cfg, &buf, true)
	require.NoError(t, err)
	log.Logf("resolved %s", "abc123")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resolved abc123")
	assert.Empty(t, buf.String())
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	reporter := action.NewReporter(action.NewReporterParams{
		Writer: &buf,
		Getenv: func(string) string { return "" },
	})

	err := Report(reporter, dependencies.ErrForgeProviderMissing)

	var reported *ReportedError
	require.True(t, errors.As(err, &reported))
	assert.ErrorIs(t, err, dependencies.ErrForgeProviderMissing)
	assert.Contains(t, buf.String(),
		"::error::Action failed due to error: "+dependencies.ErrForgeProviderMissing.Error())
}
