// Package cli provides common configuration and utility functions for the create-branch CLI.
package cli

import (
	"os"
	"path/filepath"

	"github.com/lerenn/create-branch/pkg/config"
	"github.com/lerenn/create-branch/pkg/dependencies"
	"github.com/lerenn/create-branch/pkg/inputs"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names besides the inputs themselves.
const (
	ConfigFlag  = "config"
	APIURLFlag  = "api-url"
	LogFileFlag = "log-file"
	VerboseFlag = "verbose"
	QuietFlag   = "quiet"
)

// envPrefix is the prefix GitHub Actions gives to step inputs (INPUT_BASE-BRANCH...).
const envPrefix = "INPUT"

// RegisterFlags declares the CLI flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(inputs.OwnerName, "", "Owner (account or organization) of the repository")
	flags.String(inputs.RepoName, "", "Name of the repository")
	flags.String(inputs.BaseBranchName, "", "Existing branch to branch from")
	flags.String(inputs.NewBranchName, "", "Name of the branch to create")
	flags.String(inputs.GitHubTokenName, "", "Token used to authenticate against the API")

	flags.StringP(ConfigFlag, "c", "", "Specify a custom config file path")
	flags.String(APIURLFlag, "", "Override the API root URL (GitHub Enterprise)")
	flags.String(LogFileFlag, "", "Also write logs to this rotating file")
	flags.BoolP(VerboseFlag, "v", false, "Enable verbose output")
	flags.BoolP(QuietFlag, "q", false, "Suppress all output except errors")
}

// NewViper binds the CLI flags and the matching INPUT_* environment variables.
// Flags take precedence over the environment.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	// The runner also exports the API root of the instance the workflow runs on.
	if err := v.BindEnv(APIURLFlag, envPrefix+"_API-URL", "GITHUB_API_URL"); err != nil {
		return nil, err
	}

	return v, nil
}

// RawInputs returns the inputs as supplied through flags or environment.
func RawInputs(v *viper.Viper) inputs.Raw {
	return inputs.Raw{
		Owner:       v.GetString(inputs.OwnerName),
		Repo:        v.GetString(inputs.RepoName),
		BaseBranch:  v.GetString(inputs.BaseBranchName),
		NewBranch:   v.GetString(inputs.NewBranchName),
		GitHubToken: v.GetString(inputs.GitHubTokenName),
	}
}

// GetConfigPath returns the config file path to use.
func GetConfigPath(v *viper.Viper) string {
	if path := v.GetString(ConfigFlag); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".create-branch", "config.yaml")
}

// LoadConfig loads the settings through the dependencies' config manager, falling back to
// defaults when the file does not exist, and applies the command line overrides.
func LoadConfig(v *viper.Viper, deps *dependencies.Dependencies) (config.Config, error) {
	if deps == nil || deps.Config == nil {
		return config.Config{}, dependencies.ErrConfigMissing
	}

	cfg, err := deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}

	cfg = cfg.WithAPIURL(v.GetString(APIURLFlag)).WithLogFile(v.GetString(LogFileFlag))
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
