package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/compozy/githubrelease/internal/domain"
	"github.com/spf13/viper"
)

// Credential sources accepted by credential_source.
const (
	CredentialSourceExplicit    = "explicit"
	CredentialSourceEnvironment = "environment"
)

type Config struct {
	GithubToken      string `mapstructure:"github_token"`
	GithubOwner      string `mapstructure:"github_owner"`
	GithubRepo       string `mapstructure:"github_repo"`
	GithubAPIURL     string `mapstructure:"github_api_url"`
	CredentialSource string `mapstructure:"credential_source"`
	LogLevel         string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		CredentialSource: CredentialSourceEnvironment,
		LogLevel:         "info",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.CredentialSource {
	case CredentialSourceExplicit, CredentialSourceEnvironment:
	default:
		return fmt.Errorf("invalid credential_source: %q (expected %s or %s)",
			c.CredentialSource, CredentialSourceExplicit, CredentialSourceEnvironment)
	}
	// GitHub token is optional - only validate if provided
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	// Owner and repo may still come from --repo, so only validate when both are set
	if c.GithubOwner != "" || c.GithubRepo != "" {
		if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	}
	if c.GithubAPIURL != "" && !strings.HasPrefix(c.GithubAPIURL, "https://") &&
		!strings.HasPrefix(c.GithubAPIURL, "http://") {
		return fmt.Errorf("invalid github_api_url: %s", c.GithubAPIURL)
	}
	return nil
}

// ValidateForGitHubOperations validates that a repository is configured for operations that require it
func (c *Config) ValidateForGitHubOperations() error {
	if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
		return fmt.Errorf("invalid github configuration: %w", err)
	}
	return c.Validate()
}

// ResolveToken returns the credential according to CredentialSource.
// An explicit source only accepts github_token from flags or the config file;
// the environment source falls back to GITHUB_TOKEN.
func (c *Config) ResolveToken() (string, error) {
	token := strings.TrimSpace(c.GithubToken)
	if token == "" && c.CredentialSource == CredentialSourceEnvironment {
		token = strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	}
	if token == "" {
		return "", fmt.Errorf("%w (credential_source=%s)", domain.ErrMissingCredential, c.CredentialSource)
	}
	return token, nil
}

// ApplyRepoSlug sets owner and repo from an owner/name slug.
func (c *Config) ApplyRepoSlug(slug string) error {
	owner, repo, err := ParseRepoSlug(slug)
	if err != nil {
		return err
	}
	c.GithubOwner = owner
	c.GithubRepo = repo
	return nil
}

// ParseRepoSlug splits an owner/name slug and validates both parts.
func ParseRepoSlug(slug string) (string, string, error) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(slug), "/")
	if !ok {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", slug)
	}
	if err := ValidateGitHubOwnerRepo(owner, repo); err != nil {
		return "", "", fmt.Errorf("invalid repository %q: %w", slug, err)
	}
	return owner, repo, nil
}

// populateRepositoryDefaults fills owner and repo from GITHUB_REPOSITORY when unset.
func populateRepositoryDefaults(cfg *Config) error {
	if cfg.GithubOwner != "" && cfg.GithubRepo != "" {
		return nil
	}
	slug := os.Getenv("GITHUB_REPOSITORY")
	if slug == "" {
		return nil
	}
	owner, repo, err := ParseRepoSlug(slug)
	if err != nil {
		return fmt.Errorf("GITHUB_REPOSITORY: %w", err)
	}
	if cfg.GithubOwner == "" {
		cfg.GithubOwner = owner
	}
	if cfg.GithubRepo == "" {
		cfg.GithubRepo = repo
	}
	return nil
}

var (
	classicPAT     = regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	prefixedToken  = regexp.MustCompile(`^gh[pousr]_[a-zA-Z0-9]{36,251}$`)
	fineGrainedPAT = regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	validName      = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
)

// ValidateGitHubToken validates GitHub token format (exported for reuse)
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	if !classicPAT.MatchString(token) &&
		!prefixedToken.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

// LoadConfig reads .github-release.yaml and the environment.
// The token is bound to GITHUB_RELEASE_GITHUB_TOKEN only; GITHUB_TOKEN is
// consulted by ResolveToken so that credential_source=explicit can ignore it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".github-release")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// Configure environment variables
	v.SetEnvPrefix("GITHUB_RELEASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindings := map[string][]string{
		"github_token":      {"GITHUB_RELEASE_GITHUB_TOKEN"},
		"github_owner":      {"GITHUB_RELEASE_GITHUB_OWNER"},
		"github_repo":       {"GITHUB_RELEASE_GITHUB_REPO"},
		"github_api_url":    {"GITHUB_API_URL", "GITHUB_RELEASE_GITHUB_API_URL"},
		"credential_source": {"GITHUB_RELEASE_CREDENTIAL_SOURCE"},
		"log_level":         {"GITHUB_RELEASE_LOG_LEVEL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("credential_source", defaults.CredentialSource)
	v.SetDefault("log_level", defaults.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := populateRepositoryDefaults(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
