// Package config handles loading and resolving the issues-migrate
// configuration from a yaml file and command-line flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the raw application configuration as read from the
// config file, before flags are merged in.
type Config struct {
	// Login holds credentials shared by all repositories unless overridden.
	Login LoginConfig `yaml:"login"`

	// Sources lists the repositories issues are copied from, as
	// "owner/repo" pairs.
	Sources []string `yaml:"sources"`

	// Target is the repository issues are copied into.
	Target string `yaml:"target"`

	// Issues selects which issues to migrate: "all", "open" or "closed".
	Issues string `yaml:"issues,omitempty"`

	// Import toggles which parts of an issue are migrated.
	Import ImportConfig `yaml:"import"`

	// Backrefs controls whether originals are patched with a migrated
	// marker pointing at their destination.
	Backrefs *bool `yaml:"backrefs,omitempty"`

	// CloseIssues controls whether originals are closed after migration.
	CloseIssues *bool `yaml:"close-issues,omitempty"`

	// NormalizeLabels lowercases label names and hyphenates whitespace
	// before matching them against the target.
	NormalizeLabels *bool `yaml:"normalize-labels,omitempty"`

	// Format holds body templating settings.
	Format FormatConfig `yaml:"format"`

	// Repositories holds per-repository overrides keyed by "owner/repo".
	Repositories map[string]RepositoryConfig `yaml:"repositories,omitempty"`
}

// LoginConfig holds credentials for tracker access.
type LoginConfig struct {
	Username string `yaml:"username,omitempty"`
	Token    string `yaml:"token,omitempty"`
}

// ImportConfig toggles which parts of an issue are migrated. Unset values
// default to true.
type ImportConfig struct {
	Comments  *bool `yaml:"comments,omitempty"`
	Labels    *bool `yaml:"labels,omitempty"`
	Milestone *bool `yaml:"milestone,omitempty"`
	Assignee  *bool `yaml:"assignee,omitempty"`
}

// FormatConfig holds body templating settings.
type FormatConfig struct {
	// Date is a Go time layout used when rendering issue and comment
	// creation dates into bodies.
	Date string `yaml:"date,omitempty"`

	IssueTemplate       string `yaml:"issue-template,omitempty"`
	CommentTemplate     string `yaml:"comment-template,omitempty"`
	PullRequestTemplate string `yaml:"pull-request-template,omitempty"`
}

// RepositoryConfig overrides global settings for a single repository.
type RepositoryConfig struct {
	// Server is the tracker host, defaulting to "github.com". Any other
	// value is treated as a GitHub Enterprise host.
	Server   string `yaml:"server,omitempty"`
	Username string `yaml:"username,omitempty"`
	Token    string `yaml:"token,omitempty"`

	Import          ImportConfig `yaml:"import,omitempty"`
	Backrefs        *bool        `yaml:"backrefs,omitempty"`
	CloseIssues     *bool        `yaml:"close-issues,omitempty"`
	NormalizeLabels *bool        `yaml:"normalize-labels,omitempty"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct{}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns an empty configuration; every setting then comes
// from flags or falls back to its documented default at resolve time.
func (c *realManager) DefaultConfig() *Config {
	return &Config{}
}

// LoadConfigWithFallback loads configuration from file with fallback to an
// empty config when the file does not exist.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	if config, err := manager.LoadConfig(configPath); err == nil {
		return config, nil
	}

	return manager.DefaultConfig(), nil
}
