package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/driveaware/restrictwatch/internal/text"
)

// Config holds all configurable parameters of the demo app.
type Config struct {
	// MaxDisplayLength bounds display text while long text is blocked.
	MaxDisplayLength int `yaml:"max_display_length"`

	// StatePath is the restriction state file watched by the file source.
	StatePath string `yaml:"state_path"`

	// Poll forces the mod-time polling source instead of fsnotify.
	Poll bool `yaml:"poll"`

	// PollInterval is the polling cadence when Poll is set.
	PollInterval time.Duration `yaml:"poll_interval"`

	// AuditLog is the transition log path. Empty disables the log.
	AuditLog string `yaml:"audit_log"`

	// AllClearLabel is shown when no functions are blocked.
	AllClearLabel string `yaml:"all_clear_label"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxDisplayLength: text.DefaultMaxDisplayLength,
		PollInterval:     2 * time.Second,
		AllClearLabel:    "All functions available",
	}
}

// defaultPath returns ~/.restrictwatch/config.yaml, or "" if the home
// directory cannot be determined.
func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".restrictwatch", "config.yaml")
}

// LoadConfig loads configuration from a YAML file.
// Empty path falls back to ~/.restrictwatch/config.yaml.
// Missing file returns defaults. Invalid YAML or values return an error.
func LoadConfig(path string) (*Config, error) {
	cfg, _, err := LoadConfigWithHash(path)
	return cfg, err
}

// LoadConfigWithHash loads configuration and returns the SHA-256 hash of the
// raw YAML bytes on disk. When no file exists (defaults used), the hash is
// the SHA-256 of empty input.
func LoadConfigWithHash(path string) (*Config, string, error) {
	if path == "" {
		path = defaultPath()
		if path == "" {
			return DefaultConfig(), emptyHash(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), emptyHash(), nil
		}
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	// Start with defaults, YAML overwrites only specified fields
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	h := sha256.Sum256(data)
	return cfg, "sha256:" + hex.EncodeToString(h[:]), nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	// 3-char ellipsis plus at least one content character
	if c.MaxDisplayLength < 4 {
		return fmt.Errorf("max_display_length must be at least 4, got %d", c.MaxDisplayLength)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	return nil
}

func emptyHash() string {
	h := sha256.Sum256(nil)
	return "sha256:" + hex.EncodeToString(h[:])
}

// DefaultConfigYAML returns a commented YAML string for init.
func DefaultConfigYAML() string {
	return `# restrictwatch configuration
# Generated by: restrictwatch init

# Maximum display text length while the platform blocks long text.
# Text over the limit is cut to (max - 3) characters plus "...".
# Must be at least 4.
max_display_length: 120

# Restriction state file watched by "restrictwatch watch".
# JSON object, for example:
#   {"active_flags": 21, "requires_optimization": true}
# or with symbolic names OR-ed into the mask:
#   {"flags": ["no_dialpad", "no_video"], "requires_optimization": true}
state_path: ""

# Use mod-time polling instead of fsnotify (for filesystems without
# inotify support, e.g. NFS).
poll: false
poll_interval: 2s

# Append-only JSONL log of restriction transitions. Empty disables it.
audit_log: ""

# Indicator shown when no functions are blocked.
all_clear_label: "All functions available"
`
}
