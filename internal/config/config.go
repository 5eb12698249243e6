package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gitai/internal/quality"
)

const (
	// CurrentVersion is the config schema version written by `gitai init`.
	CurrentVersion = 1

	// DirName is the per-repository config directory.
	DirName = ".gitai"

	// FileName is the config file written by Save.
	FileName = "config.toml"

	// EnvPrefix prefixes environment overrides, e.g. GITAI_LOGGING_LEVEL.
	EnvPrefix = "GITAI"
)

// Config represents the complete gitai configuration
type Config struct {
	Version int `json:"version" mapstructure:"version" toml:"version"`

	Quality QualityConfig `json:"quality" mapstructure:"quality" toml:"quality"`
	Git     GitConfig     `json:"git" mapstructure:"git" toml:"git"`
	Output  OutputConfig  `json:"output" mapstructure:"output" toml:"output"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging" toml:"logging"`
}

// QualityConfig contains code quality scoring thresholds and file selection
type QualityConfig struct {
	MaxComplexity    int      `json:"maxComplexity" mapstructure:"maxComplexity" toml:"maxComplexity"`
	MaxMethodLength  int      `json:"maxMethodLength" mapstructure:"maxMethodLength" toml:"maxMethodLength"`
	MaxWorkingMemory int      `json:"maxWorkingMemory" mapstructure:"maxWorkingMemory" toml:"maxWorkingMemory"`
	Extensions       []string `json:"extensions" mapstructure:"extensions" toml:"extensions"`
	Ignore           []string `json:"ignore" mapstructure:"ignore" toml:"ignore"`
}

// GitConfig contains git subprocess settings
type GitConfig struct {
	TimeoutMs int `json:"timeoutMs" mapstructure:"timeoutMs" toml:"timeoutMs"`
}

// OutputConfig contains report output defaults
type OutputConfig struct {
	Format       string `json:"format" mapstructure:"format" toml:"format"`
	ChangelogDir string `json:"changelogDir" mapstructure:"changelogDir" toml:"changelogDir"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level" toml:"level"`
	File  string `json:"file,omitempty" mapstructure:"file" toml:"file,omitempty"`

	// MaxSize rotates File once it would grow past this size ("10MB"); empty disables rotation.
	MaxSize    string `json:"maxSize,omitempty" mapstructure:"maxSize" toml:"maxSize,omitempty"`
	MaxBackups int    `json:"maxBackups" mapstructure:"maxBackups" toml:"maxBackups"`
}

// Output formats accepted by the quality command.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Quality: QualityConfig{
			MaxComplexity:    quality.DefaultMaxComplexity,
			MaxMethodLength:  quality.DefaultMaxMethodLength,
			MaxWorkingMemory: quality.DefaultMaxWorkingMemory,
			Extensions:       append([]string(nil), quality.DefaultExtensions...),
			Ignore:           []string{},
		},
		Git: GitConfig{
			TimeoutMs: 5000,
		},
		Output: OutputConfig{
			Format:       FormatMarkdown,
			ChangelogDir: ".",
		},
		Logging: LoggingConfig{
			Level:      "warn",
			MaxSize:    "10MB",
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads <repoRoot>/.gitai/config.{toml,json,yaml}, applying
// GITAI_* environment overrides (a <repoRoot>/.env file is loaded first).
// A missing config file yields the defaults.
func LoadConfig(repoRoot string) (*Config, error) {
	// Missing .env is the common case.
	_ = godotenv.Load(filepath.Join(repoRoot, ".env"))

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(repoRoot, DirName))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	ignores, err := LoadPyprojectIgnores(repoRoot)
	if err != nil {
		return nil, err
	}
	cfg.Quality.Ignore = append(cfg.Quality.Ignore, ignores...)

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("quality.maxComplexity", d.Quality.MaxComplexity)
	v.SetDefault("quality.maxMethodLength", d.Quality.MaxMethodLength)
	v.SetDefault("quality.maxWorkingMemory", d.Quality.MaxWorkingMemory)
	v.SetDefault("quality.extensions", d.Quality.Extensions)
	v.SetDefault("quality.ignore", d.Quality.Ignore)
	v.SetDefault("git.timeoutMs", d.Git.TimeoutMs)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.changelogDir", d.Output.ChangelogDir)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.maxSize", d.Logging.MaxSize)
	v.SetDefault("logging.maxBackups", d.Logging.MaxBackups)
}

// Path returns the path Save writes to.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, DirName, FileName)
}

// Save writes the configuration to .gitai/config.toml
func (c *Config) Save(repoRoot string) error {
	if err := os.MkdirAll(filepath.Join(repoRoot, DirName), 0755); err != nil {
		return err
	}

	f, err := os.Create(Path(repoRoot))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(c)
}

// GitTimeout returns the per-command git timeout.
func (c *Config) GitTimeout() time.Duration {
	return time.Duration(c.Git.TimeoutMs) * time.Millisecond
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Quality.MaxComplexity <= 0 {
		return &ConfigError{Field: "quality.maxComplexity", Message: "must be positive"}
	}
	if c.Quality.MaxMethodLength <= 0 {
		return &ConfigError{Field: "quality.maxMethodLength", Message: "must be positive"}
	}
	if c.Quality.MaxWorkingMemory <= 0 {
		return &ConfigError{Field: "quality.maxWorkingMemory", Message: "must be positive"}
	}
	if len(c.Quality.Extensions) == 0 {
		return &ConfigError{Field: "quality.extensions", Message: "at least one extension is required"}
	}
	for _, ext := range c.Quality.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return &ConfigError{Field: "quality.extensions", Message: "extension " + ext + " must start with '.'"}
		}
	}
	if c.Git.TimeoutMs <= 0 {
		return &ConfigError{Field: "git.timeoutMs", Message: "must be positive"}
	}
	switch c.Output.Format {
	case FormatMarkdown, FormatJSON, FormatYAML:
	default:
		return &ConfigError{Field: "output.format", Message: "unknown format " + c.Output.Format}
	}
	if c.Logging.MaxBackups < 0 {
		return &ConfigError{Field: "logging.maxBackups", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
