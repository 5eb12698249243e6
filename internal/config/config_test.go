package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitai/internal/quality"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 10, cfg.Quality.MaxComplexity)
	assert.Equal(t, 50, cfg.Quality.MaxMethodLength)
	assert.Equal(t, 8, cfg.Quality.MaxWorkingMemory)
	assert.Equal(t, []string{".py"}, cfg.Quality.Extensions)
	assert.Empty(t, cfg.Quality.Ignore)
	assert.Equal(t, FormatMarkdown, cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.ChangelogDir)
	assert.Equal(t, 5*time.Second, cfg.GitTimeout())
	assert.Equal(t, "10MB", cfg.Logging.MaxSize)
	assert.Equal(t, 3, cfg.Logging.MaxBackups)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_MatchesEngineDefaults(t *testing.T) {
	cfg := DefaultConfig()

	limits := quality.Limits{
		MaxComplexity:    cfg.Quality.MaxComplexity,
		MaxMethodLength:  cfg.Quality.MaxMethodLength,
		MaxWorkingMemory: cfg.Quality.MaxWorkingMemory,
	}
	assert.Equal(t, quality.DefaultLimits(), limits)
	assert.Equal(t, quality.DefaultExtensions, cfg.Quality.Extensions)

	cfg.Quality.Extensions[0] = ".pyi"
	assert.Equal(t, []string{".py"}, quality.DefaultExtensions)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad version", func(c *Config) { c.Version = 7 }, "version"},
		{"zero complexity", func(c *Config) { c.Quality.MaxComplexity = 0 }, "quality.maxComplexity"},
		{"negative length", func(c *Config) { c.Quality.MaxMethodLength = -1 }, "quality.maxMethodLength"},
		{"zero memory", func(c *Config) { c.Quality.MaxWorkingMemory = 0 }, "quality.maxWorkingMemory"},
		{"no extensions", func(c *Config) { c.Quality.Extensions = nil }, "quality.extensions"},
		{"extension without dot", func(c *Config) { c.Quality.Extensions = []string{"py"} }, "quality.extensions"},
		{"zero timeout", func(c *Config) { c.Git.TimeoutMs = 0 }, "git.timeoutMs"},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"yaml format", func(c *Config) { c.Output.Format = FormatYAML }, ""},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.maxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "version", Message: "unsupported config version"}
	assert.Equal(t, "config error in field 'version': unsupported config version", err.Error())
}

func TestLoadConfig_Default(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, want.Version, cfg.Version)
	assert.Equal(t, want.Quality.MaxComplexity, cfg.Quality.MaxComplexity)
	assert.Equal(t, want.Quality.Extensions, cfg.Quality.Extensions)
	assert.Empty(t, cfg.Quality.Ignore)
	assert.Equal(t, want.Git, cfg.Git)
	assert.Equal(t, want.Output, cfg.Output)
	assert.Equal(t, want.Logging, cfg.Logging)
}

func TestLoadConfig_FromJSON(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, DirName), 0755))

	configContent := `{
		"version": 1,
		"quality": {"maxComplexity": 15, "ignore": ["venv"]},
		"output": {"format": "json"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, DirName, "config.json"), []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Quality.MaxComplexity)
	assert.Equal(t, 50, cfg.Quality.MaxMethodLength, "unset keys keep defaults")
	assert.Equal(t, []string{"venv"}, cfg.Quality.Ignore)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestConfig_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Quality.MaxWorkingMemory = 12
	cfg.Quality.Extensions = []string{".py", ".pyw"}
	cfg.Logging.Level = "debug"

	require.NoError(t, cfg.Save(tmpDir))
	assert.FileExists(t, Path(tmpDir))

	loaded, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 12, loaded.Quality.MaxWorkingMemory)
	assert.Equal(t, []string{".py", ".pyw"}, loaded.Quality.Extensions)
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.NoError(t, loaded.Validate())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("GITAI_LOGGING_LEVEL", "error")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("GITAI_GIT_TIMEOUTMS=7000\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("GITAI_GIT_TIMEOUTMS") })

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Git.TimeoutMs)
}

func TestLoadConfig_PyprojectIgnores(t *testing.T) {
	tmpDir := t.TempDir()
	pyproject := `[project]
name = "demo"

[tool.gitai]
ignore = ["migrations", "build"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pyproject.toml"), []byte(pyproject), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"migrations", "build"}, cfg.Quality.Ignore)
}

func TestLoadPyprojectIgnores(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ignores, err := LoadPyprojectIgnores(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, ignores)
	})

	t.Run("no tool section", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pyproject.toml"), []byte("[project]\nname = \"x\"\n"), 0644))

		ignores, err := LoadPyprojectIgnores(tmpDir)
		require.NoError(t, err)
		assert.Empty(t, ignores)
	})

	t.Run("malformed", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pyproject.toml"), []byte("[tool.gitai\nignore = "), 0644))

		_, err := LoadPyprojectIgnores(tmpDir)
		assert.Error(t, err)
	})
}
