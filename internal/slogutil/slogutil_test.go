package slogutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"info+2":  slog.LevelInfo + 2,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestVerbosityLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, VerbosityLevel(0, false))
	assert.Equal(t, slog.LevelInfo, VerbosityLevel(1, false))
	assert.Equal(t, slog.LevelDebug, VerbosityLevel(2, false))
	assert.Equal(t, slog.LevelDebug, VerbosityLevel(5, false))
	assert.Equal(t, Silent, VerbosityLevel(0, true))
	assert.Equal(t, Silent, VerbosityLevel(3, true))
}

func TestQuietSilencesErrors(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, VerbosityLevel(0, true)).Error("evaluation failed")
	assert.Empty(t, buf.String())
}

func TestOrDiscard(t *testing.T) {
	require.NotNil(t, OrDiscard(nil))
	OrDiscard(nil).Error("dropped")

	l := NewDiscardLogger()
	assert.Same(t, l, OrDiscard(l))
}

func TestNew_StderrOnly(t *testing.T) {
	var stderr bytes.Buffer
	logger, closer, err := New(&stderr, Config{Level: slog.LevelInfo})
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Info("Summarized branches", "branches", 2)
	assert.NoError(t, closer.Close())
	assert.Contains(t, stderr.String(), "[info] Summarized branches | branches=2\n")
}

func TestNew_LogFile(t *testing.T) {
	root := t.TempDir()
	var stderr bytes.Buffer

	logger, closer, err := New(&stderr, Config{
		Level:      slog.LevelWarn,
		Root:       root,
		File:       filepath.Join(".gitai", "logs", "gitai.log"),
		MaxSize:    "1MB",
		MaxBackups: 2,
	})
	require.NoError(t, err)

	logger.Info("Report written", "path", filepath.Join(root, "report.md"))
	logger.Warn("Error reading file", "path", filepath.Join(root, "app", "gone.py"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(root, ".gitai", "logs", "gitai.log"))
	require.NoError(t, err)

	want := "[warn] Error reading file | path=" + filepath.Join("app", "gone.py") + "\n"
	assert.Contains(t, string(data), want)
	assert.NotContains(t, string(data), "Report written")
	assert.Contains(t, stderr.String(), want)
}

func TestNew_FileWithoutRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitai.log")

	logger, closer, err := New(&bytes.Buffer{}, Config{Level: slog.LevelInfo, File: path})
	require.NoError(t, err)
	logger.With("branch", "main").Info("Read commit history", "commits", 4)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Read commit history | branch=main commits=4\n")
	assert.NoFileExists(t, path+".1")
}

func TestNew_BadLogFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := New(&bytes.Buffer{}, Config{File: filepath.Join(blocker, "gitai.log")})
	assert.Error(t, err)
}
