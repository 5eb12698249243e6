package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// pyproject mirrors the part of pyproject.toml gitai reads:
//
//	[tool.gitai]
//	ignore = ["migrations", "build"]
type pyproject struct {
	Tool struct {
		Gitai struct {
			Ignore []string `toml:"ignore"`
		} `toml:"gitai"`
	} `toml:"tool"`
}

// LoadPyprojectIgnores returns the [tool.gitai] ignore list from
// <repoRoot>/pyproject.toml. A missing file or section yields nil.
func LoadPyprojectIgnores(repoRoot string) ([]string, error) {
	path := filepath.Join(repoRoot, "pyproject.toml")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc.Tool.Gitai.Ignore, nil
}
