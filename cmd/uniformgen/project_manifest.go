package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"uniformgen/internal/emit"
	"uniformgen/internal/layout"
)

const manifestFileName = "uniformgen.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Generate generateConfig `toml:"generate"`
	Layout   layoutConfig   `toml:"layout"`
}

type generateConfig struct {
	Input   string `toml:"input"`
	Output  string `toml:"output"`
	Backend string `toml:"backend"`
}

type layoutConfig struct {
	Cursor string `toml:"cursor"`
	Jobs   int    `toml:"jobs"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest reads explicitPath when given, otherwise searches
// upwards from startDir. A missing manifest is not an error when searching.
func loadProjectManifest(explicitPath, startDir string) (*projectManifest, error) {
	manifestPath := explicitPath
	if manifestPath == "" {
		found, ok, err := findManifest(startDir)
		if err != nil || !ok {
			return nil, err
		}
		manifestPath = found
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return projectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("generate", "backend") {
		if _, err := emit.ParseBackend(cfg.Generate.Backend); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [generate].backend: %w", path, err)
		}
	}
	if meta.IsDefined("layout", "cursor") {
		if _, err := layout.ParseCursorMode(cfg.Layout.Cursor); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [layout].cursor: %w", path, err)
		}
	}
	if cfg.Layout.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [layout].jobs must not be negative", path)
	}
	return cfg, nil
}

// resolvePath interprets a manifest-relative path.
func (m *projectManifest) resolvePath(p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, filepath.FromSlash(p))
}
