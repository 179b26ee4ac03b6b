package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"uniformgen/internal/emit"
	"uniformgen/internal/layout"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadProjectManifestSearchesUpwards(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, manifestFileName), `
[generate]
input = "src/uniforms.txt"
output = "include/uniforms.h"
backend = "opengl"

[layout]
cursor = "aligned"
jobs = 2
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, err := loadProjectManifest("", nested)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if m == nil {
		t.Fatal("expected manifest to be found")
	}
	wantRoot, err := filepath.Abs(root)
	if err != nil {
		t.Fatal(err)
	}
	if m.Root != wantRoot {
		t.Errorf("Root = %q, want %q", m.Root, wantRoot)
	}
	if m.Config.Generate.Backend != "opengl" || m.Config.Layout.Cursor != "aligned" || m.Config.Layout.Jobs != 2 {
		t.Errorf("unexpected config: %+v", m.Config)
	}
	if got, want := m.resolvePath(m.Config.Generate.Input), filepath.Join(wantRoot, "src", "uniforms.txt"); got != want {
		t.Errorf("resolvePath = %q, want %q", got, want)
	}
}

func TestLoadProjectManifestMissingIsNotAnError(t *testing.T) {
	m, err := loadProjectManifest("", t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		// a manifest above the temp dir would make this test meaningless
		t.Skipf("found unrelated manifest at %s", m.Path)
	}
}

func TestLoadProjectConfigRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown backend", "[generate]\nbackend = \"metal\"\n", "[generate].backend"},
		{"unknown cursor", "[layout]\ncursor = \"sideways\"\n", "[layout].cursor"},
		{"negative jobs", "[layout]\njobs = -1\n", "[layout].jobs"},
		{"unknown key", "[generate]\nbackends = \"vulkan\"\n", "unknown keys"},
		{"bad toml", "[generate\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), manifestFileName)
			writeFile(t, path, tt.content)
			_, err := loadProjectConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMergeSettings(t *testing.T) {
	manifest := &projectManifest{
		Root: "/proj",
		Config: projectConfig{
			Generate: generateConfig{Input: "u.txt", Output: "out/u.h", Backend: "opengl"},
			Layout:   layoutConfig{Cursor: "aligned", Jobs: 3},
		},
	}

	t.Run("manifest fills gaps", func(t *testing.T) {
		s, err := mergeSettings(flagValues{cursor: "logical"}, manifest, true)
		if err != nil {
			t.Fatalf("mergeSettings: %v", err)
		}
		if s.input != filepath.Join("/proj", "u.txt") || s.output != filepath.Join("/proj", "out", "u.h") {
			t.Errorf("paths = %q, %q", s.input, s.output)
		}
		if s.opts.Backend != emit.OpenGL || s.opts.Cursor != layout.CursorAligned || s.opts.Jobs != 3 {
			t.Errorf("opts = %+v", s.opts)
		}
	})

	t.Run("flags override", func(t *testing.T) {
		fv := flagValues{
			input: "x.txt", output: "-", outputSet: true,
			backend: "vulkan", backendSet: true,
			cursor: "logical", cursorSet: true,
			jobs: 1, jobsSet: true,
		}
		s, err := mergeSettings(fv, manifest, true)
		if err != nil {
			t.Fatalf("mergeSettings: %v", err)
		}
		if s.input != "x.txt" || s.output != "-" {
			t.Errorf("paths = %q, %q", s.input, s.output)
		}
		if s.opts.Backend != emit.Vulkan || s.opts.Cursor != layout.CursorLogical || s.opts.Jobs != 1 {
			t.Errorf("opts = %+v", s.opts)
		}
	})

	t.Run("backend required for generate", func(t *testing.T) {
		_, err := mergeSettings(flagValues{input: "x.txt", output: "x.h"}, nil, true)
		if err == nil || !strings.Contains(err.Error(), "no backend") {
			t.Fatalf("expected missing backend error, got %v", err)
		}
	})

	t.Run("layout defaults", func(t *testing.T) {
		s, err := mergeSettings(flagValues{input: "x.txt"}, nil, false)
		if err != nil {
			t.Fatalf("mergeSettings: %v", err)
		}
		if s.output != "-" || s.opts.Backend != emit.Vulkan || s.opts.Cursor != layout.CursorLogical {
			t.Errorf("unexpected defaults: %+v", s)
		}
	})

	t.Run("invalid backend flag", func(t *testing.T) {
		fv := flagValues{input: "x.txt", output: "x.h", backend: "d3d", backendSet: true}
		if _, err := mergeSettings(fv, nil, true); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing input", func(t *testing.T) {
		if _, err := mergeSettings(flagValues{}, nil, false); err == nil {
			t.Fatal("expected error")
		}
	})
}
