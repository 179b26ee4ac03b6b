package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputNormalizes(t *testing.T) {
	got, err := readInput("-", strings.NewReader("\ufeffa]b(x: f32)\r\n"))
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if got != "a]b(x: f32)\n" {
		t.Errorf("readInput = %q", got)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWriteOutputReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "include", "out.h")

	if err := writeOutput(path, []byte("first"), nil); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	if err := writeOutput(path, []byte("second"), nil); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q", data)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteOutputStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOutput("-", []byte("hdr"), &buf); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	if buf.String() != "hdr" {
		t.Errorf("stdout = %q", buf.String())
	}
}

func TestReadColorMode(t *testing.T) {
	for in, want := range map[string]colorMode{"": colorModeAuto, "AUTO": colorModeAuto, "on": colorModeOn, " off ": colorModeOff} {
		got, err := readColorMode(in)
		if err != nil || got != want {
			t.Errorf("readColorMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readColorMode("sometimes"); err == nil {
		t.Error("expected error for invalid mode")
	}
}
