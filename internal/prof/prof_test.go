package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemProfileWrittenOnStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.pprof")
	s, err := Start(Options{MemProfile: path})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("heap profile missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("heap profile is empty")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}

func TestRuntimeTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	s, err := Start(Options{RuntimeTrace: path})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("trace file missing: %v", err)
	}
}

func TestStartFailsOnBadPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "dir", "cpu.pprof")
	if _, err := Start(Options{CPUProfile: bad}); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestNilSession(t *testing.T) {
	var s *Session
	if err := s.Stop(); err != nil {
		t.Errorf("nil Stop: %v", err)
	}
}
