package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.StalingCutoff != 50 {
		t.Errorf("StalingCutoff = %d, want 50", d.StalingCutoff)
	}
	if d.MaxConstructs != 10000 {
		t.Errorf("MaxConstructs = %d, want 10000", d.MaxConstructs)
	}
	if d.MinConstructLength != 1 {
		t.Errorf("MinConstructLength = %d, want 1", d.MinConstructLength)
	}
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "max-constructs: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.MaxConstructs != 5 {
		t.Errorf("MaxConstructs = %d, want 5 (from file)", d.MaxConstructs)
	}
	if d.StalingCutoff != 50 {
		t.Errorf("StalingCutoff = %d, want 50 (default, not overridden)", d.StalingCutoff)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatalf("Load should error on a missing config file")
	}
}

func TestDumpRoundTripsThroughLoad(t *testing.T) {
	d := Default()
	d.MaxConstructs = 42

	out, err := Dump(d)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dumped.yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load(dumped): %v", err)
	}
	if loaded != d {
		t.Fatalf("Load(Dump(d)) = %+v, want %+v", loaded, d)
	}
}
