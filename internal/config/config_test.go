// ABOUTME: Tests for settings merge precedence and missing-file behavior
// ABOUTME: Project-local values override global ones; absence is not an error

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMerge_ProjectOverridesGlobal(t *testing.T) {
	t.Parallel()

	global := &Settings{Scenario: "global.yaml", Style: "dark", Quota: 1024}
	project := &Settings{Scenario: "project.yaml", Verbose: true}

	got := merge(global, project)
	if got.Scenario != "project.yaml" {
		t.Errorf("Scenario = %q, want project value", got.Scenario)
	}
	if got.Style != "dark" {
		t.Errorf("Style = %q, want inherited global value", got.Style)
	}
	if got.Quota != 1024 {
		t.Errorf("Quota = %g, want inherited 1024", got.Quota)
	}
	if !got.Verbose {
		t.Error("Verbose = false, want project override")
	}
}

func TestMerge_NilInputs(t *testing.T) {
	t.Parallel()

	if got := merge(nil, nil); got == nil {
		t.Fatal("merge(nil, nil) = nil")
	}
	global := &Settings{Style: "light"}
	if got := merge(global, nil); got.Style != "light" {
		t.Errorf("Style = %q, want global value", got.Style)
	}
}

func TestLoad_MissingFilesAreFine(t *testing.T) {
	t.Parallel()

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s == nil {
		t.Fatal("Load returned nil settings")
	}
}

func TestLoad_ProjectFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := ProjectDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	payload := []byte(`{"scenario":"demo.yaml","quota":256}`)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), payload, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Scenario != "demo.yaml" {
		t.Errorf("Scenario = %q, want demo.yaml", s.Scenario)
	}
	if s.Quota != 256 {
		t.Errorf("Quota = %g, want 256", s.Quota)
	}
}

func TestLoad_MalformedProjectFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := ProjectDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
