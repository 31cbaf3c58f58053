package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_NoFilesYieldsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Retention() != 7*24*time.Hour {
		t.Errorf("expected 7 day default retention, got %v", cfg.Retention())
	}
	if cfg.Storage.DataDir != "" {
		t.Errorf("expected empty data dir, got %q", cfg.Storage.DataDir)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "tarefas", "config.toml"), `
[storage]
data-dir = "/srv/global"

[archive]
retention-days = 30
`)

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "tarefas.toml"), `
[storage]
data-dir = "/srv/project"
`)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Storage.DataDir != "/srv/project" {
		t.Errorf("expected project data dir to win, got %q", cfg.Storage.DataDir)
	}
	// Keys the project doesn't define fall through to the global file.
	if cfg.Archive.RetentionDays != 30 {
		t.Errorf("expected global retention 30, got %d", cfg.Archive.RetentionDays)
	}
	if cfg.Retention() != 30*24*time.Hour {
		t.Errorf("expected 30 day retention, got %v", cfg.Retention())
	}
}

func TestLoad_ParseFailureReportsPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "tarefas.toml"), "isto não é toml = = =")

	if _, err := Load(project); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolveDataDir_DefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{}
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dir != filepath.Join(home, ".local", "share", "tarefas") {
		t.Errorf("unexpected default data dir %q", dir)
	}
}
