package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig_MissingDefaultIsFine(t *testing.T) {
	cfg, err := loadFileConfig(filepath.Join(t.TempDir(), "caret.yaml"), false)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if cfg != defaultFileConfig() {
		t.Fatalf("cfg=%+v, want defaults", cfg)
	}
}

func TestLoadFileConfig_MissingExplicitFails(t *testing.T) {
	if _, err := loadFileConfig(filepath.Join(t.TempDir(), "caret.yaml"), true); err == nil {
		t.Fatalf("expected an error for a missing explicit config")
	}
}

func TestLoadFileConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caret.yaml")
	data := "theme: light\nhighlighter: alternating\ntab_width: 8\nno_wrap: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := loadFileConfig(path, true)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want := fileConfig{Theme: "light", Highlighter: "alternating", TabWidth: 8, NoWrap: true}
	if cfg != want {
		t.Fatalf("cfg=%+v, want %+v", cfg, want)
	}
}

func TestLoadFileConfig_RejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caret.yaml")
	if err := os.WriteFile(path, []byte("theme: neon\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadFileConfig(path, true); err == nil {
		t.Fatalf("expected an error for an unknown theme")
	}
}
