package config

import "testing"

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PDFICON_OUTPUT_DIR", "/tmp/icons")
	t.Setenv("PDFICON_PALETTE", "night")
	t.Setenv("PDFICON_SETTINGS_TABLE", "prefs")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/icons" {
		t.Fatalf("OutputDir=%q", cfg.OutputDir)
	}
	if cfg.Palette != "night" {
		t.Fatalf("Palette=%q", cfg.Palette)
	}
	if cfg.SettingsTable != "prefs" {
		t.Fatalf("SettingsTable=%q", cfg.SettingsTable)
	}
	if cfg.Name != "app_icon" {
		t.Fatalf("expected default name, got %q", cfg.Name)
	}
}

func TestDefaultIgnoresEnvironment(t *testing.T) {
	t.Setenv("PDFICON_NAME", "from_env")
	t.Setenv("PDFICON_LOG_LEVEL", "debug")
	want := Config{
		OutputDir:     ".",
		Name:          "app_icon",
		Font:          "embedded",
		Palette:       "default",
		Label:         "PDF",
		LogLevel:      "info",
		SettingsDB:    "settings.db",
		SettingsTable: "settings",
	}
	if got := Default(); got != want {
		t.Fatalf("Default()=%+v, want %+v", got, want)
	}
}
