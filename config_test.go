package debtbook

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DEBTBOOK_DATA", "")
		t.Setenv("DEBTBOOK_CURRENCY", "")
		t.Setenv("LOG_LEVEL", "")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
		}
		if cfg.DataDir != defaultDataDir {
			t.Errorf("DataDir = %q, want %q", cfg.DataDir, defaultDataDir)
		}
		if cfg.Currency != DefaultCurrency {
			t.Errorf("Currency = %q, want %q", cfg.Currency, DefaultCurrency)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DEBTBOOK_DATA", "/tmp/book")
		t.Setenv("DEBTBOOK_CURRENCY", "EUR")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
		}
		if cfg.DataDir != "/tmp/book" || cfg.Currency != "EUR" || cfg.LogLevel != "debug" {
			t.Errorf("LoadConfig() = %+v, env overrides were not applied", cfg)
		}
	})

	t.Run("invalid currency", func(t *testing.T) {
		t.Setenv("DEBTBOOK_CURRENCY", "NOPE")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should reject an unknown currency code")
		}
	})
}
