package config

import "testing"

func TestLoadWithNoConfigFilePresentReturnsZeroValue(t *testing.T) {
	// In a sandboxed test environment, $XDG_CONFIG_HOME typically has no
	// cp437term/config.toml; Load must fall back cleanly rather than error.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPalette != "" || cfg.DefaultBPS != 0 {
		t.Fatalf("expected zero-value config, got %+v", cfg)
	}
}
