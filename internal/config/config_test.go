package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.StoreDriver != "file" || cfg.StoreDir != "data" {
		t.Errorf("store = %q / %q", cfg.StoreDriver, cfg.StoreDir)
	}
	if cfg.GeminiModel == "" {
		t.Error("no default gemini model")
	}
	if cfg.ChatChunkDelayMS != 50 {
		t.Errorf("chat chunk delay = %d", cfg.ChatChunkDelayMS)
	}
	if !cfg.IsDev() {
		t.Errorf("env = %q, want development default", cfg.Env)
	}
	// Dev mode falls back to an insecure secret rather than failing.
	if cfg.JWTSecret == "" {
		t.Error("no dev fallback JWT secret")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/ayurnidaan")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9999" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.StoreDriver != "postgres" || cfg.DatabaseURL == "" {
		t.Errorf("store = %q, url = %q", cfg.StoreDriver, cfg.DatabaseURL)
	}
	if !cfg.GeminiEnabled() {
		t.Error("gemini not enabled with api key set")
	}
}

func TestValidate_UnknownStoreDriver(t *testing.T) {
	cfg := &Config{Env: "development", StoreDriver: "redis", TokenTTLHours: 24}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown store driver")
	}
}

func TestValidate_PostgresRequiresDatabaseURL(t *testing.T) {
	cfg := &Config{Env: "development", StoreDriver: "postgres", TokenTTLHours: 24}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}
}

func TestValidate_ProductionRequiresRealSecret(t *testing.T) {
	cfg := &Config{
		Env: "production", StoreDriver: "file", StoreDir: "data",
		TokenTTLHours: 24, JWTSecret: "dev-insecure-secret",
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for insecure production secret")
	}

	cfg.JWTSecret = "a-real-secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RazorpayKeyPairing(t *testing.T) {
	cfg := &Config{
		Env: "development", StoreDriver: "file", StoreDir: "data",
		TokenTTLHours: 24, RazorpayKeyID: "rzp_test",
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for key id without secret")
	}

	cfg.RazorpayKeySecret = "s"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
