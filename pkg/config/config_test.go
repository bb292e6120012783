package config

import (
	"os"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.DB.DSN != "file::memory:?cache=shared" {
		t.Fatalf("unexpected default DSN: %q", cfg.DB.DSN)
	}
	if cfg.Store.NthOrderForDiscount != 3 {
		t.Fatalf("expected default nth order 3, got %d", cfg.Store.NthOrderForDiscount)
	}
	if cfg.Store.DiscountPercentage != 10 {
		t.Fatalf("expected default percentage 10, got %d", cfg.Store.DiscountPercentage)
	}
	if len(cfg.CORS.Origins) == 0 {
		t.Fatal("expected default CORS origins")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsBadStorePolicy(t *testing.T) {
	setMinimalEnv(t)

	t.Setenv(EnvNthOrder, "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected zero nth order to be rejected")
	}

	t.Setenv(EnvNthOrder, "3")
	t.Setenv(EnvDiscountPct, "150")
	if _, err := Load(); err == nil {
		t.Fatal("expected out of range percentage to be rejected")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	app := AppConfig{Env: "Development"}
	if !app.IsDev() || app.IsProd() {
		t.Fatal("expected development env to report IsDev")
	}

	app.Env = "PRODUCTION"
	if !app.IsProd() || app.IsDev() {
		t.Fatal("expected production env to report IsProd")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvAdminKey, "test-admin-key")
}
