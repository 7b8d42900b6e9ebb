package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tienda")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":5000" {
		t.Errorf("expected default addr :5000, got %q", cfg.Addr)
	}
	if !cfg.AllowAllOrigins {
		t.Errorf("expected AllowAllOrigins to default to true")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is not set")
	}
}

func TestLoad_CORSAllowList(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tienda")
	t.Setenv("CORS_ALLOW_ALL", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://tienda.example.com,http://localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AllowAllOrigins {
		t.Errorf("expected AllowAllOrigins false")
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[0] != "https://tienda.example.com" {
		t.Errorf("unexpected allow list: %v", cfg.AllowOrigins)
	}
}
