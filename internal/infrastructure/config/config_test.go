package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "8080" || cfg.AuthDB.Driver != "postgres" || cfg.JWT.TTL != 24*time.Hour {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CartTTL != 24*time.Hour || cfg.GuardTTL != 30*time.Second || cfg.RateLimit != "10-M" {
		t.Fatalf("unexpected ttl defaults: %+v", cfg)
	}
	if cfg.Dashboard.ProductMargin != 0.2 || cfg.Dashboard.ServiceMargin != 0.3 {
		t.Fatalf("unexpected thresholds: %+v", cfg.Dashboard)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("AUTH_DB_DRIVER", "MySQL")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com ,")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	t.Setenv("CART_TTL", "2h")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.AuthDB.Driver != "mysql" {
		t.Fatalf("expected mysql, got %q", cfg.AuthDB.Driver)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if !cfg.Payments.Mock || cfg.CartTTL != 2*time.Hour || cfg.Location != time.UTC {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_DB_DRIVER", "oracle")
	t.Setenv("JWT_TTL", "forever")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"JWT_SECRET", "AUTH_DB_DRIVER", "JWT_TTL"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in %v", want, err)
		}
	}
}
