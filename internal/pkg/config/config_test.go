package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8001" || cfg.Env != "development" || cfg.IsProduction() {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Session.TTL != 7*24*time.Hour {
		t.Fatalf("expected 7 day session ttl, got %s", cfg.Session.TTL)
	}
	if cfg.Limits.UploadMaxBytes != 5*1024*1024 {
		t.Fatalf("expected 5MiB upload limit, got %d", cfg.Limits.UploadMaxBytes)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                  "production",
		"MONGO_DB":             "store_test",
		"NOTIFY_WORKERS":       "8",
		"SESSION_CACHE_TTL":    "30s",
		"CORS_ALLOWED_ORIGINS": "https://labcel.mx,https://admin.labcel.mx",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.IsProduction() || cfg.Mongo.Database != "store_test" || cfg.Notifications.Workers != 8 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Session.CacheTTL != 30*time.Second {
		t.Fatalf("expected 30s cache ttl, got %s", cfg.Session.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://admin.labcel.mx" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"IDENTITY_TIMEOUT": "soon",
	}))
	if err == nil {
		t.Fatal("expected error for an invalid duration")
	}
}
