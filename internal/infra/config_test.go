package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 10<<20)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitPerMin != 10 {
		t.Fatalf("RateLimitPerMin = %d, want 10", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigBootsWithoutGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	t.Setenv("PORT", "1919")
	t.Setenv("GEMINI_MODEL", "custom-standard")
	t.Setenv("GEMINI_HIRES_MODEL", "custom-high")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:5173 ")
	t.Setenv("HTTP_WRITE_TIMEOUT_SECONDS", "45")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "1919" {
		t.Fatalf("Port = %q, want 1919", cfg.Port)
	}
	if cfg.GeminiModel != "custom-standard" || cfg.GeminiHiResModel != "custom-high" {
		t.Fatalf("model overrides not applied: %q / %q", cfg.GeminiModel, cfg.GeminiHiResModel)
	}
	want := []string{"https://app.example.com", "http://localhost:5173"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
	if cfg.HTTPWriteTimeout != 45*time.Second {
		t.Fatalf("HTTPWriteTimeout = %v, want 45s", cfg.HTTPWriteTimeout)
	}
}
