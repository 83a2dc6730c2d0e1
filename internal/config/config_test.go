package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type mapSource map[string]string

func (m mapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func TestLoadLayering(t *testing.T) {
	secrets := mapSource{"YOUTUBE_API_KEY": "from-secrets", "AUTH_USERNAME": "admin"}
	env := mapSource{"YOUTUBE_API_KEY": "from-env", "AUTH_PASSWORD": "hunter2"}

	cfg, err := Load(secrets, env)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.YouTubeAPIKey != "from-secrets" {
		t.Errorf("YouTubeAPIKey = %q, want the secrets value to win", cfg.YouTubeAPIKey)
	}
	if cfg.AuthUsername != "admin" {
		t.Errorf("AuthUsername = %q, want admin", cfg.AuthUsername)
	}
	if cfg.AuthPassword != "hunter2" {
		t.Errorf("AuthPassword = %q, want the env fallback", cfg.AuthPassword)
	}
}

func TestLoadEmptyValueFallsThrough(t *testing.T) {
	secrets := mapSource{"REGION_CODE": "  "}
	env := mapSource{"REGION_CODE": "us"}

	cfg, err := Load(secrets, env)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultRegion != "US" {
		t.Errorf("DefaultRegion = %q, want US (uppercased env fallback)", cfg.DefaultRegion)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(mapSource{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultRegion != "KR" {
		t.Errorf("DefaultRegion = %q, want KR", cfg.DefaultRegion)
	}
	if cfg.YouTubeAPIKey != "" {
		t.Errorf("YouTubeAPIKey = %q, want empty", cfg.YouTubeAPIKey)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Validate() = %v, want ErrMissingAPIKey", err)
	}

	cfg.YouTubeAPIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.env")
	if err := os.WriteFile(path, []byte("YOUTUBE_API_KEY=file-key\n"), 0o600); err != nil {
		t.Fatalf("write secrets: %v", err)
	}

	src := NewFileSource(path)
	if v, ok := src.Lookup("YOUTUBE_API_KEY"); !ok || v != "file-key" {
		t.Fatalf("Lookup = %q, %v; want file-key, true", v, ok)
	}

	missing := NewFileSource(filepath.Join(dir, "absent.env"))
	if _, ok := missing.Lookup("YOUTUBE_API_KEY"); ok {
		t.Fatal("missing file should resolve nothing")
	}
}
