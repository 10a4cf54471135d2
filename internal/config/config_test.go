package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Host != "http://localhost:8080" {
		t.Errorf("DefaultConfig().Host = %q, want %q", cfg.Host, "http://localhost:8080")
	}
}

func TestLocalConfigPath(t *testing.T) {
	path := LocalConfigPath()

	if path != ".rollcallrc" {
		t.Errorf("LocalConfigPath() = %q, want %q", path, ".rollcallrc")
	}
}

func TestGlobalConfigPath(t *testing.T) {
	path, err := GlobalConfigPath()

	if err != nil {
		t.Fatalf("GlobalConfigPath() returned error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".rollcallrc")

	if path != expected {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, expected)
	}
}

func TestLoadFromFile_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `host = "http://directory.example.com:9090"
api_key = "rc-key"`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)

	if err != nil {
		t.Fatalf("LoadFromFile() returned error: %v", err)
	}

	if cfg.Host != "http://directory.example.com:9090" {
		t.Errorf("LoadFromFile().Host = %q, want %q", cfg.Host, "http://directory.example.com:9090")
	}

	if cfg.ApiKey != "rc-key" {
		t.Errorf("LoadFromFile().ApiKey = %q, want %q", cfg.ApiKey, "rc-key")
	}
}

func TestLoadFromFile_NonExistent(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.toml")

	if err == nil {
		t.Error("LoadFromFile() should return error for non-existent file")
	}
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	content := `host = "unclosed string`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFromFile(configPath)

	if err == nil {
		t.Error("LoadFromFile() should return error for invalid TOML")
	}
}

func TestLoad_GlobalConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	content := `host = "http://global.example.com"`
	if err := os.WriteFile(filepath.Join(tmpHome, ".rollcallrc"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write global config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Host != "http://global.example.com" {
		t.Errorf("Load().Host = %q, want %q", cfg.Host, "http://global.example.com")
	}
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	content := `host = "http://global.example.com"`
	if err := os.WriteFile(filepath.Join(tmpHome, ".rollcallrc"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write global config: %v", err)
	}

	t.Setenv("ROLLCALL_HOST", "http://env.example.com")
	t.Setenv("ROLLCALL_API_KEY", "env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Host != "http://env.example.com" {
		t.Errorf("Load().Host = %q, want %q", cfg.Host, "http://env.example.com")
	}

	if cfg.ApiKey != "env-key" {
		t.Errorf("Load().ApiKey = %q, want %q", cfg.ApiKey, "env-key")
	}
}

func TestLoad_DefaultsWhenNothingConfigured(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Host != "http://localhost:8080" {
		t.Errorf("Load().Host = %q, want %q", cfg.Host, "http://localhost:8080")
	}

	if cfg.IsAuthenticated() {
		t.Error("IsAuthenticated() should be false with no API key")
	}
}

func TestIsAuthenticated(t *testing.T) {
	cfg := &Config{}
	if cfg.IsAuthenticated() {
		t.Error("IsAuthenticated() = true, want false")
	}

	cfg.ApiKey = "rc-key"
	if !cfg.IsAuthenticated() {
		t.Error("IsAuthenticated() = false, want true")
	}
}

func TestSave(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cfg := &Config{Host: "http://saved.example.com", ApiKey: "rc-key"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if loaded.Host != "http://saved.example.com" {
		t.Errorf("Load().Host = %q, want %q", loaded.Host, "http://saved.example.com")
	}

	if loaded.ApiKey != "rc-key" {
		t.Errorf("Load().ApiKey = %q, want %q", loaded.ApiKey, "rc-key")
	}
}

func TestClearApiKey(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cfg := &Config{Host: "http://saved.example.com", ApiKey: "rc-key"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	if err := cfg.ClearApiKey(); err != nil {
		t.Fatalf("ClearApiKey() returned error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if loaded.IsAuthenticated() {
		t.Error("IsAuthenticated() should be false after ClearApiKey()")
	}
}
