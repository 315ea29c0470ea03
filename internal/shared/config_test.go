package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "teocat.db" {
			t.Errorf("expected database path teocat.db, got %s", config.Database.Path)
		}

		if config.Server.Host != "127.0.0.1" {
			t.Errorf("expected server host 127.0.0.1, got %s", config.Server.Host)
		}

		if config.Server.Port != 8090 {
			t.Errorf("expected server port 8090, got %d", config.Server.Port)
		}

		if config.Server.RateLimit != 25.0 {
			t.Errorf("expected rate limit 25.0, got %f", config.Server.RateLimit)
		}

		if config.Session.UserEmail != "" {
			t.Errorf("expected empty session user, got %s", config.Session.UserEmail)
		}

		if len(config.Media.TrustedPrefixes) != 1 || config.Media.TrustedPrefixes[0] != "https://storage.googleapis.com/" {
			t.Errorf("unexpected trusted prefixes: %v", config.Media.TrustedPrefixes)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 8080
rate_limit = 10.5

[session]
user_email = "teo@example.com"

[media]
trusted_prefixes = ["https://cdn.example.com/", "https://storage.googleapis.com/"]
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Session.UserEmail != "teo@example.com" {
			t.Errorf("expected session user teo@example.com, got %s", config.Session.UserEmail)
		}

		if len(config.Media.TrustedPrefixes) != 2 {
			t.Errorf("expected 2 trusted prefixes, got %v", config.Media.TrustedPrefixes)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})
}
