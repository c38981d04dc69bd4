package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/docket/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "docket"
user = "docket"
password = "docket"
ssl_mode = "disable"

[storage]
container_name = "documents"
connection_string = "DefaultEndpointsProtocol=http;AccountName=docketstore;AccountKey=key;BlobEndpoint=http://127.0.0.1:10000/docketstore;"

[api]
base_path = "/api"
max_upload_size = "25MB"

[api.pagination]
default_page_size = 25
max_page_size = 50

[workflow]
require_new_version = true
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"
`

func writeConfig(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadBaseConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	writeConfig(t, config.BaseConfigFile, baseConfig)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "docket" {
		t.Errorf("database name = %q, want docket", cfg.Database.Name)
	}
	if cfg.API.Pagination.DefaultPageSize != 25 {
		t.Errorf("default page size = %d, want 25", cfg.API.Pagination.DefaultPageSize)
	}
	if got := cfg.API.MaxUploadSizeBytes(); got != 25*1024*1024 {
		t.Errorf("max upload size = %d, want %d", got, 25*1024*1024)
	}
	if !cfg.Workflow.RequireNewVersion {
		t.Error("workflow require_new_version = false, want true")
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	t.Chdir(t.TempDir())
	writeConfig(t, config.BaseConfigFile, baseConfig)
	writeConfig(t, "config.staging.toml", overlayConfig)
	t.Setenv(config.EnvDocketEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port = %d, want overlay 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("database host = %q, want overlay prodhost", cfg.Database.Host)
	}
	if cfg.Database.Name != "docket" {
		t.Errorf("database name = %q, want base docket", cfg.Database.Name)
	}
	if cfg.Env() != "staging" {
		t.Errorf("Env() = %q, want staging", cfg.Env())
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	writeConfig(t, config.BaseConfigFile, baseConfig)
	t.Setenv("DOCKET_SERVER_PORT", "7070")
	t.Setenv("DOCKET_WORKFLOW_REQUIRE_NEW_VERSION", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("server port = %d, want env 7070", cfg.Server.Port)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCKET_DB_NAME", "docket")
	t.Setenv("DOCKET_DB_USER", "docket")
	t.Setenv(
		"DOCKET_STORAGE_CONNECTION_STRING",
		"DefaultEndpointsProtocol=http;AccountName=docketstore;AccountKey=key;BlobEndpoint=http://127.0.0.1:10000/docketstore;",
	)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("base path = %q, want default /api", cfg.API.BasePath)
	}
	if cfg.Workflow.RequireNewVersion {
		t.Error("workflow require_new_version = true, want default false")
	}
}
