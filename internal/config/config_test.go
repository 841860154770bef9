package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
server:
  port: 8080
  auth:
    type: service_http
    bearerToken: secret
workflow:
  baseUrl: http://workflow.local
  apiKey: wf-key
  timeout: 120
s3:
  bucket: results
  accessKeyId: AK
  secretAccessKey: SK
plotly:
  gridResolution: 40
`

func TestLoadYAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORKFLOW_API_KEY", "from-env")
	t.Setenv("PLOTLY_COLOR_SCHEME", "plasma")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.AppURL != "http://localhost:8080" {
		t.Errorf("appUrl = %q", cfg.Server.AppURL)
	}
	if cfg.Workflow.APIKey != "from-env" {
		t.Errorf("env should override yaml, got %q", cfg.Workflow.APIKey)
	}
	if cfg.Workflow.TimeoutDuration() != 120*time.Second {
		t.Errorf("timeout = %v", cfg.Workflow.TimeoutDuration())
	}
	if cfg.ConceptDesign.Timeout != 900 {
		t.Errorf("concept design timeout default = %d, want 900", cfg.ConceptDesign.Timeout)
	}
	if !cfg.S3.Enabled() {
		t.Error("s3 should be enabled with bucket and keys")
	}
	if cfg.Plotly.GridResolution != 40 || cfg.Plotly.ColorScheme != "plasma" {
		t.Errorf("plotly = %+v", cfg.Plotly)
	}
	if cfg.Redis.Prefix != "monkeys:" {
		t.Errorf("redis prefix default = %q", cfg.Redis.Prefix)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 || cfg.Plotly.GridResolution != 50 || cfg.Plotly.ColorScheme != "viridis" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.S3.Enabled() {
		t.Error("s3 must be disabled without credentials")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"service_http without token", func(c *Config) { c.Server.Auth.Type = AuthServiceHTTP }, true},
		{"service_http with jwt key", func(c *Config) {
			c.Server.Auth.Type = AuthServiceHTTP
			c.Server.Auth.JWTKey = "k"
		}, false},
		{"unknown auth", func(c *Config) { c.Server.Auth.Type = "magic" }, true},
		{"grid too small", func(c *Config) { c.Plotly.GridResolution = 5 }, true},
		{"zero timeout", func(c *Config) { c.Workflow.Timeout = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBadEnvNumberKeepsDefault(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want default 3000", cfg.Server.Port)
	}
}
