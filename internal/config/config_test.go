// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/projectatlas/internal/dataset"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Dataset.ProjectDelimiter != "," || cfg.Dataset.OrganizationDelimiter != ";" {
		t.Errorf("delimiters = %q / %q", cfg.Dataset.ProjectDelimiter, cfg.Dataset.OrganizationDelimiter)
	}
	if cfg.Pipeline.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.Pipeline.TopN)
	}
	if cfg.Dataset.Engine != dataset.EngineDuckDB {
		t.Errorf("Engine = %q", cfg.Dataset.Engine)
	}
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be wildcard")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "csv engine with latin-1", mutate: func(c *Config) {
			c.Dataset.Engine = dataset.EngineCSV
			c.Dataset.Encoding = "latin1"
		}},
		{name: "tab delimiter", mutate: func(c *Config) { c.Dataset.ProjectDelimiter = "tab" }},
		{name: "rate limit disabled ignores bounds", mutate: func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}},
		{name: "unknown engine", mutate: func(c *Config) { c.Dataset.Engine = "spark" }, wantErr: "DATASET_ENGINE"},
		{name: "missing project path", mutate: func(c *Config) { c.Dataset.ProjectPath = " " }, wantErr: "PROJECTS_PATH"},
		{name: "missing organization path", mutate: func(c *Config) { c.Dataset.OrganizationPath = "" }, wantErr: "ORGANIZATIONS_PATH"},
		{name: "multi-char delimiter", mutate: func(c *Config) { c.Dataset.OrganizationDelimiter = ";;" }, wantErr: "ORGANIZATIONS_DELIMITER"},
		{name: "quote delimiter", mutate: func(c *Config) { c.Dataset.ProjectDelimiter = `"` }, wantErr: "PROJECTS_DELIMITER"},
		{name: "unknown encoding", mutate: func(c *Config) { c.Dataset.Encoding = "ebcdic" }, wantErr: "DATASET_ENCODING"},
		{name: "duckdb with latin-1", mutate: func(c *Config) { c.Dataset.Encoding = "latin-1" }, wantErr: "requires DATASET_ENGINE=csv"},
		{name: "negative threads", mutate: func(c *Config) { c.Dataset.DuckDBThreads = -1 }, wantErr: "DUCKDB_THREADS"},
		{name: "top n zero", mutate: func(c *Config) { c.Pipeline.TopN = 0 }, wantErr: "PIPELINE_TOP_N"},
		{name: "top n too large", mutate: func(c *Config) { c.Pipeline.TopN = 101 }, wantErr: "PIPELINE_TOP_N"},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "HTTP_PORT"},
		{name: "zero timeout", mutate: func(c *Config) { c.Server.Timeout = 0 }, wantErr: "HTTP_TIMEOUT"},
		{name: "cache without ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }, wantErr: "CACHE_TTL"},
		{name: "rate limit window", mutate: func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, wantErr: "RATE_LIMIT_WINDOW"},
		{name: "rate limit requests", mutate: func(c *Config) { c.Security.RateLimitReqs = 0 }, wantErr: "RATE_LIMIT_REQUESTS"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: "LOG_LEVEL"},
		{name: "log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: ",", want: ','},
		{in: ";", want: ';'},
		{in: "|", want: '|'},
		{in: "tab", want: '\t'},
		{in: "TAB", want: '\t'},
		{in: `\t`, want: '\t'},
		{in: "\t", want: '\t'},
		{in: "", wantErr: true},
		{in: ",;", wantErr: true},
		{in: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDelimiter(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDelimiter(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDatasetConfig_Files(t *testing.T) {
	t.Parallel()

	d := defaultConfig().Dataset
	d.Encoding = "UTF8"
	files := d.Files()

	if files.ProjectPath != d.ProjectPath || files.OrganizationPath != d.OrganizationPath {
		t.Errorf("paths = %q, %q", files.ProjectPath, files.OrganizationPath)
	}
	if files.ProjectOptions.Delimiter != ',' || files.OrganizationOptions.Delimiter != ';' {
		t.Errorf("delimiters = %q, %q", files.ProjectOptions.Delimiter, files.OrganizationOptions.Delimiter)
	}
	if files.ProjectOptions.Encoding != dataset.EncodingUTF8 {
		t.Errorf("encoding = %q", files.ProjectOptions.Encoding)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"PROJECTS_PATH":       "dataset.project_path",
		"ORGANIZATIONS_PATH":  "dataset.organization_path",
		"PIPELINE_TOP_N":      "pipeline.top_n",
		"DISABLE_RATE_LIMIT":  "security.rate_limit_disabled",
		"RATE_LIMIT_REQUESTS": "security.rate_limit_reqs",
		"LOG_LEVEL":           "logging.level",
		"HOME":                "",
		"PATH":                "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

// The following tests use t.Setenv and cannot run in parallel.

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() = %v", err)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Server.Timeout)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PROJECTS_PATH", "/srv/project.csv")
	t.Setenv("DATASET_ENGINE", "csv")
	t.Setenv("DATASET_ENCODING", "latin-1")
	t.Setenv("ORGANIZATIONS_DELIMITER", "tab")
	t.Setenv("PIPELINE_TOP_N", "25")
	t.Setenv("CACHE_TTL", "1m30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_CALLER", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() = %v", err)
	}
	if cfg.Dataset.ProjectPath != "/srv/project.csv" {
		t.Errorf("ProjectPath = %q", cfg.Dataset.ProjectPath)
	}
	if cfg.Dataset.Engine != dataset.EngineCSV || cfg.Dataset.Encoding != "latin-1" {
		t.Errorf("engine/encoding = %q/%q", cfg.Dataset.Engine, cfg.Dataset.Encoding)
	}
	if cfg.Dataset.Files().OrganizationOptions.Delimiter != '\t' {
		t.Error("organization delimiter should be tab")
	}
	if cfg.Pipeline.TopN != 25 {
		t.Errorf("TopN = %d", cfg.Pipeline.TopN)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL = %v", cfg.Cache.TTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if !cfg.Logging.Caller {
		t.Error("Logging.Caller should be true")
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.yaml")
	yaml := `dataset:
  project_path: /data/p.csv
  organization_path: /data/o.csv
pipeline:
  top_n: 5
server:
  port: 9000
security:
  cors_origins:
    - https://maps.example
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() = %v", err)
	}
	if cfg.Dataset.OrganizationPath != "/data/o.csv" || cfg.Pipeline.TopN != 5 {
		t.Errorf("file values not applied: %+v %+v", cfg.Dataset, cfg.Pipeline)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Port = %d, env should override file", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://maps.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PIPELINE_TOP_N", "0")

	if _, err := LoadWithKoanf(); err == nil || !strings.Contains(err.Error(), "PIPELINE_TOP_N") {
		t.Fatalf("LoadWithKoanf() = %v, want PIPELINE_TOP_N error", err)
	}
}
