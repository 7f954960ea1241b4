// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/projectatlas/internal/database"
	"github.com/tomtom215/projectatlas/internal/dataset"
	"github.com/tomtom215/projectatlas/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Pipeline PipelineConfig `koanf:"pipeline"`
	Server   ServerConfig   `koanf:"server"`
	Cache    CacheConfig    `koanf:"cache"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig locates the two registry tables and says how to read them.
type DatasetConfig struct {
	// Engine is "duckdb" (read_csv into an in-memory DuckDB) or "csv"
	// (streaming reader with legacy encoding support).
	Engine string `koanf:"engine"`

	ProjectPath      string `koanf:"project_path"`
	OrganizationPath string `koanf:"organization_path"`

	// Delimiters are a single character; "tab" and "\t" mean a tab.
	ProjectDelimiter      string `koanf:"project_delimiter"`
	OrganizationDelimiter string `koanf:"organization_delimiter"`

	// Encoding applies to both files: utf-8, latin-1 or windows-1252.
	// Only the csv engine can decode the latter two.
	Encoding string `koanf:"encoding"`

	DuckDBMaxMemory string `koanf:"duckdb_max_memory"`
	DuckDBThreads   int    `koanf:"duckdb_threads"` // 0 = runtime.NumCPU()
}

// PipelineConfig holds analysis defaults.
type PipelineConfig struct {
	// TopN is the default ranking size when a request does not set one.
	TopN int `koanf:"top_n"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// CacheConfig controls response caching in the API layer.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file and line in every event.
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Files converts the dataset section to loader inputs. It assumes Validate
// has passed.
func (d DatasetConfig) Files() dataset.Files {
	enc, _ := dataset.NormalizeEncoding(d.Encoding)
	pd, _ := ParseDelimiter(d.ProjectDelimiter)
	od, _ := ParseDelimiter(d.OrganizationDelimiter)
	return dataset.Files{
		ProjectPath:         d.ProjectPath,
		ProjectOptions:      dataset.ReadOptions{Delimiter: pd, Encoding: enc},
		OrganizationPath:    d.OrganizationPath,
		OrganizationOptions: dataset.ReadOptions{Delimiter: od, Encoding: enc},
	}
}

// DatabaseConfig returns the DuckDB settings for the duckdb engine.
func (d DatasetConfig) DatabaseConfig() database.Config {
	return database.Config{
		Threads:   d.DuckDBThreads,
		MaxMemory: d.DuckDBMaxMemory,
	}
}

// ToLoggingConfig converts to the logging package's Config.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// ParseDelimiter converts a configured delimiter to a rune.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`, "\t":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("delimiter %q is not allowed", s)
	}
	return r, nil
}
