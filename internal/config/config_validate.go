// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/projectatlas/internal/dataset"
)

const (
	minTopN              = 1
	maxTopN              = 100
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	d := &c.Dataset

	switch d.Engine {
	case dataset.EngineDuckDB, dataset.EngineCSV:
	default:
		return fmt.Errorf("DATASET_ENGINE must be one of: %s, %s", dataset.EngineDuckDB, dataset.EngineCSV)
	}

	if strings.TrimSpace(d.ProjectPath) == "" {
		return errors.New("PROJECTS_PATH is required")
	}
	if strings.TrimSpace(d.OrganizationPath) == "" {
		return errors.New("ORGANIZATIONS_PATH is required")
	}

	if _, err := ParseDelimiter(d.ProjectDelimiter); err != nil {
		return fmt.Errorf("PROJECTS_DELIMITER: %w", err)
	}
	if _, err := ParseDelimiter(d.OrganizationDelimiter); err != nil {
		return fmt.Errorf("ORGANIZATIONS_DELIMITER: %w", err)
	}

	enc, err := dataset.NormalizeEncoding(d.Encoding)
	if err != nil {
		return fmt.Errorf("DATASET_ENCODING: %w", err)
	}
	if d.Engine == dataset.EngineDuckDB && enc != dataset.EncodingUTF8 {
		return fmt.Errorf("DATASET_ENCODING=%s requires DATASET_ENGINE=%s", d.Encoding, dataset.EngineCSV)
	}

	if d.DuckDBThreads < 0 {
		return errors.New("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.TopN < minTopN || c.Pipeline.TopN > maxTopN {
		return fmt.Errorf("PIPELINE_TOP_N must be between %d and %d", minTopN, maxTopN)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return errors.New("CACHE_TTL must be positive when caching is enabled")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return errors.New("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return errors.New("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is "*"; the server logs a
// warning at startup when it is.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
