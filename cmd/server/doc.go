// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

/*
Command server serves the Project Atlas HTTP API.

Startup order:

 1. Configuration (koanf: defaults, config.yaml, environment)
 2. Logging (zerolog)
 3. Dataset: both registry files loaded once, with DuckDB or encoding/csv
 4. Pipeline and run cache
 5. Chi router and HTTP server
 6. Supervisor tree (suture) running the HTTP server and cache janitor

SIGINT and SIGTERM cancel the tree; in-flight requests get 10 seconds.

# Configuration

Commonly set environment variables:

	PROJECTS_PATH           project file (default data/project.csv)
	ORGANIZATIONS_PATH      organization file (default data/organization.csv)
	DATASET_ENGINE          duckdb (default) or csv
	DATASET_ENCODING        utf-8, latin-1 or windows-1252 (csv engine only
	                        for the latter two)
	PIPELINE_TOP_N          default ranking size (10)
	HTTP_PORT               listen port (3858)
	CACHE_TTL               run cache lifetime (5m)
	CORS_ORIGINS            comma-separated allowed origins
	LOG_LEVEL, LOG_FORMAT   zerolog level and json/console

# Example

	export PROJECTS_PATH=/data/project.csv
	export ORGANIZATIONS_PATH=/data/organization.csv
	./server

	curl 'http://localhost:3858/api/v1/dashboard?status=SIGNED&top=5'
*/
package main
