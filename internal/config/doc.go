// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package config loads Project Atlas configuration with Koanf v2.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, else config.yaml / config.yml in
//     the working directory, else /etc/projectatlas/config.yaml
//  3. Environment variables
//
// Only the variables listed in envMappings are read. The common ones:
//
//	PROJECTS_PATH, ORGANIZATIONS_PATH     dataset files
//	PROJECTS_DELIMITER (default ",")      project file delimiter
//	ORGANIZATIONS_DELIMITER (default ";") organization file delimiter
//	DATASET_ENGINE (duckdb|csv)           loader
//	DATASET_ENCODING                      utf-8, latin-1, windows-1252
//	PIPELINE_TOP_N (default 10)           ranking size
//	HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT    listener
//	CACHE_ENABLED, CACHE_TTL              response cache
//	CORS_ORIGINS                          comma-separated
//	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// A YAML file uses the koanf tags as keys:
//
//	dataset:
//	  engine: csv
//	  project_path: /data/project.csv
//	  organization_path: /data/organization.csv
//	  encoding: latin-1
//	pipeline:
//	  top_n: 20
package config
