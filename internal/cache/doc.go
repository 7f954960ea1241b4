// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

// Package cache provides the TTL cache used by the HTTP layer to memoize
// pipeline responses per filter combination. The dataset is loaded once and
// never changes while the process runs, so entries only go stale on reload.
package cache
