// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

/*
Package services adapts server components to suture's Serve(ctx) error.

	HTTPServerService     ListenAndServe + Shutdown on cancel
	CacheJanitorService   periodic sweep of expired cache entries

Return values drive the supervisor:

	nil        stopped cleanly, not restarted
	ctx.Err()  shutdown requested
	other      crashed, restarted with backoff

Both wrappers implement fmt.Stringer so suture logs them by name
("http-server", "cache-janitor:pipeline_runs").
*/
package services
