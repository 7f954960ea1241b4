// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

/*
Package supervisor runs the server's long-lived services under suture v4.

The tree has two layers so a failure in background maintenance cannot take
the HTTP listener down with it:

	RootSupervisor ("projectatlas")
	├── DataSupervisor ("data-layer")
	│   └── CacheJanitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, so the tree needs an *slog.Logger; the server
passes logging.NewSlogLogger() which writes through zerolog.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCacheJanitorService(runCache, cache.DefaultCleanupInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

Cancel ctx to shut down. Services that outlive TreeConfig.ShutdownTimeout
show up in UnstoppedServiceReport.
*/
package supervisor
