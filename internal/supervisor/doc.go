// Cinematch - Movie Recommendations and Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor runs Cinematch's long-lived services under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("cinematch")
	├── BackgroundSupervisor ("background-layer")
	│   ├── GenreRefreshService (if TMDB is configured)
	│   └── StoreGCService (if the on-disk xref store is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's failure decay and backoff. Supervisor
events are logged through sutureslog, which main wires to the zerolog
backed slog adapter from the logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddBackgroundService(services.NewGenreRefreshService(browser, ttl/2, logger))

	errCh := tree.ServeBackground(ctx)

Services return ctx.Err() on shutdown and a wrapped error on failure.
Returning suture.ErrDoNotRestart removes a service permanently.

# Debugging Shutdown Issues

UnstoppedServiceReport lists services that ignored cancellation for longer
than ShutdownTimeout.
*/
package supervisor
