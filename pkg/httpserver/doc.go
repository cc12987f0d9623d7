// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then drains connections within the shutdown timeout.
// Failures are joined with ErrStart or ErrShutdown for errors.Is checks.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
