package postcodes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ukpostcode/pkg/httpserver"
	"github.com/dmitrymomot/ukpostcode/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures what the service router mounts. Nil fields are
// skipped.
type RouterOptions struct {
	Postcodes Mountable
	Metrics   http.Handler
	Logger    *slog.Logger
	Ready     []func(context.Context) error
}

// Router assembles the service routes.
//
// Example:
//
//	h := postcodes.NewHandler(postcodes.Options{Validator: v, Logger: log})
//	r := postcodes.Router(postcodes.RouterOptions{
//	    Postcodes: h,
//	    Metrics:   promhttp.Handler(),
//	    Ready:     []func(context.Context) error{h.Ready},
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/health/live", httpserver.HealthCheckHandler(opts.Logger))
	if len(opts.Ready) > 0 {
		r.Get("/health/ready", httpserver.HealthCheckHandler(opts.Logger, opts.Ready...))
	}
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}
	if opts.Postcodes != nil {
		r.Mount("/postcodes", opts.Postcodes.Handle())
	}

	return r
}
