// Package api exposes the solver over HTTP with gin.
//
//	POST /v1/solve     maze document in, directions out (?mode=, ?render=)
//	GET  /v1/healthz   liveness
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/search"
)

// Config holds settings for creating a Router.
type Config struct {
	Addr    string        // address to listen on
	Mode    search.Mode   // mode used when a request names none
	Verify  bool          // replay answers before returning them
	MaxSide int           // largest accepted board side; 0 means DefaultMaxSide
	Logger  *slog.Logger  // base logger; nil means slog.Default()
	Grace   time.Duration // shutdown grace period; 0 means 5s
}

// DefaultMaxSide bounds board size for a single request.
const DefaultMaxSide = 2048

// Router owns the gin engine and the HTTP server around it.
type Router struct {
	cfg    Config
	engine *gin.Engine
}

// NewRouter builds the engine and registers every route.
func NewRouter(cfg Config) *Router {
	if cfg.MaxSide <= 0 {
		cfg.MaxSide = DefaultMaxSide
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Grace <= 0 {
		cfg.Grace = 5 * time.Second
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(cfg.Logger))

	v1 := engine.Group("/v1")
	{
		s := &solveController{mode: cfg.Mode, verify: cfg.Verify, maxSide: cfg.MaxSide}
		s.Register(v1)
		v1.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	return &Router{cfg: cfg, engine: engine}
}

// Handler returns the engine as an http.Handler.
func (r *Router) Handler() http.Handler { return r.engine }

// Run serves until ctx ends, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.cfg.Addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log := ctxlog.FromContext(ctx)

	errc := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "solve service listening", "addr", r.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), r.cfg.Grace)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.InfoContext(ctx, "solve service stopped")
	return nil
}
