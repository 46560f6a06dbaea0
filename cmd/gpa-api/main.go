// main is the entry point of the GPA API.
//
// STARTUP SEQUENCE:
//  1. Load configuration (.env, then a YAML file)
//  2. Initialise the logger
//  3. Build the request validator and register the HTTP route
//  4. Start the HTTP server in a separate goroutine
//  5. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  6. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/gpa-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/gpa-api
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/gpa-api/internal/config"
	"github.com/aanand-mishra/gpa-api/internal/http/handlers/score"
	"github.com/aanand-mishra/gpa-api/internal/http/middleware"
	"github.com/aanand-mishra/gpa-api/internal/validate"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads .env (if any), then the YAML config, and exits if
	// anything is wrong. If it returns, the config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog writes key=value pairs (text) or JSON objects rather than plain
	// strings, so log lines can be filtered by request_id or status.
	//
	// SetDefault installs it process-wide: handlers and middleware log
	// through the package-level slog.Info / slog.Error functions.
	log := setupLogger(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	log.Info("starting gpa-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Register HTTP Routes ───────────────────────────────────────────
	// Route table:
	//   POST /score   → compute the weighted GPA for one student
	//
	// http.Server is configured here but not started yet.
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr, // e.g. "localhost:8082"
		Handler: newHandler(cfg),     // router wrapped in request-id + access log

		// Timeouts stop a slow client from holding a connection open forever.
		// Defaults: 10s read, 10s write, 60s idle (see config.HTTPServer).
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// ── 4. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks for as long as the server runs. Running it in
	// its own goroutine leaves main free to wait for a shutdown signal.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed after Shutdown().
		if err := server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 5. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered (size 1) so the signal is not lost if main is briefly busy.
	//   os.Interrupt    = Ctrl+C (SIGINT)
	//   syscall.SIGTERM = `kill <pid>` or a container orchestrator
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	// Shutdown stops accepting new connections and waits for in-flight
	// requests, up to http_server.shutdown_timeout (default 5s). After the
	// deadline it returns an error and we exit non-zero.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newHandler builds the router and wraps it in the request middleware.
//
// score.New is a FACTORY: it runs once here, receives the validator and
// the body limit, and returns the handler that runs on every request.
// The validator is therefore built once and shared by every request.
//
// Middleware order matters: RequestID is outermost so that Logger (and the
// handler) can read the ID from the request context.
func newHandler(cfg *config.Config) http.Handler {
	router := http.NewServeMux()
	router.HandleFunc("POST /score", score.New(validate.New(), cfg.MaxBodyBytes))

	return middleware.RequestID(middleware.Logger(router))
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging: JSON output at DEBUG level.
// Production (prod): JSON output at INFO level.
//
// JSON logs are easy to ingest by log aggregators; w is a parameter so
// tests can capture the output.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo, // INFO and above in production
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug, // more verbose in staging
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug, // all levels in development
			}),
		)
	}
}
