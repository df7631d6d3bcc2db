// Command server exposes poem detection as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/syllables?word=<token>
//	GET  /api/spell?number=<token>[&case=gent]
//	POST /api/annotate   body: {"text":"..."}
//	POST /api/detect     body: {"text":"...", "strict":true}
//	POST /api/preview    body: {"text":"..."}
//	GET  /api/genres
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jpoetry/jpoetry"
	"github.com/jpoetry/jpoetry/glyphs"
	"github.com/jpoetry/jpoetry/internal/config"
	"github.com/jpoetry/jpoetry/morph"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	addr := flag.String("addr", "", "listen address, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	logger, err := cfg.NewLogger(false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	d, err := newDetector(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newServer(d, cfg, logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("Listening", zap.String("addr", cfg.Addr), zap.String("config", cfg.Path()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newDetector loads the lexicon and the glyph set named by cfg.
func newDetector(cfg *config.Config, logger *zap.Logger) (*jpoetry.Detector, error) {
	logger.Info("Loading lexicon")
	lex, err := morph.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	filter := glyphs.Default()
	if cfg.GlyphsFile != "" {
		if filter, err = glyphs.Load(cfg.GlyphsFile); err != nil {
			return nil, err
		}
		logger.Info("Loaded glyph set", zap.String("path", cfg.GlyphsFile))
	}
	return jpoetry.NewDetector(lex, jpoetry.WithLogger(logger), jpoetry.WithFilter(filter)), nil
}
