// Command numwords spells integers as English words.
//
// Spell numbers given as arguments:
//
//	numwords 3211 1000021
//	numwords -signed -limit billion -- -21
//
// Or serve the HTTP API:
//
//	numwords -serve -config numwords.yaml
//
// Configuration comes from the optional YAML file and NUMWORDS_* environment
// variables; -limit overrides the configured limit. Negative numbers must
// follow "--" or a positional argument so they are not read as flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"github.com/tungbeier/number-to-word/internal/config"
	"github.com/tungbeier/number-to-word/internal/httpapi"
	"github.com/tungbeier/number-to-word/internal/observability"
	"github.com/tungbeier/number-to-word/numwords"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numwords", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML configuration file")
	limitName := fs.String("limit", "", "largest supported magnitude: unbounded, billion, quintillion")
	signed := fs.Bool("signed", false, "prefix negative numbers with the configured sign word")
	serve := fs.Bool("serve", false, "run the HTTP API instead of spelling arguments")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: numwords [flags] <integer>...\n       numwords -serve [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(config.WithFile(*configPath))
	if err != nil {
		fmt.Fprintf(stderr, "numwords: %v\n", err)
		return exitError
	}
	if *limitName != "" {
		limit, err := numwords.ParseLimit(*limitName)
		if err != nil {
			fmt.Fprintf(stderr, "numwords: %v\n", err)
			return exitUsage
		}
		cfg.Speller.Limit = limit
	}

	if *serve {
		logger, err := observability.NewLogger(cfg.Log.Level)
		if err != nil {
			fmt.Fprintf(stderr, "numwords: build logger: %v\n", err)
			return exitError
		}
		defer func() { _ = logger.Sync() }()

		if err := serveHTTP(ctx, cfg, logger); err != nil {
			logger.Error("server stopped", zap.Error(err))
			return exitError
		}
		return exitOK
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	signWord := ""
	if *signed {
		signWord = cfg.Speller.SignWord
	}
	return spellArgs(fs.Args(), cfg.Speller.Limit, signWord, stdout, stderr)
}

// spellArgs prints one line per argument. It keeps going after a bad
// argument and reports failure through the exit code.
func spellArgs(args []string, limit numwords.Limit, signWord string, stdout, stderr io.Writer) int {
	code := exitOK
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "numwords: %q is not a 64-bit integer\n", arg)
			code = exitError
			continue
		}

		words, err := numwords.SpeakWithin(n, limit)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			code = exitError
			continue
		}
		if n < 0 && signWord != "" {
			words = signWord + " " + words
		}
		fmt.Fprintln(stdout, words)
	}
	return code
}

func serveHTTP(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: httpapi.NewRouter(httpapi.Options{
			Limit:          cfg.Speller.Limit,
			SignWord:       cfg.Speller.SignWord,
			Logger:         logger,
			RequestTimeout: cfg.Server.WriteTimeout,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.Stringer("limit", cfg.Speller.Limit),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
