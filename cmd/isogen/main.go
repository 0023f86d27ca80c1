// Command isogen generates the currency package tables from the ISO 4217
// source table. It is run through go generate in pkg/currency.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SscSPs/isocurrency/internal/codegen"
	"github.com/SscSPs/isocurrency/internal/isotable"
	"github.com/SscSPs/isocurrency/internal/platform/config"
	"github.com/google/renameio/v2"
	"go.uber.org/multierr"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(2)
	}

	logger, err := newLogger(os.Stdout, cfg)
	if err != nil {
		slog.Error("Failed to create logger", slog.String("error", err.Error()))
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// run loads the table, renders it and replaces the output file. Every table
// error is logged before run returns; the output is left untouched on
// failure.
func run(cfg *config.Config, logger *slog.Logger) error {
	logger = logger.With(slog.String("table", cfg.Table))

	records, err := isotable.LoadFile(cfg.Table)
	if err != nil {
		errs := multierr.Errors(err)
		for _, e := range errs {
			logger.Error("Invalid currency table", slog.String("error", e.Error()))
		}
		return fmt.Errorf("currency table %s has %d error(s): %w", cfg.Table, len(errs), err)
	}
	logger.Debug("Loaded currency table", slog.Int("records", len(records)))

	src, err := codegen.Generate(codegen.Options{
		Package: cfg.Package,
		Source:  filepath.Base(cfg.Table),
	}, records)
	if err != nil {
		logger.Error("Failed to generate source", slog.String("error", err.Error()))
		return err
	}

	if err := renameio.WriteFile(cfg.Output, src, 0o644); err != nil {
		logger.Error("Failed to write output", slog.String("output", cfg.Output), slog.String("error", err.Error()))
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	logger.Info("Generated currency tables",
		slog.String("output", cfg.Output),
		slog.Int("currencies", len(records)),
	)
	return nil
}
