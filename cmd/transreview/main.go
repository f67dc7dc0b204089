// Command transreview exports a two-language translation catalog as a CSV
// file for human review.
//
// It reads translations.json, flattens the "en" and "id" sections into
// dot-separated keys and writes translation_review.csv with one row per
// English text. Indonesian texts missing from the catalog are left empty
// so reviewers can spot them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/transreview/internal/config"
	"github.com/dmitrymomot/transreview/internal/converter"
	"github.com/dmitrymomot/transreview/pkg/logger"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "transreview: %v\n", err)
		return 1
	}

	if err := newApp(cfg, stdout, stderr).Run(args); err != nil {
		return 1
	}
	return 0
}

func newApp(cfg config.Config, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "transreview",
		Usage:     "export a translation catalog as a CSV review sheet",
		UsageText: "transreview [--input translations.json] [--output translation_review.csv]",
		Description: `transreview flattens the source and target language sections of a JSON or
   YAML catalog into dot-separated keys and writes one CSV row per source text:

     Key,English,Indonesian,Reviewer_Notes,Status

   Keys starting with "_" and empty source texts are skipped. Rows are sorted
   by key and every row starts with the "Needs Review" status. The output file
   is replaced on every run; use "-" to write to stdout.

   Defaults can be set with TRANSREVIEW_INPUT, TRANSREVIEW_OUTPUT,
   TRANSREVIEW_SOURCE_LANG, TRANSREVIEW_TARGET_LANG and TRANSREVIEW_VERBOSE.
   Set SENTRY_DSN to report failures to Sentry.`,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "input",
				Aliases:   []string{"i"},
				Usage:     "catalog file (.json, .yaml, .yml)",
				Value:     cfg.Input,
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "output",
				Aliases:   []string{"o"},
				Usage:     "review CSV file, or - for stdout",
				Value:     cfg.Output,
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "source language section",
				Value: cfg.SourceLang,
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "target language section",
				Value: cfg.TargetLang,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every pipeline stage",
				Value:   cfg.Verbose,
			},
		},
		Action: func(cctx *cli.Context) error {
			cfg.Input = cctx.String("input")
			cfg.Output = cctx.String("output")
			cfg.SourceLang = cctx.String("source")
			cfg.TargetLang = cctx.String("target")
			cfg.Verbose = cctx.Bool("verbose")
			return convert(cctx.Context, cfg, stdout, stderr)
		},
	}
}

func convert(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	log, flush := logger.NewWithSentry(cfg.Sentry, stderr, level, converter.RunIDExtractor)
	defer flush()

	ctx = converter.WithRunID(ctx)

	conv, err := converter.New(
		converter.WithLogger(log),
		converter.WithLanguages(cfg.SourceLang, cfg.TargetLang),
	)
	if err != nil {
		log.ErrorContext(ctx, "invalid configuration", slog.String("error", err.Error()))
		return err
	}

	progress := stdout
	var res converter.Result
	if cfg.ToStdout() {
		progress = stderr
		res, err = conv.RunTo(ctx, cfg.Input, stdout)
	} else {
		res, err = conv.Run(ctx, cfg.Input, cfg.Output)
	}
	if err != nil {
		log.ErrorContext(ctx, "conversion failed",
			slog.String("input", cfg.Input),
			slog.String("output", cfg.Output),
			slog.String("error", err.Error()),
		)
		return err
	}

	fmt.Fprintf(progress, "Found %d translation pairs\n", res.Rows)
	if cfg.ToStdout() {
		fmt.Fprintf(progress, "CSV written to stdout (%d entries)\n", res.Rows)
	} else {
		fmt.Fprintf(progress, "CSV file created: %s (%d entries)\n", res.Output, res.Rows)
	}

	log.DebugContext(ctx, "conversion finished", slog.Int("untranslated", res.Untranslated))
	return nil
}
