// Package converter runs the catalog to review file pipeline:
// load, flatten both languages, reconcile and write.
package converter

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/transreview/pkg/catalog"
	"github.com/dmitrymomot/transreview/pkg/logger"
	"github.com/dmitrymomot/transreview/pkg/review"
)

const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "id"
)

// Converter turns a two-language catalog into review rows.
// It holds no state between runs.
type Converter struct {
	logger *slog.Logger
	source lang
	target lang
}

// lang is a section identifier as written in the catalog, plus its
// canonical tag.
type lang struct {
	name string
	tag  language.Tag
}

// lookupNames returns the section names tried for l, verbatim first.
func (l lang) lookupNames() []string {
	if canonical := l.tag.String(); canonical != l.name {
		return []string{l.name, canonical}
	}
	return []string{l.name}
}

// Option configures a Converter.
type Option func(*Converter) error

// New creates a Converter for the en → id pair unless configured otherwise.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger: logger.NewNope(),
		source: lang{name: DefaultSourceLang, tag: language.English},
		target: lang{name: DefaultTargetLang, tag: language.Indonesian},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.source.name == c.target.name || c.source.tag == c.target.tag {
		return nil, fmt.Errorf("%w: %q", ErrSameLanguage, c.source.name)
	}

	return c, nil
}

// WithLogger sets the logger used for progress diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithLanguages sets the source and target section identifiers.
// Both must be valid BCP 47 tags.
func WithLanguages(source, target string) Option {
	return func(c *Converter) error {
		src, err := parseLang(source)
		if err != nil {
			return err
		}
		tgt, err := parseLang(target)
		if err != nil {
			return err
		}
		c.source, c.target = src, tgt
		return nil
	}
}

func parseLang(name string) (lang, error) {
	if name == "" {
		return lang{}, fmt.Errorf("%w: empty", ErrInvalidLanguage)
	}
	tag, err := language.Parse(name)
	if err != nil {
		return lang{}, fmt.Errorf("%w: %q: %s", ErrInvalidLanguage, name, err)
	}
	return lang{name: name, tag: tag}, nil
}

// Writer returns a review writer whose header names the configured languages.
func (c *Converter) Writer() *review.Writer {
	return review.NewWriter(review.WithLabels(
		review.LanguageLabel(c.source.tag),
		review.LanguageLabel(c.target.tag),
	))
}

// Result summarizes one run.
type Result struct {
	Output       string
	Rows         int
	Untranslated int
	Skipped      int
}

// Convert flattens both language sections of cat and reconciles them.
func (c *Converter) Convert(ctx context.Context, cat *catalog.Catalog) ([]review.Row, Result, error) {
	sourceFlat, err := cat.Flatten(c.source.lookupNames()...)
	if err != nil {
		return nil, Result{}, err
	}
	targetFlat, err := cat.Flatten(c.target.lookupNames()...)
	if err != nil {
		return nil, Result{}, err
	}

	c.logger.DebugContext(ctx, "catalog flattened",
		slog.String("source", c.source.name),
		slog.Int("source_keys", len(sourceFlat)),
		slog.String("target", c.target.name),
		slog.Int("target_keys", len(targetFlat)),
	)

	rows := review.Reconcile(sourceFlat, targetFlat)
	res := Result{
		Rows:         len(rows),
		Untranslated: review.Untranslated(rows),
		Skipped:      len(sourceFlat) - len(rows),
	}

	c.logger.DebugContext(ctx, "catalog reconciled",
		slog.Int("rows", res.Rows),
		slog.Int("untranslated", res.Untranslated),
		slog.Int("skipped", res.Skipped),
	)

	return rows, res, nil
}

// Run converts the catalog at input and writes the review file to output,
// replacing any existing file. Nothing is written when loading or
// reconciling fails.
func (c *Converter) Run(ctx context.Context, input, output string) (Result, error) {
	rows, res, err := c.load(ctx, input)
	if err != nil {
		return Result{}, err
	}

	if err := c.Writer().WriteFile(output, rows); err != nil {
		return Result{}, err
	}
	res.Output = output

	c.logger.DebugContext(ctx, "review file written", slog.String("path", output), slog.Int("rows", res.Rows))
	return res, nil
}

// RunTo converts the catalog at input and encodes the review file to w.
func (c *Converter) RunTo(ctx context.Context, input string, w io.Writer) (Result, error) {
	rows, res, err := c.load(ctx, input)
	if err != nil {
		return Result{}, err
	}

	data, err := c.Writer().Render(rows)
	if err != nil {
		return Result{}, err
	}
	if _, err := w.Write(data); err != nil {
		return Result{}, fmt.Errorf("%w: %w", review.ErrWrite, err)
	}
	return res, nil
}

func (c *Converter) load(ctx context.Context, input string) ([]review.Row, Result, error) {
	cat, err := catalog.LoadFile(input)
	if err != nil {
		return nil, Result{}, err
	}

	c.logger.DebugContext(ctx, "catalog loaded",
		slog.String("path", input),
		slog.Any("languages", cat.Languages()),
	)

	return c.Convert(ctx, cat)
}
