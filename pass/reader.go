// Package pass reads entries from the pass password store by invoking its
// command-line tool.
//
// Every operation spawns exactly one process and keeps no state between
// calls, so a Reader is safe for concurrent use. Any failure of the tool
// is reported as *EntryNotFoundError; a missing field as
// *FieldNotFoundError.
package pass

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Reader fetches entry contents and parses passwords and fields out of them.
type Reader struct {
	runner Runner
	logger *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithRunner replaces the subprocess invoker, typically with a fake in tests.
func WithRunner(r Runner) Option {
	return func(rd *Reader) { rd.runner = r }
}

// WithLogger sets the logger. Entry contents are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(rd *Reader) { rd.logger = l }
}

// New creates a Reader that runs the pass executable found on PATH unless
// another Runner is supplied.
func New(opts ...Option) *Reader {
	r := &Reader{
		runner: CommandRunner{Path: DefaultCommand},
		logger: slog.With("component", "pass"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// fetch returns the decoded, untrimmed output of the tool for entry.
func (r *Reader) fetch(ctx context.Context, entry string) (string, error) {
	if entry == "" {
		return "", &EntryNotFoundError{Entry: entry}
	}

	start := time.Now()
	out, err := r.runner.Run(ctx, entry)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.logger.Debug("entry fetch abandoned", "entry", entry, "error", ctxErr)
			return "", fmt.Errorf("fetching %q: %w", entry, ctxErr)
		}
		r.logger.Debug("entry fetch failed", "entry", entry, "duration", time.Since(start), "error", err)
		return "", &EntryNotFoundError{Entry: entry, Err: err}
	}

	r.logger.Debug("entry fetched", "entry", entry, "duration", time.Since(start))
	return decode(out), nil
}

// EntryContents returns the whole entry with surrounding whitespace trimmed.
func (r *Reader) EntryContents(ctx context.Context, entry string) (string, error) {
	contents, err := r.fetch(ctx, entry)
	if err != nil {
		return "", err
	}
	return trim(contents), nil
}

// PasswordFor returns the first line of the entry after trimming the
// whole text. Only leading and trailing blank lines are dropped, so for an
// entry that starts with blank lines this is the first line of the body,
// whatever it holds.
func (r *Reader) PasswordFor(ctx context.Context, entry string) (string, error) {
	contents, err := r.fetch(ctx, entry)
	if err != nil {
		return "", err
	}
	return firstLine(contents), nil
}

// FieldFor returns the value of the first line that starts with
// fieldName followed by a colon, ignoring indentation. The match is case
// sensitive and the value is trimmed of surrounding whitespace.
//
// For an entry containing
//
//	hunter2
//	username: johnsmith
//	app_password:    abcd 1234 efgh 5678
//
// FieldFor(ctx, entry, "app_password") returns "abcd 1234 efgh 5678".
func (r *Reader) FieldFor(ctx context.Context, entry, fieldName string) (string, error) {
	contents, err := r.fetch(ctx, entry)
	if err != nil {
		return "", err
	}
	value, ok := findField(contents, fieldName)
	if !ok {
		return "", &FieldNotFoundError{Entry: entry, Field: fieldName}
	}
	return value, nil
}

// Fields returns every "name: value" line after the password line, in
// entry order.
func (r *Reader) Fields(ctx context.Context, entry string) ([]Field, error) {
	contents, err := r.fetch(ctx, entry)
	if err != nil {
		return nil, err
	}
	return parseFields(contents), nil
}
