package audit

import (
	"context"
	"log/slog"

	"github.com/benaskins/passfield/pass"
)

// Reader wraps a pass.Reader and records every read in the audit log.
type Reader struct {
	inner *pass.Reader
	log   *Logger
	actor string
}

// NewReader wraps inner so that reads are logged under actor.
func NewReader(inner *pass.Reader, log *Logger, actor string) *Reader {
	return &Reader{inner: inner, log: log, actor: actor}
}

func (r *Reader) EntryContents(ctx context.Context, entry string) (string, error) {
	val, err := r.inner.EntryContents(ctx, entry)
	r.record(Entry{Action: ActionEntryRead, Entry: entry}, err)
	return val, err
}

func (r *Reader) PasswordFor(ctx context.Context, entry string) (string, error) {
	val, err := r.inner.PasswordFor(ctx, entry)
	r.record(Entry{Action: ActionPasswordRead, Entry: entry}, err)
	return val, err
}

func (r *Reader) FieldFor(ctx context.Context, entry, fieldName string) (string, error) {
	val, err := r.inner.FieldFor(ctx, entry, fieldName)
	r.record(Entry{Action: ActionFieldRead, Entry: entry, Field: fieldName}, err)
	return val, err
}

func (r *Reader) Fields(ctx context.Context, entry string) ([]pass.Field, error) {
	fields, err := r.inner.Fields(ctx, entry)
	r.record(Entry{Action: ActionFieldsRead, Entry: entry}, err)
	return fields, err
}

// record is best-effort: a failure to log does not fail the read.
func (r *Reader) record(e Entry, err error) {
	e.Actor = r.actor
	if err != nil {
		e.Error = err.Error()
	}
	if logErr := r.log.Log(e); logErr != nil {
		slog.Warn("audit log write failed", "path", r.log.Path(), "error", logErr)
	}
}
