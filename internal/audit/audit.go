// Package audit provides append-only structured logging for secret reads.
//
// Every access through Reader (contents, password, field, field list) is
// recorded as one line of newline-delimited JSON, by default at
// ~/.passfield/audit.log. Secret values are never written.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Action describes what was read.
type Action string

const (
	ActionEntryRead    Action = "entry_read"
	ActionPasswordRead Action = "password_read"
	ActionFieldRead    Action = "field_read"
	ActionFieldsRead   Action = "fields_read"
)

// Entry is a single audit log record.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	Action    Action    `json:"action"`
	Entry     string    `json:"entry"`
	Field     string    `json:"field,omitempty"`
	Actor     string    `json:"actor,omitempty"` // "cli" or the embedding program
	Error     string    `json:"error,omitempty"`
}

// Logger appends audit entries to a file, one JSON object per line.
type Logger struct {
	mu   sync.Mutex
	f    *os.File
	enc  *json.Encoder
	path string
	now  func() time.Time
}

// NewLogger opens path for appending, creating it with owner-only
// permissions if needed.
func NewLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening audit log %s: %w", path, err)
	}
	return &Logger{
		f:    f,
		enc:  json.NewEncoder(f),
		path: path,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// Log appends one record, stamping it with the current time if unset.
func (l *Logger) Log(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	if err := l.enc.Encode(e); err != nil {
		return fmt.Errorf("appending %s record: %w", e.Action, err)
	}
	return nil
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes the file to disk and closes it.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	syncErr := l.f.Sync()
	if err := l.f.Close(); err != nil {
		return err
	}
	return syncErr
}
