package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit.log")
	l, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return l, path
}

// decodeLog returns each record and its raw line.
func decodeLog(t *testing.T, path string) ([]Entry, []string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	var entries []Entry
	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
		raw = append(raw, sc.Text())
	}
	return entries, raw
}

func TestLogRecordsEachAction(t *testing.T) {
	l, path := openTestLogger(t)
	ts := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	records := []Entry{
		{Timestamp: ts, Action: ActionEntryRead, Entry: "google.com/personal", Actor: "cli"},
		{Timestamp: ts, Action: ActionPasswordRead, Entry: "github.com/work", Error: `entry "github.com/work" not found`},
		{Timestamp: ts, Action: ActionFieldRead, Entry: "google.com/personal", Field: "username"},
		{Timestamp: ts, Action: ActionFieldsRead, Entry: "google.com/personal"},
	}
	for _, r := range records {
		if err := l.Log(r); err != nil {
			t.Fatalf("Log(%s): %v", r.Action, err)
		}
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, raw := decodeLog(t, path)
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i, want := range records {
		if !got[i].Timestamp.Equal(want.Timestamp) {
			t.Errorf("record %d: ts = %v, want %v", i, got[i].Timestamp, want.Timestamp)
		}
		got[i].Timestamp = want.Timestamp
		if got[i] != want {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want)
		}
	}
	if strings.Contains(raw[3], `"field"`) || strings.Contains(raw[3], `"error"`) {
		t.Errorf("empty optional keys should be omitted: %s", raw[3])
	}
}

func TestLogStampsMissingTimestamp(t *testing.T) {
	l, path := openTestLogger(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	l.Log(Entry{Action: ActionFieldsRead, Entry: "test"})
	l.Close()

	got, _ := decodeLog(t, path)
	if len(got) != 1 || !got[0].Timestamp.Equal(fixed) {
		t.Errorf("expected timestamp %v, got %+v", fixed, got)
	}
}

func TestReopenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	for _, entry := range []string{"first", "second"} {
		l, err := NewLogger(path)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		l.Log(Entry{Action: ActionEntryRead, Entry: entry})
		l.Close()
	}

	got, _ := decodeLog(t, path)
	if len(got) != 2 || got[0].Entry != "first" || got[1].Entry != "second" {
		t.Errorf("expected both records in order, got %+v", got)
	}
}

func TestLogFileIsOwnerOnly(t *testing.T) {
	l, path := openTestLogger(t)
	l.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600, got %o", perm)
	}
}

func TestNewLoggerMissingDir(t *testing.T) {
	_, err := NewLogger(filepath.Join(t.TempDir(), "missing", "audit.log"))
	if err == nil {
		t.Error("expected error for a missing directory")
	}
}
