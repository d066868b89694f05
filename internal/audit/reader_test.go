package audit

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benaskins/passfield/pass"
)

func setupAuditedReader(t *testing.T) (*Reader, string) {
	t.Helper()
	auditPath := filepath.Join(t.TempDir(), "audit.log")

	auditLog, err := NewLogger(auditPath)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { auditLog.Close() })

	inner := pass.New(pass.WithRunner(pass.NewMemoryRunner(map[string]string{
		"google.com/personal": "hunter2\nusername: johnsmith",
	})))
	return NewReader(inner, auditLog, "cli"), auditPath
}

func readEntries(t *testing.T, path string) ([]Entry, string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		var e Entry
		json.Unmarshal([]byte(line), &e)
		entries = append(entries, e)
	}
	return entries, string(data)
}

func TestReaderLogsEachRead(t *testing.T) {
	r, path := setupAuditedReader(t)
	ctx := context.Background()

	r.EntryContents(ctx, "google.com/personal")
	r.PasswordFor(ctx, "google.com/personal")
	r.FieldFor(ctx, "google.com/personal", "username")
	r.Fields(ctx, "google.com/personal")

	entries, raw := readEntries(t, path)
	want := []Action{ActionEntryRead, ActionPasswordRead, ActionFieldRead, ActionFieldsRead}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, action := range want {
		if entries[i].Action != action {
			t.Errorf("entry %d: expected %v, got %v", i, action, entries[i].Action)
		}
		if entries[i].Actor != "cli" {
			t.Errorf("entry %d: expected actor cli, got %q", i, entries[i].Actor)
		}
	}
	if entries[2].Field != "username" {
		t.Errorf("expected field username, got %q", entries[2].Field)
	}
	if strings.Contains(raw, "hunter2") || strings.Contains(raw, "johnsmith") {
		t.Error("audit log must not contain secret values")
	}
}

func TestReaderLogsFailures(t *testing.T) {
	r, path := setupAuditedReader(t)

	_, err := r.FieldFor(context.Background(), "google.com/personal", "email")
	if !errors.Is(err, pass.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound to pass through, got %v", err)
	}
	_, err = r.PasswordFor(context.Background(), "missing")
	if !errors.Is(err, pass.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound to pass through, got %v", err)
	}

	entries, _ := readEntries(t, path)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Error == "" {
			t.Errorf("entry %d: expected error to be recorded", i)
		}
	}
}

func TestReaderReturnsValues(t *testing.T) {
	r, _ := setupAuditedReader(t)

	pw, err := r.PasswordFor(context.Background(), "google.com/personal")
	if err != nil {
		t.Fatalf("PasswordFor: %v", err)
	}
	if pw != "hunter2" {
		t.Errorf("expected hunter2, got %q", pw)
	}
}
