// Package keychain resolves entries from the macOS Keychain instead of the
// pass tool.
//
// Entries are read as generic passwords with:
//   - Service: the configured service (default "com.passfield")
//   - Account: the entry identifier (e.g. "google.com/personal")
//
// The stored secret is treated exactly like pass output: first line is the
// password, later "name: value" lines are fields.
package keychain

import (
	"context"
	"errors"
	"fmt"
)

// DefaultService is the Keychain service attribute used when none is configured.
const DefaultService = "com.passfield"

var (
	// ErrNotFound is returned when no item exists for the entry.
	ErrNotFound = errors.New("keychain item not found")
	// ErrUnsupported is returned on platforms without a Keychain.
	ErrUnsupported = errors.New("keychain not available on this platform")
)

// Lookup reads the secret stored for an account.
type Lookup interface {
	Get(account string) ([]byte, error)
}

// Runner adapts a Lookup to pass.Runner.
type Runner struct {
	lookup Lookup
}

// NewRunner creates a Runner reading from lookup.
func NewRunner(lookup Lookup) *Runner {
	return &Runner{lookup: lookup}
}

func (r *Runner) Run(ctx context.Context, entry string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.lookup.Get(entry)
	if err != nil {
		return nil, fmt.Errorf("keychain lookup %q: %w", entry, err)
	}
	return data, nil
}
