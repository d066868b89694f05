//go:build darwin

package keychain

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemStore reads generic passwords from the macOS Keychain.
type SystemStore struct {
	service string
}

// NewSystemStore creates a Keychain-backed lookup for service.
func NewSystemStore(service string) *SystemStore {
	if service == "" {
		service = DefaultService
	}
	return &SystemStore{service: service}
}

// Get retrieves the secret stored under account.
func (s *SystemStore) Get(account string) ([]byte, error) {
	data, err := gokeychain.GetGenericPassword(s.service, account, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, account)
		}
		return nil, fmt.Errorf("keychain get %q: %w", account, err)
	}
	// go-keychain reports a missing item as nil data with no error.
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, account)
	}
	return data, nil
}
