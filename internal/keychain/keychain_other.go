//go:build !darwin

package keychain

import "fmt"

// SystemStore is unavailable outside macOS; every lookup fails.
type SystemStore struct {
	service string
}

// NewSystemStore returns a store whose lookups fail with ErrUnsupported.
func NewSystemStore(service string) *SystemStore {
	if service == "" {
		service = DefaultService
	}
	return &SystemStore{service: service}
}

func (s *SystemStore) Get(account string) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s/%s", ErrUnsupported, s.service, account)
}
