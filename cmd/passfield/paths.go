package main

import (
	"os"
	"path/filepath"
)

// passfieldHome returns the path to the passfield home directory (~/.passfield).
func passfieldHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".passfield"), nil
}

func defaultAuditPath() (string, error) {
	home, err := passfieldHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "audit.log"), nil
}
