package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benaskins/passfield/internal/audit"
	"github.com/benaskins/passfield/internal/config"
	"github.com/benaskins/passfield/internal/keychain"
	"github.com/benaskins/passfield/internal/logging"
	"github.com/benaskins/passfield/pass"
	"github.com/spf13/cobra"
)

// entryReader is satisfied by *pass.Reader and *audit.Reader.
type entryReader interface {
	EntryContents(ctx context.Context, entry string) (string, error)
	PasswordFor(ctx context.Context, entry string) (string, error)
	FieldFor(ctx context.Context, entry, fieldName string) (string, error)
	Fields(ctx context.Context, entry string) ([]pass.Field, error)
}

var (
	reader   entryReader
	auditLog *audit.Logger
)

// newRunner selects the backend named in the config. Tests replace it.
var newRunner = func(cfg *config.Config) pass.Runner {
	if cfg.Backend == config.BackendKeychain {
		return keychain.NewRunner(keychain.NewSystemStore(cfg.KeychainService))
	}
	return pass.CommandRunner{Path: cfg.Command, Env: cfg.Env()}
}

// needsReader reports whether cmd reads entries. Help and shell
// completion run without loading config or opening the audit log.
func needsReader(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		name := c.Name()
		if name == "help" || name == "completion" || strings.HasPrefix(name, "__complete") {
			return false
		}
	}
	return true
}

func setup(cmd *cobra.Command, args []string) error {
	if !needsReader(cmd) {
		return nil
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.Flags{
		Level:   cfg.LogLevel,
		Verbose: verbose,
		JSON:    logJSON,
	})
	slog.SetDefault(logger)
	slog.Debug("config loaded", "path", path, "backend", cfg.Backend)

	r := pass.New(
		pass.WithRunner(newRunner(cfg)),
		pass.WithLogger(logger.With("component", "pass")),
	)

	if cfg.AuditLog == "" {
		reader = r
		return nil
	}

	auditPath := cfg.AuditLog
	if auditPath == "default" {
		auditPath, err = defaultAuditPath()
		if err != nil {
			return fmt.Errorf("resolving default audit log: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(auditPath), 0700); err != nil {
		return fmt.Errorf("creating audit dir: %w", err)
	}
	auditLog, err = audit.NewLogger(auditPath)
	if err != nil {
		return err
	}
	reader = audit.NewReader(r, auditLog, "cli")
	return nil
}

func closeAudit() {
	if auditLog != nil {
		auditLog.Close()
		auditLog = nil
	}
}
