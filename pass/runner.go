package pass

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// DefaultCommand is the password-store executable looked up on PATH.
const DefaultCommand = "pass"

// Runner produces the raw output of the store tool for one entry.
// A nil error means the tool exited successfully.
type Runner interface {
	Run(ctx context.Context, entry string) ([]byte, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, entry string) ([]byte, error)

func (f RunnerFunc) Run(ctx context.Context, entry string) ([]byte, error) {
	return f(ctx, entry)
}

// CommandRunner invokes the store tool as "<Path> <entry>" with no stdin
// and stderr discarded.
type CommandRunner struct {
	Path string
	// Env is appended to the parent environment.
	Env []string
}

func (r CommandRunner) Run(ctx context.Context, entry string) ([]byte, error) {
	path := r.Path
	if path == "" {
		path = DefaultCommand
	}

	cmd := exec.CommandContext(ctx, path, entry)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	// Stdin and Stderr stay nil, which connects both to the null device.
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	// Kill the whole process group on cancellation so helpers spawned by
	// the tool (gpg, pinentry) do not outlive the call. Killing the group
	// also closes stdout, so no WaitDelay is set: a successful exit still
	// waits for every writer to finish.
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("%s exited with code %d: %w", path, exitErr.ExitCode(), err)
		}
		return nil, fmt.Errorf("running %s: %w", path, err)
	}
	return stdout.Bytes(), nil
}
