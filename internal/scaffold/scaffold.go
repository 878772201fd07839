package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/raphi011/newsite/internal/log"
	"github.com/raphi011/newsite/internal/site"
)

// ErrScriptMissing is returned when no template script exists at the
// resolved path.
var ErrScriptMissing = errors.New("template script not found")

// ExitError reports a template script that ran and exited non-zero.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("template script exited with status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// InstallDir returns the directory containing the running executable,
// with symlinks resolved.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}

// Resolve returns the script path for name inside dir.
// Absolute names are returned unchanged.
func Resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Runner executes the template script with the given standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner attached to the process's own terminal.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Check verifies that path names an existing regular file.
func Check(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrScriptMissing, path)
		}
		return nil, fmt.Errorf("stat template script: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrScriptMissing, path)
	}
	return info, nil
}

// Run makes the script at path executable if needed and runs it with the
// positional arguments of p, waiting for it to exit.
func (r *Runner) Run(ctx context.Context, path string, p site.Params) error {
	info, err := Check(path)
	if err != nil {
		return err
	}
	if err := ensureExecutable(ctx, path, info.Mode()); err != nil {
		return err
	}

	args := p.Args()
	done := log.FromContext(ctx).Command("", path, args...)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	start := time.Now()
	err = cmd.Run()
	done(time.Since(start))

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			// killed by a signal
			code = 1
		}
		return &ExitError{Code: code, Err: err}
	}
	if err != nil {
		return fmt.Errorf("run template script: %w", err)
	}
	return nil
}

// chmod is swapped in tests to simulate scripts owned by another user.
var chmod = os.Chmod

// ensureExecutable adds the execute bits to path when any are missing.
// A script that already carries some execute bit is left as it is when it
// cannot be changed; exec reports whether the current user may run it.
func ensureExecutable(ctx context.Context, path string, mode fs.FileMode) error {
	perm := mode.Perm()
	if perm&0o111 == 0o111 {
		return nil
	}
	err := chmod(path, perm|0o111)
	if err == nil {
		return nil
	}
	if perm&0o111 != 0 {
		log.FromContext(ctx).Debug("template script mode unchanged", "path", path, "mode", perm.String(), "error", err)
		return nil
	}
	return fmt.Errorf("make template script executable: %w", err)
}
