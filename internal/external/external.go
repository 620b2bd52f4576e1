// Package external runs executable files on behalf of the smash interpreter.
// A Runner checks that the file exists, starts it as a child process with
// the interpreter's standard streams and blocks until the child terminates.
package external

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	ps "github.com/mitchellh/go-ps"
	"golang.org/x/sys/unix"

	"smash/internal/log"
)

// ErrFork is returned when the operating system refuses to create a process.
var ErrFork = errors.New("Fork failed.")

// NotFoundError is returned when the executable path cannot be stat'ed.
// No process is spawned in that case.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Unable to find executable file %q.", e.Path)
}

// ExecError is returned when the process was created but its program image
// could not be replaced with Path (not executable, bad format, ...).
// The child never continues running interpreter code.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("Unable to execute %q: %v.", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Runner spawns child processes attached to the given streams.
type Runner struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
	log    *slog.Logger
}

// NewRunner returns a Runner attached to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    log.WithComponent("runner"),
	}
}

// Run starts path with an empty program name and no arguments and waits for
// it to exit. Any exit status counts as success; only failures to locate,
// create or wait for the process are returned.
func (r *Runner) Run(path string) error {

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return &NotFoundError{Path: path}
	}

	cmd := r.command(path)
	if err := cmd.Start(); err != nil {
		return startError(path, err)
	}

	r.logger().Debug("child started", "pid", cmd.Process.Pid, "executable", executableName(cmd.Process.Pid))

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("smash: run: wait for %d: %w", cmd.Process.Pid, err)
		}
	}

	r.logger().Debug("child exited", "pid", cmd.Process.Pid, "exit_code", cmd.ProcessState.ExitCode())

	return nil

}

// command builds the child for path. Args holds only an empty program name,
// so the child sees no arguments.
func (r *Runner) command(path string) *exec.Cmd {
	return &exec.Cmd{
		Path:   path,
		Args:   []string{""},
		Stdin:  r.Stdin,
		Stdout: r.Stdout,
		Stderr: r.Stderr,
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.log == nil {
		r.log = log.WithComponent("runner")
	}
	return r.log
}

// startError classifies a Start failure. Resource exhaustion means
// the fork itself failed; anything else came back from the exec in the child.
func startError(path string, err error) error {

	if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM) {
		return ErrFork
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &ExecError{Path: path, Err: errno}
	}

	return &ExecError{Path: path, Err: err}

}

// executableName looks the child up in the process table for the debug log.
// The child may already be gone, in which case the name is empty.
func executableName(pid int) string {
	process, err := ps.FindProcess(pid)
	if err != nil || process == nil {
		return ""
	}
	return process.Executable()
}
