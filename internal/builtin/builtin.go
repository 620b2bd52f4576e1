// Package builtin implements the commands understood by the smash
// interpreter (help, quit, copy, list and run) and the registry that maps
// command names to them. Every command validates its own arity and reports
// failures as errors carrying the text shown to the user.
package builtin

import (
	"errors"
	"fmt"
	"sort"

	"smash/internal/parser"
)

// Version is the interpreter version shown by help.
const Version = "1.0"

// ErrQuit is returned by the quit command. The interpreter loop stops and
// the process exits with a success status.
var ErrQuit = errors.New("smash: quit")

// Command is a single interpreter command. Execute receives the whole
// parameter buffer; params.Count() includes the command name.
type Command interface {
	Name() string
	Execute(params *parser.Params) error
}

// LineReader reads one line of user input after displaying a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// ProcessRunner starts an executable and waits for it to exit.
type ProcessRunner interface {
	Run(path string) error
}

// UsageError reports a wrong number of arguments.
type UsageError struct {
	Problem string // e.g. "Invalid number of arguments."
	Usage   string // command synopsis
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s\nUsage: %s", e.Problem, e.Usage)
}

// OperationError reports a file operation that could not be carried out.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message + "\nCannot continue requested operation."
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Registry is an immutable mapping from lower-case command name to Command.
type Registry struct {
	commands map[string]Command
}

// NewRegistry builds a registry from commands. A later command with the
// same name replaces an earlier one.
func NewRegistry(commands ...Command) *Registry {
	registry := &Registry{commands: make(map[string]Command, len(commands))}
	for _, command := range commands {
		registry.commands[command.Name()] = command
	}
	return registry
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
