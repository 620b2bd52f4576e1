package builtin

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"smash/internal/parser"
)

// ErrSameFile is returned by copy when source and destination are the same
// name. Opening the destination for writing would truncate the source.
var ErrSameFile = errors.New("Cannot copy same file!")

// Env holds what the commands need from the interpreter.
type Env struct {
	Out    io.Writer     // all output and diagnostics
	In     LineReader    // confirmation prompts
	Fs     afero.Fs      // files for copy and list
	Runner ProcessRunner // processes for run
}

// Defaults returns the five interpreter commands bound to env.
func Defaults(env Env) []Command {
	return []Command{
		&Help{Out: env.Out},
		&Quit{Out: env.Out},
		&Copy{Out: env.Out, In: env.In, Fs: env.Fs},
		&List{Out: env.Out, Fs: env.Fs},
		&Run{Runner: env.Runner},
	}
}

// Help prints the list of commands. It accepts any arguments.
type Help struct {
	Out io.Writer
}

func (h *Help) Name() string { return "help" }

func (h *Help) Execute(_ *parser.Params) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\tWelcome to smash v%s!\n\n", Version)
	b.WriteString("\tThe following is a list of valid commands:\n\n")
	b.WriteString("\trun <executable-file>\n")
	b.WriteString("\tlist\n")
	b.WriteString("\tlist <directory>\n")
	b.WriteString("\tcopy <old-filename> <new-filename>\n")
	b.WriteString("\thelp\n")
	b.WriteString("\tquit\n\n")
	b.WriteString("\tNote: All commands are case insensitive (arguments are not).\n")
	if _, err := io.WriteString(h.Out, b.String()); err != nil {
		return fmt.Errorf("smash: help: write operation failed: %w", err)
	}
	return nil
}

// Quit says goodbye and returns ErrQuit. It accepts any arguments.
type Quit struct {
	Out io.Writer
}

func (q *Quit) Name() string { return "quit" }

func (q *Quit) Execute(_ *parser.Params) error {
	fmt.Fprintln(q.Out, "Thanks for choosing smash!")
	return ErrQuit
}

// Copy copies a source file to a destination, asking before it overwrites
// an existing destination.
type Copy struct {
	Out io.Writer
	In  LineReader
	Fs  afero.Fs
}

func (c *Copy) Name() string { return "copy" }

// Execute checks, in order: arity, source != destination, the source can be
// opened, and the user agrees to overwrite an existing destination. Nothing
// is written until all checks have passed.
func (c *Copy) Execute(params *parser.Params) (err error) {

	if params.Count() != 3 {
		return &UsageError{Problem: "Invalid number of arguments.", Usage: "copy <old-filename> <new-filename>"}
	}

	source, destination := params.Arg(1), params.Arg(2)
	if source == destination {
		return ErrSameFile
	}

	input, err := c.Fs.Open(source)
	if err != nil {
		return &OperationError{Message: fmt.Sprintf("File \"%s\" doesn't exist or has invalid permissions.", source), Err: err}
	}
	defer input.Close()

	if info, statErr := input.Stat(); statErr != nil || info.IsDir() {
		return &OperationError{Message: fmt.Sprintf("File \"%s\" doesn't exist or has invalid permissions.", source), Err: statErr}
	}

	if !c.confirmOverwrite(destination) {
		fmt.Fprintln(c.Out, "Operation aborted.")
		return nil
	}

	output, err := c.Fs.Create(destination)
	if err != nil {
		return &OperationError{Message: fmt.Sprintf("Unknown error creating output file \"%s\".", destination), Err: err}
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("smash: copy: closing %s: %w", destination, closeErr)
		}
	}()

	if _, err = io.Copy(output, input); err != nil {
		return fmt.Errorf("smash: copy: %s to %s: %w", source, destination, err)
	}

	return nil

}

// confirmOverwrite returns true when destination does not exist, or when the
// user answers exactly "y". Blank lines are skipped; end of input declines.
func (c *Copy) confirmOverwrite(destination string) bool {

	if _, err := c.Fs.Stat(destination); err != nil {
		return true
	}

	fmt.Fprintf(c.Out, "File \"%s\" already exists.\n", destination)
	fmt.Fprintln(c.Out, "If you continue, this file will be overwritten.")

	c.In.SetPrompt("Do you wish to continue (y/n)? ")

	for {
		line, err := c.In.Readline()
		if err != nil {
			return false
		}
		if answer := strings.Fields(line); len(answer) > 0 {
			return answer[0] == "y"
		}
	}

}

// DirError reports a directory that cannot be opened or read.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return "Unable to open the directory."
}

func (e *DirError) Unwrap() error {
	return e.Err
}

// List prints the names of the entries of a directory, the current one by
// default, starting with "." and "..".
type List struct {
	Out io.Writer
	Fs  afero.Fs
}

func (l *List) Name() string { return "list" }

func (l *List) Execute(params *parser.Params) error {

	if params.Count() > 2 {
		return &UsageError{Problem: "Too many arguments.", Usage: "list [<directory>]"}
	}

	dir := "."
	if params.Count() == 2 {
		dir = params.Arg(1)
	}

	directory, err := l.Fs.Open(dir)
	if err != nil {
		return &DirError{Path: dir, Err: err}
	}
	defer directory.Close()

	names, err := directory.Readdirnames(-1)
	if err != nil {
		return &DirError{Path: dir, Err: err}
	}

	// the directory reader never reports the self and parent entries
	for _, name := range append([]string{".", ".."}, names...) {
		if _, err := fmt.Fprintln(l.Out, name); err != nil {
			return fmt.Errorf("smash: list: write operation failed: %w", err)
		}
	}

	return nil

}

// Run starts an executable file and waits for it to finish.
type Run struct {
	Runner ProcessRunner
}

func (r *Run) Name() string { return "run" }

func (r *Run) Execute(params *parser.Params) error {
	if params.Count() != 2 {
		return &UsageError{Problem: "Invalid number of arguments.", Usage: "run <executable-file>"}
	}
	return r.Runner.Run(params.Arg(1))
}
