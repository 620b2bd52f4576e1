// Package smash contains the interactive loop of the smash interpreter. It
// wires together configuration, the terminal, the parameter parser, the
// command registry and the process runner, then reads, parses and
// dispatches one line at a time until the user quits.
package smash

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/afero"

	"smash/internal/builtin"
	"smash/internal/completer"
	"smash/internal/config"
	"smash/internal/external"
	"smash/internal/log"
	"smash/internal/painter"
	"smash/internal/parser"
	"smash/internal/prompt"
)

// Options configures a Shell. Zero fields are filled in by New: the
// default config, os.Stdout, the OS filesystem, a process runner on the
// standard streams, and a readline terminal when stdin is a terminal.
type Options struct {
	Config   *config.Config
	Terminal Terminal
	Out      io.Writer
	Fs       afero.Fs
	Runner   builtin.ProcessRunner
}

// Shell holds the runtime state of the interpreter: the terminal it reads
// from, the stream it writes to, the immutable command registry and the
// parameter buffer reused for every line.
type Shell struct {
	terminal   Terminal          // source of input lines
	out        io.Writer         // all output and diagnostics
	promptText string            // configured prompt text
	painter    painter.Painter   // prompt styling
	registry   *builtin.Registry // command name -> command, read-only
	params     parser.Params     // refilled on every line
	log        *slog.Logger
}

// UnknownCommandError reports a command name missing from the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unrecognized command: \"%s\".\nType \"help\" to view a list of valid commands.", e.Name)
}

// New builds a Shell from opts.
func New(opts Options) (*Shell, error) {

	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Runner == nil {
		opts.Runner = external.NewRunner()
	}

	shell := &Shell{
		out:        opts.Out,
		promptText: opts.Config.Prompt.Text,
		painter:    painter.NewPainter(opts.Config.Prompt),
		log:        log.WithComponent("smash"),
	}

	// The registry is built before the terminal so the completer can use it;
	// commands reach the terminal through the lazy reader below.
	input := &terminalReader{shell: shell}
	shell.registry = builtin.NewRegistry(builtin.Defaults(builtin.Env{
		Out:    opts.Out,
		In:     input,
		Fs:     opts.Fs,
		Runner: opts.Runner,
	})...)

	if opts.Terminal == nil {
		terminal, err := boot(opts.Config.Terminal, completer.NewCompleter(shell.registry.Names(), opts.Fs), opts.Out)
		if err != nil {
			return nil, err
		}
		opts.Terminal = terminal
	}
	shell.terminal = opts.Terminal

	return shell, nil

}

// boot creates a readline terminal when stdin is a terminal, and a plain
// line terminal otherwise.
func boot(cfg config.Terminal, autoComplete readline.AutoCompleter, out io.Writer) (Terminal, error) {

	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return NewLineTerminal(os.Stdin, out), nil
	}

	readlineCfg := &readline.Config{
		HistoryFile:     cfg.HistoryFile,
		HistoryLimit:    cfg.HistoryLimit,
		AutoComplete:    autoComplete,
		InterruptPrompt: cfg.InterruptPrompt,
		EOFPrompt:       "\n" + cfg.EOFPrompt,
	}

	terminal, err := readline.NewEx(readlineCfg)
	if err != nil {
		return nil, fmt.Errorf("smash: boot: failed to create new terminal instance: %w", err)
	}

	return terminal, nil

}

// Run reads, parses and dispatches lines until quit is executed or the
// input ends. Errors reported by commands are printed and never end the
// loop; only a failing terminal does.
func (shell *Shell) Run() error {

	defer shell.exit()

	for {

		shell.terminal.SetPrompt(prompt.Update(shell.promptText, shell.painter))

		line, err := shell.terminal.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("smash: read: %w", err)
		}

		if err := shell.params.Parse(line); err != nil {
			shell.reportErrors(err)
			continue
		}

		shell.log.Debug("dispatch", "command", shell.params.Name(), "count", shell.params.Count())

		err = Dispatch(shell.registry, &shell.params)
		if errors.Is(err, builtin.ErrQuit) {
			return nil
		}
		shell.reportErrors(err)

	}

}

// Dispatch looks up the command named by params and executes it. A buffer
// in the error state is skipped; its diagnostic was already reported by the
// parser. An empty line looks up the empty name and is unrecognized.
func Dispatch(registry *builtin.Registry, params *parser.Params) error {

	if params.Failed() {
		return nil
	}

	command, ok := registry.Lookup(params.Name())
	if !ok {
		return &UnknownCommandError{Name: params.Name()}
	}

	return command.Execute(params)

}

// exit closes the terminal.
func (shell *Shell) exit() {
	if err := shell.terminal.Close(); err != nil {
		shell.log.Warn("closing terminal", "error", err)
	}
}

// reportErrors prints the provided error to the interpreter's output if it
// is non-nil.
func (shell *Shell) reportErrors(err error) {
	if err != nil {
		fmt.Fprintln(shell.out, err)
	}
}

// terminalReader lets commands read from the shell's terminal, which is
// created after the commands themselves.
type terminalReader struct {
	shell *Shell
}

func (r *terminalReader) SetPrompt(prompt string) {
	r.shell.terminal.SetPrompt(prompt)
}

func (r *terminalReader) Readline() (string, error) {
	return r.shell.terminal.Readline()
}
