package smash

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal is the line-oriented input channel of the interpreter.
// *readline.Instance satisfies it.
type Terminal interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// LineTerminal reads newline-terminated lines from a plain reader, writing
// the prompt before each read. It is used when standard input is not a
// terminal.
type LineTerminal struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
}

// NewLineTerminal returns a LineTerminal reading from in and prompting on out.
func NewLineTerminal(in io.Reader, out io.Writer) *LineTerminal {
	return &LineTerminal{reader: bufio.NewReader(in), out: out}
}

func (t *LineTerminal) SetPrompt(prompt string) {
	t.prompt = prompt
}

// Readline returns the next line without its line terminator. A final line
// without a newline is returned before io.EOF.
func (t *LineTerminal) Readline() (string, error) {

	fmt.Fprint(t.out, t.prompt)

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil

}

func (t *LineTerminal) Close() error {
	return nil
}
