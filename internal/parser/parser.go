// Package parser splits a single line of user input into a bounded set of
// parameters. Runs of spaces delimit parameters, the first parameter (the
// command name) is lower-cased, and every parameter is limited in length.
// A Params value is meant to be allocated once and refilled for every line.
package parser

import (
	"fmt"
	"strings"
)

const (
	MaxParams      = 4   // Parameters kept per line, command name included
	MaxParamLength = 100 // Characters allowed in a single parameter
)

// ErrorCount is the count held by Params after a line failed to parse.
const ErrorCount = -1

// Params is a fixed-capacity parameter buffer. Count is either the number of
// parameters read from the last line or ErrorCount.
type Params struct {
	values [MaxParams]string
	count  int
}

// LengthError reports a parameter longer than MaxParamLength. Position is
// 1-based.
type LengthError struct {
	Position int
	Limit    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("Parameter %d exceeds maximum allowed characters: %d.", e.Position, e.Limit)
}

// Parse clears the buffer and fills it from line. Only the text up to the
// first newline is considered. Parameters past MaxParams are dropped together
// with the rest of the line. A parameter longer than MaxParamLength aborts
// the parse, leaves the buffer in the error state and returns a *LengthError.
func (p *Params) Parse(line string) error {

	p.Reset()

	if end := strings.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}

	start, length := 0, 0

	for i, r := range line {

		if r == ' ' {
			if length > 0 {
				p.store(line[start:i])
				length = 0
				if p.count == MaxParams {
					return nil
				}
			}
			continue
		}

		if length == 0 {
			start = i
		}
		length++

		if length > MaxParamLength {
			position := p.count + 1
			p.Reset()
			p.count = ErrorCount
			return &LengthError{Position: position, Limit: MaxParamLength}
		}

	}

	if length > 0 {
		p.store(line[start:])
	}

	return nil

}

// store appends value as the next parameter, lower-casing the command name.
func (p *Params) store(value string) {
	if p.count == 0 {
		value = strings.ToLower(value)
	}
	p.values[p.count] = value
	p.count++
}

// Reset empties the buffer.
func (p *Params) Reset() {
	for i := range p.values {
		p.values[i] = ""
	}
	p.count = 0
}

// Count returns the number of parameters, or ErrorCount.
func (p *Params) Count() int {
	return p.count
}

// Failed reports whether the last Parse ended in the error state.
func (p *Params) Failed() bool {
	return p.count == ErrorCount
}

// Name returns the command name, or "" when the line was empty or failed.
func (p *Params) Name() string {
	if p.count <= 0 {
		return ""
	}
	return p.values[0]
}

// Arg returns the i-th parameter (0 is the command name), or "" when i is
// out of range.
func (p *Params) Arg(i int) string {
	if i < 0 || i >= p.count {
		return ""
	}
	return p.values[i]
}

// Args returns the parsed parameters. The slice aliases the buffer and is
// only valid until the next Parse.
func (p *Params) Args() []string {
	if p.count <= 0 {
		return nil
	}
	return p.values[:p.count]
}
