// Package prompt builds the string shown before every interpreter read.
// The configured text may contain {cwd}, which is replaced with the current
// working directory (the home directory abbreviated as "~").
package prompt

import (
	"os"
	"strings"

	"smash/internal/painter"
)

const DefaultPrompt = "user@smash $ "

// Update returns text with {cwd} expanded, styled by p. An empty text falls
// back to DefaultPrompt.
func Update(text string, p painter.Painter) string {

	if text == "" {
		text = DefaultPrompt
	}

	if strings.Contains(text, "{cwd}") {
		text = strings.ReplaceAll(text, "{cwd}", workingDirectory())
	}

	return p.Paint(text)

}

// workingDirectory returns the current directory with the home directory
// shortened to "~", or "?" when it cannot be determined.
func workingDirectory() string {

	currPath, err := os.Getwd()
	if err != nil {
		return "?"
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" && strings.HasPrefix(currPath, home) {
		currPath = "~" + strings.TrimPrefix(currPath, home)
	}

	return currPath

}
