// Package painter renders the interpreter prompt with an optional colour
// and bold style. Colours come from a named theme, a colour name, or a raw
// escape sequence.
package painter

import (
	"strings"

	"smash/internal/config"
)

const (
	reset    = "\033[0m"
	makeBold = "\033[1m"
)

// Painter holds the styling applied to the prompt.
type Painter struct {
	Colour string // ANSI escape code for the prompt, empty for none
	Bold   bool   // Whether the prompt should be bold
}

// NewPainter creates a Painter from the prompt settings. A known theme
// overrides the colour fields.
func NewPainter(cfg config.Prompt) Painter {
	resolveTheme(&cfg)
	return Painter{
		Colour: resolveColor(cfg.Colour),
		Bold:   cfg.ColourBold,
	}
}

// resolveTheme applies a predefined theme to cfg. "none", the empty string
// and unknown names leave cfg untouched.
func resolveTheme(cfg *config.Prompt) {

	switch strings.ToLower(strings.TrimSpace(cfg.Theme)) {
	case "smash":
		cfg.Colour = "green"
		cfg.ColourBold = true
	case "wildberries":
		cfg.Colour = "\u001b[38;2;203;17;171m"
		cfg.ColourBold = true
	case "monokai":
		cfg.Colour = "\u001b[38;2;249;38;114m"
		cfg.ColourBold = false
	case "ohmybash":
		cfg.Colour = "blue"
		cfg.ColourBold = true
	}

}

// resolveColor converts a colour name into an ANSI escape code. Anything
// that is not a known name is returned unchanged.
func resolveColor(colour string) string {

	colour = strings.TrimSpace(colour)
	if colour == "" {
		return ""
	}

	switch strings.ToLower(colour) {
	case "default":
		return "\u001b[39m"
	case "black":
		return "\033[30m"
	case "red":
		return "\033[31m"
	case "green":
		return "\033[32m"
	case "yellow":
		return "\033[33m"
	case "bright yellow":
		return "\u001b[93m"
	case "blue":
		return "\033[94m"
	case "magenta":
		return "\033[35m"
	case "cyan":
		return "\033[36m"
	case "white":
		return "\033[37m"
	default:
		return colour
	}

}

// Paint wraps text in the painter's style. Without a colour or bold the
// text is returned as is.
func (p Painter) Paint(text string) string {
	if p.Colour == "" && !p.Bold {
		return text
	}
	style := ""
	if p.Bold {
		style = makeBold
	}
	return style + p.Colour + text + reset
}
