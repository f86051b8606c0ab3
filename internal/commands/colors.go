package commands

import (
	"github.com/mgutz/ansi"

	"github.com/5w1tchy/password-checker/internal/strength"
)

var paletteByColor = map[string]string{
	strength.ColorRed:    "red+b",
	strength.ColorOrange: "208+b",
	strength.ColorYellow: "yellow+b",
	strength.ColorGreen:  "green+b",
}

// paint renders text in the terminal color matching a result color tag.
func paint(text, color string) string {
	style, ok := paletteByColor[color]
	if !ok {
		return text
	}
	return ansi.Color(text, style)
}
