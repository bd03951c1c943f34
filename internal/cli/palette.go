// Package cli provides terminal output helpers: the theme-driven color
// palette, tables, prompts, and user-facing error types.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/nslux/shopctl/internal/model"
	"golang.org/x/term"
)

const colorReset = "\033[0m"

// Basic ANSI codes used for statuses independent of the theme.
const (
	codeRed    = "\033[31m"
	codeGreen  = "\033[32m"
	codeYellow = "\033[33m"
	codeGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// palette holds the active style tokens. The theme synchronizer fills the
// named slots; output helpers read them. Slots keep their raw token strings;
// only renderable colors (#rrggbb) translate to escape codes.
var (
	paletteMu sync.RWMutex
	palette   model.ThemeConfig
)

// ApplyTheme pushes each style token of cfg into the palette's named slots.
// This is the CLI's equivalent of setting CSS variables on the document
// root. It never fails; unrenderable tokens simply produce uncolored text.
func ApplyTheme(cfg model.ThemeConfig) {
	paletteMu.Lock()
	palette = cfg
	paletteMu.Unlock()
}

// CurrentPalette returns the active style tokens.
func CurrentPalette() model.ThemeConfig {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return palette
}

// ansiFromHex converts "#rrggbb" to a truecolor foreground escape code.
// Returns "" for anything else (gradients, named colors, empty slots).
func ansiFromHex(token string) string {
	token = strings.TrimSpace(token)
	if len(token) != 7 || token[0] != '#' {
		return ""
	}
	r, err1 := strconv.ParseUint(token[1:3], 16, 8)
	g, err2 := strconv.ParseUint(token[3:5], 16, 8)
	b, err3 := strconv.ParseUint(token[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

func colorize(code, s string) string {
	if !colorEnabled || code == "" {
		return s
	}
	return code + s + colorReset
}

// Primary styles s with the theme's primary color.
func Primary(s string) string {
	return colorize(ansiFromHex(CurrentPalette().Primary), s)
}

// Secondary styles s with the theme's secondary color.
func Secondary(s string) string {
	return colorize(ansiFromHex(CurrentPalette().Secondary), s)
}

// Accent styles s with the theme's accent color.
func Accent(s string) string {
	return colorize(ansiFromHex(CurrentPalette().Accent), s)
}

// Text styles s with the theme's text color.
func Text(s string) string {
	return colorize(ansiFromHex(CurrentPalette().TextColor), s)
}

// Border styles s with the theme's border color.
func Border(s string) string {
	return colorize(ansiFromHex(CurrentPalette().BorderColor), s)
}

// Green returns s in green if colors are enabled.
func Green(s string) string { return colorize(codeGreen, s) }

// Red returns s in red if colors are enabled.
func Red(s string) string { return colorize(codeRed, s) }

// Yellow returns s in yellow if colors are enabled.
func Yellow(s string) string { return colorize(codeYellow, s) }

// Gray returns s in gray if colors are enabled.
func Gray(s string) string { return colorize(codeGray, s) }

// Swatch renders a filled block in the token's color followed by the raw
// token text, for theme inspection output.
func Swatch(token string) string {
	code := ansiFromHex(token)
	if code == "" || !colorEnabled {
		return token
	}
	return code + "██" + colorReset + " " + token
}
