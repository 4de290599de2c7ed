package renderer

import "github.com/gdamore/tcell/v2"

// Theme holds the resolved colors for the view.
type Theme struct {
	Text               tcell.Style
	PrimarySelection   tcell.Style
	SecondarySelection tcell.Style
	Status             tcell.Style
}

// DefaultTheme returns a theme usable on any terminal.
func DefaultTheme() Theme {
	text := tcell.StyleDefault.
		Foreground(tcell.ColorSilver).
		Background(tcell.ColorBlack)
	return Theme{
		Text:               text,
		PrimarySelection:   text.Background(tcell.ColorTeal),
		SecondarySelection: text.Background(tcell.ColorNavy),
		Status: tcell.StyleDefault.
			Foreground(tcell.ColorBlack).
			Background(tcell.ColorSilver),
	}
}

// NewTheme builds a theme from color names or #rrggbb strings. Empty
// or unknown values fall back to the default theme's colors.
func NewTheme(fg, bg, primary, secondary, statusFg, statusBg string) Theme {
	theme := DefaultTheme()

	text := theme.Text
	if c, ok := parseColor(fg); ok {
		text = text.Foreground(c)
	}
	if c, ok := parseColor(bg); ok {
		text = text.Background(c)
	}
	theme.Text = text

	theme.PrimarySelection = text.Background(tcell.ColorTeal)
	if c, ok := parseColor(primary); ok {
		theme.PrimarySelection = text.Background(c)
	}
	theme.SecondarySelection = text.Background(tcell.ColorNavy)
	if c, ok := parseColor(secondary); ok {
		theme.SecondarySelection = text.Background(c)
	}

	status := theme.Status
	if c, ok := parseColor(statusFg); ok {
		status = status.Foreground(c)
	}
	if c, ok := parseColor(statusBg); ok {
		status = status.Background(c)
	}
	theme.Status = status

	return theme
}

// parseColor resolves a tcell color name or #rrggbb hex string.
func parseColor(s string) (tcell.Color, bool) {
	if s == "" {
		return 0, false
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault && s != "default" {
		return 0, false
	}
	return c, true
}
