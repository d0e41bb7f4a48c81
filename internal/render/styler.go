package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by NewStyler
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// CellStyler decorates one rendered day cell
type CellStyler interface {
	StyleCell(text string, highlight bool) string
}

// PlainStyler leaves every cell untouched
type PlainStyler struct{}

// StyleCell returns text as is
func (PlainStyler) StyleCell(text string, highlight bool) string {
	return text
}

// LipglossStyler highlights a cell black on white
type LipglossStyler struct {
	highlight lipgloss.Style
}

// NewLipglossStyler creates a styler that renders with the given color profile
func NewLipglossStyler(w io.Writer, profile termenv.Profile) *LipglossStyler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &LipglossStyler{
		highlight: r.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("7")),
	}
}

// StyleCell applies the highlight style when highlight is set
func (s *LipglossStyler) StyleCell(text string, highlight bool) string {
	if !highlight {
		return text
	}
	return s.highlight.Render(text)
}

// NormalizeColorMode lower-cases and trims a color mode
func NormalizeColorMode(mode string) string {
	return strings.ToLower(strings.TrimSpace(mode))
}

// NewStyler picks a styler for output written to w.
//
// "auto" follows the terminal behind w and honors NO_COLOR, "always" forces
// basic ANSI colors, "never" disables styling.
func NewStyler(w io.Writer, mode string) (CellStyler, error) {
	switch NormalizeColorMode(mode) {
	case "", ColorAuto:
		if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
			return PlainStyler{}, nil
		}
		profile := lipgloss.NewRenderer(w).ColorProfile()
		if profile == termenv.Ascii {
			return PlainStyler{}, nil
		}
		return NewLipglossStyler(w, profile), nil
	case ColorAlways:
		return NewLipglossStyler(w, termenv.ANSI), nil
	case ColorNever:
		return PlainStyler{}, nil
	default:
		return nil, fmt.Errorf("unknown color mode: %s", mode)
	}
}
