package render

import (
	"fmt"
	"io"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/username/month-calendar/internal/calendar"
)

// DefaultWidth is the width the title is centered in; it equals one week row
const DefaultWidth = 28

const emptyCell = "    "

// Renderer formats a calendar month as terminal lines
type Renderer struct {
	Width  int
	Styler CellStyler
}

// NewRenderer creates a renderer; width <= 0 means DefaultWidth and a nil styler means no styling
func NewRenderer(width int, styler CellStyler) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if styler == nil {
		styler = PlainStyler{}
	}
	return &Renderer{
		Width:  width,
		Styler: styler,
	}
}

// Lines returns the rendered month: title, weekday header and one line per week,
// surrounded by blank lines
func (r *Renderer) Lines(m *calendar.Month) []string {
	lines := make([]string, 0, len(m.Weeks)+5)
	lines = append(lines, "", center(m.Title(), r.width()), "", header(m))

	for _, week := range m.Weeks {
		var b strings.Builder
		for _, day := range week {
			if day == 0 {
				b.WriteString(emptyCell)
				continue
			}
			b.WriteString(r.styler().StyleCell(fmt.Sprintf(" %2d ", day), day == m.Today))
		}
		lines = append(lines, b.String())
	}

	return append(lines, "")
}

// Write writes the rendered month to w
func (r *Renderer) Write(w io.Writer, m *calendar.Month) error {
	for _, line := range r.Lines(m) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write calendar: %w", err)
		}
	}
	return nil
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return DefaultWidth
	}
	return r.Width
}

func (r *Renderer) styler() CellStyler {
	if r.Styler == nil {
		return PlainStyler{}
	}
	return r.Styler
}

func header(m *calendar.Month) string {
	var b strings.Builder
	for _, day := range m.Weekdays() {
		b.WriteString(day.String()[:3])
		b.WriteByte(' ')
	}
	return b.String()
}

// center pads s on both sides to width; an odd remainder goes to the right
func center(s string, width int) string {
	gap := width - xansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
