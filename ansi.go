package sticky

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderANSI converts a buffer into terminal-ready output, one line per
// buffer row. Runs of identically styled cells are grouped and rendered
// through lipgloss so the result drops straight into a bubbletea View.
func RenderANSI(buf *Buffer) string {
	var sb strings.Builder
	for y := 0; y < buf.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderLine(&sb, buf, y)
	}
	return sb.String()
}

func renderLine(sb *strings.Builder, buf *Buffer, y int) {
	x := 0
	for x < buf.Width() {
		style := buf.Get(x, y).Style
		var run strings.Builder
		for x < buf.Width() {
			c := buf.Get(x, y)
			if c.Style != style {
				break
			}
			// Zero runes are wide-rune continuations; the lead rune
			// already covers their cells.
			if c.Rune != 0 {
				run.WriteRune(c.Rune)
			}
			x++
		}
		if style == (Style{}) {
			sb.WriteString(run.String())
			continue
		}
		sb.WriteString(lipglossStyle(style).Render(run.String()))
	}
}

// lipglossStyle maps a cell style onto a lipgloss style.
func lipglossStyle(s Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c, ok := lipglossColor(s.FG); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipglossColor(s.BG); ok {
		ls = ls.Background(c)
	}
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrInverse) {
		ls = ls.Reverse(true)
	}
	return ls
}

func lipglossColor(c Color) (lipgloss.Color, bool) {
	switch c.Mode {
	case ColorANSI:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	}
	return "", false
}
