// Command stickydemo scrolls a list of sections whose headers pin to the
// top of the terminal window. Headers restyle themselves as they are about
// to be pushed out, driven by the stuck amount the layout reports.
//
// Keys: j/k or arrows scroll, pgup/pgdn page, g/G jump, r toggles reverse
// placement, o toggles overlay headers, q quits.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"sticky"
)

var sectionColors = []sticky.Color{
	sticky.Blue, sticky.Green, sticky.Magenta, sticky.Cyan, sticky.Red, sticky.Yellow,
}

var helpStyle = lipgloss.NewStyle().Faint(true)

type model struct {
	viewport  *sticky.Viewport
	scheduler *sticky.FrameScheduler
	layouts   []*sticky.StickyHeaderLayout
	builders  []*sticky.HeaderBuilder

	width   int
	height  int
	reverse bool
	overlay bool
}

func newModel(width, height int) *model {
	m := &model{
		viewport:  sticky.NewViewport(sticky.Vertical),
		scheduler: &sticky.FrameScheduler{},
		width:     width,
		height:    height,
	}

	for i := 0; i < 6; i++ {
		title := fmt.Sprintf("Section %d", i+1)
		color := sectionColors[i%len(sectionColors)]

		builder := sticky.NewHeaderBuilder(m.scheduler, headerFor(title, color)).
			OnRebuild(m.viewport.MarkNeedsLayout)

		rows := make([]sticky.Row, 12)
		for r := range rows {
			rows[r] = sticky.Row{
				Text:  fmt.Sprintf("  %s · row %02d", title, r+1),
				Style: sticky.DefaultStyle().Foreground(color),
			}
		}

		layout := sticky.NewStickyHeader(builder, sticky.NewSliverList(1, rows...))
		layout.Configure(sticky.Config{
			Source:               m.viewport,
			OnStuckAmountChanged: builder.Callback(),
		})

		m.builders = append(m.builders, builder)
		m.layouts = append(m.layouts, layout)
		m.viewport.Mount(layout)
	}
	return m
}

// headerFor builds a section header box for the current stuck amount: the
// band dims and annotates itself while it is being pushed out.
func headerFor(title string, color sticky.Color) func(float64) sticky.Box {
	return func(stuck float64) sticky.Box {
		style := sticky.DefaultStyle().
			Background(color).
			Foreground(sticky.Black).
			Bold()
		label := fmt.Sprintf(" ▍ %s", title)
		if stuck < 0 {
			style = style.Dim()
			label = fmt.Sprintf("%s  (leaving %d%%)", label, int(-stuck*100))
		}
		return sticky.NewBoxText(label).Style(style)
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.MarkNeedsLayout()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.viewport.ScrollBy(1)
		case "k", "up":
			m.viewport.ScrollBy(-1)
		case "pgdown", "f":
			m.viewport.PageDown()
		case "pgup", "b":
			m.viewport.PageUp()
		case "g":
			m.viewport.ScrollToTop()
		case "G":
			m.viewport.ScrollToEnd()
		case "r":
			m.reverse = !m.reverse
			for _, l := range m.layouts {
				l.Reverse(m.reverse)
			}
		case "o":
			m.overlay = !m.overlay
			for _, l := range m.layouts {
				l.Overlay(m.overlay)
			}
		}
	}
	return m, nil
}

func (m *model) View() string {
	if m.width <= 0 || m.height <= 1 {
		return ""
	}
	main := m.height - 1 // last line is help

	buf := m.paintFrame(main)
	// Post-frame work may rebuild headers; repaint once so the frame on
	// screen reflects the rebuilt content.
	m.scheduler.Flush()
	if m.viewport.NeedsLayout() {
		buf = m.paintFrame(main)
		m.scheduler.Flush()
	}

	help := helpStyle.Render(fmt.Sprintf(
		"j/k scroll · g/G jump · r reverse · o overlay · q quit — offset %.0f/%.0f",
		m.viewport.Offset(), m.viewport.MaxScroll(),
	))
	return sticky.RenderANSI(buf) + "\n" + help
}

func (m *model) paintFrame(main int) *sticky.Buffer {
	if m.viewport.NeedsLayout() {
		m.viewport.LayoutPass(float64(main), float64(m.width))
	}
	buf := sticky.NewBuffer(m.width, main)
	m.viewport.Paint(buf)
	return buf
}

func main() {
	if os.Getenv("STICKY_DEBUG") != "" {
		f, err := tea.LogToFile("stickydemo.log", "stickydemo")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Size the first frame before bubbletea reports the real window size.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	p := tea.NewProgram(newModel(width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "stickydemo:", err)
		os.Exit(1)
	}
}
