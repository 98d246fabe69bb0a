package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/router"
	"github.com/abhisek/trifactor/internal/screen"
	"github.com/abhisek/trifactor/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// The three lens marks fade in one by one before the banner appears.
var lensMarks = []string{"◆", "◇", "◈"}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the setup screen.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced
// by next on the first key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) marks() string {
	n := len(lensMarks)
	if w.elapsed < phase1End {
		n = int(w.elapsed / (phase1End / time.Duration(len(lensMarks))))
	}
	styles := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Primary),
		lipgloss.NewStyle().Foreground(theme.Secondary),
		lipgloss.NewStyle().Foreground(theme.Accent),
	}
	var parts []string
	for i := 0; i < n && i < len(lensMarks); i++ {
		parts = append(parts, styles[i].Render(lensMarks[i]))
	}
	return strings.Join(parts, "   ")
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, w.marks())

	if w.elapsed >= phase1End {
		var names []string
		for _, l := range catalog.AllLenses() {
			names = append(names, l.DisplayName())
		}
		sections = append(sections, "", theme.Subtitle.Render(strings.Join(names, " · ")))
	}

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		sections = append(sections, tagline, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
