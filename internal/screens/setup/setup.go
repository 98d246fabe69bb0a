package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/router"
	"github.com/abhisek/trifactor/internal/run"
	"github.com/abhisek/trifactor/internal/screen"
	"github.com/abhisek/trifactor/internal/screens/runscreen"
	"github.com/abhisek/trifactor/internal/ui/components"
	"github.com/abhisek/trifactor/internal/ui/layout"
	"github.com/abhisek/trifactor/internal/ui/theme"
)

var lensHints = map[catalog.Lens]string{
	catalog.LensInterpersonal: "relationships, tension, boundaries",
	catalog.LensFinancial:     "money stability and control",
	catalog.LensBigPicture:    "direction, focus, shipping",
}

// Options configures the setup screen.
type Options struct {
	// Preselect highlights a lens when the screen opens.
	Preselect catalog.Lens
	// ExportDir is where the run screen saves snapshot files.
	ExportDir string
}

// SetupScreen picks the lens for a new run.
type SetupScreen struct {
	session *run.Session
	opts    Options
	menu    components.Menu
	lenses  []catalog.Lens
	err     error
}

var _ screen.Screen = (*SetupScreen)(nil)

// New creates a SetupScreen that starts runs on session.
func New(session *run.Session, opts Options) *SetupScreen {
	s := &SetupScreen{session: session, opts: opts}

	var items []components.MenuItem
	for _, l := range session.Machine().Catalog().Lenses() {
		lens := l
		s.lenses = append(s.lenses, lens)
		items = append(items, components.MenuItem{
			Label:  lens.DisplayName(),
			Hint:   lensHints[lens],
			Action: func() tea.Cmd { return s.start(lens) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	s.menu = components.NewMenu(items)
	for i, l := range s.lenses {
		if l == opts.Preselect {
			s.menu.Selected = i
		}
	}
	return s
}

func (s *SetupScreen) start(lens catalog.Lens) tea.Cmd {
	if err := s.session.Start(lens); err != nil {
		s.err = err
		return nil
	}
	s.err = nil
	next := runscreen.New(s.session, s.opts.ExportDir)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// Init returns the session to setup when the screen becomes active again.
func (s *SetupScreen) Init() tea.Cmd {
	if s.session.State().Stage != run.StageSetup {
		_ = s.session.Reset()
	}
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	m := s.session.Machine()

	var sections []string
	sections = append(sections, theme.Title.Render("Choose a lens"))
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf(
		"%d questions, then %d targeted follow-ups. Answer 0 (never) to 4 (almost always).",
		m.InitialCount(), m.FollowupCount())))
	sections = append(sections, s.menu.View())

	if s.err != nil {
		sections = append(sections, theme.Failure.Render("Could not start: "+s.err.Error()))
	}

	cw := min(width-4, 76)
	content := theme.Card.Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SetupScreen) Title() string {
	return "Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
