package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/router"
	"github.com/abhisek/trifactor/internal/run"
	"github.com/abhisek/trifactor/internal/screen"
	"github.com/abhisek/trifactor/internal/screens/setup"
	"github.com/abhisek/trifactor/internal/screens/welcome"
	"github.com/abhisek/trifactor/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Session *run.Session

	// Lens is preselected on the setup screen when set.
	Lens catalog.Lens

	// ExportDir is where snapshot files are saved.
	ExportDir string

	// SkipWelcome opens directly on the setup screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel rooted at the welcome screen, which hands
// over to lens setup.
func newAppModel(opts Options) AppModel {
	setupScreen := func() screen.Screen {
		return setup.New(opts.Session, setup.Options{
			Preselect: opts.Lens,
			ExportDir: opts.ExportDir,
		})
	}
	var root screen.Screen
	if opts.SkipWelcome {
		root = setupScreen()
	} else {
		root = welcome.New(setupScreen)
	}
	return AppModel{
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, lens := "", ""
	if active != nil {
		title = active.Title()
		if lp, ok := active.(screen.LensProvider); ok {
			lens = lp.LensName()
		}
	}

	header := layout.RenderHeader(title, lens, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Lenses"})
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("app: session is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
