package runscreen

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trifactor/internal/export"
	"github.com/abhisek/trifactor/internal/router"
	"github.com/abhisek/trifactor/internal/run"
	"github.com/abhisek/trifactor/internal/screen"
	"github.com/abhisek/trifactor/internal/ui/components"
	"github.com/abhisek/trifactor/internal/ui/layout"
)

// RunScreen drives one run from the first question to the final readout.
type RunScreen struct {
	session   *run.Session
	exportDir string

	likert   components.Likert
	viewport viewport.Model

	// stage and width the readout content was last rendered for.
	renderedStage run.Stage
	renderedWidth int

	status string
	err    error
}

var (
	_ screen.Screen          = (*RunScreen)(nil)
	_ screen.KeyHintProvider = (*RunScreen)(nil)
	_ screen.LensProvider    = (*RunScreen)(nil)
)

// New creates a RunScreen over a session that has already been started.
// Snapshot files are written to exportDir.
func New(session *run.Session, exportDir string) *RunScreen {
	s := &RunScreen{
		session:       session,
		exportDir:     exportDir,
		viewport:      viewport.New(viewport.WithWidth(layout.MinWidth), viewport.WithHeight(layout.MinHeight)),
		renderedStage: -1,
	}
	s.syncLikert()
	return s
}

func (s *RunScreen) Init() tea.Cmd {
	return nil
}

func (s *RunScreen) Title() string {
	switch s.session.State().Stage {
	case run.StageQuestions:
		return "Questions"
	case run.StageResults:
		return "Readout"
	case run.StageFollowups:
		return "Follow-ups"
	case run.StageExportForm:
		return "Export"
	case run.StageResults2:
		return "Final readout"
	}
	return "Run"
}

func (s *RunScreen) LensName() string {
	return s.session.State().Lens.DisplayName()
}

func (s *RunScreen) KeyHints() []layout.KeyHint {
	switch s.session.State().Stage {
	case run.StageQuestions, run.StageFollowups:
		return []layout.KeyHint{
			{Key: "↑↓/0-4", Description: "Choose"},
			{Key: "←→", Description: "Prev/Next"},
			{Key: "Enter", Description: "Record"},
			{Key: "F", Description: "Finish"},
		}
	case run.StageResults:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Follow-ups"},
			{Key: "N", Description: "New run"},
			{Key: "L", Description: "Change lens"},
			{Key: "C/S", Description: "Copy/Save"},
		}
	case run.StageExportForm:
		return []layout.KeyHint{
			{Key: "C", Description: "Copy"},
			{Key: "S", Description: "Save"},
			{Key: "Enter", Description: "Continue"},
		}
	case run.StageResults2:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Another round"},
			{Key: "N", Description: "New run"},
			{Key: "L", Description: "Change lens"},
			{Key: "C/S", Description: "Copy/Save"},
		}
	}
	return nil
}

func (s *RunScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.handleExportDone(msg)
		return s, nil
	case tea.KeyPressMsg:
		if s.session.State().Stage.Answering() {
			return s, s.handleAnswerKey(msg)
		}
		return s, s.handleReadoutKey(msg)
	}
	return s, nil
}

func (s *RunScreen) handleAnswerKey(msg tea.KeyPressMsg) tea.Cmd {
	st := s.session.State()
	switch msg.String() {
	case "left", "h":
		s.do(s.record, s.session.Back)
	case "right", "l":
		s.do(s.record, s.session.Next)
	case "enter":
		idx, total := st.Position()
		if idx >= total-1 {
			s.do(s.record, s.finish)
		} else {
			s.do(s.record, s.session.Next)
		}
	case "f":
		s.do(s.finish)
	default:
		s.likert, _ = s.likert.Update(msg)
		return nil
	}
	s.syncLikert()
	return nil
}

func (s *RunScreen) handleReadoutKey(msg tea.KeyPressMsg) tea.Cmd {
	stage := s.session.State().Stage
	switch msg.String() {
	case "enter":
		switch stage {
		case run.StageResults:
			s.do(s.session.BeginFollowups)
		case run.StageExportForm:
			s.do(s.session.Confirm)
		case run.StageResults2:
			s.do(s.session.AnotherRound)
		}
		s.syncLikert()
		return nil
	case "n":
		if stage == run.StageResults || stage == run.StageResults2 {
			s.do(s.session.NewRun)
			s.syncLikert()
		}
		return nil
	case "l":
		if stage == run.StageResults || stage == run.StageResults2 {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}
		return nil
	case "c":
		return s.exportCmd(exportCopy)
	case "s":
		return s.exportCmd(exportSave)
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// do runs steps in order and stops at the first error, which is shown on
// screen. Status from an earlier action is cleared.
func (s *RunScreen) do(steps ...func() error) {
	s.status = ""
	s.err = nil
	s.renderedStage = -1
	for _, step := range steps {
		if err := step(); err != nil {
			s.err = err
			return
		}
	}
}

func (s *RunScreen) record() error {
	return s.session.Answer(s.likert.Selected)
}

func (s *RunScreen) finish() error {
	if s.session.State().Stage == run.StageFollowups {
		return s.session.FinishFollowups()
	}
	return s.session.Finish()
}

// syncLikert points the picker at the answer recorded for the current
// question, or the scale midpoint when there is none.
func (s *RunScreen) syncLikert() {
	_, answer, answered, ok := s.session.State().Current()
	if !ok {
		return
	}
	if answered {
		s.likert = components.NewLikert(answer)
	} else {
		s.likert = components.NewLikert(-1)
	}
}

func (s *RunScreen) exportCmd(action string) tea.Cmd {
	snap, err := export.FromState(s.session.State())
	if err != nil {
		s.err = err
		return nil
	}
	dir := s.exportDir
	switch action {
	case exportCopy:
		return func() tea.Msg {
			return exportDoneMsg{Action: exportCopy, Err: export.CopyToClipboard(snap)}
		}
	default:
		return func() tea.Msg {
			path, err := export.WriteFile(snap, dir)
			return exportDoneMsg{Action: exportSave, Path: path, Err: err}
		}
	}
}

func (s *RunScreen) handleExportDone(msg exportDoneMsg) {
	if msg.Err != nil {
		s.status = ""
		s.err = fmt.Errorf("%s failed: %w", msg.Action, msg.Err)
		return
	}
	s.err = nil
	switch msg.Action {
	case exportCopy:
		s.status = "Snapshot copied to clipboard."
	case exportSave:
		s.status = "Snapshot saved to " + msg.Path
	}
}

func errorText(err error) string {
	switch {
	case errors.Is(err, run.ErrNoAnswers):
		return "Answer at least one question first."
	case errors.Is(err, run.ErrInvalidAnswer):
		return "Answers run from 0 to 4."
	}
	return err.Error()
}
