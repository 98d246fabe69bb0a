package runscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/export"
	"github.com/abhisek/trifactor/internal/readout"
	"github.com/abhisek/trifactor/internal/run"
	"github.com/abhisek/trifactor/internal/ui/components"
	"github.com/abhisek/trifactor/internal/ui/layout"
	"github.com/abhisek/trifactor/internal/ui/theme"
)

// Lines of the readout that get heading styling.
var headings = map[string]bool{
	"Category scores":                          true,
	"Where you are":                            true,
	"What’s dragging you down (lowest signals)": true,
	"Start here (smallest stabilizing lever)":  true,
	"Continue evaluation focus":                true,
}

func (s *RunScreen) View(width, height int) string {
	st := s.session.State()
	cw := max(min(width-4, 100), 20)
	if st.Stage.Answering() {
		return s.renderQuestion(st, width, height, cw)
	}
	return s.renderReadout(st, width, height, cw)
}

func (s *RunScreen) renderQuestion(st run.RunState, width, height, cw int) string {
	q, _, answered, ok := st.Current()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No questions in this round."))
	}
	idx, total := st.Position()

	var sections []string

	heading := "Question"
	if st.Stage == run.StageFollowups {
		heading = fmt.Sprintf("Follow-up round %d", st.Round)
	}
	sections = append(sections, theme.Heading.Render(heading)+"  "+
		theme.Subtitle.Render("Measures: "+catalog.CategoryLabel(st.Lens, q.Category)))

	if st.Stage == run.StageFollowups && len(st.Repeats) > 0 {
		sections = append(sections, theme.Notice.Render(fmt.Sprintf(
			"%d of these follow-ups were asked earlier in this run. The question pool for these areas is running low.",
			len(st.Repeats))))
	}

	sections = append(sections, lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Text))
	sections = append(sections, s.likert.View())

	bar := components.StepProgress(idx, total, cw)
	progress := bar.View()
	if answered {
		progress += "  " + theme.Status.Render("recorded")
	}
	sections = append(sections, progress)

	if s.err != nil {
		sections = append(sections, theme.Failure.Render(errorText(s.err)))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *RunScreen) renderReadout(st run.RunState, width, height, cw int) string {
	if st.Stage != s.renderedStage || cw != s.renderedWidth {
		s.viewport.SetContent(s.readoutContent(st, cw))
		s.viewport.GotoTop()
		s.renderedStage = st.Stage
		s.renderedWidth = cw
	}

	var footer []string
	switch {
	case s.err != nil:
		footer = append(footer, theme.Failure.Render(errorText(s.err)))
	case s.status != "":
		footer = append(footer, theme.Status.Render(s.status))
	}

	s.viewport.SetWidth(cw)
	s.viewport.SetHeight(max(height-len(footer)-1, 1))

	body := s.viewport.View()
	if len(footer) > 0 {
		body += "\n\n" + strings.Join(footer, "\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// readoutContent renders the scrollable readout for a scored stage.
func (s *RunScreen) readoutContent(st run.RunState, cw int) string {
	r, ok := readout.ForState(st, s.session.Machine().FollowupCount())
	if !ok {
		return ""
	}
	wrap := lipgloss.NewStyle().Width(cw)

	var b strings.Builder
	for i, line := range r.Lines() {
		switch {
		case i == 0:
			b.WriteString(theme.Title.Render(line))
			b.WriteString("\n")
			b.WriteString(zoneStrip(r, cw))
		case headings[line]:
			b.WriteString(theme.Heading.Render(line))
		default:
			b.WriteString(wrap.Render(theme.Body.Render(line)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch st.Stage {
	case run.StageResults:
		b.WriteString(theme.Strong.Render(fmt.Sprintf("Press Enter for %d targeted follow-ups.", s.session.Machine().FollowupCount())))
	case run.StageExportForm:
		b.WriteString(s.exportForm(st, wrap))
	case run.StageResults2:
		b.WriteString(theme.Strong.Render("Press Enter for another round of follow-ups."))
	}
	b.WriteString("\n\n")

	for _, line := range readout.Closing {
		b.WriteString(wrap.Render(theme.Hint.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// zoneStrip is a one-glance row of category scores colored by zone. Narrow
// terminals get one category per line.
func zoneStrip(r readout.Readout, cw int) string {
	parts := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		parts = append(parts, theme.Subtitle.Render(c.Category.String())+" "+components.ZoneScore(c.Score))
	}
	sep := "   "
	if layout.IsCompactWidth(cw) {
		sep = "\n"
	}
	return strings.Join(parts, sep)
}

func (s *RunScreen) exportForm(st run.RunState, wrap lipgloss.Style) string {
	var lines []string
	lines = append(lines, theme.Heading.Render("Export"))

	snap, err := export.FromState(st)
	if err != nil {
		lines = append(lines, theme.Failure.Render(err.Error()))
		return strings.Join(lines, "\n")
	}
	lines = append(lines,
		theme.Body.Render(fmt.Sprintf("Run %s, phase %s, round %d", snap.RunID, snap.Phase, snap.Round)),
		theme.Body.Render("File: "+snap.FileName()),
	)
	if !export.ClipboardAvailable() {
		lines = append(lines, theme.Hint.Render("Clipboard is not available here; save to a file instead."))
	}
	lines = append(lines, wrap.Render(theme.Strong.Render(
		"Press C to copy the JSON snapshot, S to save it, Enter to continue to the final readout.")))
	return strings.Join(lines, "\n")
}
