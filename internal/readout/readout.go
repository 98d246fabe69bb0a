// Package readout turns a scoring result into the narrative shown after
// each phase of a run.
package readout

import (
	"fmt"
	"strings"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/followup"
	"github.com/abhisek/trifactor/internal/scoring"
)

// SignalCount is the number of lowest signals listed.
const SignalCount = 5

// CategoryLine is one category row in fixed display order.
type CategoryLine struct {
	Category catalog.Category
	Label    string
	Score    scoring.CategoryScore
	ZoneLine string

	// Strongest and Weakest are set when the category's answers disagree
	// enough to explain its volatility.
	Strongest string
	Weakest   string
}

// HasCause reports whether the line carries a volatility explanation.
func (c CategoryLine) HasCause() bool {
	return c.Strongest != ""
}

// Signal is one of the most concerning answers.
type Signal struct {
	Text      string
	Effective int
	Weight    float64
}

// Area names a category with its score.
type Area struct {
	Label string
	Score scoring.CategoryScore
}

// Readout is everything a results screen displays.
type Readout struct {
	Title   string
	Intro   string
	Overall float64

	Categories []CategoryLine

	Verdict          string
	HoldingSteady    Area
	PressureBuilding Area
	Summary          string

	Signals []Signal
	Lever   string

	// Targets are the categories the next follow-up round focuses on, and
	// Focus their lens labels.
	Targets []catalog.Category
	Focus   []string

	// FollowupCount is the size of the round Focus announces.
	FollowupCount int
}

// Closing is the framing printed under every readout.
var Closing = []string{
	"This tool shows you where the pressure is. It does not design the fix.",
	"If you’re trying to resolve something complex, layered, or long-standing, the next step isn’t more questions, it’s interpretation.",
	"Trifactor is a pressure-mapping tool for clarity and prioritization. It is not therapy, coaching, or professional advice.",
	"Run this once a week. If the lowest area doesn’t change after two runs, you’re pushing the wrong lever.",
}

// InitialTitle titles the readout after the initial questions.
func InitialTitle(initial int) string {
	return fmt.Sprintf("Readout (after %d questions)", initial)
}

// FollowupTitle titles the combined readout. Rounds beyond the first are
// counted in the follow-up total.
func FollowupTitle(initial, followups int, preview bool) string {
	t := fmt.Sprintf("Readout (after %d + %d follow-ups)", initial, followups)
	if preview {
		t += " — preview"
	}
	return t
}

// Build assembles the readout for a lens from a scoring result.
func Build(title string, lens catalog.Lens, res scoring.Result) Readout {
	r := Readout{
		Title:         title,
		Intro:         lens.Intro(),
		Overall:       res.Overall,
		FollowupCount: followup.DefaultCount,
	}

	for _, c := range catalog.AllCategories() {
		cs, ok := res.Categories[c]
		if !ok {
			continue
		}
		line := CategoryLine{
			Category: c,
			Label:    catalog.CategoryLabel(lens, c),
			Score:    cs,
			ZoneLine: cs.Zone.Describe(),
		}
		if strong, weak, ok := res.VolatilityCause(c); ok {
			line.Strongest = strong.Question.Text
			line.Weakest = weak.Question.Text
		}
		r.Categories = append(r.Categories, line)
	}

	low, ok := res.Lowest()
	if !ok {
		return r
	}
	high, _ := res.Highest()
	lowLabel := catalog.CategoryLabel(lens, low.Category)

	r.Verdict = fmt.Sprintf("Right now, the system isn’t failing everywhere. It’s failing most at %s.", lowLabel)
	r.HoldingSteady = Area{Label: catalog.CategoryLabel(lens, high.Category), Score: high.Score}
	r.PressureBuilding = Area{Label: lowLabel, Score: low.Score}
	r.Summary = lens.PressureSummary(lowLabel)

	for _, ra := range res.LowestSignals(SignalCount) {
		r.Signals = append(r.Signals, Signal{Text: ra.Question.Text, Effective: ra.Effective, Weight: ra.Weight})
	}
	if lever, ok := res.Lever(); ok {
		r.Lever = lever.Question.Text
	}

	r.Targets = followup.ChooseTargets(res.Categories)
	for _, c := range r.Targets {
		r.Focus = append(r.Focus, catalog.CategoryLabel(lens, c))
	}
	return r
}

// Lines renders the readout as plain text, one line per entry.
func (r Readout) Lines() []string {
	var out []string
	add := func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	}

	add("%s", r.Title)
	add("%s", r.Intro)
	add("Overall Score (0–100): %.1f", r.Overall)
	add("")
	add("Category scores")
	for _, c := range r.Categories {
		add("- %s: %.1f — %s (volatility %.0f/100)", c.Label, c.Score.Percentage, c.ZoneLine, c.Score.Volatility)
		if c.HasCause() {
			add("  Volatility here comes from inconsistency between: “%s” and “%s”.", c.Strongest, c.Weakest)
		}
	}
	if r.Verdict == "" {
		return out
	}

	add("")
	add("%s", r.Verdict)
	add("")
	add("Where you are")
	add("- What’s holding steady: %s (%.1f)", r.HoldingSteady.Label, r.HoldingSteady.Score.Percentage)
	add("- Where pressure is building: %s (%.1f) — %s",
		r.PressureBuilding.Label, r.PressureBuilding.Score.Percentage, r.PressureBuilding.Score.Zone.Describe())
	add("%s", r.Summary)
	add("")
	add("What’s dragging you down (lowest signals)")
	for _, s := range r.Signals {
		add("- %s", s.Text)
		add("  ↳ signal %d/4 (weight %s)", s.Effective, formatWeight(s.Weight))
	}
	if r.Lever != "" {
		add("")
		add("Start here (smallest stabilizing lever)")
		add("Start here: %s", r.Lever)
		add("You’re not fixing everything at once. You’re stabilizing the weakest point first.")
	}
	if len(r.Focus) > 0 {
		add("")
		add("Continue evaluation focus")
		add("- The next %d follow-ups lean into these areas:", r.FollowupCount)
		for _, f := range r.Focus {
			add("  - %s", f)
		}
	}
	return out
}

// String joins Lines with newlines.
func (r Readout) String() string {
	return strings.Join(r.Lines(), "\n")
}

func formatWeight(w float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", w), "0"), ".")
}
