package catalog

import "fmt"

var categoryLabels = map[Lens]map[Category]string{
	LensInterpersonal: {
		CategoryBaseline:   "Emotional baseline under contact",
		CategoryClarity:    "What you want / what’s true",
		CategoryResources:  "Support + emotional bandwidth",
		CategoryBoundaries: "Limits + self-respect in action",
		CategoryExecution:  "Having the talk / doing the thing",
		CategoryFeedback:   "Repair, learning, reality-checking",
	},
	LensFinancial: {
		CategoryBaseline:   "Stability under money stress",
		CategoryClarity:    "Numbers + priorities clarity",
		CategoryResources:  "Income/buffer/tooling",
		CategoryBoundaries: "Spending boundaries + exposure control",
		CategoryExecution:  "Bills/actions actually done",
		CategoryFeedback:   "Review, adjust, remove leaks",
	},
	LensBigPicture: {
		CategoryBaseline:   "Stability + momentum",
		CategoryClarity:    "North star + next step",
		CategoryResources:  "Energy/support/environment",
		CategoryBoundaries: "Focus protection + saying no",
		CategoryExecution:  "Shipping + completion",
		CategoryFeedback:   "Measurement + iteration",
	},
}

// CategoryLabel translates a category into the wording of a lens.
// Unknown lenses fall back to the category name.
func CategoryLabel(l Lens, c Category) string {
	if label, ok := categoryLabels[l][c]; ok {
		return label
	}
	return c.String()
}

// Intro returns the one-line framing shown at the top of a readout.
func (l Lens) Intro() string {
	switch l {
	case LensInterpersonal:
		return "Interpreting through relationship dynamics: tension, clarity, boundaries, follow-through."
	case LensFinancial:
		return "Interpreting through money stability + control: clarity, buffer, boundaries, execution."
	default:
		return "Interpreting through mission control: clarity, focus, resources, execution, feedback loops."
	}
}

// PressureSummary explains what a low score in the given area usually means
// for this lens.
func (l Lens) PressureSummary(lowestLabel string) string {
	switch l {
	case LensInterpersonal:
		return fmt.Sprintf("It looks like %s is where relationship pressure is concentrating. "+
			"Usually that means you’re carrying too much, or things aren’t resolving cleanly.", lowestLabel)
	case LensFinancial:
		return fmt.Sprintf("It looks like %s is where money pressure is concentrating. "+
			"That’s usually a buffer/system issue, not a character flaw.", lowestLabel)
	default:
		return fmt.Sprintf("It looks like %s is where mission pressure is concentrating. "+
			"Usually the goal is real, but the structure/bandwidth isn’t matching it yet.", lowestLabel)
	}
}
