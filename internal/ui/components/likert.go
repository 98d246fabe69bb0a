package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/ui/theme"
)

// Likert is a single-choice picker over the 0-4 answer scale.
type Likert struct {
	Selected int
}

// NewLikert creates a picker showing value. Out-of-range values fall back to
// the scale midpoint.
func NewLikert(value int) Likert {
	if value < catalog.MinAnswer || value > catalog.MaxAnswer {
		value = catalog.DefaultAnswer
	}
	return Likert{Selected: value}
}

// Update handles arrow keys and direct digit entry.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if l.Selected > catalog.MinAnswer {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < catalog.MaxAnswer {
			l.Selected++
		}
	default:
		if v, err := strconv.Atoi(key); err == nil && v >= catalog.MinAnswer && v <= catalog.MaxAnswer {
			l.Selected = v
		}
	}
	return l, nil
}

// View renders the scale with the selected value highlighted.
func (l Likert) View() string {
	var b strings.Builder
	for _, v := range catalog.ScaleValues() {
		label := catalog.ScaleLabel(v)
		if v == l.Selected {
			b.WriteString(theme.Selected.Render("▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
