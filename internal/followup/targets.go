// Package followup chooses which categories a follow-up round focuses on
// and which questions it asks.
package followup

import (
	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/scoring"
)

const (
	// MinTargets is the focus size YELLOW categories are backfilled up to.
	MinTargets = 2

	// MaxTargets caps the number of target categories.
	MaxTargets = 3
)

// ChooseTargets returns the categories a follow-up round should focus on.
// The lowest-scoring category always comes first, followed by any other RED
// categories. When that yields fewer than MinTargets, YELLOW categories are
// added until MinTargets is reached. The result never exceeds MaxTargets.
// Ties and secondary picks follow display order.
func ChooseTargets(categories map[catalog.Category]scoring.CategoryScore) []catalog.Category {
	if len(categories) == 0 {
		return nil
	}

	lowest, _ := scoring.Result{Categories: categories}.Lowest()
	targets := []catalog.Category{lowest.Category}

	for _, c := range catalog.AllCategories() {
		cs, ok := categories[c]
		if !ok || c == lowest.Category {
			continue
		}
		if cs.Zone == scoring.ZoneRed {
			targets = append(targets, c)
		}
	}

	if len(targets) < MinTargets {
		for _, c := range catalog.AllCategories() {
			cs, ok := categories[c]
			if !ok || c == lowest.Category || cs.Zone != scoring.ZoneYellow {
				continue
			}
			targets = append(targets, c)
			if len(targets) >= MinTargets {
				break
			}
		}
	}

	if len(targets) > MaxTargets {
		targets = targets[:MaxTargets]
	}
	return targets
}
