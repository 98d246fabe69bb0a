package scoring

import (
	"sort"

	"github.com/abhisek/trifactor/internal/catalog"
)

// CategoryRank pairs a category with its score for ordered display.
type CategoryRank struct {
	Category catalog.Category
	Score    CategoryScore
}

// Sorted returns the scored categories ascending by percentage. Ties keep
// display order.
func (r Result) Sorted() []CategoryRank {
	out := make([]CategoryRank, 0, len(r.Categories))
	for _, c := range catalog.AllCategories() {
		if cs, ok := r.Categories[c]; ok {
			out = append(out, CategoryRank{Category: c, Score: cs})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.Percentage < out[j].Score.Percentage
	})
	return out
}

// Lowest returns the lowest-scoring category.
func (r Result) Lowest() (CategoryRank, bool) {
	sorted := r.Sorted()
	if len(sorted) == 0 {
		return CategoryRank{}, false
	}
	return sorted[0], true
}

// Highest returns the highest-scoring category.
func (r Result) Highest() (CategoryRank, bool) {
	sorted := r.Sorted()
	if len(sorted) == 0 {
		return CategoryRank{}, false
	}
	return sorted[len(sorted)-1], true
}

// LowestSignals returns up to n of the most concerning answers.
func (r Result) LowestSignals(n int) []RankedAnswer {
	if n > len(r.Ranked) {
		n = len(r.Ranked)
	}
	if n <= 0 {
		return nil
	}
	return r.Ranked[:n]
}

// InCategory returns the ranked answers of one category, preserving rank order.
func (r Result) InCategory(c catalog.Category) []RankedAnswer {
	var out []RankedAnswer
	for _, ra := range r.Ranked {
		if ra.Category == c {
			out = append(out, ra)
		}
	}
	return out
}

// Lever returns the single answer to work on first: the most concerning
// answer within the lowest-scoring category.
func (r Result) Lever() (RankedAnswer, bool) {
	low, ok := r.Lowest()
	if !ok {
		return RankedAnswer{}, false
	}
	items := r.InCategory(low.Category)
	if len(items) == 0 {
		return RankedAnswer{}, false
	}
	return items[0], true
}

// VolatilitySpread is the minimum effective-score gap between two answers
// in a category before the pair is reported as the source of volatility.
const VolatilitySpread = 2

// VolatilityCause returns the strongest and weakest answers in a category
// when they disagree by at least VolatilitySpread points.
func (r Result) VolatilityCause(c catalog.Category) (strongest, weakest RankedAnswer, ok bool) {
	items := r.InCategory(c)
	if len(items) < 2 {
		return RankedAnswer{}, RankedAnswer{}, false
	}
	weakest = items[0]
	strongest = items[0]
	for _, it := range items[1:] {
		if it.Effective > strongest.Effective {
			strongest = it
		}
	}
	if strongest.Effective-weakest.Effective < VolatilitySpread {
		return RankedAnswer{}, RankedAnswer{}, false
	}
	return strongest, weakest, true
}
