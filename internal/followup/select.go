package followup

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/trifactor/internal/catalog"
)

// DefaultCount is the number of questions in a follow-up round.
const DefaultCount = 10

// Selection is the outcome of a follow-up pick.
type Selection struct {
	Questions []catalog.Question

	// Repeats lists the IDs of selected questions that were already asked
	// earlier in the run. Non-empty only when the unused pool ran short.
	Repeats []string
}

// HasRepeats reports whether the selection re-asks earlier questions.
func (s Selection) HasRepeats() bool {
	return len(s.Repeats) > 0
}

// Short reports whether fewer than n questions could be selected.
func (s Selection) Short(n int) bool {
	return len(s.Questions) < n
}

// Select picks up to n questions from pool, favouring the target
// categories and questions not in exclude. Candidates are drawn in four
// tiers, each shuffled independently and used only when the tiers before it
// could not fill the quota:
//
//  1. unused questions in a target category
//  2. any other unused question
//  3. used questions in a target category
//  4. anything left
//
// A question is never picked twice, so the result holds exactly
// min(n, len(pool)) questions.
func Select(pool []catalog.Question, targets []catalog.Category, exclude map[string]bool, n int, rng *rand.Rand) (Selection, error) {
	if len(pool) == 0 {
		return Selection{}, fmt.Errorf("follow-up selection: %w", catalog.ErrNoQuestions)
	}
	if n <= 0 {
		return Selection{}, nil
	}

	targeted := func(q catalog.Question) bool {
		return slices.Contains(targets, q.Category)
	}
	tiers := []func(q catalog.Question) bool{
		func(q catalog.Question) bool { return !exclude[q.ID] && targeted(q) },
		func(q catalog.Question) bool { return !exclude[q.ID] },
		func(q catalog.Question) bool { return targeted(q) },
		func(catalog.Question) bool { return true },
	}

	picked := make(map[int]bool, n)
	var sel Selection
	for _, match := range tiers {
		if len(sel.Questions) >= n {
			break
		}
		var candidates []int
		for i, q := range pool {
			if !picked[i] && match(q) {
				candidates = append(candidates, i)
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, i := range candidates {
			if len(sel.Questions) >= n {
				break
			}
			picked[i] = true
			q := pool[i]
			sel.Questions = append(sel.Questions, q)
			if exclude[q.ID] {
				sel.Repeats = append(sel.Repeats, q.ID)
			}
		}
	}
	return sel, nil
}
