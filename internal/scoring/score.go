package scoring

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/abhisek/trifactor/internal/catalog"
)

// Answers maps a question ID to its raw 0-4 answer.
type Answers map[string]int

// CategoryScore is the derived score of one category.
type CategoryScore struct {
	Percentage float64 // 0-100
	Zone       Zone
	Volatility float64 // 0-100
	Answered   int
}

// RankedAnswer is one answered question with its effective score.
type RankedAnswer struct {
	Category  catalog.Category
	Effective int
	Weight    float64
	Question  catalog.Question
	Raw       int
}

// Result is the output of a scoring pass.
type Result struct {
	Overall    float64
	Categories map[catalog.Category]CategoryScore
	// Ranked is sorted ascending by effective score, ties broken by
	// descending weight.
	Ranked []RankedAnswer
}

// Empty reports whether no category was scored.
func (r Result) Empty() bool {
	return len(r.Categories) == 0
}

// Effective normalizes a raw answer so higher always means healthier.
func Effective(q catalog.Question, raw int) int {
	if q.Reverse {
		return catalog.MaxAnswer - raw
	}
	return raw
}

type accumulator struct {
	num     float64
	den     float64
	samples stats.Float64Data
}

// Score computes per-category and overall scores from the asked questions
// and the answers recorded for them. Unanswered questions are skipped.
// Raw answers are assumed to be in range; callers validate at input time.
func Score(questions []catalog.Question, answers Answers) Result {
	acc := make(map[catalog.Category]*accumulator)
	var ranked []RankedAnswer

	for _, q := range questions {
		raw, ok := answers[q.ID]
		if !ok {
			continue
		}
		s := Effective(q, raw)

		a := acc[q.Category]
		if a == nil {
			a = &accumulator{}
			acc[q.Category] = a
		}
		a.num += float64(s) * q.Weight
		a.den += q.Weight
		a.samples = append(a.samples, float64(s))

		ranked = append(ranked, RankedAnswer{
			Category:  q.Category,
			Effective: s,
			Weight:    q.Weight,
			Question:  q,
			Raw:       raw,
		})
	}

	cats := make(map[catalog.Category]CategoryScore, len(acc))
	var overallNum, overallDen float64
	for _, c := range catalog.AllCategories() {
		a, ok := acc[c]
		if !ok {
			continue
		}
		den := a.den
		if den == 0 {
			den = 1.0
		}
		pct := (a.num / den) / float64(catalog.MaxAnswer) * 100.0

		vol := 0.0
		if len(a.samples) >= 2 {
			sd, err := stats.StandardDeviationPopulation(a.samples)
			if err == nil {
				vol = clamp(sd/2.0*100.0, 0, 100)
			}
		}

		cats[c] = CategoryScore{
			Percentage: pct,
			Zone:       ZoneFor(pct),
			Volatility: vol,
			Answered:   len(a.samples),
		}

		w := CategoryWeight(c)
		overallNum += pct * w
		overallDen += w
	}

	var overall float64
	if overallDen > 0 {
		overall = overallNum / overallDen
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Effective != ranked[j].Effective {
			return ranked[i].Effective < ranked[j].Effective
		}
		return ranked[i].Weight > ranked[j].Weight
	})

	return Result{
		Overall:    overall,
		Categories: cats,
		Ranked:     ranked,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
