package followup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/scoring"
)

func scores(pcts map[catalog.Category]float64) map[catalog.Category]scoring.CategoryScore {
	out := make(map[catalog.Category]scoring.CategoryScore, len(pcts))
	for c, p := range pcts {
		out[c] = scoring.CategoryScore{Percentage: p, Zone: scoring.ZoneFor(p), Answered: 1}
	}
	return out
}

func TestChooseTargets(t *testing.T) {
	tests := []struct {
		name string
		in   map[catalog.Category]float64
		want []catalog.Category
	}{
		{
			name: "single category",
			in:   map[catalog.Category]float64{catalog.CategoryFeedback: 90},
			want: []catalog.Category{catalog.CategoryFeedback},
		},
		{
			name: "all green keeps only lowest",
			in: map[catalog.Category]float64{
				catalog.CategoryBaseline: 80,
				catalog.CategoryClarity:  75,
				catalog.CategoryFeedback: 95,
			},
			want: []catalog.Category{catalog.CategoryClarity},
		},
		{
			name: "yellow backfill to two",
			in: map[catalog.Category]float64{
				catalog.CategoryBaseline:   60,
				catalog.CategoryClarity:    50,
				catalog.CategoryResources:  65,
				catalog.CategoryBoundaries: 90,
			},
			want: []catalog.Category{catalog.CategoryClarity, catalog.CategoryBaseline},
		},
		{
			name: "lowest red plus yellow",
			in: map[catalog.Category]float64{
				catalog.CategoryExecution: 20,
				catalog.CategoryFeedback:  55,
				catalog.CategoryBaseline:  85,
			},
			want: []catalog.Category{catalog.CategoryExecution, catalog.CategoryFeedback},
		},
		{
			name: "reds capped at three",
			in: map[catalog.Category]float64{
				catalog.CategoryBaseline:   10,
				catalog.CategoryClarity:    30,
				catalog.CategoryResources:  5,
				catalog.CategoryBoundaries: 40,
				catalog.CategoryExecution:  60,
			},
			want: []catalog.Category{catalog.CategoryResources, catalog.CategoryBaseline, catalog.CategoryClarity},
		},
		{
			name: "two reds skip yellow",
			in: map[catalog.Category]float64{
				catalog.CategoryClarity:   30,
				catalog.CategoryFeedback:  20,
				catalog.CategoryExecution: 50,
			},
			want: []catalog.Category{catalog.CategoryFeedback, catalog.CategoryClarity},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseTargets(scores(tt.in)))
		})
	}
}

func TestChooseTargets_Empty(t *testing.T) {
	assert.Nil(t, ChooseTargets(nil))
}

func TestChooseTargets_LowestFirstAndBounded(t *testing.T) {
	pcts := []float64{0, 12.5, 44.9, 45, 60, 69.9, 70, 88, 100}
	cats := catalog.AllCategories()
	for offset := range pcts {
		in := map[catalog.Category]float64{}
		for i, c := range cats {
			in[c] = pcts[(i*5+offset)%len(pcts)]
		}
		got := ChooseTargets(scores(in))
		assert.GreaterOrEqual(t, len(got), 1)
		assert.LessOrEqual(t, len(got), MaxTargets)

		lowest, _ := scoring.Result{Categories: scores(in)}.Lowest()
		assert.Equal(t, lowest.Category, got[0], "offset=%d", offset)
	}
}
