package scoring

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trifactor/internal/catalog"
)

func q(id string, cat catalog.Category, weight float64, reverse bool) catalog.Question {
	return catalog.Question{ID: id, Text: "question " + id, Category: cat, Weight: weight, Reverse: reverse}
}

func TestScore_FinancialScenario(t *testing.T) {
	questions := []catalog.Question{
		q("c1", catalog.CategoryClarity, 1.3, false),
		q("c2", catalog.CategoryClarity, 1.2, true),
		q("b1", catalog.CategoryBaseline, 1.3, false),
	}
	answers := Answers{"c1": 4, "c2": 0, "b1": 2}

	res := Score(questions, answers)

	require.Len(t, res.Categories, 2)
	clarity := res.Categories[catalog.CategoryClarity]
	baseline := res.Categories[catalog.CategoryBaseline]
	assert.InDelta(t, 100.0, clarity.Percentage, 1e-9)
	assert.InDelta(t, 50.0, baseline.Percentage, 1e-9)
	assert.InDelta(t, 0.0, clarity.Volatility, 1e-9)
	assert.Equal(t, ZoneGreen, clarity.Zone)
	assert.Equal(t, ZoneYellow, baseline.Zone)
	assert.Equal(t, 2, clarity.Answered)

	// Overall uses the fixed category weights: (50*1.2 + 100*1.1) / 2.3.
	assert.InDelta(t, (50*1.2+100*1.1)/2.3, res.Overall, 1e-9)
}

func TestScore_ReverseEquivalence(t *testing.T) {
	questions := []catalog.Question{
		q("r", catalog.CategoryBoundaries, 1.1, true),
		q("n", catalog.CategoryExecution, 1.1, false),
	}
	res := Score(questions, Answers{"r": 0, "n": 4})

	assert.Equal(t, res.Categories[catalog.CategoryBoundaries].Percentage,
		res.Categories[catalog.CategoryExecution].Percentage)
	for _, ra := range res.Ranked {
		assert.Equal(t, 4, ra.Effective, "question %s", ra.Question.ID)
	}
}

func TestScore_SingleAnswerHasNoVolatility(t *testing.T) {
	for raw := 0; raw <= 4; raw++ {
		res := Score([]catalog.Question{q("x", catalog.CategoryFeedback, 1.0, false)}, Answers{"x": raw})
		assert.Zero(t, res.Categories[catalog.CategoryFeedback].Volatility, "raw=%d", raw)
	}
}

func TestScore_Volatility(t *testing.T) {
	questions := []catalog.Question{
		q("a", catalog.CategoryResources, 1.0, false),
		q("b", catalog.CategoryResources, 1.0, false),
	}
	// Effective scores 0 and 4: population stdev 2, which maps to 100.
	res := Score(questions, Answers{"a": 0, "b": 4})
	assert.InDelta(t, 100.0, res.Categories[catalog.CategoryResources].Volatility, 1e-9)

	// Effective scores 1 and 3: stdev 1 maps to 50.
	res = Score(questions, Answers{"a": 1, "b": 3})
	assert.InDelta(t, 50.0, res.Categories[catalog.CategoryResources].Volatility, 1e-9)
}

func TestScore_VolatilityIgnoresWeights(t *testing.T) {
	questions := []catalog.Question{
		q("a", catalog.CategoryResources, 0.1, false),
		q("b", catalog.CategoryResources, 5.0, false),
	}
	res := Score(questions, Answers{"a": 1, "b": 3})
	assert.InDelta(t, 50.0, res.Categories[catalog.CategoryResources].Volatility, 1e-9)
}

func TestScore_PartialAnswers(t *testing.T) {
	questions := []catalog.Question{
		q("a", catalog.CategoryClarity, 1.0, false),
		q("b", catalog.CategoryExecution, 1.0, false),
	}
	res := Score(questions, Answers{"a": 3})
	require.Len(t, res.Categories, 1)
	_, ok := res.Categories[catalog.CategoryExecution]
	assert.False(t, ok, "unanswered category must be absent")
	assert.InDelta(t, 75.0, res.Overall, 1e-9)
	assert.Len(t, res.Ranked, 1)
}

func TestScore_Empty(t *testing.T) {
	res := Score([]catalog.Question{q("a", catalog.CategoryClarity, 1.0, false)}, Answers{})
	assert.True(t, res.Empty())
	assert.Zero(t, res.Overall)
	assert.Empty(t, res.Ranked)
}

func TestScore_RankingOrder(t *testing.T) {
	questions := []catalog.Question{
		q("hi", catalog.CategoryBaseline, 1.0, false),
		q("low-light", catalog.CategoryClarity, 1.0, false),
		q("low-heavy", catalog.CategoryFeedback, 1.4, false),
		q("mid", catalog.CategoryExecution, 1.2, true),
	}
	res := Score(questions, Answers{"hi": 4, "low-light": 0, "low-heavy": 0, "mid": 2})

	var ids []string
	for _, ra := range res.Ranked {
		ids = append(ids, ra.Question.ID)
	}
	assert.Equal(t, []string{"low-heavy", "low-light", "mid", "hi"}, ids)
}

func TestScore_MidpointRunIsFifty(t *testing.T) {
	var questions []catalog.Question
	answers := Answers{}
	all, err := catalog.Default().Questions(catalog.LensBigPicture)
	require.NoError(t, err)
	for _, qq := range all {
		if qq.Reverse {
			continue
		}
		questions = append(questions, qq)
		answers[qq.ID] = 2
		if len(questions) == 25 {
			break
		}
	}
	require.Len(t, questions, 25)

	res := Score(questions, answers)
	assert.InDelta(t, 50.0, res.Overall, 1e-9)
	for c, cs := range res.Categories {
		assert.InDelta(t, 50.0, cs.Percentage, 1e-9, "category %s", c)
		assert.Zero(t, cs.Volatility, "category %s", c)
	}
}

func TestScore_Bounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, lens := range catalog.AllLenses() {
		all, err := catalog.Default().Questions(lens)
		require.NoError(t, err)
		for trial := 0; trial < 200; trial++ {
			answers := Answers{}
			for _, qq := range all {
				if rng.IntN(3) == 0 {
					answers[qq.ID] = rng.IntN(5)
				}
			}
			res := Score(all, answers)
			assert.GreaterOrEqual(t, res.Overall, 0.0)
			assert.LessOrEqual(t, res.Overall, 100.0)
			for _, cs := range res.Categories {
				assert.GreaterOrEqual(t, cs.Percentage, 0.0)
				assert.LessOrEqual(t, cs.Percentage, 100.0)
				assert.GreaterOrEqual(t, cs.Volatility, 0.0)
				assert.LessOrEqual(t, cs.Volatility, 100.0)
			}
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	all, err := catalog.Default().Questions(catalog.LensInterpersonal)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))
	answers := Answers{}
	for _, qq := range all[:30] {
		answers[qq.ID] = rng.IntN(5)
	}

	first := Score(all, answers)
	second := Score(all, answers)
	assert.Equal(t, first, second)
}

func TestZoneFor_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want Zone
	}{
		{0, ZoneRed},
		{44.999, ZoneRed},
		{45.0, ZoneYellow},
		{69.999, ZoneYellow},
		{70.0, ZoneGreen},
		{100, ZoneGreen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneFor(tt.pct), "pct=%v", tt.pct)
	}
}
