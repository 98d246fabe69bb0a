package run

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/scoring"
)

func testMachine(t *testing.T, cat *catalog.Catalog) *Machine {
	t.Helper()
	n := 0
	return NewMachine(cat, Options{
		Rand: rand.New(rand.NewPCG(3, 5)),
		NewID: func() string {
			n++
			return fmt.Sprintf("run-%d", n)
		},
	})
}

// smallCatalog has 12 financial questions, two per category.
func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var qs []catalog.Question
	for _, c := range catalog.AllCategories() {
		for i := 0; i < 2; i++ {
			qs = append(qs, catalog.Question{
				ID:       fmt.Sprintf("%s-%d", c, i),
				Text:     fmt.Sprintf("%s question %d", c, i),
				Category: c,
				Weight:   1,
			})
		}
	}
	cat, err := catalog.New(map[catalog.Lens][]catalog.Question{catalog.LensFinancial: qs})
	require.NoError(t, err)
	return cat
}

func answerAll(t *testing.T, m *Machine, s RunState, v func(q catalog.Question) int) RunState {
	t.Helper()
	_, total := s.Position()
	for i := 0; i < total; i++ {
		q, _, _, ok := s.Current()
		require.True(t, ok)
		var err error
		s, err = m.Answer(s, v(q))
		require.NoError(t, err)
		s, err = m.Next(s)
		require.NoError(t, err)
	}
	return s
}

func TestSampleInitial(t *testing.T) {
	pool, err := catalog.Default().Questions(catalog.LensInterpersonal)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 1))

	qs, err := SampleInitial(pool, 25, rng)
	require.NoError(t, err)
	assert.Len(t, qs, 25)
	seen := map[string]bool{}
	for _, q := range qs {
		assert.False(t, seen[q.ID], "duplicate %s", q.ID)
		seen[q.ID] = true
	}

	qs, err = SampleInitial(pool[:7], 25, rng)
	require.NoError(t, err)
	assert.Len(t, qs, 7)

	_, err = SampleInitial(nil, 25, rng)
	assert.ErrorIs(t, err, catalog.ErrNoQuestions)
}

func TestStart(t *testing.T) {
	m := testMachine(t, nil)
	s, err := m.Start(New(), catalog.LensFinancial)
	require.NoError(t, err)

	assert.Equal(t, StageQuestions, s.Stage)
	assert.Equal(t, catalog.LensFinancial, s.Lens)
	assert.Equal(t, "run-1", s.ID)
	assert.Len(t, s.Questions, DefaultInitialCount)
	assert.Empty(t, s.Answers)
	assert.Zero(t, s.Index)
}

func TestStart_EmptyLens(t *testing.T) {
	m := testMachine(t, smallCatalog(t))
	s, err := m.Start(New(), catalog.LensBigPicture)
	assert.ErrorIs(t, err, catalog.ErrNoQuestions)
	assert.Equal(t, StageSetup, s.Stage)
}

func TestStart_OnlyFromSetup(t *testing.T) {
	m := testMachine(t, nil)
	s, err := m.Start(New(), catalog.LensFinancial)
	require.NoError(t, err)

	_, err = m.Start(s, catalog.LensFinancial)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StageQuestions, te.Stage)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAnswer_Validation(t *testing.T) {
	m := testMachine(t, nil)
	s, err := m.Start(New(), catalog.LensFinancial)
	require.NoError(t, err)

	for _, bad := range []int{-1, 5, 42} {
		_, err := m.Answer(s, bad)
		var ae *AnswerError
		require.ErrorAs(t, err, &ae, "value %d", bad)
		assert.Equal(t, bad, ae.Value)
		assert.True(t, errors.Is(err, ErrInvalidAnswer))
	}

	next, err := m.Answer(s, 3)
	require.NoError(t, err)
	assert.Empty(t, s.Answers, "input state must not change")
	assert.Equal(t, 3, next.Answers[s.Questions[0].ID])

	next, err = m.Answer(next, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Answers[s.Questions[0].ID], "answers are overwritable")
	assert.Len(t, next.Answers, 1)
}

func TestNavigation_Clamped(t *testing.T) {
	m := testMachine(t, nil)
	s, err := m.Start(New(), catalog.LensBigPicture)
	require.NoError(t, err)

	s, err = m.Back(s)
	require.NoError(t, err)
	assert.Zero(t, s.Index)

	for i := 0; i < 40; i++ {
		s, err = m.Next(s)
		require.NoError(t, err)
	}
	assert.Equal(t, len(s.Questions)-1, s.Index)

	s, err = m.Back(s)
	require.NoError(t, err)
	assert.Equal(t, len(s.Questions)-2, s.Index)
}

func TestFinish_RequiresAnAnswer(t *testing.T) {
	m := testMachine(t, nil)
	s, err := m.Start(New(), catalog.LensInterpersonal)
	require.NoError(t, err)

	_, err = m.Finish(s)
	assert.ErrorIs(t, err, ErrNoAnswers)

	s, err = m.Answer(s, 0)
	require.NoError(t, err)
	s, err = m.Finish(s)
	require.NoError(t, err)
	assert.Equal(t, StageResults, s.Stage)
	assert.Len(t, s.Result().Ranked, 1)
	assert.Equal(t, PhaseInitial, s.Phase())
}

func TestBeginFollowups_ExcludesAsked(t *testing.T) {
	m := testMachine(t, nil)
	s, err := m.Start(New(), catalog.LensFinancial)
	require.NoError(t, err)
	s = answerAll(t, m, s, func(q catalog.Question) int {
		if q.Category == catalog.CategoryBoundaries {
			return scoring.Effective(q, 0)
		}
		return scoring.Effective(q, 4)
	})
	s, err = m.Finish(s)
	require.NoError(t, err)

	s, err = m.BeginFollowups(s)
	require.NoError(t, err)
	assert.Equal(t, StageFollowups, s.Stage)
	assert.Equal(t, 1, s.Round)
	require.NotEmpty(t, s.Targets)
	assert.Len(t, s.Followups, 10)
	assert.Empty(t, s.Repeats)

	asked := map[string]bool{}
	for _, q := range s.Questions {
		asked[q.ID] = true
	}
	for _, it := range s.Followups {
		assert.False(t, asked[it.Question.ID], "follow-up %s already asked", it.Question.ID)
		assert.False(t, it.Answered)
	}
}

func TestFollowups_SmallCatalogRepeats(t *testing.T) {
	m := testMachine(t, smallCatalog(t))
	s, err := m.Start(New(), catalog.LensFinancial)
	require.NoError(t, err)
	require.Len(t, s.Questions, 12)

	s = answerAll(t, m, s, func(catalog.Question) int { return 2 })
	s, err = m.Finish(s)
	require.NoError(t, err)
	s, err = m.BeginFollowups(s)
	require.NoError(t, err)

	assert.Len(t, s.Followups, 10)
	assert.Len(t, s.Repeats, 10)
}

func TestFollowups_RepeatedIDsHaveIndependentSlots(t *testing.T) {
	m := testMachine(t, nil)
	q := catalog.Question{ID: "dup", Text: "t", Category: catalog.CategoryClarity, Weight: 1}
	s := RunState{
		Stage:     StageFollowups,
		Lens:      catalog.LensFinancial,
		Answers:   scoring.Answers{},
		Followups: []FollowupItem{{Question: q}, {Question: q}},
	}

	s, err := m.Answer(s, 0)
	require.NoError(t, err)
	s, err = m.Next(s)
	require.NoError(t, err)
	s, err = m.Answer(s, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Followups[0].Answer)
	assert.Equal(t, 4, s.Followups[1].Answer)

	s, err = m.FinishFollowups(s)
	require.NoError(t, err)
	qs, answers := s.Combined()
	assert.Len(t, qs, 1)
	assert.Equal(t, 4, answers["dup"], "later position wins")
}

func TestMerge(t *testing.T) {
	a := catalog.Question{ID: "a", Category: catalog.CategoryBaseline, Weight: 1}
	b := catalog.Question{ID: "b", Category: catalog.CategoryClarity, Weight: 1}
	c := catalog.Question{ID: "c", Category: catalog.CategoryFeedback, Weight: 1}

	base := scoring.Answers{"a": 1, "b": 2}
	qs, answers := Merge([]catalog.Question{a, b}, base, []FollowupItem{
		{Question: b, Answer: 4, Answered: true},
		{Question: c, Answer: 3, Answered: true},
		{Question: a},
	})

	assert.Equal(t, []catalog.Question{a, b, c}, qs)
	assert.Equal(t, scoring.Answers{"a": 1, "b": 4, "c": 3}, answers)
	assert.Equal(t, scoring.Answers{"a": 1, "b": 2}, base, "base answers must not change")
}

func TestFlow_EndToEnd(t *testing.T) {
	m := testMachine(t, nil)
	s := New()
	var err error

	s, err = m.Start(s, catalog.LensFinancial)
	require.NoError(t, err)
	s = answerAll(t, m, s, func(q catalog.Question) int {
		if q.Category == catalog.CategoryExecution {
			return scoring.Effective(q, 0)
		}
		return scoring.Effective(q, 3)
	})
	s, err = m.Finish(s)
	require.NoError(t, err)
	initial := s.Result()
	if _, ok := initial.Categories[catalog.CategoryExecution]; ok {
		low, _ := initial.Lowest()
		assert.Equal(t, catalog.CategoryExecution, low.Category)
	}

	s, err = m.BeginFollowups(s)
	require.NoError(t, err)
	assert.Equal(t, initial.Sorted()[0].Category, s.Targets[0])
	s = answerAll(t, m, s, func(catalog.Question) int { return 1 })

	s, err = m.FinishFollowups(s)
	require.NoError(t, err)
	assert.Equal(t, StageExportForm, s.Stage)
	assert.Equal(t, PhaseFollowup, s.Phase())

	combinedQs, combined := s.Combined()
	assert.Len(t, combinedQs, 35)
	assert.Len(t, combined, 35)

	s, err = m.Confirm(s)
	require.NoError(t, err)
	assert.Equal(t, StageResults2, s.Stage)

	s, err = m.AnotherRound(s)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Round)
	require.Len(t, s.Completed, 1)
	assert.Len(t, s.Followups, 10)
	asked := map[string]bool{}
	for _, q := range combinedQs {
		asked[q.ID] = true
	}
	for _, it := range s.Followups {
		assert.False(t, asked[it.Question.ID], "second round re-asked %s", it.Question.ID)
	}

	s = answerAll(t, m, s, func(catalog.Question) int { return 2 })
	s, err = m.FinishFollowups(s)
	require.NoError(t, err)
	qs, answers := s.Combined()
	assert.Len(t, qs, 45)
	assert.Len(t, answers, 45)

	s, err = m.Confirm(s)
	require.NoError(t, err)
	s, err = m.NewRun(s)
	require.NoError(t, err)
	assert.Equal(t, StageQuestions, s.Stage)
	assert.Equal(t, catalog.LensFinancial, s.Lens)
	assert.Equal(t, "run-2", s.ID)
	assert.Empty(t, s.Answers)
	assert.Empty(t, s.Completed)
	assert.Empty(t, s.Followups)
	assert.Zero(t, s.Round)

	s, err = m.Reset(s)
	require.NoError(t, err)
	assert.Equal(t, New(), s)
}

func TestGuards(t *testing.T) {
	m := testMachine(t, nil)
	setup := New()

	tests := []struct {
		name string
		fn   func(RunState) (RunState, error)
	}{
		{"next", m.Next},
		{"back", m.Back},
		{"finish", m.Finish},
		{"begin follow-ups", m.BeginFollowups},
		{"finish follow-ups", m.FinishFollowups},
		{"confirm", m.Confirm},
		{"another round", m.AnotherRound},
		{"new run", m.NewRun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(setup)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, setup, got)
		})
	}

	_, err := m.Answer(setup, 2)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "export_form", StageExportForm.String())
	assert.Equal(t, "unknown", Stage(99).String())
	assert.True(t, StageFollowups.Answering())
	assert.True(t, StageResults2.Scored())
	assert.False(t, StageSetup.Scored())
}
