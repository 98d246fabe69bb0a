package readout

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/run"
)

func answerStage(t *testing.T, m *run.Machine, s run.RunState, v int) run.RunState {
	t.Helper()
	_, total := s.Position()
	for i := 0; i < total; i++ {
		var err error
		s, err = m.Answer(s, v)
		require.NoError(t, err)
		s, err = m.Next(s)
		require.NoError(t, err)
	}
	return s
}

func TestForState(t *testing.T) {
	n := 0
	m := run.NewMachine(nil, run.Options{
		Rand:  rand.New(rand.NewPCG(9, 9)),
		NewID: func() string { n++; return fmt.Sprintf("r%d", n) },
	})

	s, err := m.Start(run.New(), catalog.LensBigPicture)
	require.NoError(t, err)
	_, ok := ForState(s, 0)
	assert.False(t, ok, "answering stages have no readout")

	s = answerStage(t, m, s, 1)
	s, err = m.Finish(s)
	require.NoError(t, err)

	r, ok := ForState(s, 0)
	require.True(t, ok)
	assert.Equal(t, "Readout (after 25 questions)", r.Title)
	assert.Equal(t, 10, r.FollowupCount)

	s, err = m.BeginFollowups(s)
	require.NoError(t, err)
	s = answerStage(t, m, s, 3)
	s, err = m.FinishFollowups(s)
	require.NoError(t, err)

	r, ok = ForState(s, 6)
	require.True(t, ok)
	assert.Equal(t, "Readout (after 25 + 10 follow-ups) — preview", r.Title)
	assert.Equal(t, 6, r.FollowupCount)

	s, err = m.Confirm(s)
	require.NoError(t, err)
	r, _ = ForState(s, 0)
	assert.Equal(t, "Readout (after 25 + 10 follow-ups)", r.Title)

	s, err = m.AnotherRound(s)
	require.NoError(t, err)
	s = answerStage(t, m, s, 3)
	s, err = m.FinishFollowups(s)
	require.NoError(t, err)
	r, _ = ForState(s, 0)
	assert.Equal(t, "Readout (after 25 + 20 follow-ups) — preview", r.Title)
}
