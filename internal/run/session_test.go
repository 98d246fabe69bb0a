package run

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trifactor/internal/catalog"
)

func TestSession_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sess := NewSession(testMachine(t, nil), logger)

	require.NoError(t, sess.Start(catalog.LensBigPicture))
	require.NoError(t, sess.Answer(4))
	require.NoError(t, sess.Next())
	require.NoError(t, sess.Finish())

	var transitions []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] == "run transition" {
			transitions = append(transitions, rec)
		}
	}
	require.Len(t, transitions, 2)
	assert.Equal(t, "setup", transitions[0]["from"])
	assert.Equal(t, "questions", transitions[0]["to"])
	assert.Equal(t, "big-picture", transitions[0]["lens"])
	assert.Equal(t, "run-1", transitions[0]["run_id"])
	assert.Equal(t, "results", transitions[1]["to"])
}

func TestSession_RejectedTransitionKeepsState(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(testMachine(t, nil), slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, sess.Start(catalog.LensInterpersonal))
	before := sess.State()

	assert.ErrorIs(t, sess.Answer(9), ErrInvalidAnswer)
	assert.ErrorIs(t, sess.Confirm(), ErrInvalidTransition)
	assert.Equal(t, before, sess.State())
	assert.Contains(t, buf.String(), "transition rejected")
}

func TestSession_StateIsACopy(t *testing.T) {
	sess := NewSession(testMachine(t, nil), nil)
	require.NoError(t, sess.Start(catalog.LensFinancial))
	require.NoError(t, sess.Answer(2))

	st := sess.State()
	st.Answers["tampered"] = 1
	st.Questions[0].Text = "tampered"

	again := sess.State()
	assert.NotContains(t, again.Answers, "tampered")
	assert.NotEqual(t, "tampered", again.Questions[0].Text)
}

func TestSession_RepeatNoticeLogged(t *testing.T) {
	var buf bytes.Buffer
	sess := NewSession(testMachine(t, smallCatalog(t)), slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, sess.Start(catalog.LensFinancial))
	require.NoError(t, sess.Answer(1))
	require.NoError(t, sess.Finish())
	require.NoError(t, sess.BeginFollowups())

	assert.True(t, len(sess.State().Repeats) > 0)
	assert.Contains(t, buf.String(), "follow-ups repeat earlier questions")
}

func TestSession_ResetClearsLens(t *testing.T) {
	sess := NewSession(testMachine(t, nil), nil)
	require.NoError(t, sess.Start(catalog.LensFinancial))
	require.NoError(t, sess.Reset())

	st := sess.State()
	assert.Equal(t, StageSetup, st.Stage)
	assert.Empty(t, st.Lens)
	assert.Empty(t, st.ID)
}
