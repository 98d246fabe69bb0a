package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/export"
	"github.com/abhisek/trifactor/internal/run"
)

func newLineQuiz(t *testing.T, input string) (*lineQuiz, *bytes.Buffer) {
	t.Helper()
	m := run.NewMachine(nil, run.Options{
		InitialCount:  3,
		FollowupCount: 2,
		Rand:          rand.New(rand.NewPCG(11, 13)),
		NewID:         func() string { return "run-1" },
	})
	var out bytes.Buffer
	return &lineQuiz{
		session:   run.NewSession(m, slog.New(slog.NewTextHandler(io.Discard, nil))),
		in:        bufio.NewScanner(strings.NewReader(input)),
		out:       &out,
		exportDir: t.TempDir(),
	}, &out
}

func TestLineQuiz_FullFlow(t *testing.T) {
	input := strings.Join([]string{
		"4", "", "0", // initial questions
		"j",      // print JSON
		"",       // follow-ups
		"1", "1", // follow-up answers
		"s",      // save from the export form
		"",       // final readout
		"q",
	}, "\n") + "\n"
	q, out := newLineQuiz(t, input)

	require.NoError(t, q.run(catalog.LensFinancial))

	text := out.String()
	for _, want := range []string{
		"[1/3] Measures:",
		"Readout (after 3 questions)",
		`"phase": "after_25"`,
		"Follow-up round 1, [1/2]",
		"Readout (after 3 + 2 follow-ups) — preview",
		"Saved ",
		"[enter] another round",
	} {
		assert.Contains(t, text, want)
	}

	st := q.session.State()
	assert.Equal(t, run.StageResults2, st.Stage)
	_, answers := st.Combined()
	assert.Len(t, answers, 5)

	files, err := filepath.Glob(filepath.Join(q.exportDir, "trifactor-run-1-*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	raw, err := os.ReadFile(files[0])
	require.NoError(t, err)
	snap, err := export.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, run.PhaseFollowup, snap.Phase)
}

func TestLineQuiz_EmptyLineRecordsShownValue(t *testing.T) {
	q, _ := newLineQuiz(t, "\nq\n")
	require.NoError(t, q.run(catalog.LensBigPicture))

	st := q.session.State()
	assert.Equal(t, catalog.DefaultAnswer, st.Answers[st.Questions[0].ID])
}

func TestLineQuiz_InputErrors(t *testing.T) {
	q, out := newLineQuiz(t, "f\n7\nmaybe\nq\n")
	require.NoError(t, q.run(catalog.LensInterpersonal))

	text := out.String()
	assert.Contains(t, text, "Answer at least one question first.")
	assert.Equal(t, 2, strings.Count(text, "Answers run from 0 to 4."))
	assert.Equal(t, run.StageQuestions, q.session.State().Stage)
}

func TestLineQuiz_ChooseLens(t *testing.T) {
	q, out := newLineQuiz(t, "9\n2\nq\n")
	require.NoError(t, q.run(""))

	assert.Contains(t, out.String(), "Pick 1-3.")
	assert.Equal(t, catalog.LensFinancial, q.session.State().Lens)
}

func TestLineQuiz_InputClosed(t *testing.T) {
	q, out := newLineQuiz(t, "3\n")
	require.NoError(t, q.run(catalog.LensFinancial))
	assert.Contains(t, out.String(), "(input closed)")
}

func TestScoreAnswers_PlainMap(t *testing.T) {
	pool, err := catalog.Default().Questions(catalog.LensFinancial)
	require.NoError(t, err)
	raw := fmt.Sprintf(`{%q: 4, %q: 0}`, pool[0].ID, pool[1].ID)

	var out bytes.Buffer
	require.NoError(t, scoreAnswers(&out, []byte(raw), "financial", false))
	assert.Contains(t, out.String(), "Readout (after 2 questions)")
	assert.Contains(t, out.String(), "Overall Score (0–100):")

	err = scoreAnswers(&out, []byte(raw), "", false)
	assert.ErrorContains(t, err, "--lens is required")
}

func TestScoreAnswers_SnapshotRoundTrip(t *testing.T) {
	pool, err := catalog.Default().Questions(catalog.LensBigPicture)
	require.NoError(t, err)
	raw := fmt.Sprintf(`{%q: 1, %q: 3, %q: 2}`, pool[0].ID, pool[1].ID, pool[2].ID)

	var first bytes.Buffer
	require.NoError(t, scoreAnswers(&first, []byte(raw), "big-picture", true))

	snap, err := export.Decode(first.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Big Picture", snap.Lens)

	var second bytes.Buffer
	require.NoError(t, scoreAnswers(&second, first.Bytes(), "", true))
	assert.JSONEq(t, first.String(), second.String())
}

func TestScoreAnswers_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"unknown id", `{"nope": 2}`, "is not in the Financial lens"},
		{"out of range", `{"f01": 9}`, "out of range"},
		{"empty", `{}`, "no answers"},
		{"not json", `[1,2`, "neither a snapshot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scoreAnswers(io.Discard, []byte(tt.raw), "financial", false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLensCommands(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"lens", "list"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "big-picture")
	assert.Contains(t, out.String(), "75")

	out.Reset()
	rootCmd.SetArgs([]string{"lens", "show", "financial", "--category", "clarity"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Numbers + priorities clarity")
	assert.NotContains(t, out.String(), "Bills/actions actually done")
}
