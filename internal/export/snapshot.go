// Package export builds the copy/paste snapshot of a run's readout.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/followup"
	"github.com/abhisek/trifactor/internal/run"
	"github.com/abhisek/trifactor/internal/scoring"
)

// Snapshot is the record a user pastes into an external form.
type Snapshot struct {
	RunID string `json:"run_id"`
	Lens  string `json:"lens"`
	Phase string `json:"phase"`

	// Round is the number of follow-up rounds included.
	Round int `json:"round"`

	Overall    float64            `json:"overall"`
	Categories map[string]float64 `json:"variables"`
	Answers    map[string]int     `json:"answers"`
	Targets    []string           `json:"targets"`
}

// New builds a snapshot from a scored answer set. Scores are rounded to two
// decimals and targets are the follow-up focus the result implies.
func New(runID string, lens catalog.Lens, phase string, round int, res scoring.Result, answers scoring.Answers) (Snapshot, error) {
	if res.Empty() {
		return Snapshot{}, fmt.Errorf("export: %w", run.ErrNoAnswers)
	}

	cats := make(map[string]float64, len(res.Categories))
	for c, cs := range res.Categories {
		cats[c.String()] = round2(cs.Percentage)
	}
	targets := []string{}
	for _, c := range followup.ChooseTargets(res.Categories) {
		targets = append(targets, c.String())
	}
	ans := maps.Clone(map[string]int(answers))
	if ans == nil {
		ans = map[string]int{}
	}

	return Snapshot{
		RunID:      runID,
		Lens:       lens.DisplayName(),
		Phase:      phase,
		Round:      round,
		Overall:    round2(res.Overall),
		Categories: cats,
		Answers:    ans,
		Targets:    targets,
	}, nil
}

// FromState snapshots the answer set a scored stage reports on.
func FromState(s run.RunState) (Snapshot, error) {
	if !s.Stage.Scored() {
		return Snapshot{}, &run.TransitionError{Action: "export", Stage: s.Stage}
	}
	_, answers := s.Combined()
	round := len(s.Completed)
	if s.Stage != run.StageResults {
		round++
	}
	return New(s.ID, s.Lens, s.Phase(), round, s.Result(), answers)
}

// Encode returns the indented JSON form of the snapshot after checking it
// against the snapshot schema.
func (s Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := Validate(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses and validates an encoded snapshot.
func Decode(raw []byte) (Snapshot, error) {
	if err := Validate(raw); err != nil {
		return Snapshot{}, err
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, &SnapshotError{Err: err}
	}
	return s, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
