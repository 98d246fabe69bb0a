package run

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/followup"
)

// DefaultInitialCount is the size of the initial sample.
const DefaultInitialCount = 25

// Options configures a Machine.
type Options struct {
	InitialCount  int
	FollowupCount int

	// Rand drives sampling. A time-seeded source is used when nil.
	Rand *rand.Rand

	// NewID generates run IDs. Defaults to random UUIDs.
	NewID func() string
}

// Machine implements the run transitions. Each method takes the current
// state and returns the next one; the input is never modified.
type Machine struct {
	catalog       *catalog.Catalog
	rng           *rand.Rand
	newID         func() string
	initialCount  int
	followupCount int
}

// NewMachine creates a Machine over the given catalog.
func NewMachine(cat *catalog.Catalog, opts Options) *Machine {
	if cat == nil {
		cat = catalog.Default()
	}
	if opts.InitialCount <= 0 {
		opts.InitialCount = DefaultInitialCount
	}
	if opts.FollowupCount <= 0 {
		opts.FollowupCount = followup.DefaultCount
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Machine{
		catalog:       cat,
		rng:           opts.Rand,
		newID:         opts.NewID,
		initialCount:  opts.InitialCount,
		followupCount: opts.FollowupCount,
	}
}

// Catalog returns the catalog runs draw from.
func (m *Machine) Catalog() *catalog.Catalog { return m.catalog }

// InitialCount returns the configured initial sample size.
func (m *Machine) InitialCount() int { return m.initialCount }

// FollowupCount returns the configured follow-up round size.
func (m *Machine) FollowupCount() int { return m.followupCount }

func guard(s RunState, action string, allowed ...Stage) error {
	for _, st := range allowed {
		if s.Stage == st {
			return nil
		}
	}
	return &TransitionError{Action: action, Stage: s.Stage}
}

// SampleInitial draws min(count, len(pool)) distinct questions uniformly at
// random.
func SampleInitial(pool []catalog.Question, count int, rng *rand.Rand) ([]catalog.Question, error) {
	if len(pool) == 0 {
		return nil, catalog.ErrNoQuestions
	}
	k := min(count, len(pool))
	out := make([]catalog.Question, 0, k)
	for _, i := range rng.Perm(len(pool))[:k] {
		out = append(out, pool[i])
	}
	return out, nil
}

// Start leaves setup for the initial questions of the chosen lens.
func (m *Machine) Start(s RunState, lens catalog.Lens) (RunState, error) {
	if err := guard(s, "start", StageSetup); err != nil {
		return s, err
	}
	next, err := m.fresh(lens)
	if err != nil {
		return s, err
	}
	return next, nil
}

// NewRun discards the current answers and resamples the same lens.
func (m *Machine) NewRun(s RunState) (RunState, error) {
	if err := guard(s, "new run", StageResults, StageResults2); err != nil {
		return s, err
	}
	next, err := m.fresh(s.Lens)
	if err != nil {
		return s, err
	}
	return next, nil
}

func (m *Machine) fresh(lens catalog.Lens) (RunState, error) {
	pool, err := m.catalog.Questions(lens)
	if err != nil {
		return RunState{}, err
	}
	qs, err := SampleInitial(pool, m.initialCount, m.rng)
	if err != nil {
		return RunState{}, fmt.Errorf("lens %q: %w", lens, err)
	}
	next := New()
	next.ID = m.newID()
	next.Lens = lens
	next.Stage = StageQuestions
	next.Questions = qs
	return next, nil
}

// Answer records a raw answer for the question at the cursor, replacing
// any earlier one.
func (m *Machine) Answer(s RunState, v int) (RunState, error) {
	if err := guard(s, "answer", StageQuestions, StageFollowups); err != nil {
		return s, err
	}
	if err := ValidateAnswer(v); err != nil {
		return s, err
	}
	next := s.Clone()
	switch next.Stage {
	case StageQuestions:
		q, _, _, ok := next.Current()
		if !ok {
			return s, ErrNoAnswers
		}
		next.Answers[q.ID] = v
	case StageFollowups:
		if next.FollowupIndex < 0 || next.FollowupIndex >= len(next.Followups) {
			return s, ErrNoAnswers
		}
		next.Followups[next.FollowupIndex].Answer = v
		next.Followups[next.FollowupIndex].Answered = true
	}
	return next, nil
}

// Next advances the cursor, stopping at the last question.
func (m *Machine) Next(s RunState) (RunState, error) {
	return m.move(s, "next", 1)
}

// Back moves the cursor back, stopping at the first question.
func (m *Machine) Back(s RunState) (RunState, error) {
	return m.move(s, "back", -1)
}

func (m *Machine) move(s RunState, action string, delta int) (RunState, error) {
	if err := guard(s, action, StageQuestions, StageFollowups); err != nil {
		return s, err
	}
	next := s.Clone()
	idx, total := next.Position()
	idx = max(0, min(total-1, idx+delta))
	if next.Stage == StageQuestions {
		next.Index = idx
	} else {
		next.FollowupIndex = idx
	}
	return next, nil
}

// Finish ends the initial questions and moves to the readout. At least one
// answer is required; unanswered questions are simply not scored.
func (m *Machine) Finish(s RunState) (RunState, error) {
	if err := guard(s, "finish", StageQuestions); err != nil {
		return s, err
	}
	if len(s.Answers) == 0 {
		return s, ErrNoAnswers
	}
	next := s.Clone()
	next.Stage = StageResults
	return next, nil
}

// BeginFollowups selects a follow-up round aimed at the weakest categories
// of the initial readout.
func (m *Machine) BeginFollowups(s RunState) (RunState, error) {
	if err := guard(s, "begin follow-ups", StageResults); err != nil {
		return s, err
	}
	next := s.Clone()
	if err := m.startRound(&next); err != nil {
		return s, err
	}
	return next, nil
}

// AnotherRound folds the current round into the combined answers and
// selects a new one from the latest combined readout.
func (m *Machine) AnotherRound(s RunState) (RunState, error) {
	if err := guard(s, "another round", StageResults2); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Completed = append(next.Completed, Round{Items: next.Followups, Targets: next.Targets})
	next.Followups = nil
	if err := m.startRound(&next); err != nil {
		return s, err
	}
	return next, nil
}

func (m *Machine) startRound(next *RunState) error {
	res := next.Result()
	if res.Empty() {
		return ErrNoAnswers
	}
	targets := followup.ChooseTargets(res.Categories)

	pool, err := m.catalog.Questions(next.Lens)
	if err != nil {
		return err
	}
	asked := next.AskedIDs()
	sel, err := followup.Select(pool, targets, asked, m.followupCount, m.rng)
	if err != nil {
		return err
	}

	next.Followups = make([]FollowupItem, len(sel.Questions))
	for i, q := range sel.Questions {
		next.Followups[i] = FollowupItem{Question: q}
	}
	next.FollowupIndex = 0
	next.Targets = targets
	next.Repeats = sel.Repeats
	next.Round++
	next.Stage = StageFollowups
	return nil
}

// FinishFollowups ends the current round and shows the combined preview.
func (m *Machine) FinishFollowups(s RunState) (RunState, error) {
	if err := guard(s, "finish follow-ups", StageFollowups); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Stage = StageExportForm
	return next, nil
}

// Confirm leaves the export form for the final readout.
func (m *Machine) Confirm(s RunState) (RunState, error) {
	if err := guard(s, "confirm", StageExportForm); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Stage = StageResults2
	return next, nil
}

// Reset discards the run, lens included. Allowed from any stage.
func (m *Machine) Reset(RunState) (RunState, error) {
	return New(), nil
}
