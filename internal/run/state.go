package run

import (
	"maps"
	"slices"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/scoring"
)

// FollowupItem is one position in a follow-up round. A question may appear
// in more than one round, each with its own answer.
type FollowupItem struct {
	Question catalog.Question
	Answer   int
	Answered bool
}

// Round is a completed follow-up round.
type Round struct {
	Items   []FollowupItem
	Targets []catalog.Category
}

// RunState is the full record of one run. Transitions take a RunState and
// return the next one without mutating their input.
type RunState struct {
	// ID identifies the run in logs and exports. Empty in setup.
	ID string

	Stage Stage
	Lens  catalog.Lens

	// Questions is the initial sample and Answers their raw answers by ID.
	Questions []catalog.Question
	Answers   scoring.Answers
	Index     int

	// Completed holds follow-up rounds already folded into the combined
	// score.
	Completed []Round

	// Followups is the current follow-up round.
	Followups     []FollowupItem
	FollowupIndex int

	// Targets are the categories the current round focuses on.
	Targets []catalog.Category

	// Repeats lists IDs in the current round that were asked before.
	Repeats []string

	// Round counts follow-up rounds started in this run.
	Round int
}

// New returns an empty run in the setup stage.
func New() RunState {
	return RunState{Stage: StageSetup, Answers: scoring.Answers{}}
}

// Clone returns a deep copy.
func (s RunState) Clone() RunState {
	out := s
	out.Questions = slices.Clone(s.Questions)
	out.Answers = maps.Clone(s.Answers)
	if out.Answers == nil {
		out.Answers = scoring.Answers{}
	}
	out.Followups = slices.Clone(s.Followups)
	out.Targets = slices.Clone(s.Targets)
	out.Repeats = slices.Clone(s.Repeats)
	out.Completed = make([]Round, len(s.Completed))
	for i, r := range s.Completed {
		out.Completed[i] = Round{Items: slices.Clone(r.Items), Targets: slices.Clone(r.Targets)}
	}
	if len(s.Completed) == 0 {
		out.Completed = nil
	}
	return out
}

// Current returns the question at the cursor of an answering stage, its
// recorded answer and whether one was recorded.
func (s RunState) Current() (q catalog.Question, answer int, answered bool, ok bool) {
	switch s.Stage {
	case StageQuestions:
		if s.Index < 0 || s.Index >= len(s.Questions) {
			return catalog.Question{}, 0, false, false
		}
		q = s.Questions[s.Index]
		answer, answered = s.Answers[q.ID]
		return q, answer, answered, true
	case StageFollowups:
		if s.FollowupIndex < 0 || s.FollowupIndex >= len(s.Followups) {
			return catalog.Question{}, 0, false, false
		}
		it := s.Followups[s.FollowupIndex]
		return it.Question, it.Answer, it.Answered, true
	}
	return catalog.Question{}, 0, false, false
}

// Position returns the zero-based cursor and the number of questions in
// the active answering stage.
func (s RunState) Position() (index, total int) {
	switch s.Stage {
	case StageQuestions:
		return s.Index, len(s.Questions)
	case StageFollowups:
		return s.FollowupIndex, len(s.Followups)
	}
	return 0, 0
}

// Combined returns the asked questions and answers across the initial
// sample, every completed round and, from the export form on, the current
// round.
func (s RunState) Combined() ([]catalog.Question, scoring.Answers) {
	rounds := make([][]FollowupItem, 0, len(s.Completed)+1)
	for _, r := range s.Completed {
		rounds = append(rounds, r.Items)
	}
	if s.Stage == StageExportForm || s.Stage == StageResults2 {
		rounds = append(rounds, s.Followups)
	}
	return Merge(s.Questions, s.Answers, rounds...)
}

// Result scores the answer set the current stage reports on.
func (s RunState) Result() scoring.Result {
	qs, answers := s.Combined()
	return scoring.Score(qs, answers)
}

// Phase returns the export phase tag for the current answer set.
func (s RunState) Phase() string {
	if s.Stage == StageExportForm || s.Stage == StageResults2 || len(s.Completed) > 0 {
		return PhaseFollowup
	}
	return PhaseInitial
}

// AskedIDs returns every question ID asked so far in the run.
func (s RunState) AskedIDs() map[string]bool {
	asked := make(map[string]bool, len(s.Questions)+len(s.Followups))
	for _, q := range s.Questions {
		asked[q.ID] = true
	}
	for _, r := range s.Completed {
		for _, it := range r.Items {
			asked[it.Question.ID] = true
		}
	}
	for _, it := range s.Followups {
		asked[it.Question.ID] = true
	}
	return asked
}

// Merge combines an initial question list and answer map with follow-up
// rounds. Questions are de-duplicated by ID keeping the first occurrence.
// Answered follow-up items override earlier answers for the same ID, later
// positions winning.
func Merge(base []catalog.Question, answers scoring.Answers, rounds ...[]FollowupItem) ([]catalog.Question, scoring.Answers) {
	seen := make(map[string]bool, len(base))
	var questions []catalog.Question
	add := func(q catalog.Question) {
		if seen[q.ID] {
			return
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}
	for _, q := range base {
		add(q)
	}

	merged := maps.Clone(answers)
	if merged == nil {
		merged = scoring.Answers{}
	}
	for _, items := range rounds {
		for _, it := range items {
			add(it.Question)
			if it.Answered {
				merged[it.Question.ID] = it.Answer
			}
		}
	}
	return questions, merged
}
