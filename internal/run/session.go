package run

import (
	"log/slog"

	"github.com/abhisek/trifactor/internal/catalog"
)

// Session holds the one live RunState of an interactive run and applies
// Machine transitions to it. It is the only stateful piece of the flow.
type Session struct {
	machine *Machine
	state   RunState
	logger  *slog.Logger
}

// NewSession starts a session in the setup stage. A nil logger falls back
// to slog.Default().
func NewSession(m *Machine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		machine: m,
		state:   New(),
		logger:  logger.With(slog.String("component", "run")),
	}
}

// State returns a copy of the current state.
func (s *Session) State() RunState { return s.state.Clone() }

// Machine returns the underlying transition machine.
func (s *Session) Machine() *Machine { return s.machine }

func (s *Session) apply(action string, fn func(RunState) (RunState, error)) error {
	from := s.state.Stage
	next, err := fn(s.state)
	if err != nil {
		s.logger.Warn("transition rejected",
			slog.String("run_id", s.state.ID),
			slog.String("action", action),
			slog.String("stage", from.String()),
			slog.String("error", err.Error()),
		)
		return err
	}
	s.state = next
	if next.Stage != from {
		s.logger.Info("run transition",
			slog.String("run_id", next.ID),
			slog.String("lens", string(next.Lens)),
			slog.String("action", action),
			slog.String("from", from.String()),
			slog.String("to", next.Stage.String()),
		)
	}
	return nil
}

// Start begins a run on the given lens.
func (s *Session) Start(lens catalog.Lens) error {
	return s.apply("start", func(st RunState) (RunState, error) {
		return s.machine.Start(st, lens)
	})
}

// Answer records v for the current question.
func (s *Session) Answer(v int) error {
	return s.apply("answer", func(st RunState) (RunState, error) {
		return s.machine.Answer(st, v)
	})
}

// Next moves the cursor forward.
func (s *Session) Next() error { return s.apply("next", s.machine.Next) }

// Back moves the cursor back.
func (s *Session) Back() error { return s.apply("back", s.machine.Back) }

// Finish scores the initial questions.
func (s *Session) Finish() error { return s.apply("finish", s.machine.Finish) }

// BeginFollowups starts the first follow-up round.
func (s *Session) BeginFollowups() error {
	if err := s.apply("begin follow-ups", s.machine.BeginFollowups); err != nil {
		return err
	}
	s.logRound()
	return nil
}

// AnotherRound folds the current round in and starts a new one.
func (s *Session) AnotherRound() error {
	if err := s.apply("another round", s.machine.AnotherRound); err != nil {
		return err
	}
	s.logRound()
	return nil
}

// FinishFollowups shows the combined preview.
func (s *Session) FinishFollowups() error {
	return s.apply("finish follow-ups", s.machine.FinishFollowups)
}

// Confirm moves from the export form to the final readout.
func (s *Session) Confirm() error { return s.apply("confirm", s.machine.Confirm) }

// NewRun resamples the same lens.
func (s *Session) NewRun() error { return s.apply("new run", s.machine.NewRun) }

// Reset returns to setup.
func (s *Session) Reset() error { return s.apply("reset", s.machine.Reset) }

func (s *Session) logRound() {
	st := s.state
	targets := make([]string, len(st.Targets))
	for i, c := range st.Targets {
		targets[i] = c.String()
	}
	attrs := []any{
		slog.String("run_id", st.ID),
		slog.Int("round", st.Round),
		slog.Any("targets", targets),
		slog.Int("questions", len(st.Followups)),
	}
	if len(st.Followups) < s.machine.FollowupCount() {
		s.logger.Info("follow-up pool short", attrs...)
	}
	if len(st.Repeats) > 0 {
		s.logger.Info("follow-ups repeat earlier questions", append(attrs, slog.Int("repeats", len(st.Repeats)))...)
	}
}
