package readout

import (
	"github.com/abhisek/trifactor/internal/run"
)

// ForState builds the readout a scored stage displays. followupCount is the
// size of the next round announced in the focus section; zero keeps the
// default.
func ForState(s run.RunState, followupCount int) (Readout, bool) {
	if !s.Stage.Scored() {
		return Readout{}, false
	}

	initial := len(s.Questions)
	var title string
	switch s.Stage {
	case run.StageResults:
		title = InitialTitle(initial)
	default:
		asked := len(s.Followups)
		for _, r := range s.Completed {
			asked += len(r.Items)
		}
		title = FollowupTitle(initial, asked, s.Stage == run.StageExportForm)
	}

	r := Build(title, s.Lens, s.Result())
	if followupCount > 0 {
		r.FollowupCount = followupCount
	}
	return r, true
}
