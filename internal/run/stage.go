package run

// Stage is a step of the run flow.
type Stage int

const (
	StageSetup      Stage = iota // Choosing a lens
	StageQuestions               // Answering the initial sample
	StageResults                 // Readout after the initial sample
	StageFollowups               // Answering a follow-up round
	StageExportForm              // Combined preview and export before confirming
	StageResults2                // Readout after follow-ups
)

var stageNames = [...]string{
	StageSetup:      "setup",
	StageQuestions:  "questions",
	StageResults:    "results",
	StageFollowups:  "followups",
	StageExportForm: "export_form",
	StageResults2:   "results2",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Answering reports whether the stage presents questions one at a time.
func (s Stage) Answering() bool {
	return s == StageQuestions || s == StageFollowups
}

// Scored reports whether the stage shows a readout.
func (s Stage) Scored() bool {
	return s == StageResults || s == StageExportForm || s == StageResults2
}

// Phase tags label which answer set a readout or export covers.
const (
	PhaseInitial  = "after_25"
	PhaseFollowup = "after_25_plus_10"
)
