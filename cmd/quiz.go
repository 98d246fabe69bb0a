package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/export"
	"github.com/abhisek/trifactor/internal/readout"
	"github.com/abhisek/trifactor/internal/run"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [lens]",
	Short: "Run an assessment in plain line mode (no TUI)",
	Long: `Run the full flow over stdin/stdout: initial questions, readout, follow-up
rounds and export. Useful in terminals without full-screen support or for
scripted input.

Answer with 0-4. An empty line keeps the shown value, b goes back, f finishes
the current set early and q quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.Lens = args[0]
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		session, closeLog, err := newSession(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		lens, _ := cfg.ParsedLens()
		q := &lineQuiz{
			session:   session,
			in:        bufio.NewScanner(cmd.InOrStdin()),
			out:       cmd.OutOrStdout(),
			exportDir: cfg.ExportDir,
		}
		return q.run(lens)
	},
}

// errQuit ends a line-mode run at the user's request.
var errQuit = errors.New("quit")

// lineQuiz drives a session from line-oriented input.
type lineQuiz struct {
	session   *run.Session
	in        *bufio.Scanner
	out       io.Writer
	exportDir string
}

func (q *lineQuiz) printf(format string, args ...any) {
	fmt.Fprintf(q.out, format, args...)
}

// read returns the next trimmed input line. EOF ends the run.
func (q *lineQuiz) read(prompt string) (string, error) {
	q.printf("%s", prompt)
	if !q.in.Scan() {
		q.printf("\n(input closed)\n")
		if err := q.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	line := strings.ToLower(strings.TrimSpace(q.in.Text()))
	if line == "q" {
		return "", errQuit
	}
	return line, nil
}

func (q *lineQuiz) run(lens catalog.Lens) error {
	err := q.loop(lens)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (q *lineQuiz) loop(lens catalog.Lens) error {
	if lens == "" {
		var err error
		if lens, err = q.chooseLens(); err != nil {
			return err
		}
	}
	if err := q.session.Start(lens); err != nil {
		return err
	}

	for {
		st := q.session.State()
		var err error
		switch {
		case st.Stage.Answering():
			err = q.ask(st)
		case st.Stage.Scored():
			err = q.readout(st)
		default:
			return fmt.Errorf("unexpected stage %s", st.Stage)
		}
		if err != nil {
			return err
		}
	}
}

func (q *lineQuiz) chooseLens() (catalog.Lens, error) {
	lenses := q.session.Machine().Catalog().Lenses()
	q.printf("Choose a lens:\n")
	for i, l := range lenses {
		q.printf("  %d) %s\n", i+1, l.DisplayName())
	}
	for {
		line, err := q.read("> ")
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(lenses) {
			return lenses[n-1], nil
		}
		if l, err := catalog.ParseLens(line); err == nil {
			return l, nil
		}
		q.printf("Pick 1-%d.\n", len(lenses))
	}
}

func (q *lineQuiz) ask(st run.RunState) error {
	question, answer, answered, ok := st.Current()
	if !ok {
		return q.finish(st)
	}
	idx, total := st.Position()

	q.printf("\n")
	if st.Stage == run.StageFollowups {
		if idx == 0 && len(st.Repeats) > 0 {
			q.printf("Note: %d of these follow-ups were asked earlier; the pool for these areas is running low.\n", len(st.Repeats))
		}
		q.printf("Follow-up round %d, ", st.Round)
	}
	q.printf("[%d/%d] Measures: %s\n", idx+1, total, catalog.CategoryLabel(st.Lens, question.Category))
	q.printf("%s\n", question.Text)

	shown := catalog.DefaultAnswer
	if answered {
		shown = answer
	}
	for _, v := range catalog.ScaleValues() {
		marker := " "
		if v == shown {
			marker = ">"
		}
		q.printf(" %s %s\n", marker, catalog.ScaleLabel(v))
	}

	line, err := q.read(fmt.Sprintf("answer [%d]: ", shown))
	if err != nil {
		return err
	}

	switch line {
	case "b":
		return q.session.Back()
	case "f":
		return q.report(q.finish(st))
	case "":
		return q.report(q.record(st, shown))
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		q.printf("Answers run from 0 to 4.\n")
		return nil
	}
	return q.report(q.record(st, v))
}

// record answers the current question and moves on, finishing after the
// last one.
func (q *lineQuiz) record(st run.RunState, v int) error {
	if err := q.session.Answer(v); err != nil {
		return err
	}
	idx, total := st.Position()
	if idx >= total-1 {
		return q.finish(st)
	}
	return q.session.Next()
}

func (q *lineQuiz) finish(st run.RunState) error {
	if st.Stage == run.StageFollowups {
		return q.session.FinishFollowups()
	}
	return q.session.Finish()
}

// report prints recoverable input errors and swallows them.
func (q *lineQuiz) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, run.ErrInvalidAnswer):
		q.printf("Answers run from 0 to 4.\n")
	case errors.Is(err, run.ErrNoAnswers):
		q.printf("Answer at least one question first.\n")
	default:
		return err
	}
	return nil
}

func (q *lineQuiz) readout(st run.RunState) error {
	r, _ := readout.ForState(st, q.session.Machine().FollowupCount())
	q.printf("\n%s\n\n", r)
	for _, line := range readout.Closing {
		q.printf("%s\n", line)
	}

	var prompt string
	switch st.Stage {
	case run.StageResults:
		prompt = "\n[enter] follow-ups  [n] new run  [s] save  [j] print JSON  [q] quit: "
	case run.StageExportForm:
		prompt = "\n[enter] final readout  [s] save  [j] print JSON  [q] quit: "
	default:
		prompt = "\n[enter] another round  [n] new run  [s] save  [j] print JSON  [q] quit: "
	}

	for {
		line, err := q.read(prompt)
		if err != nil {
			return err
		}
		switch line {
		case "":
			switch st.Stage {
			case run.StageResults:
				return q.session.BeginFollowups()
			case run.StageExportForm:
				return q.session.Confirm()
			default:
				return q.session.AnotherRound()
			}
		case "n":
			if st.Stage != run.StageExportForm {
				return q.session.NewRun()
			}
		case "s", "j":
			if err := q.export(st, line == "s"); err != nil {
				return err
			}
		}
	}
}

func (q *lineQuiz) export(st run.RunState, save bool) error {
	snap, err := export.FromState(st)
	if err != nil {
		return err
	}
	if save {
		path, err := export.WriteFile(snap, q.exportDir)
		if err != nil {
			return err
		}
		q.printf("Saved %s\n", path)
		return nil
	}
	raw, err := snap.Encode()
	if err != nil {
		return err
	}
	q.printf("%s\n", raw)
	return nil
}
