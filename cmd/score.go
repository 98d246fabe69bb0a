package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/export"
	"github.com/abhisek/trifactor/internal/readout"
	"github.com/abhisek/trifactor/internal/run"
	"github.com/abhisek/trifactor/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers.json>",
	Short: "Score a saved snapshot or an answers file without running the quiz",
	Long: `Score answers offline and print the readout.

The file is either a snapshot written by the export step or a plain JSON
object mapping question IDs to answers 0-4, in which case --lens is
required. Use - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		lensFlag, _ := cmd.Flags().GetString("lens")
		asJSON, _ := cmd.Flags().GetBool("json")
		return scoreAnswers(cmd.OutOrStdout(), raw, lensFlag, asJSON)
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the snapshot JSON instead of the readout")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return raw, nil
}

func scoreAnswers(out io.Writer, raw []byte, lensName string, asJSON bool) error {
	phase := run.PhaseInitial
	var answers scoring.Answers

	snap, err := export.Decode(raw)
	switch {
	case err == nil:
		answers = snap.Answers
		phase = snap.Phase
		if lensName == "" {
			lensName = snap.Lens
		}
	case errors.Is(err, export.ErrInvalidSnapshot):
		if err := json.Unmarshal(raw, &answers); err != nil {
			return fmt.Errorf("answers file is neither a snapshot nor an ID-to-answer object: %w", err)
		}
	default:
		return err
	}

	if lensName == "" {
		return fmt.Errorf("--lens is required for a plain answers file")
	}
	lens, err := catalog.ParseLens(lensName)
	if err != nil {
		return err
	}

	questions, err := askedQuestions(lens, answers)
	if err != nil {
		return err
	}
	res := scoring.Score(questions, answers)
	if res.Empty() {
		return run.ErrNoAnswers
	}

	if asJSON {
		s, err := export.New(snap.RunID, lens, phase, snap.Round, res, answers)
		if err != nil {
			return err
		}
		enc, err := s.Encode()
		if err != nil {
			return err
		}
		_, err = out.Write(enc)
		return err
	}

	r := readout.Build(readout.InitialTitle(len(questions)), lens, res)
	fmt.Fprintln(out, r)
	fmt.Fprintln(out)
	for _, line := range readout.Closing {
		fmt.Fprintln(out, line)
	}
	return nil
}

// askedQuestions resolves answer IDs against the lens catalog, in catalog
// order.
func askedQuestions(lens catalog.Lens, answers scoring.Answers) ([]catalog.Question, error) {
	cat := catalog.Default()
	for id, v := range answers {
		if _, ok := cat.Lookup(lens, id); !ok {
			return nil, fmt.Errorf("question %q is not in the %s lens", id, lens.DisplayName())
		}
		if err := run.ValidateAnswer(v); err != nil {
			return nil, fmt.Errorf("question %q: %w", id, err)
		}
	}
	pool, err := cat.Questions(lens)
	if err != nil {
		return nil, err
	}
	var out []catalog.Question
	for _, q := range pool {
		if _, ok := answers[q.ID]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}
