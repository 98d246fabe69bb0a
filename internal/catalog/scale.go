package catalog

import "fmt"

const (
	// MinAnswer and MaxAnswer bound a raw Likert answer.
	MinAnswer = 0
	MaxAnswer = 4

	// DefaultAnswer is preselected for a question that has not been answered yet.
	DefaultAnswer = 2
)

var scaleLabels = [...]string{
	"Not at all / Never",
	"Rarely",
	"Sometimes",
	"Often",
	"Almost always",
}

// ScaleValues returns every valid raw answer in ascending order.
func ScaleValues() []int {
	return []int{0, 1, 2, 3, 4}
}

// ScaleLabel returns the display label for a raw answer, e.g. "3 — Often".
func ScaleLabel(v int) string {
	if v < MinAnswer || v > MaxAnswer {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d — %s", v, scaleLabels[v])
}
