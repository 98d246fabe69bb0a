package scoring

import "github.com/abhisek/trifactor/internal/catalog"

// CategoryWeight returns the fixed weight a category carries in the overall
// score. It is distinct from per-question weights.
func CategoryWeight(c catalog.Category) float64 {
	switch c {
	case catalog.CategoryBaseline:
		return 1.2
	case catalog.CategoryClarity:
		return 1.1
	case catalog.CategoryResources:
		return 1.1
	case catalog.CategoryBoundaries:
		return 1.1
	case catalog.CategoryExecution:
		return 1.2
	case catalog.CategoryFeedback:
		return 1.0
	default:
		return 1.0
	}
}
