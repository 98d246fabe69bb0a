package catalog

import (
	"fmt"
	"strings"
)

// Lens selects one of the independent question domains.
type Lens string

const (
	LensInterpersonal Lens = "interpersonal"
	LensFinancial     Lens = "financial"
	LensBigPicture    Lens = "big-picture"
)

// AllLenses returns all lenses in display order.
func AllLenses() []Lens {
	return []Lens{LensInterpersonal, LensFinancial, LensBigPicture}
}

// DisplayName returns the human-readable lens name.
func (l Lens) DisplayName() string {
	switch l {
	case LensInterpersonal:
		return "Interpersonal"
	case LensFinancial:
		return "Financial"
	case LensBigPicture:
		return "Big Picture"
	default:
		return string(l)
	}
}

// ParseLens accepts a lens slug or display name, case-insensitively.
// "Big Picture", "big-picture", "bigpicture" and "big_picture" all resolve
// to LensBigPicture.
func ParseLens(s string) (Lens, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	switch norm {
	case "interpersonal":
		return LensInterpersonal, nil
	case "financial":
		return LensFinancial, nil
	case "bigpicture":
		return LensBigPicture, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLens, s)
}

// Category is one of the six measurement dimensions shared by every lens.
type Category int

const (
	CategoryBaseline Category = iota
	CategoryClarity
	CategoryResources
	CategoryBoundaries
	CategoryExecution
	CategoryFeedback

	numCategories
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryBaseline,
		CategoryClarity,
		CategoryResources,
		CategoryBoundaries,
		CategoryExecution,
		CategoryFeedback,
	}
}

func (c Category) String() string {
	switch c {
	case CategoryBaseline:
		return "Baseline"
	case CategoryClarity:
		return "Clarity"
	case CategoryResources:
		return "Resources"
	case CategoryBoundaries:
		return "Boundaries"
	case CategoryExecution:
		return "Execution"
	case CategoryFeedback:
		return "Feedback"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= CategoryBaseline && c < numCategories
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalText encodes the category by name so it can key JSON objects.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Question is a single Likert-scale prompt.
type Question struct {
	ID       string
	Text     string
	Category Category
	Weight   float64
	// Reverse marks questions where a higher answer is worse.
	Reverse bool
}
