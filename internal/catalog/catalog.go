package catalog

import (
	"fmt"
	"slices"
)

// Catalog holds the immutable question banks for every lens.
type Catalog struct {
	banks map[Lens][]Question
	byID  map[Lens]map[string]int
	order []Lens
}

// defaultCatalog is built once from the seed banks.
var defaultCatalog = mustNew(map[Lens][]Question{
	LensInterpersonal: interpersonalQuestions,
	LensFinancial:     financialQuestions,
	LensBigPicture:    bigPictureQuestions,
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New validates the banks and builds a catalog from them. The input slices
// are copied.
func New(banks map[Lens][]Question) (*Catalog, error) {
	if err := validateBanks(banks); err != nil {
		return nil, err
	}

	c := &Catalog{
		banks: make(map[Lens][]Question, len(banks)),
		byID:  make(map[Lens]map[string]int, len(banks)),
	}
	for _, l := range AllLenses() {
		if _, ok := banks[l]; ok {
			c.order = append(c.order, l)
		}
	}
	for l, qs := range banks {
		c.banks[l] = slices.Clone(qs)
		idx := make(map[string]int, len(qs))
		for i, q := range qs {
			idx[q.ID] = i
		}
		c.byID[l] = idx
	}
	return c, nil
}

func mustNew(banks map[Lens][]Question) *Catalog {
	c, err := New(banks)
	if err != nil {
		panic(err)
	}
	return c
}

// Lenses returns the lenses present in the catalog, in display order.
func (c *Catalog) Lenses() []Lens {
	return slices.Clone(c.order)
}

// Questions returns a copy of the full bank for a lens.
// Returns ErrNoQuestions if the lens is absent or empty.
func (c *Catalog) Questions(l Lens) ([]Question, error) {
	qs := c.banks[l]
	if len(qs) == 0 {
		return nil, fmt.Errorf("lens %q: %w", l.DisplayName(), ErrNoQuestions)
	}
	return slices.Clone(qs), nil
}

// Size returns the number of questions in a lens.
func (c *Catalog) Size(l Lens) int {
	return len(c.banks[l])
}

// Lookup returns the question with id in lens l.
func (c *Catalog) Lookup(l Lens, id string) (Question, bool) {
	i, ok := c.byID[l][id]
	if !ok {
		return Question{}, false
	}
	return c.banks[l][i], true
}

// ByCategory returns the questions of a lens that measure category cat.
func (c *Catalog) ByCategory(l Lens, cat Category) []Question {
	var out []Question
	for _, q := range c.banks[l] {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out
}
