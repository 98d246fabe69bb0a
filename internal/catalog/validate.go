package catalog

import (
	"fmt"
	"strings"
)

// validateBanks performs structural checks on every bank.
// Returns a combined error describing all problems found, or nil if valid.
func validateBanks(banks map[Lens][]Question) error {
	var errs []string

	for _, l := range AllLenses() {
		qs, ok := banks[l]
		if !ok {
			continue
		}
		seen := make(map[string]bool, len(qs))
		for i, q := range qs {
			prefix := fmt.Sprintf("%s[%d]", l, i)
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("%s: empty question ID", prefix))
			} else if seen[q.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate question ID %q", prefix, q.ID))
			}
			seen[q.ID] = true

			if strings.TrimSpace(q.Text) == "" {
				errs = append(errs, fmt.Sprintf("%s (%s): empty text", prefix, q.ID))
			}
			if !q.Category.Valid() {
				errs = append(errs, fmt.Sprintf("%s (%s): invalid category %d", prefix, q.ID, int(q.Category)))
			}
			if q.Weight <= 0 {
				errs = append(errs, fmt.Sprintf("%s (%s): weight must be > 0, got %g", prefix, q.ID, q.Weight))
			}
		}
	}

	for l := range banks {
		if _, err := ParseLens(string(l)); err != nil {
			errs = append(errs, fmt.Sprintf("unknown lens %q", l))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
