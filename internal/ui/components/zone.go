package components

import (
	"fmt"

	"github.com/abhisek/trifactor/internal/scoring"
	"github.com/abhisek/trifactor/internal/ui/theme"
)

// ZoneScore renders a percentage colored by its zone.
func ZoneScore(cs scoring.CategoryScore) string {
	text := fmt.Sprintf("%5.1f", cs.Percentage)
	switch cs.Zone {
	case scoring.ZoneRed:
		return theme.ZoneRed.Render(text)
	case scoring.ZoneYellow:
		return theme.ZoneYellow.Render(text)
	default:
		return theme.ZoneGreen.Render(text)
	}
}
