package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trifactor/internal/ui/theme"
)

const bannerArt = `
 ▀█▀ █▀█ █ █▀▀ ▄▀█ █▀▀ ▀█▀ █▀█ █▀█
  █  █▀▄ █ █▀  █▀█ █▄▄  █  █▄█ █▀▄`

const bannerCompact = "T R I F A C T O R"

// Tagline is shown under the banner.
const Tagline = "This doesn’t give insight. It gives prioritization."

// RenderBanner returns the banner styled in the primary color. Terminals
// narrower than 40 columns get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
