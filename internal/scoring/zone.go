package scoring

// Zone is the RED/YELLOW/GREEN banding of a category percentage.
type Zone string

const (
	ZoneRed    Zone = "RED"
	ZoneYellow Zone = "YELLOW"
	ZoneGreen  Zone = "GREEN"
)

// Zone thresholds on the 0-100 percentage scale.
const (
	RedBelow    = 45.0
	YellowBelow = 70.0
)

// ZoneFor returns the zone for a 0-100 percentage.
func ZoneFor(pct float64) Zone {
	switch {
	case pct < RedBelow:
		return ZoneRed
	case pct < YellowBelow:
		return ZoneYellow
	default:
		return ZoneGreen
	}
}

// Describe returns the plain-language reading of a zone.
func (z Zone) Describe() string {
	switch z {
	case ZoneRed:
		return "needs support now (signal, not failure)"
	case ZoneYellow:
		return "workable, but inconsistent under stress"
	case ZoneGreen:
		return "stable and helping you"
	default:
		return string(z)
	}
}
