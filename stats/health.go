package stats

import "github.com/milk9111/hordecore/common"

// RescaleHealth carries current health across a max-health change. Growth
// adds the absolute increase; shrinkage keeps the same fraction.
func RescaleHealth(current, oldMax, newMax float64) float64 {
	if newMax <= 0 {
		return 0
	}
	switch {
	case newMax >= oldMax:
		current += newMax - oldMax
	case oldMax > 0:
		current *= newMax / oldMax
	}
	return common.Clamp(current, 0, newMax)
}
