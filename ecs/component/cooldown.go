package component

// TimeEpsilon absorbs the rounding of a clock built by summing frame deltas.
const TimeEpsilon = 1e-9

// CooldownReady reports whether cooldown seconds have passed between last and
// now. A gate opened at exactly last+cooldown is ready.
func CooldownReady(now, last, cooldown float64) bool {
	return now-last >= cooldown-TimeEpsilon
}
