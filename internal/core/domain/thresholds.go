package domain

// Thresholds holds the remaining-click boundaries for both spend regimes.
// Pausing happens below Pause, activation at or above Activate.
type Thresholds struct {
	LowPause     int64
	LowActivate  int64
	HighPause    int64
	HighActivate int64
}

// Band is the pause/activate pair used for one regime.
type Band struct {
	Pause    int64
	Activate int64
}

// Contains reports whether remaining lies in the hysteresis band [Pause, Activate).
func (b Band) Contains(remaining int64) bool {
	return remaining >= b.Pause && remaining < b.Activate
}

// Band returns the thresholds for the regime selected by high.
func (t Thresholds) Band(high bool) Band {
	if high {
		return Band{Pause: t.HighPause, Activate: t.HighActivate}
	}
	return Band{Pause: t.LowPause, Activate: t.LowActivate}
}

// minActivate is the smallest activate threshold strictly greater than pause × 1.15.
func minActivate(pause int64) int64 {
	return pause*115/100 + 1
}

// Valid reports whether both regimes satisfy activate > pause × 1.15.
func (t Thresholds) Valid() bool {
	return t.LowActivate*100 > t.LowPause*115 && t.HighActivate*100 > t.HighPause*115
}

// Repair widens any activate threshold that violates activate > pause × 1.15
// and reports whether a change was made.
func (t Thresholds) Repair() (Thresholds, bool) {
	changed := false
	if t.LowActivate*100 <= t.LowPause*115 {
		t.LowActivate = minActivate(t.LowPause)
		changed = true
	}
	if t.HighActivate*100 <= t.HighPause*115 {
		t.HighActivate = minActivate(t.HighPause)
		changed = true
	}
	return t, changed
}
