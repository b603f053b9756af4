package availability

import "time"

// BusyWindow is the proximity window around now within which a confirmed
// appointment marks the medecin busy.
const BusyWindow = 30 * time.Minute

// Busy reports whether any appointment start falls within BusyWindow of
// now, on either side. The caller passes confirmed appointments only; the
// automatic signal never produces UNAVAILABLE, that is reachable through
// an explicit manual override alone.
func Busy(appointments []time.Time, now time.Time) bool {
	for _, at := range appointments {
		d := at.Sub(now)
		if d < 0 {
			d = -d
		}
		if d <= BusyWindow {
			return true
		}
	}
	return false
}
