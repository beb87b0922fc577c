package trig

// DefaultSnapThreshold is the snap distance in degrees used by Snap.
const DefaultSnapThreshold = 3.0

// Snapper pulls angles onto the canonical reference angles.
type Snapper struct {
	Threshold float64
	angles    []int
}

// NewSnapper creates a snapper over the reference angles. A non-positive
// threshold disables snapping.
func NewSnapper(threshold float64) *Snapper {
	return &Snapper{
		Threshold: threshold,
		angles:    Angles(),
	}
}

var defaultSnapper = NewSnapper(DefaultSnapThreshold)

// Snap snaps an angle with the default threshold.
func Snap(angle float64, suppress bool) float64 {
	return defaultSnapper.Snap(angle, suppress)
}

// Snap returns the nearest canonical angle when it is strictly closer than
// the threshold, otherwise angle unchanged. Ties go to the first angle in
// table order.
func (s *Snapper) Snap(angle float64, suppress bool) float64 {
	if suppress || s.Threshold <= 0 {
		return angle
	}

	best := -1
	bestDist := 0.0
	for _, c := range s.angles {
		d := CircularDistance(angle, float64(c))
		if best < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}

	if best >= 0 && bestDist < s.Threshold {
		return float64(best)
	}
	return angle
}
