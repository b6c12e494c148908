package game

import "math"

const (
	// maxEstimatedSize is the assumed worst-case rendered dimension of a
	// photo at half scale. Margins and spacing derive from it so large
	// photos never clip the board edges or each other.
	maxEstimatedSize = 300

	// minPairDistance keeps the two options from overlapping.
	minPairDistance = maxEstimatedSize + 100

	// placementAttempts bounds the rejection sampling before falling back
	// to opposite corners.
	placementAttempts = 200
)

type position struct {
	x, y float64
}

// pairPositions returns two positions far enough apart for a photo pair,
// inside the board margins. Placement is rejection-sampled; if no valid
// pair is found within the attempt budget the options land in opposite
// corners.
func (s *Session) pairPositions() [2]position {
	rng := s.random()

	top := 120 + float64(maxEstimatedSize)/2
	bottom := s.Height - 150 - float64(maxEstimatedSize)/2
	side := 60 + float64(maxEstimatedSize)/2

	for i := 0; i < placementAttempts; i++ {
		a := position{
			x: side + rng.Float64()*(s.Width-2*side),
			y: top + rng.Float64()*(bottom-top),
		}
		b := position{
			x: side + rng.Float64()*(s.Width-2*side),
			y: top + rng.Float64()*(bottom-top),
		}

		if math.Hypot(b.x-a.x, b.y-a.y) >= minPairDistance {
			return [2]position{a, b}
		}
	}

	return [2]position{
		{x: side, y: top},
		{x: s.Width - side, y: bottom},
	}
}
