package scheduling

import (
	"time"

	"hrmanager/models"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds the interval occupied by a booking starting at arrival
// and lasting durationMinutes.
func NewInterval(arrival time.Time, durationMinutes int) Interval {
	return Interval{
		Start: arrival,
		End:   arrival.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps reports whether two half-open intervals share at least one
// instant. Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// OverlapsAny reports whether the candidate interval intersects any of the
// given interviews. Callers must pass interviews of a single specialist;
// bookings of other specialists are irrelevant regardless of time.
func OverlapsAny(existing []models.Interview, candidate Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(Interval{Start: iv.ArrivalTime, End: iv.End()}) {
			return true
		}
	}
	return false
}
