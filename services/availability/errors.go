package availability

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOverlap matches any OverlapError via errors.Is.
	ErrOverlap = errors.New("selected dates cannot overlap dates that have already been booked")

	// ErrMalformedIndex is returned when a serialized index cannot be decoded.
	ErrMalformedIndex = errors.New("availability: malformed bookings index")
)

// OverlapError reports the first requested day that is already booked.
type OverlapError struct {
	Date time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: %s is unavailable", ErrOverlap.Error(), e.Date.Format(DateLayout))
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}
