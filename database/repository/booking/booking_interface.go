package bookingRepo

import (
	"context"
	"errors"

	"tinyhouse/models"
	"tinyhouse/services/availability"
)

// ErrVersionConflict means the listing changed between read and commit.
var ErrVersionConflict = errors.New("listing was modified concurrently")

// ErrCommitUnknown means the commit outcome could not be confirmed; the
// booking may or may not have been stored.
var ErrCommitUnknown = errors.New("booking commit result unknown")

// Commit is everything that changes when a booking is confirmed.
type Commit struct {
	Booking         *models.Booking
	ListingID       string
	ExpectedVersion int64
	NextIndex       *availability.Index
	HostID          string
	HostIncome      int64
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByIDs returns one page of bookings with the given IDs.
	GetByIDs(ctx context.Context, ids []string, limit, page int64) ([]models.Booking, int64, error)
	// GetByID retrieves a single booking.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// CommitBooking atomically inserts the booking and updates listing, host and tenant.
	// It returns ErrVersionConflict when the listing version no longer matches
	// or a concurrent transaction wrote the listing first, and ErrCommitUnknown
	// when the server could not confirm the commit.
	CommitBooking(ctx context.Context, c Commit) error
}
