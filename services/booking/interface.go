package booking

import (
	"context"
	"time"

	bookingRepo "tinyhouse/database/repository/booking"
	"tinyhouse/models"
)

// BookingService books listings for viewers.
type BookingService interface {
	CreateBooking(ctx context.Context, viewerID string, in models.CreateBookingInput) (*models.Booking, error)
}

// Store is the persistence the booking flow needs.
type Store interface {
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	// CommitBooking must fail with bookingRepo.ErrVersionConflict when the
	// listing's version no longer equals c.ExpectedVersion.
	CommitBooking(ctx context.Context, c bookingRepo.Commit) error
}

// Locker serialises booking attempts per listing.
type Locker interface {
	// Acquire returns ok=false without error when the lock is held elsewhere.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

// PaymentProcessor charges tenants on behalf of hosts.
type PaymentProcessor interface {
	Charge(ctx context.Context, amount int64, source, walletID string) (string, error)
	Refund(ctx context.Context, chargeID, walletID string) error
}

// ReminderScheduler queues check-in reminders.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, checkIn time.Time) error
}
