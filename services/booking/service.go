package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tinyhouse/database"
	bookingRepo "tinyhouse/database/repository/booking"
	"tinyhouse/models"
	"tinyhouse/services/availability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultLockTTL     = 30 * time.Second
	defaultMaxAttempts = 5
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	store       Store
	locker      Locker
	payments    PaymentProcessor
	reminders   ReminderScheduler
	logger      *zap.Logger
	lockTTL     time.Duration
	maxAttempts int
	now         func() time.Time
}

// NewBookingService wires the booking flow. reminders may be nil.
func NewBookingService(store Store, locker Locker, payments PaymentProcessor, reminders ReminderScheduler, logger *zap.Logger, lockTTL time.Duration) *DefaultBookingService {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &DefaultBookingService{
		store:       store,
		locker:      locker,
		payments:    payments,
		reminders:   reminders,
		logger:      logger,
		lockTTL:     lockTTL,
		maxAttempts: defaultMaxAttempts,
		now:         time.Now,
	}
}

func parseStay(in models.CreateBookingInput) (time.Time, time.Time, error) {
	checkIn, err := availability.ParseDate(in.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check in %q", ErrInvalidDates, in.CheckIn)
	}
	checkOut, err := availability.ParseDate(in.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid check out %q", ErrInvalidDates, in.CheckOut)
	}
	if checkOut.Before(checkIn) {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	return checkIn, checkOut, nil
}

// CreateBooking charges the tenant and commits the stay to the listing's index.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, viewerID string, in models.CreateBookingInput) (*models.Booking, error) {
	viewer, err := s.store.GetUser(ctx, viewerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrViewerNotFound
		}
		return nil, fmt.Errorf("failed to load viewer: %w", err)
	}

	listing, err := s.store.GetListing(ctx, in.ListingID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if listing.Host == viewer.ID {
		return nil, ErrOwnListing
	}

	checkIn, checkOut, err := parseStay(in)
	if err != nil {
		return nil, err
	}

	release, ok, err := s.locker.Acquire(ctx, listing.ID, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to lock listing: %w", err)
	}
	if !ok {
		return nil, ErrBookingInProgress
	}
	defer release()

	next, err := listing.BookingsIndex.WithRangeBooked(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	host, err := s.store.GetUser(ctx, listing.Host)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("failed to load host: %w", err)
	}
	if !host.HasWallet() {
		return nil, ErrHostNoWallet
	}

	total := listing.Price * availability.NightsBetween(checkIn, checkOut)
	chargeID, err := s.payments.Charge(ctx, total, in.Source, host.WalletID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		Listing:    listing.ID,
		Tenant:     viewer.ID,
		CheckIn:    checkIn.Format(availability.DateLayout),
		CheckOut:   checkOut.Format(availability.DateLayout),
		TotalPrice: total,
		ChargeID:   chargeID,
		CreatedAt:  s.now(),
	}

	if err := s.commit(ctx, booking, listing, next, host, checkIn, checkOut); err != nil {
		if errors.Is(err, bookingRepo.ErrCommitUnknown) {
			// The booking may be stored; keep the charge for reconciliation.
			s.logger.Error("booking commit unconfirmed, charge kept",
				zap.String("bookingId", booking.ID),
				zap.String("chargeId", chargeID),
				zap.Error(err))
			return nil, err
		}
		s.refund(ctx, chargeID, host.WalletID)
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("listingId", listing.ID),
		zap.String("tenantId", viewer.ID),
		zap.Int64("total", total))

	s.scheduleReminder(ctx, booking, listing.Title, checkIn)
	return booking, nil
}

// commit retries the compare-and-swap against fresh reads until it lands,
// the re-read index overlaps, or attempts run out.
func (s *DefaultBookingService) commit(ctx context.Context, booking *models.Booking, listing *models.Listing, next *availability.Index, host *models.User, checkIn, checkOut time.Time) error {
	for attempt := 1; ; attempt++ {
		err := s.store.CommitBooking(ctx, bookingRepo.Commit{
			Booking:         booking,
			ListingID:       listing.ID,
			ExpectedVersion: listing.Version,
			NextIndex:       next,
			HostID:          host.ID,
			HostIncome:      booking.TotalPrice,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, bookingRepo.ErrVersionConflict) {
			return fmt.Errorf("failed to commit booking: %w", err)
		}
		if attempt >= s.maxAttempts {
			return fmt.Errorf("failed to commit booking after %d attempts: %w", attempt, err)
		}

		s.logger.Debug("listing changed during booking, retrying",
			zap.String("listingId", listing.ID), zap.Int("attempt", attempt))

		listing, err = s.store.GetListing(ctx, listing.ID)
		if err != nil {
			return fmt.Errorf("failed to reload listing: %w", err)
		}
		next, err = listing.BookingsIndex.WithRangeBooked(checkIn, checkOut)
		if err != nil {
			return err
		}
	}
}

func (s *DefaultBookingService) refund(ctx context.Context, chargeID, walletID string) {
	if err := s.payments.Refund(ctx, chargeID, walletID); err != nil {
		s.logger.Error("failed to refund charge", zap.String("chargeId", chargeID), zap.Error(err))
	}
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, b *models.Booking, title string, checkIn time.Time) {
	if s.reminders == nil {
		return
	}
	payload := models.ReminderPayload{
		BookingID: b.ID,
		TenantID:  b.Tenant,
		ListingID: b.Listing,
		Title:     title,
		CheckIn:   b.CheckIn,
	}
	if err := s.reminders.ScheduleReminder(ctx, payload, checkIn); err != nil {
		s.logger.Warn("failed to schedule booking reminder", zap.String("bookingId", b.ID), zap.Error(err))
	}
}
