package booking

import (
	"context"

	bookingRepo "tinyhouse/database/repository/booking"
	listingRepo "tinyhouse/database/repository/listing"
	userRepo "tinyhouse/database/repository/user"
	"tinyhouse/models"
)

// RepoStore adapts the Mongo repositories to Store.
type RepoStore struct {
	Listings listingRepo.ListingRepository
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
}

func (s *RepoStore) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	return s.Listings.GetByID(ctx, id)
}

func (s *RepoStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Users.GetByID(ctx, id)
}

func (s *RepoStore) CommitBooking(ctx context.Context, c bookingRepo.Commit) error {
	return s.Bookings.CommitBooking(ctx, c)
}
