package user

import (
	"context"

	bookingRepo "tinyhouse/database/repository/booking"
	listingRepo "tinyhouse/database/repository/listing"
	userRepo "tinyhouse/database/repository/user"
	"tinyhouse/models"
	"tinyhouse/services/payment"

	"go.uber.org/zap"
)

type UserService interface {
	// Authentication
	AuthURL() string
	LogIn(ctx context.Context, code string) (*models.Viewer, error)
	LogOut() *models.Viewer

	// Profile
	GetUser(ctx context.Context, viewerID, id string) (*models.User, bool, error)
	UserBookings(ctx context.Context, viewerID, id string, limit, page int64) (*models.BookingsPage, error)
	UserListings(ctx context.Context, id string, limit, page int64) (*models.ListingsOwnedPage, error)

	// Payouts
	ConnectStripe(ctx context.Context, viewerID, code string) (*models.Viewer, error)
	DisconnectStripe(ctx context.Context, viewerID string) (*models.Viewer, error)
}

// TokenIssuer signs viewer tokens.
type TokenIssuer func(subject string) (string, error)

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Users    userRepo.UserRepository
	Listings listingRepo.ListingRepository
	Bookings bookingRepo.BookingRepository
	Google   IdentityProvider
	Payments payment.PaymentService
	Issue    TokenIssuer
	Logger   *zap.Logger
}
