package userRepo

import (
	"context"

	"tinyhouse/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Upsert creates the user on first login or refreshes the profile fields on later ones.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	// AddListing records a hosted listing on the user.
	AddListing(ctx context.Context, userID, listingID string) error
	// SetWallet stores or clears (walletID == "") the user's Stripe account.
	SetWallet(ctx context.Context, userID, walletID string) (*models.User, error)
	// AddNotification appends a notification to the user's inbox.
	AddNotification(ctx context.Context, userID string, n models.Notification) error
}
