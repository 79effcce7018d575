package user

import (
	"context"
	"errors"
	"fmt"

	"tinyhouse/database"
	"tinyhouse/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

func pageSize(limit int64) int64 {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

func (s *DefaultUserService) load(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// GetUser returns the user and whether the viewer is that user.
func (s *DefaultUserService) GetUser(ctx context.Context, viewerID, id string) (*models.User, bool, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return u, viewerID != "" && viewerID == u.ID, nil
}

// UserBookings returns the user's bookings, or nil unless the viewer is the user.
func (s *DefaultUserService) UserBookings(ctx context.Context, viewerID, id string, limit, page int64) (*models.BookingsPage, error) {
	u, authorized, err := s.GetUser(ctx, viewerID, id)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, nil
	}
	bookings, total, err := s.Bookings.GetByIDs(ctx, u.Bookings, pageSize(limit), page)
	if err != nil {
		return nil, fmt.Errorf("failed to query user bookings: %w", err)
	}
	return &models.BookingsPage{Total: total, Result: bookings}, nil
}

// UserListings returns the listings the user hosts.
func (s *DefaultUserService) UserListings(ctx context.Context, id string, limit, page int64) (*models.ListingsOwnedPage, error) {
	u, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	listings, total, err := s.Listings.GetByIDs(ctx, u.Listings, pageSize(limit), page)
	if err != nil {
		return nil, fmt.Errorf("failed to query user listings: %w", err)
	}
	return &models.ListingsOwnedPage{Total: total, Result: listings}, nil
}
