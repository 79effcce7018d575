package resolvers

import (
	"context"
	"errors"
	"fmt"

	"tinyhouse/database"
	listingRepo "tinyhouse/database/repository/listing"
	userRepo "tinyhouse/database/repository/user"
	"tinyhouse/models"
	"tinyhouse/services/availability"
)

// ErrHostNotFound is returned when a listing points at a missing user.
var ErrHostNotFound = errors.New("host can't be found")

// Resolver shapes domain models into client DTOs, loading related records.
type Resolver struct {
	Users    userRepo.UserRepository
	Listings listingRepo.ListingRepository
}

func summary(u *models.User) *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar, HasWallet: u.HasWallet()}
}

// User hides income from everyone but the user.
func User(u *models.User, authorized bool) *UserDTO {
	dto := &UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Avatar:     u.Avatar,
		Contact:    u.Contact,
		HasWallet:  u.HasWallet(),
		Authorized: authorized,
	}
	if authorized {
		income := u.Income
		dto.Income = &income
	}
	return dto
}

func (r *Resolver) host(ctx context.Context, id string) (*UserSummary, error) {
	u, err := r.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, err
	}
	return summary(u), nil
}

// Listing resolves the host and serializes the bookings index.
func (r *Resolver) Listing(ctx context.Context, l *models.Listing, authorized bool) (*ListingDTO, error) {
	host, err := r.host(ctx, l.Host)
	if err != nil {
		return nil, err
	}
	index, err := availability.Encode(l.BookingsIndex)
	if err != nil {
		return nil, err
	}
	return &ListingDTO{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Image:         l.Image,
		Host:          host,
		Type:          l.Type,
		Address:       l.Address,
		Country:       l.Country,
		Admin:         l.Admin,
		City:          l.City,
		BookingsIndex: index,
		Price:         l.Price,
		NumOfGuests:   l.NumOfGuests,
		Authorized:    authorized,
	}, nil
}

// ListingList resolves a page of listings for an anonymous audience.
func (r *Resolver) ListingList(ctx context.Context, listings []models.Listing) ([]ListingDTO, error) {
	out := make([]ListingDTO, 0, len(listings))
	for i := range listings {
		dto, err := r.Listing(ctx, &listings[i], false)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve listing %s: %w", listings[i].ID, err)
		}
		out = append(out, *dto)
	}
	return out, nil
}

// ListingsPage resolves a search page.
func (r *Resolver) ListingsPage(ctx context.Context, page *models.ListingsPage) (*ListingsPageDTO, error) {
	result, err := r.ListingList(ctx, page.Result)
	if err != nil {
		return nil, err
	}
	return &ListingsPageDTO{Region: page.Region, Total: page.Total, Result: result}, nil
}

// Booking resolves the booked listing and the tenant.
func (r *Resolver) Booking(ctx context.Context, b *models.Booking) (*BookingDTO, error) {
	dto := &BookingDTO{
		ID:         b.ID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		TotalPrice: b.TotalPrice,
	}

	l, err := r.Listings.GetByID(ctx, b.Listing)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booking listing: %w", err)
	}
	if dto.Listing, err = r.Listing(ctx, l, false); err != nil {
		return nil, err
	}

	tenant, err := r.Users.GetByID(ctx, b.Tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booking tenant: %w", err)
	}
	dto.Tenant = summary(tenant)
	return dto, nil
}

// BookingsPage resolves a page of bookings. A nil page stays nil.
func (r *Resolver) BookingsPage(ctx context.Context, page *models.BookingsPage) (*BookingsPageDTO, error) {
	if page == nil {
		return nil, nil
	}
	out := &BookingsPageDTO{Total: page.Total, Result: make([]BookingDTO, 0, len(page.Result))}
	for i := range page.Result {
		dto, err := r.Booking(ctx, &page.Result[i])
		if err != nil {
			return nil, err
		}
		out.Result = append(out.Result, *dto)
	}
	return out, nil
}
