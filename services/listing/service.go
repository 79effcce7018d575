package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tinyhouse/database"
	bookingRepo "tinyhouse/database/repository/booking"
	listingRepo "tinyhouse/database/repository/listing"
	userRepo "tinyhouse/database/repository/user"
	"tinyhouse/models"
	"tinyhouse/services/availability"
	"tinyhouse/services/geocode"
	"tinyhouse/services/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 5000
	defaultPageSize      = 10
	maxPageSize          = 50
)

// DefaultListingService implements ListingService.
type DefaultListingService struct {
	listings    listingRepo.ListingRepository
	users       userRepo.UserRepository
	bookings    bookingRepo.BookingRepository
	geocoder    geocode.Geocoder
	storage     storage.StorageService
	imageFolder string
	logger      *zap.Logger
}

func NewListingService(
	listings listingRepo.ListingRepository,
	users userRepo.UserRepository,
	bookings bookingRepo.BookingRepository,
	geocoder geocode.Geocoder,
	storageSvc storage.StorageService,
	imageFolder string,
	logger *zap.Logger,
) *DefaultListingService {
	return &DefaultListingService{
		listings:    listings,
		users:       users,
		bookings:    bookings,
		geocoder:    geocoder,
		storage:     storageSvc,
		imageFolder: imageFolder,
		logger:      logger,
	}
}

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

func (s *DefaultListingService) load(ctx context.Context, id string) (*models.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to query listing: %w", err)
	}
	return l, nil
}

// GetListing returns the listing and whether the viewer is its host.
func (s *DefaultListingService) GetListing(ctx context.Context, viewerID, id string) (*models.Listing, bool, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return l, viewerID != "" && viewerID == l.Host, nil
}

// ListListings searches listings, optionally narrowed to a geocoded location.
func (s *DefaultListingService) ListListings(ctx context.Context, location string, filter models.ListingsFilter, limit, page int64) (*models.ListingsPage, error) {
	var query models.ListingsQuery
	result := &models.ListingsPage{}

	if location = strings.TrimSpace(location); location != "" {
		loc, err := s.geocoder.Geocode(ctx, location)
		if err != nil && !errors.Is(err, geocode.ErrNoResults) {
			return nil, fmt.Errorf("failed to geocode location: %w", err)
		}
		if loc.Country == "" {
			return nil, ErrNoCountry
		}
		query = models.ListingsQuery{Country: loc.Country, Admin: loc.Admin, City: loc.City}
		region := loc.Region()
		result.Region = &region
	}

	listings, total, err := s.listings.Search(ctx, query, filter, pageSize(limit), page)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	result.Total = total
	result.Result = listings
	return result, nil
}

// ListingBookings returns the listing's bookings to its host and nil to anyone else.
func (s *DefaultListingService) ListingBookings(ctx context.Context, viewerID, listingID string, limit, page int64) (*models.BookingsPage, error) {
	l, authorized, err := s.GetListing(ctx, viewerID, listingID)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, nil
	}
	bookings, total, err := s.bookings.GetByIDs(ctx, l.Bookings, pageSize(limit), page)
	if err != nil {
		return nil, fmt.Errorf("failed to query listing bookings: %w", err)
	}
	return &models.BookingsPage{Total: total, Result: bookings}, nil
}

func validateListingInput(in models.HostListingInput) error {
	if utf8.RuneCountInString(in.Title) > maxTitleLength {
		return fmt.Errorf("%w: listing title must be under %d characters", ErrInvalidListing, maxTitleLength)
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLength {
		return fmt.Errorf("%w: listing description must be under %d characters", ErrInvalidListing, maxDescriptionLength)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: listing type must be either an apartment or house", ErrInvalidListing)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidListing)
	}
	if in.NumOfGuests < 1 {
		return fmt.Errorf("%w: listing must allow at least one guest", ErrInvalidListing)
	}
	if !storage.ValidImagePayload(in.Image) {
		return fmt.Errorf("%w: image must be a base64 encoded image", ErrInvalidListing)
	}
	return nil
}

// HostListing validates, geocodes and stores a new listing for the viewer.
func (s *DefaultListingService) HostListing(ctx context.Context, viewerID string, in models.HostListingInput) (*models.Listing, error) {
	if err := validateListingInput(in); err != nil {
		return nil, err
	}

	host, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrViewerNotFound
		}
		return nil, fmt.Errorf("failed to load viewer: %w", err)
	}

	loc, err := s.geocoder.Geocode(ctx, in.Address)
	if err != nil && !errors.Is(err, geocode.ErrNoResults) {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if !loc.Complete() {
		return nil, ErrInvalidAddress
	}

	imageURL, err := s.storage.UploadImage(ctx, in.Image, s.imageFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload listing image: %w", err)
	}

	listing := &models.Listing{
		ID:            uuid.New().String(),
		Title:         in.Title,
		Description:   in.Description,
		Image:         imageURL,
		Host:          host.ID,
		Type:          in.Type,
		Address:       in.Address,
		Country:       loc.Country,
		Admin:         loc.Admin,
		City:          loc.City,
		Bookings:      []string{},
		BookingsIndex: availability.New(),
		Price:         in.Price,
		NumOfGuests:   in.NumOfGuests,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	if err := s.users.AddListing(ctx, host.ID, listing.ID); err != nil {
		return nil, fmt.Errorf("failed to attach listing to host: %w", err)
	}

	s.logger.Info("listing created", zap.String("listingId", listing.ID), zap.String("hostId", host.ID))
	return listing, nil
}

// Availability previews a stay for calendar clients without booking it.
func (s *DefaultListingService) Availability(ctx context.Context, listingID, checkIn, checkOut string) (*models.AvailabilityReport, error) {
	in, err := availability.ParseDate(checkIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check in %q", ErrInvalidDates, checkIn)
	}
	out, err := availability.ParseDate(checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check out %q", ErrInvalidDates, checkOut)
	}
	if out.Before(in) {
		return nil, fmt.Errorf("%w: check out is before check in", ErrInvalidDates)
	}

	l, err := s.load(ctx, listingID)
	if err != nil {
		return nil, err
	}

	report := &models.AvailabilityReport{
		ListingID:     l.ID,
		CheckIn:       in.Format(availability.DateLayout),
		CheckOut:      out.Format(availability.DateLayout),
		CheckInBooked: l.BookingsIndex.IsBooked(in),
		BookedDays:    []string{},
	}

	var overlap *availability.OverlapError
	if err := l.BookingsIndex.CheckRange(in, out); errors.As(err, &overlap) {
		report.ConflictDate = overlap.Date.Format(availability.DateLayout)
	}
	if report.CheckInBooked {
		report.ConflictDate = report.CheckIn
	}
	report.Available = report.ConflictDate == ""

	for _, d := range l.BookingsIndex.Days() {
		report.BookedDays = append(report.BookedDays, d.Format(availability.DateLayout))
	}
	return report, nil
}
