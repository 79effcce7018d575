package listing

import (
	"context"

	"tinyhouse/models"
)

// ListingService covers browsing, hosting and previewing listings.
type ListingService interface {
	GetListing(ctx context.Context, viewerID, id string) (*models.Listing, bool, error)
	ListListings(ctx context.Context, location string, filter models.ListingsFilter, limit, page int64) (*models.ListingsPage, error)
	ListingBookings(ctx context.Context, viewerID, listingID string, limit, page int64) (*models.BookingsPage, error)
	HostListing(ctx context.Context, viewerID string, in models.HostListingInput) (*models.Listing, error)
	Availability(ctx context.Context, listingID, checkIn, checkOut string) (*models.AvailabilityReport, error)
}
