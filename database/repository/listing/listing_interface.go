package listingRepo

import (
	"context"

	"tinyhouse/models"
)

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// GetByID retrieves a listing by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	// Create inserts a new listing record.
	Create(ctx context.Context, listing *models.Listing) error
	// Search returns one page of listings in a region, ordered by filter.
	Search(ctx context.Context, query models.ListingsQuery, filter models.ListingsFilter, limit, page int64) ([]models.Listing, int64, error)
	// GetByIDs returns one page of the listings with the given IDs.
	GetByIDs(ctx context.Context, ids []string, limit, page int64) ([]models.Listing, int64, error)
}
