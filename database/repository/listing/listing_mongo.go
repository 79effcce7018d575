package listingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tinyhouse/database"
	"tinyhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	repo := &MongoListingRepo{coll: database.DB().Collection("listings")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create listing indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetByID retrieves a listing by its unique ID.
func (r *MongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}

// Create inserts a new listing document.
func (r *MongoListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.Bookings == nil {
		listing.Bookings = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}
