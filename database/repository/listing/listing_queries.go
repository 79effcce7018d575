package listingRepo

import (
	"context"
	"fmt"
	"time"

	"tinyhouse/database"
	"tinyhouse/models"

	"go.mongodb.org/mongo-driver/bson"
)

// searchFilter builds the region filter; empty parts match anything.
func searchFilter(query models.ListingsQuery) bson.M {
	filter := bson.M{}
	if query.Country != "" {
		filter["country"] = query.Country
	}
	if query.Admin != "" {
		filter["admin"] = query.Admin
	}
	if query.City != "" {
		filter["city"] = query.City
	}
	return filter
}

func sortFor(filter models.ListingsFilter) bson.D {
	switch filter {
	case models.FilterPriceLowToHigh:
		return bson.D{{Key: "price", Value: 1}}
	case models.FilterPriceHighToLow:
		return bson.D{{Key: "price", Value: -1}}
	default:
		return nil
	}
}

// Search returns one page of listings matching the region, plus the total match count.
func (r *MongoListingRepo) Search(ctx context.Context, query models.ListingsQuery, filter models.ListingsFilter, limit, page int64) ([]models.Listing, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	match := searchFilter(query)
	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	opts := database.PageOptions(limit, page)
	if sort := sortFor(filter); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.coll.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, total, nil
}

// GetByIDs returns one page of the listings whose IDs are given.
func (r *MongoListingRepo) GetByIDs(ctx context.Context, ids []string, limit, page int64) ([]models.Listing, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{"id": bson.M{"$in": ids}}
	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	cursor, err := r.coll.Find(ctx, match, database.PageOptions(limit, page))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query listings by id: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, total, nil
}
