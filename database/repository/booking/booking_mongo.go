package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tinyhouse/database"
	"tinyhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	listingColl *mongo.Collection
	userColl    *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		listingColl: db.Collection("listings"),
		userColl:    db.Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("failed to create booking indexes: %v", err)
	}
	return repo
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.bookingColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "listing", Value: 1}}},
		{Keys: bson.D{{Key: "tenant", Value: 1}}},
	})
	return err
}

// GetByID retrieves a single booking.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

// GetByIDs returns one page of bookings with the given IDs.
func (r *MongoBookingRepo) GetByIDs(ctx context.Context, ids []string, limit, page int64) ([]models.Booking, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{"id": bson.M{"$in": ids}}
	total, err := r.bookingColl.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	cursor, err := r.bookingColl.Find(ctx, match, database.PageOptions(limit, page))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, total, nil
}
