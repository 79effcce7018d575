package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{coll: database.DB().Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("failed to create user indexes: %v", err)
	}
	return repo
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetByID retrieves a user by ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &user, nil
}

// Upsert writes the profile fields and returns the stored user. Bookings, listings,
// income and wallet are only initialised when the document is first inserted.
func (r *MongoUserRepo) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":      user.Name,
			"avatar":    user.Avatar,
			"contact":   user.Contact,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":        user.ID,
			"income":    int64(0),
			"bookings":  []string{},
			"listings":  []string{},
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": user.ID}, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", user.ID, err)
	}
	return &stored, nil
}

// AddListing records a hosted listing on the user.
func (r *MongoUserRepo) AddListing(ctx context.Context, userID, listingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, bson.M{
		"$push": bson.M{"listings": listingID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to add listing to user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

// SetWallet stores the Stripe account ID, or removes it when walletID is empty.
func (r *MongoUserRepo) SetWallet(ctx context.Context, userID, walletID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"walletId": walletID, "updatedAt": time.Now()}}
	if walletID == "" {
		update = bson.M{
			"$unset": bson.M{"walletId": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var stored models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": userID}, update, opts).Decode(&stored); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update wallet for user %s: %w", userID, err)
	}
	return &stored, nil
}

// AddNotification appends a notification to the user's inbox.
func (r *MongoUserRepo) AddNotification(ctx context.Context, userID string, n models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, bson.M{
		"$push": bson.M{"notifications": n},
	})
	if err != nil {
		return fmt.Errorf("failed to add notification for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}
