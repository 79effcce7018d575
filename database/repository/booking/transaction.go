package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver"
)

// CommitBooking writes the booking and all denormalised counters in one transaction.
// The listing update only matches while its version is unchanged.
func (r *MongoBookingRepo) CommitBooking(ctx context.Context, c Commit) error {
	client := r.listingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, c.Booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		res, err := r.listingColl.UpdateOne(sc,
			bson.M{"id": c.ListingID, "version": c.ExpectedVersion},
			bson.M{
				"$set": bson.M{
					"bookingsIndex": c.NextIndex,
					"version":       c.ExpectedVersion + 1,
					"updatedAt":     now,
				},
				"$push": bson.M{"bookings": c.Booking.ID},
			},
		)
		if err != nil {
			return fmt.Errorf("update listing failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrVersionConflict
		}

		if _, err := r.userColl.UpdateOne(sc, bson.M{"id": c.HostID}, bson.M{
			"$inc": bson.M{"income": c.HostIncome},
			"$set": bson.M{"updatedAt": now},
		}); err != nil {
			return fmt.Errorf("update host income failed: %w", err)
		}

		if _, err := r.userColl.UpdateOne(sc, bson.M{"id": c.Booking.Tenant}, bson.M{
			"$push": bson.M{"bookings": c.Booking.ID},
			"$set":  bson.M{"updatedAt": now},
		}); err != nil {
			return fmt.Errorf("update tenant bookings failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return classifyTxnError(err)
	}
	return nil
}

// writeConflictCode is the server code for a write conflict between transactions.
const writeConflictCode = 112

// classifyTxnError maps transaction failures onto the repository sentinels.
func classifyTxnError(err error) error {
	if errors.Is(err, ErrVersionConflict) {
		return ErrVersionConflict
	}
	var se mongo.ServerError
	if errors.As(err, &se) {
		switch {
		case se.HasErrorLabel(driver.UnknownTransactionCommitResult):
			return fmt.Errorf("%w: %v", ErrCommitUnknown, err)
		case se.HasErrorLabel(driver.TransientTransactionError), se.HasErrorCode(writeConflictCode):
			return ErrVersionConflict
		}
	}
	return fmt.Errorf("booking transaction failed: %w", err)
}
