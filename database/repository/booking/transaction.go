package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"venuely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// slotReserveFilter matches the slot only while it can still absorb one more
// booking. Availability check and increment are a single conditional update,
// which is what closes the check-then-act race under concurrent requests.
func slotReserveFilter(slotID string) bson.M {
	return bson.M{
		"id":           slotID,
		"is_available": true,
		"$expr":        bson.M{"$lt": bson.A{"$current_bookings", "$max_capacity"}},
	}
}

// CreateWithSlotReservation inserts the booking document and increments the
// slot's counter in one transaction. If the conditional slot update matches
// nothing the transaction is aborted and ErrSlotUnavailable is returned, so
// a full slot never gains a booking and a failed booking never holds
// capacity.
func (r *MongoBookingRepo) CreateWithSlotReservation(ctx context.Context, booking *models.Booking) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		update := bson.M{
			"$inc": bson.M{"current_bookings": 1},
			"$set": bson.M{"updated_at": now},
		}
		res, err := r.slotColl.UpdateOne(sc, slotReserveFilter(booking.SlotID), update)
		if err != nil {
			return fmt.Errorf("reserve slot capacity failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
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
		return err
	}

	return nil
}

// CancelWithSlotRelease marks the booking cancelled and decrements its
// slot's counter in one transaction. The booking update is conditional on a
// capacity-holding status, so repeating the call cannot decrement twice.
func (r *MongoBookingRepo) CancelWithSlotRelease(ctx context.Context, booking *models.Booking) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id": booking.ID,
			"status": bson.M{"$in": bson.A{
				models.BookingStatusPending,
				models.BookingStatusConfirmed,
			}},
		}
		update := bson.M{"$set": bson.M{
			"status":     models.BookingStatusCancelled,
			"updated_at": now,
		}}
		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("cancel booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrStatusChanged
		}

		// Floor guard: never drive the counter below zero.
		slotFilter := bson.M{
			"id":               booking.SlotID,
			"current_bookings": bson.M{"$gt": 0},
		}
		slotUpdate := bson.M{
			"$inc": bson.M{"current_bookings": -1},
			"$set": bson.M{"updated_at": now},
		}
		if _, err := r.slotColl.UpdateOne(sc, slotFilter, slotUpdate); err != nil {
			return fmt.Errorf("release slot capacity failed: %w", err)
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
		return err
	}

	return nil
}
