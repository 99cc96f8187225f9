package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venuely/database"
	"venuely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It holds both
// the bookings and slots collections so capacity changes can be committed in
// the same transaction as the booking write.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	slotColl    *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{
		bookingColl: database.Collection("bookings"),
		slotColl:    database.Collection("slots"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// The persisted uniqueness constraint is the real guarantee behind
		// generated booking references.
		{Keys: bson.D{{Key: "booking_ref", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "event_date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "slot_id", Value: 1}}},
	}

	_, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByRef retrieves a booking by its human-readable reference.
func (r *MongoBookingRepo) GetByRef(ref string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"booking_ref": ref}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s: %w", ref, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", ref, err)
	}
	return &booking, nil
}

// UpdateStatus moves a booking between non-releasing statuses. The filter
// carries the expected current status so concurrent admin edits surface as
// ErrStatusChanged instead of silently overwriting each other.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, from, to string) error {
	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}

	result, err := r.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status of booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrStatusChanged)
	}
	return nil
}

// UpdatePayment records an admin payment update.
func (r *MongoBookingRepo) UpdatePayment(ctx context.Context, id, paymentStatus string, advancePaid float64) error {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"payment_status": paymentStatus,
		"advance_paid":   advancePaid,
		"updated_at":     time.Now(),
	}}

	result, err := r.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update payment of booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a booking document. Callers are responsible for releasing
// slot capacity first (see CancelWithSlotRelease).
func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	result, err := r.bookingColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return nil
}
