// File: database/repository/slot/crud.go
package slotRepo

import (
	"fmt"
	"time"

	"venuely/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new slot document.
func (r *MongoSlotRepo) Create(slot *models.Slot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, slot)
	if err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

// Update modifies an existing slot document. The current_bookings counter is
// deliberately left out of the $set; only booking operations move it. The
// filter conditions the write on current_bookings still fitting the new
// capacity, so a booking committing between read and update can never leave
// the counter above max_capacity.
func (r *MongoSlotRepo) Update(slot *models.Slot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	slot.UpdatedAt = time.Now()
	filter := bson.M{
		"id":               slot.ID,
		"current_bookings": bson.M{"$lte": slot.MaxCapacity},
	}
	update := bson.M{"$set": bson.M{
		"name":         slot.Name,
		"date":         slot.Date,
		"start_time":   slot.StartTime,
		"end_time":     slot.EndTime,
		"is_available": slot.IsAvailable,
		"max_capacity": slot.MaxCapacity,
		"updated_at":   slot.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update slot with id %s: %w", slot.ID, err)
	}
	if result.MatchedCount == 0 {
		// Nothing matched: either the slot is gone or its counter has
		// outgrown the requested capacity.
		if _, err := r.GetByID(slot.ID); err != nil {
			return err
		}
		return fmt.Errorf("slot %s: %w", slot.ID, ErrCapacityConflict)
	}
	return nil
}

// Delete removes a slot document by its ID.
func (r *MongoSlotRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete slot with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("slot %s: %w", id, ErrNotFound)
	}
	return nil
}
