// File: database/repository/booking/queries.go
package bookingRepo

import (
	"fmt"
	"time"

	"venuely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll retrieves bookings newest first, narrowed by the optional filter.
func (r *MongoBookingRepo) GetAll(filter ListFilter) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.EventDate != "" {
		query["event_date"] = filter.EventDate
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByEventDate retrieves all bookings for a given event date.
func (r *MongoBookingRepo) GetByEventDate(date string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.bookingColl.Find(ctx, bson.M{"event_date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for %s: %w", date, err)
	}
	return bookings, nil
}

// CountActiveBySlot counts capacity-holding bookings referencing a slot.
// Slot deletion is refused while this is non-zero.
func (r *MongoBookingRepo) CountActiveBySlot(slotID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"slot_id": slotID,
		"status": bson.M{"$in": bson.A{
			models.BookingStatusPending,
			models.BookingStatusConfirmed,
		}},
	}
	n, err := r.bookingColl.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for slot %s: %w", slotID, err)
	}
	return n, nil
}

// Stats aggregates the dashboard summary: totals per status, today's
// bookings, the coming week's active bookings and revenue from non-cancelled
// bookings.
func (r *MongoBookingRepo) Stats(today, weekEnd string) (*models.BookingStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	stats := &models.BookingStats{ByStatus: make(map[string]int64)}

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking statuses: %w", err)
	}
	var byStatus []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &byStatus); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}

	revenuePipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$ne": models.BookingStatusCancelled}}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}},
	}
	cursor, err = r.bookingColl.Aggregate(ctx, revenuePipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	var revenue []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &revenue); err != nil {
		return nil, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(revenue) > 0 {
		stats.Revenue = revenue[0].Total
	}

	todayCount, err := r.bookingColl.CountDocuments(ctx, bson.M{"event_date": today})
	if err != nil {
		return nil, fmt.Errorf("failed to count today's bookings: %w", err)
	}
	stats.Today = todayCount

	upcoming, err := r.bookingColl.CountDocuments(ctx, bson.M{
		"event_date": bson.M{"$gte": today, "$lte": weekEnd},
		"status": bson.M{"$in": bson.A{
			models.BookingStatusPending,
			models.BookingStatusConfirmed,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming bookings: %w", err)
	}
	stats.UpcomingWeek = upcoming

	return stats, nil
}
