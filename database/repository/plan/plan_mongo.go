package planRepo

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

// ErrNotFound is returned when no plan matches the given identifier.
var ErrNotFound = errors.New("plan not found")

// MongoPlanRepo implements PlanRepository using MongoDB.
type MongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo creates a new instance of PlanRepository using MongoDB.
func NewMongoPlanRepo() PlanRepository {
	coll := database.Collection("plans")
	repo := &MongoPlanRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create plan indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPlanRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}
	return nil
}

// Create inserts a new plan document.
func (r *MongoPlanRepo) Create(plan *models.Plan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

// Update modifies an existing plan document.
func (r *MongoPlanRepo) Update(plan *models.Plan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	plan.UpdatedAt = time.Now()
	filter := bson.M{"id": plan.ID}
	update := bson.M{"$set": plan}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update plan with id %s: %w", plan.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("plan %s: %w", plan.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a plan document by its ID.
func (r *MongoPlanRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete plan with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a plan by its unique ID.
func (r *MongoPlanRepo) GetByID(id string) (*models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var plan models.Plan
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch plan with id %s: %w", id, err)
	}
	return &plan, nil
}

// GetAll retrieves plans ordered by display order, optionally active only.
func (r *MongoPlanRepo) GetAll(activeOnly bool) ([]models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}
