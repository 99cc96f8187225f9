package addonRepo

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

// ErrNotFound is returned when no addon matches the given identifier.
var ErrNotFound = errors.New("addon not found")

// MongoAddonRepo implements AddonRepository using MongoDB.
type MongoAddonRepo struct {
	coll *mongo.Collection
}

// NewMongoAddonRepo creates a new instance of AddonRepository using MongoDB.
func NewMongoAddonRepo() AddonRepository {
	coll := database.Collection("addons")
	repo := &MongoAddonRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create addon indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAddonRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create addon indexes: %w", err)
	}
	return nil
}

// Create inserts a new addon document.
func (r *MongoAddonRepo) Create(addon *models.Addon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	addon.CreatedAt = now
	addon.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, addon)
	if err != nil {
		return fmt.Errorf("failed to create addon: %w", err)
	}
	return nil
}

// Update modifies an existing addon document.
func (r *MongoAddonRepo) Update(addon *models.Addon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	addon.UpdatedAt = time.Now()
	filter := bson.M{"id": addon.ID}
	update := bson.M{"$set": addon}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update addon with id %s: %w", addon.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("addon %s: %w", addon.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an addon document by its ID.
func (r *MongoAddonRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete addon with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("addon %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID retrieves an addon by its unique ID.
func (r *MongoAddonRepo) GetByID(id string) (*models.Addon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addon models.Addon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&addon); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("addon %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch addon with id %s: %w", id, err)
	}
	return &addon, nil
}

// GetByName retrieves an addon by its display name. Bookings submitted by
// older clients reference add-ons by name rather than ID.
func (r *MongoAddonRepo) GetByName(name string) (*models.Addon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addon models.Addon
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&addon); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("addon %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch addon %q: %w", name, err)
	}
	return &addon, nil
}

// GetAll retrieves addons ordered by display order, optionally available only.
func (r *MongoAddonRepo) GetAll(availableOnly bool) ([]models.Addon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if availableOnly {
		filter["is_available"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch addons: %w", err)
	}
	defer cursor.Close(ctx)

	var addons []models.Addon
	if err := cursor.All(ctx, &addons); err != nil {
		return nil, fmt.Errorf("failed to decode addons: %w", err)
	}
	return addons, nil
}
