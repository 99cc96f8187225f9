package photoRepo

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

// ErrNotFound is returned when no photo matches the given identifier.
var ErrNotFound = errors.New("photo not found")

// PhotoRepository defines data access for gallery photos.
type PhotoRepository interface {
	Create(photo *models.Photo) error
	Delete(id string) error
	GetByID(id string) (*models.Photo, error)
	GetAll(category string) ([]models.Photo, error)
	GetByBookingRef(ref string) ([]models.Photo, error)
}

// MongoPhotoRepo implements PhotoRepository using MongoDB.
type MongoPhotoRepo struct {
	coll *mongo.Collection
}

// NewMongoPhotoRepo creates a new instance of PhotoRepository using MongoDB.
func NewMongoPhotoRepo() PhotoRepository {
	coll := database.Collection("photos")
	repo := &MongoPhotoRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create photo indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPhotoRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_ref", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create photo indexes: %w", err)
	}
	return nil
}

// Create inserts a new photo document.
func (r *MongoPhotoRepo) Create(photo *models.Photo) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	photo.CreatedAt = now
	photo.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, photo)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// Delete removes a photo document by its ID.
func (r *MongoPhotoRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete photo with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("photo %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a photo by its unique ID.
func (r *MongoPhotoRepo) GetByID(id string) (*models.Photo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var photo models.Photo
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&photo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("photo %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch photo with id %s: %w", id, err)
	}
	return &photo, nil
}

// GetAll retrieves photos newest first, optionally filtered by category.
func (r *MongoPhotoRepo) GetAll(category string) ([]models.Photo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos: %w", err)
	}
	defer cursor.Close(ctx)

	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}
	return photos, nil
}

// GetByBookingRef retrieves all photos attached to a booking reference.
func (r *MongoPhotoRepo) GetByBookingRef(ref string) ([]models.Photo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"booking_ref": ref})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos for booking %s: %w", ref, err)
	}
	defer cursor.Close(ctx)

	var photos []models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos for booking %s: %w", ref, err)
	}
	return photos, nil
}
