package specialistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrmanager/database"
	"hrmanager/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSpecialistRepo implements SpecialistRepository using MongoDB.
type MongoSpecialistRepo struct {
	coll *mongo.Collection
}

// NewMongoSpecialistRepo constructs a new MongoDB SpecialistRepository.
func NewMongoSpecialistRepo() SpecialistRepository {
	db := database.MongoClient.Database("hrmanager")
	return &MongoSpecialistRepo{
		coll: db.Collection("specialists"),
	}
}

// GetByID retrieves a specialist document by ID.
func (r *MongoSpecialistRepo) GetByID(ctx context.Context, id string) (*models.Specialist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sp models.Specialist
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&sp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching specialist with id %s: %w", id, err)
	}
	return &sp, nil
}

// GetAll retrieves all specialist documents.
func (r *MongoSpecialistRepo) GetAll(ctx context.Context) ([]models.Specialist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching specialists: %w", err)
	}
	defer cursor.Close(ctx)

	var specialists []models.Specialist
	if err := cursor.All(ctx, &specialists); err != nil {
		return nil, fmt.Errorf("error decoding specialists: %w", err)
	}
	return specialists, nil
}

// Create inserts a new specialist document, assigning an ID when absent.
func (r *MongoSpecialistRepo) Create(ctx context.Context, specialist *models.Specialist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if specialist.ID == "" {
		specialist.ID = uuid.New().String()
	}
	now := time.Now()
	specialist.CreatedAt = now
	specialist.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, specialist); err != nil {
		return fmt.Errorf("failed to create specialist: %w", err)
	}
	return nil
}

// Update modifies an existing specialist document.
func (r *MongoSpecialistRepo) Update(ctx context.Context, specialist *models.Specialist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	specialist.UpdatedAt = time.Now()
	filter := bson.M{"id": specialist.ID}
	update := bson.M{"$set": specialist}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update specialist with id %s: %w", specialist.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a specialist document by its ID.
func (r *MongoSpecialistRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete specialist with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
