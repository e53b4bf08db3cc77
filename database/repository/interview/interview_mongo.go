package interviewRepo

import (
	"context"
	"fmt"
	"time"

	"hrmanager/database"
	"hrmanager/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInterviewRepo implements InterviewRepository using MongoDB.
type MongoInterviewRepo struct {
	interviewColl  *mongo.Collection
	specialistColl *mongo.Collection
}

// NewMongoInterviewRepo constructs a new instance of MongoInterviewRepo.
func NewMongoInterviewRepo() InterviewRepository {
	db := database.MongoClient.Database("hrmanager")
	return &MongoInterviewRepo{
		interviewColl:  db.Collection("interviews"),
		specialistColl: db.Collection("specialists"),
	}
}

// GetAll retrieves all interviews joined with the name of their specialist.
func (repo *MongoInterviewRepo) GetAll(ctx context.Context) ([]models.InterviewWithSpecialist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "specialists",
			"localField":   "specialist_id",
			"foreignField": "id",
			"as":           "specialist",
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"specialist_name": bson.M{"$arrayElemAt": bson.A{"$specialist.full_name", 0}},
		}}},
		bson.D{{Key: "$unset", Value: "specialist"}},
		bson.D{{Key: "$sort", Value: bson.M{"arrival_time": 1}}},
	}

	cursor, err := repo.interviewColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}
	defer cursor.Close(ctx)

	var interviews []models.InterviewWithSpecialist
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, fmt.Errorf("error decoding interviews: %w", err)
	}
	return interviews, nil
}

// GetBySpecialist retrieves all interviews booked against one specialist.
func (repo *MongoInterviewRepo) GetBySpecialist(ctx context.Context, specialistID string) ([]models.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"specialist_id": specialistID}
	cursor, err := repo.interviewColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching interviews for specialist %s: %w", specialistID, err)
	}
	defer cursor.Close(ctx)

	var interviews []models.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, fmt.Errorf("error decoding interviews for specialist %s: %w", specialistID, err)
	}
	return interviews, nil
}

// overlapFilter matches interviews of the given specialist whose half-open
// interval [arrival_time, arrival_time + duration) intersects [start, end).
func overlapFilter(specialistID string, start, end time.Time) bson.M {
	return bson.M{
		"specialist_id": specialistID,
		"$expr": bson.M{
			"$and": bson.A{
				bson.M{"$lt": bson.A{"$arrival_time", end}},
				bson.M{"$gt": bson.A{
					bson.M{"$add": bson.A{
						"$arrival_time",
						bson.M{"$multiply": bson.A{"$duration_minutes", 60 * 1000}},
					}},
					start,
				}},
			},
		},
	}
}
