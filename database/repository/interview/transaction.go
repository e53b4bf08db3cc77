package interviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hrmanager/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertIfNoOverlap inserts the interview after re-checking, inside one
// transaction, that no interview for the same specialist occupies any part of
// the candidate window. The pre-insert check in the validator can race with a
// concurrent booking; this is the authoritative one.
func (repo *MongoInterviewRepo) InsertIfNoOverlap(ctx context.Context, interview *models.Interview) error {
	if interview.ID == "" {
		interview.ID = uuid.New().String()
	}
	interview.CreatedAt = time.Now()

	client := repo.interviewColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := overlapFilter(interview.SpecialistID, interview.ArrivalTime, interview.End())
		count, err := repo.interviewColl.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}

		if _, err := repo.interviewColl.InsertOne(sc, interview); err != nil {
			return fmt.Errorf("insert interview failed: %w", err)
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
		if errors.Is(err, ErrOverlap) {
			return ErrOverlap
		}
		return fmt.Errorf("interview transaction failed: %w", err)
	}

	return nil
}
