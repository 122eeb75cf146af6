package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusassist/campus-assist/internal/model"
)

// FeedbackRepo handles MongoDB operations for message ratings
type FeedbackRepo interface {
	Create(ctx context.Context, feedback *model.Feedback) error
}

type feedbackRepo struct {
	collection *mongo.Collection
}

// NewFeedbackRepo creates a new feedback repository
func NewFeedbackRepo(db *mongo.Database) FeedbackRepo {
	return &feedbackRepo{
		collection: db.Collection("feedback"),
	}
}

func (r *feedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		feedback.ID = oid.Hex()
	}
	return nil
}
