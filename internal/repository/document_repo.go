package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusassist/campus-assist/internal/model"
)

// DocumentRepo handles MongoDB operations for ingested documents
type DocumentRepo interface {
	// Search returns up to limit processed documents matching query or written in lang.
	Search(ctx context.Context, query, lang string, limit int) ([]*model.Document, error)
	Create(ctx context.Context, doc *model.Document) (string, error)
}

type documentRepo struct {
	collection *mongo.Collection
}

// NewDocumentRepo creates a new document repository
func NewDocumentRepo(db *mongo.Database) DocumentRepo {
	return &documentRepo{
		collection: db.Collection("documents"),
	}
}

func (r *documentRepo) Search(ctx context.Context, query, lang string, limit int) ([]*model.Document, error) {
	cursor, err := r.collection.Find(ctx, documentSearchFilter(query, lang), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) Create(ctx context.Context, doc *model.Document) (string, error) {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid.Hex()
	}
	return doc.ID, nil
}
