package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusassist/campus-assist/internal/model"
)

// FAQRepo handles MongoDB operations for curated FAQs
type FAQRepo interface {
	// Search returns up to limit active FAQs matching query, highest priority first.
	Search(ctx context.Context, query, lang string, limit int) ([]*model.FAQ, error)
	Create(ctx context.Context, faq *model.FAQ) (string, error)
	GetByID(ctx context.Context, id string) (*model.FAQ, error)
}

type faqRepo struct {
	collection *mongo.Collection
}

// NewFAQRepo creates a new FAQ repository
func NewFAQRepo(db *mongo.Database) FAQRepo {
	return &faqRepo{
		collection: db.Collection("faqs"),
	}
}

func (r *faqRepo) Search(ctx context.Context, query, lang string, limit int) ([]*model.FAQ, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, faqSearchFilter(query, lang), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []*model.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepo) Create(ctx context.Context, faq *model.FAQ) (string, error) {
	faq.CreatedAt = time.Now()
	faq.UpdatedAt = time.Now()
	for i, kw := range faq.Keywords {
		faq.Keywords[i] = strings.ToLower(kw)
	}

	result, err := r.collection.InsertOne(ctx, faq)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	faq.ID = oid.Hex()
	return faq.ID, nil
}

func (r *faqRepo) GetByID(ctx context.Context, id string) (*model.FAQ, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var faq model.FAQ
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&faq)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &faq, nil
}
