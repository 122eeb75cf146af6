package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusassist/campus-assist/internal/model"
)

// ConversationRepo handles MongoDB operations for conversations and their
// append-only message log.
type ConversationRepo interface {
	Create(ctx context.Context, conv *model.Conversation) error
	GetByID(ctx context.Context, id string) (*model.Conversation, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status model.ConversationStatus) error
	AppendMessages(ctx context.Context, messages ...*model.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*model.Message, error)
	GetMessage(ctx context.Context, id string) (*model.Message, error)
	Stats(ctx context.Context) (*model.ChatStats, error)
	EnsureIndexes(ctx context.Context) error
}

type conversationRepo struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

// NewConversationRepo creates a new conversation repository
func NewConversationRepo(db *mongo.Database) ConversationRepo {
	return &conversationRepo{
		conversations: db.Collection("conversations"),
		messages:      db.Collection("messages"),
	}
}

func (r *conversationRepo) Create(ctx context.Context, conv *model.Conversation) error {
	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	_, err := r.conversations.InsertOne(ctx, conv)
	return err
}

func (r *conversationRepo) GetByID(ctx context.Context, id string) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.conversations.FindOne(ctx, bson.M{"_id": id}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.conversations.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *conversationRepo) UpdateStatus(ctx context.Context, id string, status model.ConversationStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err := r.conversations.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *conversationRepo) AppendMessages(ctx context.Context, messages ...*model.Message) error {
	if len(messages) == 0 {
		return nil
	}

	docs := make([]interface{}, len(messages))
	for i, m := range messages {
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now()
		}
		docs[i] = m
	}

	result, err := r.messages.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return err
	}

	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			messages[i].ID = oid.Hex()
		}
	}
	return nil
}

func (r *conversationRepo) ListMessages(ctx context.Context, conversationID string) ([]*model.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.messages.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []*model.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *conversationRepo) GetMessage(ctx context.Context, id string) (*model.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var msg model.Message
	err = r.messages.FindOne(ctx, bson.M{"_id": oid}).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *conversationRepo) Stats(ctx context.Context) (*model.ChatStats, error) {
	totalConversations, err := r.conversations.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalMessages, err := r.messages.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	languages, err := groupCount(ctx, r.conversations, bson.M{}, "$language")
	if err != nil {
		return nil, err
	}
	intents, err := groupCount(ctx, r.messages, bson.M{"sender": model.SenderUser}, "$intent")
	if err != nil {
		return nil, err
	}

	return &model.ChatStats{
		TotalConversations:   totalConversations,
		TotalMessages:        totalMessages,
		LanguageDistribution: languages,
		PopularIntents:       intents,
	}, nil
}

func (r *conversationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}

// groupCount counts documents matching match grouped by the given field path.
func groupCount(ctx context.Context, coll *mongo.Collection, match bson.M, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}
