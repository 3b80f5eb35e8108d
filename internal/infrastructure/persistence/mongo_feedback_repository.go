package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/persistence/documents"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoFeedbackRepository struct {
	coll   *mongo.Collection
	logger logger.Logger
}

// NewMongoFeedbackRepository creates a Mongo-backed feedback.Repository and
// ensures the indexes it depends on.
func NewMongoFeedbackRepository(ctx context.Context, db *mongo.Database, logger logger.Logger) (feedback.Repository, error) {
	coll := db.Collection(documents.FeedbackCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "feedback_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("feedback_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "mentee_profile_id", Value: 1}, {Key: "mentor_profile_id", Value: 1}},
			Options: options.Index().SetName("feedback_pair"),
		},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("failed to create feedback indexes: %w", err)
	}

	return &mongoFeedbackRepository{coll: coll, logger: logger}, nil
}

func (r *mongoFeedbackRepository) Create(ctx context.Context, fb *feedback.Feedback) error {
	if err := fb.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	doc := &documents.FeedbackDocument{}
	doc.FromDomain(fb)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	r.logger.Info("Created feedback with id ", fb.ID)
	return nil
}

func (r *mongoFeedbackRepository) List(ctx context.Context, query *feedback.Query) ([]*feedback.Feedback, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	filter := bson.M{}
	if query.MenteeProfileID != "" {
		filter["mentee_profile_id"] = query.MenteeProfileID
	}
	if query.MentorProfileID != "" {
		filter["mentor_profile_id"] = query.MentorProfileID
	}
	if query.Label != "" {
		filter["sentiment.label"] = query.Label
	}

	opts := options.Find().SetSort(bson.D{{Key: "date_time_created", Value: -1}})
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
	}
	if query.Offset > 0 {
		opts.SetSkip(int64(query.Offset))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}

	var docs []*documents.FeedbackDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}

	domainList := make([]*feedback.Feedback, len(docs))
	for i, doc := range docs {
		domainList[i] = doc.ToDomain()
	}

	return domainList, nil
}

func (r *mongoFeedbackRepository) GetByID(ctx context.Context, id string) (*feedback.Feedback, error) {
	var doc documents.FeedbackDocument
	err := r.coll.FindOne(ctx, bson.M{"feedback_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("feedback with id %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	return doc.ToDomain(), nil
}

func (r *mongoFeedbackRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"feedback_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("feedback with id %s: %w", id, ErrNotFound)
	}

	r.logger.Info("Deleted feedback with id ", id)
	return nil
}

func (r *mongoFeedbackRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}
