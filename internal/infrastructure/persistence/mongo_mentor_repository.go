package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/persistence/documents"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoMentorRepository struct {
	coll   *mongo.Collection
	logger logger.Logger
}

// NewMongoMentorRepository creates a Mongo-backed MentorRepository and
// ensures the indexes it depends on. The text index is what the matcher's
// search strategies rank against.
func NewMongoMentorRepository(ctx context.Context, db *mongo.Database, logger logger.Logger) (profiles.MentorRepository, error) {
	coll := db.Collection(documents.MentorCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "profile_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("profile_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "subject", Value: "text"}, {Key: "other_info", Value: "text"}},
			Options: options.Index().SetName("mentor_text_search"),
		},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("failed to create mentor indexes: %w", err)
	}

	return &mongoMentorRepository{coll: coll, logger: logger}, nil
}

func (r *mongoMentorRepository) Create(ctx context.Context, mentor *profiles.Mentor) error {
	if err := mentor.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	doc := &documents.MentorDocument{}
	doc.FromDomain(mentor)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create mentor: %w", err)
	}

	r.logger.Info("Created mentor profile with id ", mentor.ProfileID)
	return nil
}

func (r *mongoMentorRepository) List(ctx context.Context, query *profiles.MentorQuery) ([]*profiles.Mentor, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	filter := bson.M{}
	if query.Subject != "" {
		filter["subject"] = query.Subject
	}
	if query.ExperienceLevel != "" {
		filter["experience_level"] = query.ExperienceLevel
	}
	if query.City != "" {
		filter["city"] = query.City
	}
	if query.State != "" {
		filter["state"] = query.State
	}
	if query.PairProgramming != nil {
		filter["pair_programming"] = *query.PairProgramming
	}

	opts := options.Find()
	if query.SortBy != "" {
		opts.SetSort(bson.D{{Key: query.SortBy, Value: sortDirection(query.SortOrder)}})
	}
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
	}
	if query.Offset > 0 {
		opts.SetSkip(int64(query.Offset))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentors: %w", err)
	}

	var docs []*documents.MentorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}

	domainList := make([]*profiles.Mentor, len(docs))
	for i, doc := range docs {
		domainList[i] = doc.ToDomain()
	}

	return domainList, nil
}

func (r *mongoMentorRepository) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentor, error) {
	var doc documents.MentorDocument
	err := r.coll.FindOne(ctx, bson.M{"profile_id": profileID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("mentor with profile id %s: %w", profileID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch mentor: %w", err)
	}
	return doc.ToDomain(), nil
}

func (r *mongoMentorRepository) UpdateByProfileID(ctx context.Context, mentor *profiles.Mentor) error {
	if err := mentor.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	doc := &documents.MentorDocument{}
	doc.FromDomain(mentor)

	result, err := r.coll.ReplaceOne(ctx, bson.M{"profile_id": mentor.ProfileID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update mentor: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mentor with profile id %s: %w", mentor.ProfileID, ErrNotFound)
	}

	r.logger.Info("Updated mentor profile with id ", mentor.ProfileID)
	return nil
}

func (r *mongoMentorRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	result, err := r.coll.DeleteMany(ctx, bson.M{"profile_id": profileID})
	if err != nil {
		return fmt.Errorf("failed to delete mentor: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("mentor with profile id %s: %w", profileID, ErrNotFound)
	}

	r.logger.Info("Deleted mentor profile with id ", profileID)
	return nil
}

func (r *mongoMentorRepository) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentor, error) {
	cursor, err := textSearch(ctx, r.coll, term, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search mentors: %w", err)
	}

	var docs []*documents.MentorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}

	domainList := make([]*profiles.Mentor, len(docs))
	for i, doc := range docs {
		domainList[i] = doc.ToDomain()
	}

	return domainList, nil
}

func (r *mongoMentorRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count mentors: %w", err)
	}
	return count, nil
}
