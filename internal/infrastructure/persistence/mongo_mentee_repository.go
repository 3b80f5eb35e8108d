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

type mongoMenteeRepository struct {
	coll   *mongo.Collection
	logger logger.Logger
}

// NewMongoMenteeRepository creates a Mongo-backed MenteeRepository and
// ensures the indexes it depends on.
func NewMongoMenteeRepository(ctx context.Context, db *mongo.Database, logger logger.Logger) (profiles.MenteeRepository, error) {
	coll := db.Collection(documents.MenteeCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "profile_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("profile_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "subject", Value: "text"}, {Key: "other_info", Value: "text"}},
			Options: options.Index().SetName("mentee_text_search"),
		},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("failed to create mentee indexes: %w", err)
	}

	return &mongoMenteeRepository{coll: coll, logger: logger}, nil
}

func (r *mongoMenteeRepository) Create(ctx context.Context, mentee *profiles.Mentee) error {
	if err := mentee.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	doc := &documents.MenteeDocument{}
	doc.FromDomain(mentee)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create mentee: %w", err)
	}

	r.logger.Info("Created mentee profile with id ", mentee.ProfileID)
	return nil
}

func (r *mongoMenteeRepository) List(ctx context.Context, query *profiles.MenteeQuery) ([]*profiles.Mentee, error) {
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
	if query.FormerlyIncarcerated != nil {
		filter["formerly_incarcerated"] = *query.FormerlyIncarcerated
	}
	if query.LowIncome != nil {
		filter["low_income"] = *query.LowIncome
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
		return nil, fmt.Errorf("failed to fetch mentees: %w", err)
	}

	var docs []*documents.MenteeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode mentees: %w", err)
	}

	domainList := make([]*profiles.Mentee, len(docs))
	for i, doc := range docs {
		domainList[i] = doc.ToDomain()
	}

	return domainList, nil
}

func (r *mongoMenteeRepository) GetByProfileID(ctx context.Context, profileID string) (*profiles.Mentee, error) {
	var doc documents.MenteeDocument
	err := r.coll.FindOne(ctx, bson.M{"profile_id": profileID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("mentee with profile id %s: %w", profileID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch mentee: %w", err)
	}
	return doc.ToDomain(), nil
}

func (r *mongoMenteeRepository) UpdateByProfileID(ctx context.Context, mentee *profiles.Mentee) error {
	if err := mentee.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	doc := &documents.MenteeDocument{}
	doc.FromDomain(mentee)

	result, err := r.coll.ReplaceOne(ctx, bson.M{"profile_id": mentee.ProfileID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update mentee: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mentee with profile id %s: %w", mentee.ProfileID, ErrNotFound)
	}

	r.logger.Info("Updated mentee profile with id ", mentee.ProfileID)
	return nil
}

func (r *mongoMenteeRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	result, err := r.coll.DeleteMany(ctx, bson.M{"profile_id": profileID})
	if err != nil {
		return fmt.Errorf("failed to delete mentee: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("mentee with profile id %s: %w", profileID, ErrNotFound)
	}

	r.logger.Info("Deleted mentee profile with id ", profileID)
	return nil
}

func (r *mongoMenteeRepository) Search(ctx context.Context, term string, limit int) ([]*profiles.Mentee, error) {
	cursor, err := textSearch(ctx, r.coll, term, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search mentees: %w", err)
	}

	var docs []*documents.MenteeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode mentees: %w", err)
	}

	domainList := make([]*profiles.Mentee, len(docs))
	for i, doc := range docs {
		domainList[i] = doc.ToDomain()
	}

	return domainList, nil
}

func (r *mongoMenteeRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count mentees: %w", err)
	}
	return count, nil
}
