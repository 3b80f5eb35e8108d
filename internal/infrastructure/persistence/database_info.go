package persistence

import (
	"context"
	"fmt"
	"sort"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/system"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoInfoService implements the system.InfoService interface
type mongoInfoService struct {
	db     *mongo.Database
	logger logger.Logger
}

// NewMongoInfoService creates a new instance of system.InfoService
func NewMongoInfoService(db *mongo.Database, logger logger.Logger) (system.InfoService, error) {
	return &mongoInfoService{db: db, logger: logger}, nil
}

// Collections returns every collection in the database with a count of its
// documents, sorted by name.
func (s *mongoInfoService) Collections(ctx context.Context) ([]system.CollectionCount, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	counts := make([]system.CollectionCount, 0, len(names))
	for _, name := range names {
		count, err := s.db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, fmt.Errorf("failed to count collection %s: %w", name, err)
		}
		counts = append(counts, system.CollectionCount{Name: name, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })
	return counts, nil
}
