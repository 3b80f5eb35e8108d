// Package system holds service metadata contracts.
package system

import "context"

// CollectionCount pairs a collection name with its number of documents.
type CollectionCount struct {
	Name  string
	Count int64
}

// InfoService reports storage collection counts.
type InfoService interface {
	Collections(ctx context.Context) ([]CollectionCount, error)
}
