// Package persistence provides the MongoDB-backed repository
// implementations for the mentor match service.
package persistence
