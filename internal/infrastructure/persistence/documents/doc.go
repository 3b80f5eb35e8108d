// Package documents holds the BSON document models for MongoDB
// (infrastructure concern), converted to and from domain entities.
package documents
