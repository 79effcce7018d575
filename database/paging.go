package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by repositories when no document matches.
var ErrNotFound = errors.New("document not found")

// Skip returns the number of documents to skip for a 1-based page.
// Non-positive pages start at the beginning.
func Skip(limit, page int64) int64 {
	if page > 0 {
		return (page - 1) * limit
	}
	return 0
}

// PageOptions builds find options for one page of results.
func PageOptions(limit, page int64) *options.FindOptions {
	opts := options.Find().SetSkip(Skip(limit, page))
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}
