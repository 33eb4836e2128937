// Package store is a thin generic client for the hosted document
// database. Documents live in named collections, are keyed by an opaque
// string id, and carry server-assigned createdAt/updatedAt stamps.
package store

import (
	"context"
	"errors"
)

// Collection names used by the console.
const (
	Products    = "products"
	Collections = "collections"
	Orders      = "orders"
	Users       = "users"
	Reels       = "reels"
	Admins      = "admins"
)

// ErrNotFound is returned when a document id does not exist.
var ErrNotFound = errors.New("document not found")

// Filter is a single equality constraint.
type Filter struct {
	Field string
	Value interface{}
}

// Sort orders results by one field.
type Sort struct {
	Field string
	Desc  bool
}

// Query combines equality filters with an optional sort and limit.
// The zero value matches every document in the collection.
type Query struct {
	Filters []Filter
	Sort    *Sort
	Limit   int64
}

// Eq builds an equality filter.
func Eq(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value}
}

// Desc builds a descending sort on field.
func Desc(field string) *Sort {
	return &Sort{Field: field, Desc: true}
}

// Store is the document database contract the repositories are built on.
// Create returns the generated id and stamps createdAt/updatedAt; Update
// merges the given fields into the document and re-stamps updatedAt.
type Store interface {
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	Get(ctx context.Context, collection, id string, out interface{}) error
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	Find(ctx context.Context, collection string, q Query, out interface{}) error
}
