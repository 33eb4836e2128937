package models

import "time"

// CollectionColors is the allowed palette for the collection color tag,
// in the order the console presents them.
var CollectionColors = []string{"purple", "indigo", "amber", "red", "blue", "green"}

// Collection is a named grouping of products ('collections' collection).
// Items mirrors the number of products currently referencing this
// collection; it is maintained incrementally, never recomputed.
type Collection struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Image       string    `json:"image" bson:"image"`
	Description string    `json:"description" bson:"description"`
	Items       int       `json:"items" bson:"items"`
	Color       string    `json:"color" bson:"color"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
