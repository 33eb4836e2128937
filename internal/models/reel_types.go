package models

import "time"

// Reel is a short promotional video tied to one product. Title,
// description and price are copied from the product when the reel is
// created and are not kept in sync afterwards.
type Reel struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Src         string    `json:"src" bson:"src"`
	Thumbnail   string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	ProductID   string    `json:"productId" bson:"productId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       string    `json:"price,omitempty" bson:"price,omitempty"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
