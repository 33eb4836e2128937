package models

import (
	"time"
)

// Gender is the audience a product is sold for.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}
	return false
}

// SizeOption is one entry of a product's size chart.
type SizeOption struct {
	Length    string `json:"length" bson:"length"`
	Available bool   `json:"available" bson:"available"`
}

// Discount is an optional time-limited price cut on a product.
type Discount struct {
	OfferPercentage float64   `json:"offerPercentage" bson:"offerPercentage"`
	ValidDate       time.Time `json:"validDate" bson:"validDate"`
}

// Product is a document in the 'products' collection.
// Discount is a pointer so an absent discount marshals as no field at all.
type Product struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	Description string  `json:"description" bson:"description"`
	Material    string  `json:"material" bson:"material"`
	Stock       int     `json:"stock" bson:"stock"`
	Gender      Gender  `json:"gender" bson:"gender"`

	// --- Media ---
	Images   []string `json:"images" bson:"images"` // Max 5 URLs
	VideoURL string   `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`

	// --- Merchandising ---
	FeaturedProduct bool         `json:"featuredProduct" bson:"featuredProduct"`
	CollectionID    string       `json:"collectionId,omitempty" bson:"collectionId,omitempty"`
	Discount        *Discount    `json:"discount,omitempty" bson:"discount,omitempty"`
	Size            []SizeOption `json:"size" bson:"size"`

	// --- Review Aggregates (maintained elsewhere, start at zero) ---
	Rating      float64 `json:"rating" bson:"rating"`
	ReviewCount int     `json:"reviewCount" bson:"reviewCount"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
