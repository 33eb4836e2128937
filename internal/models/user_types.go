package models

import "time"

// Address is a stored delivery address. Exactly one address in a user's
// list may carry IsDefault.
type Address struct {
	ID           string `json:"id" bson:"id"`
	UserID       string `json:"userId" bson:"userId"`
	Name         string `json:"name" bson:"name"`
	AddressLine1 string `json:"addressLine1" bson:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty" bson:"addressLine2,omitempty"`
	City         string `json:"city" bson:"city"`
	State        string `json:"state" bson:"state"`
	PostalCode   string `json:"postalCode" bson:"postalCode"`
	Country      string `json:"country" bson:"country"`
	IsDefault    bool   `json:"isDefault" bson:"isDefault"`
	PhoneNumber  string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
}

// User is a storefront customer ('users' collection).
type User struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Addresses   []Address `json:"addresses" bson:"addresses"`
	Favorites   []string  `json:"favorites" bson:"favorites"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
