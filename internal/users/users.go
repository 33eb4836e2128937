// Package users is the typed repository over the 'users' collection.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/Het4705/chic-dashboard-haven/internal/models"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user id or email does not exist.
var ErrUserNotFound = errors.New("user not found")

// Service is the user repository.
type Service struct {
	db store.Store
}

func NewService(db store.Store) *Service {
	return &Service{db: db}
}

// UserInput is the payload for creating a user record.
type UserInput struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
}

// UserUpdate is a partial update of the profile fields.
type UserUpdate struct {
	DisplayName *string `json:"displayName"`
	PhoneNumber *string `json:"phoneNumber"`
}

// AddressInput is a new address for a user. Id and owner are assigned
// here, not by the caller.
type AddressInput struct {
	Name         string `json:"name" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	PostalCode   string `json:"postalCode" binding:"required"`
	Country      string `json:"country" binding:"required"`
	IsDefault    bool   `json:"isDefault"`
	PhoneNumber  string `json:"phoneNumber"`
}

// Create inserts a new user with empty address and favorite lists.
func (s *Service) Create(ctx context.Context, in UserInput) (string, error) {
	user := models.User{
		Email:       in.Email,
		DisplayName: in.DisplayName,
		PhoneNumber: in.PhoneNumber,
		Addresses:   []models.Address{},
		Favorites:   []string{},
	}

	id, err := s.db.Create(ctx, store.Users, user)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// Update applies the partial profile update.
func (s *Service) Update(ctx context.Context, id string, upd UserUpdate) error {
	fields := map[string]interface{}{}
	if upd.DisplayName != nil {
		fields["displayName"] = *upd.DisplayName
	}
	if upd.PhoneNumber != nil {
		fields["phoneNumber"] = *upd.PhoneNumber
	}

	if err := s.db.Update(ctx, store.Users, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.Get(ctx, store.Users, id, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail looks a user up by exact email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	q := store.Query{Filters: []store.Filter{store.Eq("email", email)}, Limit: 1}
	var found []models.User
	if err := s.db.Find(ctx, store.Users, q, &found); err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrUserNotFound
	}
	return &found[0], nil
}

// List returns every user.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var all []models.User
	if err := s.db.Find(ctx, store.Users, store.Query{}, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// AddAddress appends an address to the user's list. A new default
// clears the default flag on every existing address first, so at most
// one address is ever the default.
func (s *Service) AddAddress(ctx context.Context, userID string, in AddressInput) (string, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	addresses := user.Addresses
	if in.IsDefault {
		for i := range addresses {
			addresses[i].IsDefault = false
		}
	}

	address := models.Address{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		IsDefault:    in.IsDefault,
		PhoneNumber:  in.PhoneNumber,
	}
	addresses = append(addresses, address)

	fields := map[string]interface{}{"addresses": addresses}
	if err := s.db.Update(ctx, store.Users, userID, fields); err != nil {
		return "", fmt.Errorf("failed to save addresses: %w", err)
	}
	return address.ID, nil
}

// ToggleFavorite adds the product id to the user's favorites, or
// removes it when already present. Returns whether the product is a
// favorite after the call.
func (s *Service) ToggleFavorite(ctx context.Context, userID, productID string) (bool, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}

	favorites := user.Favorites
	found := false
	for i, fav := range favorites {
		if fav == productID {
			favorites = append(favorites[:i], favorites[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		favorites = append(favorites, productID)
	}

	fields := map[string]interface{}{"favorites": favorites}
	if err := s.db.Update(ctx, store.Users, userID, fields); err != nil {
		return false, fmt.Errorf("failed to save favorites: %w", err)
	}
	return !found, nil
}

// Delete removes a user record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.db.Delete(ctx, store.Users, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
