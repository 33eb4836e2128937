package users

import (
	"context"
	"testing"

	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemory())
}

func addressInput(name string, isDefault bool) AddressInput {
	return AddressInput{
		Name:         name,
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "US",
		IsDefault:    isDefault,
	}
}

func TestCreateAndGetByEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, UserInput{Email: "jo@example.com", DisplayName: "Jo"})
	require.NoError(t, err)

	user, err := svc.GetByEmail(ctx, "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Jo", user.DisplayName)
	assert.Empty(t, user.Favorites)

	_, err = svc.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddAddressKeepsSingleDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, UserInput{Email: "jo@example.com"})
	require.NoError(t, err)

	_, err = svc.AddAddress(ctx, id, addressInput("Home", true))
	require.NoError(t, err)
	secondID, err := svc.AddAddress(ctx, id, addressInput("Office", true))
	require.NoError(t, err)

	user, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, user.Addresses, 2)

	defaults := 0
	for _, addr := range user.Addresses {
		assert.Equal(t, id, addr.UserID)
		assert.NotEmpty(t, addr.ID)
		if addr.IsDefault {
			defaults++
			assert.Equal(t, secondID, addr.ID, "the newest default wins")
		}
	}
	assert.Equal(t, 1, defaults, "exactly one address may be the default")
}

func TestAddNonDefaultAddressLeavesDefaultAlone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, UserInput{Email: "jo@example.com"})
	require.NoError(t, err)

	firstID, err := svc.AddAddress(ctx, id, addressInput("Home", true))
	require.NoError(t, err)
	_, err = svc.AddAddress(ctx, id, addressInput("Office", false))
	require.NoError(t, err)

	user, err := svc.Get(ctx, id)
	require.NoError(t, err)
	for _, addr := range user.Addresses {
		assert.Equal(t, addr.ID == firstID, addr.IsDefault)
	}
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, UserInput{Email: "jo@example.com"})
	require.NoError(t, err)

	favorited, err := svc.ToggleFavorite(ctx, id, "p1")
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = svc.ToggleFavorite(ctx, id, "p2")
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = svc.ToggleFavorite(ctx, id, "p1")
	require.NoError(t, err)
	assert.False(t, favorited)

	user, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, user.Favorites)
}

func TestUpdateProfileFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, UserInput{Email: "jo@example.com"})
	require.NoError(t, err)

	name := "Jo Q. Customer"
	require.NoError(t, svc.Update(ctx, id, UserUpdate{DisplayName: &name}))

	user, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, name, user.DisplayName)
	assert.Equal(t, "jo@example.com", user.Email, "untouched fields survive")
}

func TestOperationsOnMissingUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "no-such-user")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.AddAddress(ctx, "no-such-user", addressInput("Home", true))
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ToggleFavorite(ctx, "no-such-user", "p1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "no-such-user"), ErrUserNotFound)
}
