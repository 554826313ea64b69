package service

import (
	"context"
	"testing"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemForcesPendingStatus(t *testing.T) {
	repo := newStubCartRepo()
	svc := NewCartService(repo, newStubUserRepo())

	resp, err := svc.Add(context.Background(), dto.AddCartItemRequest{
		Email: "alice@example.com",
		Name:  "Escalope de Poulet",
		Price: 14.5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.InsertedID)

	items, _ := repo.List(context.Background(), "alice@example.com")
	require.Len(t, items, 1)
	assert.Equal(t, model.CartStatusPending, items[0].Status)
}

func TestRemoveCartItemByOwner(t *testing.T) {
	item := &model.CartItem{Email: "alice@example.com", Name: "Soup", Price: 5}
	repo := newStubCartRepo(item)
	svc := NewCartService(repo, newStubUserRepo())

	resp, err := svc.Remove(context.Background(), item.ID.Hex(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.DeletedCount)

	items, _ := repo.List(context.Background(), "")
	assert.Empty(t, items)
}

func TestRemoveCartItemByAdmin(t *testing.T) {
	item := &model.CartItem{Email: "alice@example.com", Name: "Soup", Price: 5}
	repo := newStubCartRepo(item)
	users := newStubUserRepo(&model.User{Email: "admin@example.com", Role: model.RoleAdmin})
	svc := NewCartService(repo, users)

	resp, err := svc.Remove(context.Background(), item.ID.Hex(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.DeletedCount)
}

func TestRemoveCartItemByStrangerIsForbidden(t *testing.T) {
	item := &model.CartItem{Email: "alice@example.com", Name: "Soup", Price: 5}
	repo := newStubCartRepo(item)
	users := newStubUserRepo(&model.User{Email: "mallory@example.com", Role: model.RoleUser})
	svc := NewCartService(repo, users)

	_, err := svc.Remove(context.Background(), item.ID.Hex(), "mallory@example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	// The item must survive a rejected delete.
	items, _ := repo.List(context.Background(), "")
	assert.Len(t, items, 1)
}

func TestRemoveCartItemByUnknownCallerIsForbidden(t *testing.T) {
	item := &model.CartItem{Email: "alice@example.com", Name: "Soup", Price: 5}
	svc := NewCartService(newStubCartRepo(item), newStubUserRepo())

	_, err := svc.Remove(context.Background(), item.ID.Hex(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRemoveCartItemInvalidID(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), newStubUserRepo())

	_, err := svc.Remove(context.Background(), "nope", "alice@example.com")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestRemoveCartItemNotFound(t *testing.T) {
	svc := NewCartService(newStubCartRepo(), newStubUserRepo())

	_, err := svc.Remove(context.Background(), "64f000000000000000000000", "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
