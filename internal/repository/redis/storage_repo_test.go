package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageRepo_SessionAndAccountScopes(t *testing.T) {
	mr, client, cfg := newTestRedis(t)
	repo := NewStorageRepo(client, cfg, logger.Nop{})
	ctx := context.Background()

	cart := domain.Cart{{ProductID: 1, Title: "shirt", Price: decimal.RequireFromString("9.99"), Quantity: 2}}

	require.NoError(t, repo.Set(ctx, "sid-1", domain.SessionKey(domain.KeyCart), cart))
	require.NoError(t, repo.Set(ctx, "sid-1", domain.UserCartKey("John@Mail.com"), cart))

	assert.True(t, mr.Exists("storefront:ls:sid-1:cart"))
	assert.True(t, mr.Exists("storefront:ls:cart_john@mail.com"))
	assert.Equal(t, time.Hour, mr.TTL("storefront:ls:sid-1:cart"))

	var got domain.Cart
	found, err := repo.Get(ctx, "sid-2", domain.UserCartKey("john@mail.com"), &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "19.98", got.Total().StringFixed(2))

	found, err = repo.Get(ctx, "sid-2", domain.SessionKey(domain.KeyCart), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorageRepo_MalformedJSONReadsAsMissing(t *testing.T) {
	mr, client, cfg := newTestRedis(t)
	repo := NewStorageRepo(client, cfg, logger.Nop{})

	require.NoError(t, mr.Set("storefront:ls:sid-1:cart", `[{"id":1,`))

	var cart domain.Cart
	found, err := repo.Get(context.Background(), "sid-1", domain.SessionKey(domain.KeyCart), &cart)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, cart)
}

func TestStorageRepo_Delete(t *testing.T) {
	mr, client, cfg := newTestRedis(t)
	repo := NewStorageRepo(client, cfg, logger.Nop{})
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "sid-1", domain.SessionKey(domain.KeyUserName), "Jhon"))
	require.NoError(t, repo.Set(ctx, "sid-1", domain.SessionKey(domain.KeyUserEmail), "john@mail.com"))

	require.NoError(t, repo.Delete(ctx, "sid-1",
		domain.SessionKey(domain.KeyUserName),
		domain.SessionKey(domain.KeyUserEmail),
		domain.SessionKey(domain.KeyPendingOrder),
	))

	assert.False(t, mr.Exists("storefront:ls:sid-1:userName"))
	assert.False(t, mr.Exists("storefront:ls:sid-1:userEmail"))
	require.NoError(t, repo.Delete(ctx, "sid-1"))
}

func TestStorageRepo_SessionKeyRequiresSID(t *testing.T) {
	_, client, cfg := newTestRedis(t)
	repo := NewStorageRepo(client, cfg, logger.Nop{})

	err := repo.Set(context.Background(), "", domain.SessionKey(domain.KeyCart), domain.Cart{})
	require.ErrorIs(t, err, e.ErrUnauthorized)

	require.NoError(t, repo.Set(context.Background(), "", domain.FavoritesKey("a@b.c"), domain.Favorites{}))
}
