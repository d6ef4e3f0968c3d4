package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	storage *fakeStorage
	api     *fakeAPI
	events  *fakeEvents
	uc      *CartUseCase
}

func newCartFixture() *cartFixture {
	f := &cartFixture{
		storage: newFakeStorage(),
		api:     newFakeAPI(),
		events:  &fakeEvents{},
	}
	f.api.addProduct(1, "shirt", "19.99")
	f.api.addProduct(2, "hat", "5.01")

	f.uc = NewCartUC(f.storage, f.api, f.events, logger.Nop{})
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestCartUseCase_GuestAddAndTotals(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	guest := domain.Session{ID: "sid-1"}

	_, err := f.uc.Add(ctx, guest, 1, 2)
	require.NoError(t, err)
	view, err := f.uc.Add(ctx, guest, 2, 1)
	require.NoError(t, err)
	view, err = f.uc.Add(ctx, guest, 1, 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 4, view.Count)
	assert.Equal(t, "64.98", view.Total.StringFixed(2))

	assert.True(t, f.storage.has("sid-1", domain.SessionKey(domain.KeyCart)))
	assert.Equal(t, []string{EventCartUpdated, EventCartUpdated, EventCartUpdated}, f.events.types())
}

func TestCartUseCase_AddValidation(t *testing.T) {
	f := newCartFixture()
	guest := domain.Session{ID: "sid-1"}

	_, err := f.uc.Add(context.Background(), guest, 1, 0)
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = f.uc.Add(context.Background(), guest, 42, 1)
	require.ErrorIs(t, err, e.ErrNotFound)
}

func TestCartUseCase_QuantityLimit(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	guest := domain.Session{ID: "sid-1"}

	_, err := f.uc.Add(ctx, guest, 1, 5)
	require.NoError(t, err)

	_, err = f.uc.Add(ctx, guest, 1, math.MaxInt)
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = f.uc.Add(ctx, guest, 1, domain.MaxItemQuantity-4)
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	view, err := f.uc.Add(ctx, guest, 1, domain.MaxItemQuantity-5)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, domain.MaxItemQuantity, view.Items[0].Quantity)

	_, err = f.uc.UpdateQuantity(ctx, guest, 1, domain.MaxItemQuantity+1)
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	view, err = f.uc.Get(ctx, guest)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, domain.MaxItemQuantity, view.Count)
}

func TestCartUseCase_LoggedInWritesBothKeys(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	sess := loggedIn(f.storage, "sid-1", "john@mail.com")

	_, err := f.uc.Add(ctx, sess, 1, 1)
	require.NoError(t, err)

	assert.True(t, f.storage.has("sid-1", domain.SessionKey(domain.KeyCart)))
	assert.True(t, f.storage.has("other-browser", domain.UserCartKey("john@mail.com")))

	// другой браузер того же аккаунта видит корзину аккаунта
	other := loggedIn(f.storage, "sid-2", "john@mail.com")
	view, err := f.uc.Get(ctx, other)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(1), view.Items[0].ProductID)
}

func TestCartUseCase_FallsBackToGlobalCart(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	guest := domain.Session{ID: "sid-1"}
	_, err := f.uc.Add(ctx, guest, 2, 3)
	require.NoError(t, err)

	sess := loggedIn(f.storage, "sid-1", "ann@mail.com")
	view, err := f.uc.Get(ctx, sess)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestCartUseCase_UpdateQuantityAndRemove(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	guest := domain.Session{ID: "sid-1"}

	_, err := f.uc.Add(ctx, guest, 1, 1)
	require.NoError(t, err)
	_, err = f.uc.Add(ctx, guest, 2, 1)
	require.NoError(t, err)

	view, err := f.uc.UpdateQuantity(ctx, guest, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, view.Count)

	_, err = f.uc.UpdateQuantity(ctx, guest, 99, 1)
	require.ErrorIs(t, err, e.ErrNotFound)

	_, err = f.uc.UpdateQuantity(ctx, guest, 1, -1)
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	view, err = f.uc.UpdateQuantity(ctx, guest, 2, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	view, err = f.uc.Remove(ctx, guest, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	view, err = f.uc.Remove(ctx, guest, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartUseCase_ClearEmptiesBothKeys(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()
	sess := loggedIn(f.storage, "sid-1", "john@mail.com")

	_, err := f.uc.Add(ctx, sess, 1, 2)
	require.NoError(t, err)

	require.NoError(t, f.uc.Clear(ctx, sess))

	assert.False(t, f.storage.has("sid-1", domain.SessionKey(domain.KeyCart)))
	assert.False(t, f.storage.has("sid-1", domain.UserCartKey("john@mail.com")))

	view, err := f.uc.Get(ctx, sess)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total.StringFixed(2))
}

func TestCartUseCase_MalformedStorageReadsAsEmpty(t *testing.T) {
	f := newCartFixture()
	f.storage.putRaw("sid-1", domain.SessionKey(domain.KeyCart), "{not json")

	view, err := f.uc.Get(context.Background(), domain.Session{ID: "sid-1"})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartUseCase_MergeGuestCart(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	guest := domain.Session{ID: "sid-1"}
	_, err := f.uc.Add(ctx, guest, 1, 1)
	require.NoError(t, err)

	other := loggedIn(f.storage, "sid-2", "john@mail.com")
	_, err = f.uc.Add(ctx, other, 1, 2)
	require.NoError(t, err)
	_, err = f.uc.Add(ctx, other, 2, 1)
	require.NoError(t, err)

	require.NoError(t, f.uc.MergeGuestCart(ctx, "sid-1", "John@Mail.com"))

	var merged domain.Cart
	found, err := f.storage.Get(ctx, "", domain.UserCartKey("john@mail.com"), &merged)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 4, merged.Count())
}
