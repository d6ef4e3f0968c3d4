package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	storage *fakeStorage
	api     *fakeAPI
	events  *fakeEvents
	carts   *CartUseCase
	uc      *AuthUseCase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		storage: newFakeStorage(),
		api:     newFakeAPI(),
		events:  &fakeEvents{},
	}
	f.api.addProduct(1, "shirt", "10")
	f.api.addUser("john@mail.com", "changeme", "Jhon", "customer")
	f.api.addUser("admin@mail.com", "admin123", "Admin", domain.RoleAdmin)

	f.carts = NewCartUC(f.storage, f.api, f.events, logger.Nop{})
	f.uc = NewAuthUC(f.api, f.storage, f.carts, f.events, logger.Nop{})
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestAuthUseCase_Login(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	sess := domain.Session{ID: "sid-1"}

	_, err := f.carts.Add(ctx, sess, 1, 2)
	require.NoError(t, err)

	res, err := f.uc.Login(ctx, sess, " John@Mail.com ", "changeme")
	require.NoError(t, err)
	assert.Equal(t, "tok-john@mail.com", res.Tokens.AccessToken)
	assert.Equal(t, "Jhon", res.User.Name)

	var name, email string
	found, err := f.storage.Get(ctx, "sid-1", domain.SessionKey(domain.KeyUserName), &name)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Jhon", name)

	found, err = f.storage.Get(ctx, "sid-1", domain.SessionKey(domain.KeyUserEmail), &email)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "john@mail.com", email)

	var cart domain.Cart
	found, err = f.storage.Get(ctx, "", domain.UserCartKey("john@mail.com"), &cart)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, cart.Count())

	assert.Contains(t, f.events.types(), EventProfileUpdated)
}

func TestAuthUseCase_LoginErrors(t *testing.T) {
	f := newAuthFixture()
	sess := domain.Session{ID: "sid-1"}

	_, err := f.uc.Login(context.Background(), sess, "john@mail.com", "wrong")
	require.ErrorIs(t, err, e.ErrUnauthorized)

	_, err = f.uc.Login(context.Background(), sess, "", "changeme")
	require.ErrorIs(t, err, e.ErrMissingFields)

	assert.False(t, f.storage.has("sid-1", domain.SessionKey(domain.KeyUserEmail)))
}

func TestAuthUseCase_AdminLogin(t *testing.T) {
	f := newAuthFixture()
	sess := domain.Session{ID: "sid-1"}

	res, err := f.uc.AdminLogin(context.Background(), sess, "admin@mail.com", "admin123")
	require.NoError(t, err)
	assert.True(t, res.User.IsAdmin())

	_, err = f.uc.AdminLogin(context.Background(), sess, "john@mail.com", "changeme")
	require.ErrorIs(t, err, e.ErrForbidden)
}

func TestAuthUseCase_Register(t *testing.T) {
	f := newAuthFixture()

	user, err := f.uc.Register(context.Background(), &RegisterUserReq{
		Name:     " Nico ",
		Email:    "Nico@Gmail.com",
		Password: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nico", user.Name)
	assert.Equal(t, "nico@gmail.com", user.Email)
	assert.Equal(t, defaultAvatar, f.api.registered.Avatar)

	cases := map[string]*RegisterUserReq{
		"missing name":   {Email: "a@b.c", Password: "1234"},
		"bad email":      {Name: "A", Email: "not-an-email", Password: "1234"},
		"short password": {Name: "A", Email: "a@b.c", Password: "12"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Register(context.Background(), req)
			require.Error(t, err)
		})
	}
}

func TestAuthUseCase_LogoutKeepsAccountCart(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	sess := domain.Session{ID: "sid-1", Token: "tok-john@mail.com"}

	_, err := f.uc.Login(ctx, sess, "john@mail.com", "changeme")
	require.NoError(t, err)
	_, err = f.carts.Add(ctx, sess, 1, 1)
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(ctx, sess))

	assert.False(t, f.storage.has("sid-1", domain.SessionKey(domain.KeyUserEmail)))
	assert.False(t, f.storage.has("sid-1", domain.SessionKey(domain.KeyUserName)))
	assert.False(t, f.storage.has("sid-1", domain.SessionKey(domain.KeyCart)))
	assert.True(t, f.storage.has("sid-1", domain.UserCartKey("john@mail.com")))
}
