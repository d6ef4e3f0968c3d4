package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.Wrap("op", e.ErrMissingFields), http.StatusBadRequest},
		{e.Wrap("op", e.ErrEmptyCart), http.StatusBadRequest},
		{e.Wrap("op", e.ErrUnauthorized), http.StatusUnauthorized},
		{e.Wrap("op", e.ErrForbidden), http.StatusForbidden},
		{e.Wrap("op", e.ErrNotFound), http.StatusNotFound},
		{e.Wrap("op", e.ErrUpstream), http.StatusBadGateway},
		{e.Wrap("op", e.ErrFileTooLarge), http.StatusRequestEntityTooLarge},
		{e.ErrTransactionNotFound, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, _ := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestParsePrice(t *testing.T) {
	d, err := parsePrice("599.99")
	require.NoError(t, err)
	assert.Equal(t, "599.99", d.String())

	d, err = parsePrice("1.500")
	require.NoError(t, err)
	assert.Equal(t, "1.5", d.String())

	_, err = parsePrice("0")
	require.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePrice("-3")
	require.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePrice("1.001")
	require.ErrorIs(t, err, e.ErrPricePrecision)

	_, err = parsePrice("abc")
	require.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePrice("")
	require.ErrorIs(t, err, e.ErrMissingFields)
}

func TestGuardRedirect(t *testing.T) {
	assert.Equal(t, "/login", guardRedirect("/cart", false, false))
	assert.Equal(t, "/login", guardRedirect("/receipt/ORD-1", false, false))
	assert.Equal(t, "", guardRedirect("/cartoons", false, false))
	assert.Equal(t, "", guardRedirect("/products", false, false))
	assert.Equal(t, "/admin/login", guardRedirect("/admin", true, false))
	assert.Equal(t, "", guardRedirect("/admin/login", false, false))
	assert.Equal(t, "/admin", guardRedirect("/admin/login", false, true))
	assert.Equal(t, "/products", guardRedirect("/register", true, false))
	assert.Equal(t, "", guardRedirect("/login", false, false))
}

func TestSessions_TokenExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(&cfg.SessionCfg{TTL: time.Hour})
	s.now = func() time.Time { return now }

	exp := now.Add(10 * time.Minute)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, exp.Unix(), s.tokenExpiry(token).Unix())

	// Не JWT: срок по умолчанию.
	assert.Equal(t, now.Add(time.Hour), s.tokenExpiry("opaque"))

	// Истёкший exp тоже заменяется сроком по умолчанию.
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), s.tokenExpiry(expired))
}
