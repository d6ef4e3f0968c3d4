package escuelajs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/bearer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productJSON = `{
	"id": 4,
	"title": "Handmade Fresh Table",
	"slug": "handmade-fresh-table",
	"price": 687.5,
	"description": "Andy shoes are designed to keeping in mind durability",
	"category": {"id": 5, "name": "Others", "slug": "others", "image": "https://placehold.co/600x400"},
	"images": ["[\"https://i.imgur.com/1.jpeg\"", "\"https://i.imgur.com/2.jpeg\"]"],
	"creationAt": "2024-05-01T10:00:00.000Z",
	"updatedAt": "2024-05-01T10:00:00.000Z"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&cfg.APICfg{BaseURL: srv.URL + "/api/v1", Timeout: 5 * time.Second}, logger.Nop{})
	require.NoError(t, err)
	return client
}

func TestClient_GetProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/4", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, productJSON)
	})

	product, err := client.GetProduct(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Handmade Fresh Table", product.Title)
	assert.Equal(t, "687.5", product.Price.String())
	assert.Equal(t, "Others", product.Category.Name)
	assert.Len(t, product.Images, 2)
	assert.Equal(t, 2024, product.CreationAt.Year())
}

func TestClient_ListProductsAndCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/products":
			_, _ = io.WriteString(w, "["+productJSON+"]")
		case "/api/v1/categories":
			_, _ = io.WriteString(w, `[{"id":1,"name":"Clothes","image":"https://i.imgur.com/c.jpeg"}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Clothes", categories[0].Name)
}

func TestClient_LoginAndProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			var body loginReq
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			if body.Password != "changeme" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message":"Unauthorized","statusCode":401}`)
				return
			}
			_, _ = io.WriteString(w, `{"access_token":"jwt-access","refresh_token":"jwt-refresh"}`)
		case "/api/v1/auth/profile":
			if r.Header.Get("Authorization") != "Bearer jwt-access" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = io.WriteString(w, `{"id":1,"email":"john@mail.com","name":"Jhon","role":"customer","avatar":"https://i.imgur.com/a.png"}`)
		}
	})

	tokens, err := client.Login(context.Background(), "john@mail.com", "changeme")
	require.NoError(t, err)
	assert.Equal(t, "jwt-access", tokens.AccessToken)

	user, err := client.Profile(bearer.WithToken(context.Background(), tokens.AccessToken))
	require.NoError(t, err)
	assert.Equal(t, "Jhon", user.Name)

	_, err = client.Profile(context.Background())
	require.ErrorIs(t, err, e.ErrUnauthorized)

	_, err = client.Login(context.Background(), "john@mail.com", "wrong")
	require.ErrorIs(t, err, e.ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestClient_CreateProductSendsNumericPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/products/", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 25.5, body["price"])
		assert.Equal(t, float64(2), body["categoryId"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, productJSON)
	})

	ctx := bearer.WithToken(context.Background(), "admin-token")
	product, err := client.CreateProduct(ctx, &usecase.ProductInput{
		Title:       "Table",
		Price:       decimal.RequireFromString("25.50"),
		Description: "Wood",
		CategoryID:  2,
		Images:      []string{"https://i.imgur.com/1.jpeg"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), product.ID)
}

func TestClient_ValidationErrorMessages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":["email must be an email","password too short"],"error":"Bad Request"}`)
	})

	_, err := client.RegisterUser(context.Background(), &usecase.RegisterUserReq{Email: "x"})
	require.ErrorIs(t, err, e.ErrStatusBadRequest)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email must be an email; password too short", apiErr.Message)
}

func TestClient_UpstreamFailures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/categories" {
			_, _ = io.WriteString(w, `{not json`)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListProducts(context.Background())
	require.ErrorIs(t, err, e.ErrUpstream)

	_, err = client.ListCategories(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, e.ErrUpstream)
}

func TestClient_DeleteNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.DeleteCategory(context.Background(), 9)
	require.ErrorIs(t, err, e.ErrNotFound)
}
