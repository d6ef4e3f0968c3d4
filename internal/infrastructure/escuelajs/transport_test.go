package escuelajs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/storefront/pkg/bearer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	last *http.Request
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.last = req
	rec := httptest.NewRecorder()
	rec.WriteHeader(http.StatusOK)
	return rec.Result(), nil
}

func TestBearerTransport(t *testing.T) {
	rec := &recordingTransport{}
	tr := newBearerTransport("api.escuelajs.co", rec)
	ctx := bearer.WithToken(context.Background(), "secret")

	cases := []struct {
		name string
		ctx  context.Context
		url  string
		want string
	}{
		{"api host with token", ctx, "https://api.escuelajs.co/api/v1/auth/profile", "Bearer secret"},
		{"api host without token", context.Background(), "https://api.escuelajs.co/api/v1/products", ""},
		{"foreign host", ctx, "https://i.imgur.com/a.jpeg", ""},
		{"look-alike host", ctx, "https://api.escuelajs.co.evil.example/x", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(tc.ctx, http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			resp, err := tr.RoundTrip(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tc.want, rec.last.Header.Get("Authorization"))
			assert.Empty(t, req.Header.Get("Authorization"))
		})
	}
}
