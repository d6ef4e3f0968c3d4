package escuelajs

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/bearer"
)

// bearerTransport добавляет Authorization: Bearer только к запросам на хост внешнего API.
// Запросы на другие хосты уходят без изменений.
type bearerTransport struct {
	host string
	base http.RoundTripper
}

func newBearerTransport(host string, base http.RoundTripper) *bearerTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &bearerTransport{host: strings.ToLower(host), base: base}
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok := bearer.FromContext(req.Context())
	if !ok || !strings.EqualFold(req.URL.Host, t.host) {
		return t.base.RoundTrip(req)
	}

	// RoundTripper не должен менять исходный запрос
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)

	return t.base.RoundTrip(r)
}
