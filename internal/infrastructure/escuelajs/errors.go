package escuelajs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// APIError — ответ внешнего API с кодом не из 2xx.
type APIError struct {
	Status  int
	Message string
}

func (a *APIError) Error() string {
	return fmt.Sprintf("external api responded %d: %s", a.Status, a.Message)
}

// Unwrap сводит код ответа к ошибкам пакета e, чтобы delivery выбрала HTTP-статус.
func (a *APIError) Unwrap() error {
	switch {
	case a.Status == http.StatusUnauthorized:
		return e.ErrUnauthorized
	case a.Status == http.StatusForbidden:
		return e.ErrForbidden
	case a.Status == http.StatusNotFound:
		return e.ErrNotFound
	case a.Status == http.StatusBadRequest:
		return e.ErrStatusBadRequest
	default:
		return e.ErrUpstream
	}
}

type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// newAPIError разбирает тело ошибки. message бывает строкой или массивом строк (ошибки валидации).
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}

	var single string
	if err := json.Unmarshal(eb.Message, &single); err == nil && single != "" {
		apiErr.Message = single
		return apiErr
	}

	var many []string
	if err := json.Unmarshal(eb.Message, &many); err == nil && len(many) > 0 {
		apiErr.Message = strings.Join(many, "; ")
		return apiErr
	}

	if eb.Error != "" {
		apiErr.Message = eb.Error
	}

	return apiErr
}
