package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки переменных окружения
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrExpectedJSON         = fmt.Errorf("expected application/json body")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be at least 1")
	ErrInvalidID            = fmt.Errorf("invalid id")
	ErrInvalidFilter        = fmt.Errorf("invalid filter")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrNoPendingOrder       = fmt.Errorf("no pending order")

	// 401 / 403
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrForbidden    = fmt.Errorf("forbidden")

	// 404
	ErrNotFound = fmt.Errorf("not found")

	// 502 ошибки внешнего API
	ErrUpstream = fmt.Errorf("external api error")

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
