// Package bearer переносит токен пользователя через context до HTTP-клиента внешнего API.
package bearer

import "context"

type tokenKey struct{}

func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
