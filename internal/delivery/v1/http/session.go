package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sidCookie        = "sid"
	tokenCookie      = "token"
	adminTokenCookie = "adminToken"
)

type sessionKey struct{}

// Sessions выдаёт браузеру cookie sid и собирает domain.Session из cookie запроса.
type Sessions struct {
	cfg *cfg.SessionCfg
	now func() time.Time
}

func NewSessions(cfg *cfg.SessionCfg) *Sessions {
	return &Sessions{cfg: cfg, now: time.Now}
}

// Middleware гарантирует, что у запроса есть sid, и кладёт сессию в контекст.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := domain.Session{
			ID:         cookieValue(r, sidCookie),
			Token:      cookieValue(r, tokenCookie),
			AdminToken: cookieValue(r, adminTokenCookie),
		}

		if _, err := uuid.Parse(sess.ID); err != nil {
			sess.ID = uuid.NewString()
			s.setCookie(w, sidCookie, sess.ID, s.now().Add(s.cfg.TTL))
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

// SetToken сохраняет токен в cookie. Срок жизни берётся из exp токена, иначе SESSION_TTL.
func (s *Sessions) SetToken(w http.ResponseWriter, name, token string) {
	s.setCookie(w, name, token, s.tokenExpiry(token))
}

func (s *Sessions) ClearToken(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   s.cfg.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// tokenExpiry читает exp без проверки подписи: токен выдан внешним API, и ключа у нас нет.
func (s *Sessions) tokenExpiry(token string) time.Time {
	fallback := s.now().Add(s.cfg.TTL)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(s.now()) {
		return fallback
	}

	return exp.Time
}

func (s *Sessions) setCookie(w http.ResponseWriter, name, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.cfg.CookieDomain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionFromContext возвращает сессию, собранную Middleware.
func SessionFromContext(ctx context.Context) domain.Session {
	sess, _ := ctx.Value(sessionKey{}).(domain.Session)
	return sess
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
