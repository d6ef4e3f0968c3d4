package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// PageGuard перенаправляет навигацию между публичными, пользовательскими и админскими страницами
// по наличию cookie token и adminToken.
func PageGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target := guardRedirect(r.URL.Path, cookieValue(r, tokenCookie) != "", cookieValue(r, adminTokenCookie) != ""); target != "" {
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// guardRedirect возвращает адрес перенаправления или "" если страницу можно показать.
func guardRedirect(path string, hasToken, hasAdminToken bool) string {
	switch {
	case path == "/admin/login":
		if hasAdminToken {
			return "/admin"
		}
	case hasPathPrefix(path, "/admin"):
		if !hasAdminToken {
			return "/admin/login"
		}
	case hasPathPrefix(path, "/cart"), hasPathPrefix(path, "/receipt"):
		if !hasToken {
			return "/login"
		}
	case path == "/login", path == "/register":
		if hasToken {
			return "/products"
		}
	}

	return ""
}

// hasPathPrefix совпадает с самим prefix и со всеми путями под ним, но не с "/cartoons".
func hasPathPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// RequireToken отвечает 401 JSON на API-запросы без cookie token.
func RequireToken(next http.Handler) http.Handler {
	return requireCookie(tokenCookie, next)
}

// RequireAdminToken отвечает 401 JSON на API-запросы без cookie adminToken.
func RequireAdminToken(next http.Handler) http.Handler {
	return requireCookie(adminTokenCookie, next)
}

func requireCookie(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookieValue(r, name) == "" {
			WriteError(w, e.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
