package infrastructure

import (
	"path"
	"regexp"
	"strings"

	"github.com/DRSN-tech/storefront/pkg/e"
)

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Поддерживает jpeg, jpg, png, webp, gif. Для остальных типов возвращает e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	case "image/gif":
		return "gif", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}

// SafeObjectName приводит имя файла к виду, пригодному для ключа объекта: без расширения,
// в нижнем регистре, только [a-z0-9._-].
func SafeObjectName(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	base = unsafeNameChars.ReplaceAllString(strings.ToLower(base), "-")
	base = strings.Trim(base, "-.")
	if base == "" || base == "/" {
		return "image"
	}

	return base
}
