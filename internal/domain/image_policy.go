package domain

import (
	"encoding/json"
	"net/url"
	"strings"
)

// ImagePolicy — белый список хостов изображений и заглушка для отброшенных ссылок.
type ImagePolicy struct {
	AllowedHosts []string
	Placeholder  string
}

func NewImagePolicy(hosts []string, placeholder string) ImagePolicy {
	normalized := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			normalized = append(normalized, h)
		}
	}

	return ImagePolicy{AllowedHosts: normalized, Placeholder: placeholder}
}

// Sanitize разбирает список изображений из API. API иногда отдаёт элементы вида
// `["https://i.imgur.com/a.jpeg"` или целый JSON-массив строкой; такие элементы
// разворачиваются. Остаются только http(s)-ссылки на хосты из белого списка,
// без дублей. Пустой результат заменяется заглушкой.
func (p ImagePolicy) Sanitize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	res := make([]string, 0, len(raw))

	for _, candidate := range expandImages(raw) {
		if !p.Allowed(candidate) {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		res = append(res, candidate)
	}

	if len(res) == 0 && p.Placeholder != "" {
		return []string{p.Placeholder}
	}

	return res
}

// SanitizeOne проверяет одиночную ссылку (например, картинку категории).
func (p ImagePolicy) SanitizeOne(raw string) string {
	res := p.Sanitize([]string{raw})
	if len(res) == 0 {
		return ""
	}
	return res[0]
}

// Allowed сообщает, можно ли отдавать ссылку браузеру.
func (p ImagePolicy) Allowed(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}

	for _, allowed := range p.AllowedHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}

	return false
}

func expandImages(raw []string) []string {
	res := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(strings.ReplaceAll(s, `\"`, `"`))
		if s == "" {
			continue
		}

		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			var nested []string
			if err := json.Unmarshal([]byte(s), &nested); err == nil {
				res = append(res, expandImages(nested)...)
				continue
			}
		}

		s = strings.Trim(s, "[]\" ")
		if s != "" {
			res = append(res, s)
		}
	}

	return res
}
