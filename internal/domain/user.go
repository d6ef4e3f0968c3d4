package domain

import "strings"

const RoleAdmin = "admin"

// User — профиль пользователя внешнего API.
type User struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Tokens — пара токенов, выданная внешним API при логине.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session — состояние браузера: sid и токены из cookie.
type Session struct {
	ID         string
	Token      string
	AdminToken string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) AdminAuthenticated() bool {
	return s.AdminToken != ""
}

// UserSettings — пользовательские настройки, хранятся под userSettings_<email>.
type UserSettings struct {
	EmailNotifications bool   `json:"emailNotifications"`
	Newsletter         bool   `json:"newsletter"`
	Language           string `json:"language"`
	Currency           string `json:"currency"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		EmailNotifications: true,
		Newsletter:         false,
		Language:           "en",
		Currency:           "USD",
	}
}

// Normalize подставляет значения по умолчанию в пустые поля.
func (s UserSettings) Normalize() UserSettings {
	def := DefaultUserSettings()
	if strings.TrimSpace(s.Language) == "" {
		s.Language = def.Language
	}
	if strings.TrimSpace(s.Currency) == "" {
		s.Currency = def.Currency
	}
	s.Currency = strings.ToUpper(s.Currency)
	return s
}
