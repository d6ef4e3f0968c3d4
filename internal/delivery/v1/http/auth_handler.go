package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	sessions    *Sessions
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, sessions *Sessions, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, sessions: sessions, logger: logger}
}

// login
//
//	@Summary		Вход покупателя
//	@Description	Проверяет учётные данные во внешнем API и выставляет cookie token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest	true	"Учётные данные"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	res, err := h.authUsecase.Login(r.Context(), SessionFromContext(r.Context()), req.Email, req.Password)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	h.sessions.SetToken(w, tokenCookie, res.Tokens.AccessToken)
	WriteSuccess(w, http.StatusOK, LoginResponse{User: res.User})
}

// adminLogin
//
//	@Summary	Вход в админку
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LoginRequest	true	"Учётные данные администратора"
//	@Success	200		{object}	LoginResponse
//	@Failure	403		{object}	ErrorResponse	"Пользователь не администратор"
//	@Router		/admin/auth/login [post]
func (h *AuthHandler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	res, err := h.authUsecase.AdminLogin(r.Context(), SessionFromContext(r.Context()), req.Email, req.Password)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	h.sessions.SetToken(w, adminTokenCookie, res.Tokens.AccessToken)
	WriteSuccess(w, http.StatusOK, LoginResponse{User: res.User})
}

// register
//
//	@Summary	Регистрация
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RegisterRequest	true	"Данные пользователя"
//	@Success	201		{object}	domain.User
//	@Failure	400		{object}	ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &usecase.RegisterUserReq{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, user)
}

// logout
//
//	@Summary	Выход
//	@Tags		auth
//	@Success	204
//	@Router		/auth/logout [post]
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Logout(r.Context(), SessionFromContext(r.Context())); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	h.sessions.ClearToken(w, tokenCookie)
	w.WriteHeader(http.StatusNoContent)
}

// adminLogout
//
//	@Summary	Выход из админки
//	@Tags		auth
//	@Success	204
//	@Router		/admin/auth/logout [post]
func (h *AuthHandler) adminLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearToken(w, adminTokenCookie)
	w.WriteHeader(http.StatusNoContent)
}
