package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUC
	logger         logger.Logger
}

func NewProfileHandler(profileUsecase usecase.ProfileUC, logger logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase, logger: logger}
}

// getProfile
//
//	@Summary	Профиль
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	domain.User
//	@Failure	401	{object}	ErrorResponse
//	@Router		/profile [get]
func (h *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.profileUsecase.Profile(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, user)
}

// updateProfile
//
//	@Summary	Изменить профиль
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		body	body		UpdateProfileRequest	true	"Имя и аватар"
//	@Success	200		{object}	domain.User
//	@Router		/profile [put]
func (h *ProfileHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	user, err := h.profileUsecase.UpdateProfile(r.Context(), SessionFromContext(r.Context()), &usecase.UpdateUserReq{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, user)
}

// getSettings
//
//	@Summary	Настройки
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	domain.UserSettings
//	@Router		/settings [get]
func (h *ProfileHandler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.profileUsecase.Settings(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, settings)
}

// saveSettings
//
//	@Summary	Сохранить настройки
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.UserSettings	true	"Настройки"
//	@Success	200		{object}	domain.UserSettings
//	@Router		/settings [put]
func (h *ProfileHandler) saveSettings(w http.ResponseWriter, r *http.Request) {
	var req domain.UserSettings
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	settings, err := h.profileUsecase.SaveSettings(r.Context(), SessionFromContext(r.Context()), req)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, settings)
}
