package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type FavoriteHandler struct {
	favoriteUsecase usecase.FavoriteUC
	logger          logger.Logger
}

func NewFavoriteHandler(favoriteUsecase usecase.FavoriteUC, logger logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteUsecase: favoriteUsecase, logger: logger}
}

// listFavorites
//
//	@Summary	Избранное
//	@Tags		favorites
//	@Produce	json
//	@Success	200	{object}	FavoritesResponse
//	@Router		/favorites [get]
func (h *FavoriteHandler) listFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.favoriteUsecase.List(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toFavoritesResponse(favs, nil))
}

// toggleFavorite
//
//	@Summary	Добавить или убрать из избранного
//	@Tags		favorites
//	@Produce	json
//	@Param		productID	path		int	true	"ID товара"
//	@Success	200			{object}	FavoritesResponse
//	@Router		/favorites/{productID} [post]
func (h *FavoriteHandler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productID")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	favs, added, err := h.favoriteUsecase.Toggle(r.Context(), SessionFromContext(r.Context()), id)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toFavoritesResponse(favs, &added))
}

// removeFavorite
//
//	@Summary	Убрать из избранного
//	@Tags		favorites
//	@Produce	json
//	@Param		productID	path		int	true	"ID товара"
//	@Success	200			{object}	FavoritesResponse
//	@Router		/favorites/{productID} [delete]
func (h *FavoriteHandler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productID")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	favs, err := h.favoriteUsecase.Remove(r.Context(), SessionFromContext(r.Context()), id)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toFavoritesResponse(favs, nil))
}
