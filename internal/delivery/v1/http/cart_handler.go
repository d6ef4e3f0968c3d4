package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// getCart
//
//	@Summary	Корзина
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartUsecase.Get(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// addToCart
//
//	@Summary	Добавить товар в корзину
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		body	body		AddToCartRequest	true	"Товар и количество (по умолчанию 1)"
//	@Success	200		{object}	CartResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/cart [post]
func (h *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	req := AddToCartRequest{Quantity: 1}
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	view, err := h.cartUsecase.Add(r.Context(), SessionFromContext(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// updateQuantity
//
//	@Summary		Изменить количество
//	@Description	Количество 0 удаляет позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"ID товара"
//	@Param			body		body		UpdateQuantityRequest	true	"Новое количество"
//	@Success		200			{object}	CartResponse
//	@Router			/cart/{productID} [patch]
func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productID")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	var req UpdateQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	view, err := h.cartUsecase.UpdateQuantity(r.Context(), SessionFromContext(r.Context()), id, req.Quantity)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// removeFromCart
//
//	@Summary	Удалить позицию
//	@Tags		cart
//	@Produce	json
//	@Param		productID	path		int	true	"ID товара"
//	@Success	200			{object}	CartResponse
//	@Router		/cart/{productID} [delete]
func (h *CartHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productID")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	view, err := h.cartUsecase.Remove(r.Context(), SessionFromContext(r.Context()), id)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// clearCart
//
//	@Summary	Очистить корзину
//	@Tags		cart
//	@Success	204
//	@Router		/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartUsecase.Clear(r.Context(), SessionFromContext(r.Context())); err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
