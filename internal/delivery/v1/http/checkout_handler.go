package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

// beginCheckout
//
//	@Summary	Начать оформление
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{object}	domain.PendingOrder
//	@Failure	400	{object}	ErrorResponse	"Корзина пуста"
//	@Failure	401	{object}	ErrorResponse
//	@Router		/checkout [post]
func (h *CheckoutHandler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	pending, err := h.checkoutUsecase.Begin(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, pending)
}

// confirmCheckout
//
//	@Summary		Подтвердить заказ
//	@Description	Сохраняет заказ, публикует order.placed и очищает корзину
//	@Tags			checkout
//	@Produce		json
//	@Success		201	{object}	domain.Order
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/checkout/confirm [post]
func (h *CheckoutHandler) confirmCheckout(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkoutUsecase.Confirm(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	h.logger.Infof("order %s placed", order.Number)
	WriteSuccess(w, http.StatusCreated, order)
}

// receipt
//
//	@Summary	Последняя квитанция
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{object}	domain.Order
//	@Failure	404	{object}	ErrorResponse
//	@Router		/receipt [get]
func (h *CheckoutHandler) receipt(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkoutUsecase.Receipt(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, order)
}

// orders
//
//	@Summary	История заказов
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{array}		domain.Order
//	@Failure	401	{object}	ErrorResponse
//	@Router		/orders [get]
func (h *CheckoutHandler) orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkoutUsecase.Orders(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, orders)
}
