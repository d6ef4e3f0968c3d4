package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

// CartStore: операции корзины для оформления заказа.
type CartStore interface {
	Load(ctx context.Context, sess domain.Session) (domain.Cart, string, error)
	Clear(ctx context.Context, sess domain.Session) error
}

// CheckoutUseCase проводит заказ: pendingOrder → заказ в БД + outbox → lastReceipt → очистка корзины.
type CheckoutUseCase struct {
	storage StorageRepository
	carts   CartStore
	orders  OrderRepository
	outbox  OutboxRepository
	tx      Transactor
	logger  logger.Logger
	now     func() time.Time
}

func NewCheckoutUC(
	storage StorageRepository,
	carts CartStore,
	orders OrderRepository,
	outbox OutboxRepository,
	tx Transactor,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		storage: storage,
		carts:   carts,
		orders:  orders,
		outbox:  outbox,
		tx:      tx,
		logger:  logger,
		now:     time.Now,
	}
}

// Begin фиксирует текущую корзину в pendingOrder.
func (c *CheckoutUseCase) Begin(ctx context.Context, sess domain.Session) (*domain.PendingOrder, error) {
	const op = "CheckoutUseCase.Begin"

	if _, err := requireEmail(ctx, c.storage, sess); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, _, err := c.carts.Load(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if cart.IsEmpty() {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	pending := domain.NewPendingOrder(cart, c.now())
	if err := c.storage.Set(ctx, sess.ID, domain.SessionKey(domain.KeyPendingOrder), pending); err != nil {
		return nil, e.Wrap(op, err)
	}

	return pending, nil
}

// Confirm оформляет заказ из pendingOrder (или из текущей корзины, если снимка нет).
func (c *CheckoutUseCase) Confirm(ctx context.Context, sess domain.Session) (*domain.Order, error) {
	const op = "CheckoutUseCase.Confirm"

	email, err := requireEmail(ctx, c.storage, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.checkoutItems(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order := domain.NewOrder(email, items, c.now())
	event, err := newOrderPlacedEvent(order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = c.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := c.orders.Create(ctx, order); err != nil {
			return err
		}
		if _, err := c.outbox.Create(ctx, event); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Заказ уже сохранён: дальнейшие ошибки хранилища не отменяют его.
	if err := c.storage.Delete(ctx, sess.ID, domain.OrdersKey(email)); err != nil {
		c.logger.Warnf("failed to invalidate order history: %v", e.Wrap(op, err))
	}
	if err := c.storage.Set(ctx, sess.ID, domain.SessionKey(domain.KeyLastReceipt), order); err != nil {
		c.logger.Warnf("failed to store receipt: %v", e.Wrap(op, err))
	}
	if err := c.storage.Set(ctx, sess.ID, domain.SessionKey(domain.KeyPendingClearCart), true); err != nil {
		c.logger.Warnf("failed to mark cart for clearing: %v", e.Wrap(op, err))
	}

	if err := c.finishClearCart(ctx, sess); err != nil {
		c.logger.Warnf("failed to clear cart after order %s: %v", order.Number, e.Wrap(op, err))
	}

	c.logger.Infof("order %s placed, total %s", order.Number, order.Total.StringFixed(2))
	return order, nil
}

// Receipt возвращает последнюю квитанцию. Если после заказа корзина не была очищена
// (флаг pendingClearCart), очистка выполняется здесь.
func (c *CheckoutUseCase) Receipt(ctx context.Context, sess domain.Session) (*domain.Order, error) {
	const op = "CheckoutUseCase.Receipt"

	if !sess.Authenticated() {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	var pendingClear bool
	if _, err := c.storage.Get(ctx, sess.ID, domain.SessionKey(domain.KeyPendingClearCart), &pendingClear); err != nil {
		return nil, e.Wrap(op, err)
	}
	if pendingClear {
		if err := c.finishClearCart(ctx, sess); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	var order domain.Order
	found, err := c.storage.Get(ctx, sess.ID, domain.SessionKey(domain.KeyLastReceipt), &order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !found {
		return nil, e.Wrap(op, e.ErrNotFound)
	}

	return &order, nil
}

// Orders возвращает историю заказов; orders_<email> служит кэшем поверх БД.
func (c *CheckoutUseCase) Orders(ctx context.Context, sess domain.Session) ([]domain.Order, error) {
	const op = "CheckoutUseCase.Orders"

	email, err := requireEmail(ctx, c.storage, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var cached []domain.Order
	found, err := c.storage.Get(ctx, sess.ID, domain.OrdersKey(email), &cached)
	if err == nil && found {
		return cached, nil
	}

	orders, err := c.orders.ListByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	if err := c.storage.Set(ctx, sess.ID, domain.OrdersKey(email), orders); err != nil {
		c.logger.Warnf("failed to cache order history: %v", e.Wrap(op, err))
	}

	return orders, nil
}

func (c *CheckoutUseCase) checkoutItems(ctx context.Context, sess domain.Session) (domain.Cart, error) {
	var pending domain.PendingOrder
	found, err := c.storage.Get(ctx, sess.ID, domain.SessionKey(domain.KeyPendingOrder), &pending)
	if err != nil {
		return nil, err
	}

	items := pending.Items.Normalize()
	if !found || items.IsEmpty() {
		cart, _, err := c.carts.Load(ctx, sess)
		if err != nil {
			return nil, err
		}
		items = cart
	}

	if items.IsEmpty() {
		return nil, e.ErrEmptyCart
	}

	return items, nil
}

func (c *CheckoutUseCase) finishClearCart(ctx context.Context, sess domain.Session) error {
	if err := c.carts.Clear(ctx, sess); err != nil {
		return err
	}

	return c.storage.Delete(ctx, sess.ID,
		domain.SessionKey(domain.KeyPendingOrder),
		domain.SessionKey(domain.KeyPendingClearCart),
	)
}

func newOrderPlacedEvent(order *domain.Order) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(OrderPlacedPayload{
		EventID:     eventID,
		OrderNumber: order.Number,
		Email:       order.Email,
		Total:       order.Total,
		ItemsCount:  order.Items.Count(),
		PlacedAt:    order.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:     eventID,
		EventType:   OrderPlaced,
		AggregateID: order.Number,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   order.CreatedAt,
	}, nil
}
