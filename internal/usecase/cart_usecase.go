package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// ProductProvider отдаёт снимок товара для корзины и избранного.
type ProductProvider interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

// CartUseCase сводит корзину из двух ключей: общего cart и cart_<email>.
// Чтение: cart_<email>, если он есть, иначе cart. Запись: в оба ключа (последняя запись побеждает).
type CartUseCase struct {
	storage  StorageRepository
	products ProductProvider
	events   EventPublisher
	logger   logger.Logger
	now      func() time.Time
}

func NewCartUC(storage StorageRepository, products ProductProvider, events EventPublisher, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		storage:  storage,
		products: products,
		events:   events,
		logger:   logger,
		now:      time.Now,
	}
}

func (c *CartUseCase) Get(ctx context.Context, sess domain.Session) (*CartView, error) {
	const op = "CartUseCase.Get"

	cart, _, err := c.Load(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// Add кладёт qty единиц товара в корзину, подтягивая снимок товара из каталога.
func (c *CartUseCase) Add(ctx context.Context, sess domain.Session, productID int64, qty int) (*CartView, error) {
	const op = "CartUseCase.Add"

	if qty < 1 || qty > domain.MaxItemQuantity {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	product, err := c.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, email, err := c.Load(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !cart.CanAdd(productID, qty) {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	cart = cart.Add(domain.NewCartItem(product), qty)
	if err := c.save(ctx, sess.ID, email, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// UpdateQuantity выставляет количество; 0 удаляет позицию.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, sess domain.Session, productID int64, qty int) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	if qty < 0 || qty > domain.MaxItemQuantity {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	cart, email, err := c.Load(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, found := cart.SetQuantity(productID, qty)
	if !found {
		return nil, e.Wrap(op, e.ErrNotFound)
	}

	if err := c.save(ctx, sess.ID, email, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// Remove удаляет позицию; удаление отсутствующего товара не считается ошибкой.
func (c *CartUseCase) Remove(ctx context.Context, sess domain.Session, productID int64) (*CartView, error) {
	const op = "CartUseCase.Remove"

	cart, email, err := c.Load(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !cart.Contains(productID) {
		return NewCartView(cart), nil
	}

	cart = cart.Remove(productID)
	if err := c.save(ctx, sess.ID, email, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// Clear очищает и общий ключ, и ключ аккаунта.
func (c *CartUseCase) Clear(ctx context.Context, sess domain.Session) error {
	const op = "CartUseCase.Clear"

	email, err := accountEmail(ctx, c.storage, sess)
	if err != nil {
		return e.Wrap(op, err)
	}

	keys := []domain.StorageKey{domain.SessionKey(domain.KeyCart)}
	if email != "" {
		keys = append(keys, domain.UserCartKey(email))
	}

	if err := c.storage.Delete(ctx, sess.ID, keys...); err != nil {
		return e.Wrap(op, err)
	}

	publishEvent(ctx, c.events, c.logger, EventCartUpdated, sess.ID, email, c.now())
	return nil
}

// MergeGuestCart вливает гостевую корзину в корзину аккаунта при логине.
func (c *CartUseCase) MergeGuestCart(ctx context.Context, sid, email string) error {
	const op = "CartUseCase.MergeGuestCart"

	var guest, user domain.Cart
	if _, err := c.storage.Get(ctx, sid, domain.SessionKey(domain.KeyCart), &guest); err != nil {
		return e.Wrap(op, err)
	}
	if _, err := c.storage.Get(ctx, sid, domain.UserCartKey(email), &user); err != nil {
		return e.Wrap(op, err)
	}

	merged := user.Normalize().Merge(guest.Normalize())
	if err := c.save(ctx, sid, domain.NormalizeEmail(email), merged); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Load читает корзину по цепочке cart_<email> → cart и возвращает email аккаунта ("" для гостя).
func (c *CartUseCase) Load(ctx context.Context, sess domain.Session) (domain.Cart, string, error) {
	email, err := accountEmail(ctx, c.storage, sess)
	if err != nil {
		return nil, "", err
	}

	if email != "" {
		var cart domain.Cart
		found, err := c.storage.Get(ctx, sess.ID, domain.UserCartKey(email), &cart)
		if err != nil {
			return nil, "", err
		}
		if found {
			return cart.Normalize(), email, nil
		}
	}

	var cart domain.Cart
	if _, err := c.storage.Get(ctx, sess.ID, domain.SessionKey(domain.KeyCart), &cart); err != nil {
		return nil, "", err
	}

	return cart.Normalize(), email, nil
}

func (c *CartUseCase) save(ctx context.Context, sid, email string, cart domain.Cart) error {
	if err := c.storage.Set(ctx, sid, domain.SessionKey(domain.KeyCart), cart); err != nil {
		return err
	}

	if email != "" {
		if err := c.storage.Set(ctx, sid, domain.UserCartKey(email), cart); err != nil {
			return err
		}
	}

	publishEvent(ctx, c.events, c.logger, EventCartUpdated, sid, email, c.now())
	return nil
}
