package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/bearer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	minPasswordLen = 4
	defaultAvatar  = "https://picsum.photos/800"
)

// CartMerger сливает гостевую корзину с корзиной аккаунта.
type CartMerger interface {
	MergeGuestCart(ctx context.Context, sid, email string) error
}

// AuthUseCase выполняет вход, регистрацию и выход через внешний API.
type AuthUseCase struct {
	api     StoreAPI
	storage StorageRepository
	carts   CartMerger
	events  EventPublisher
	logger  logger.Logger
	now     func() time.Time
}

func NewAuthUC(api StoreAPI, storage StorageRepository, carts CartMerger, events EventPublisher, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		api:     api,
		storage: storage,
		carts:   carts,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

// Login получает токены и профиль, сохраняет userName/userEmail и переносит гостевую корзину в аккаунт.
func (a *AuthUseCase) Login(ctx context.Context, sess domain.Session, email, password string) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	tokens, user, err := a.authenticate(ctx, email, password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := a.storage.Set(ctx, sess.ID, domain.SessionKey(domain.KeyUserName), user.Name); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := a.storage.Set(ctx, sess.ID, domain.SessionKey(domain.KeyUserEmail), domain.NormalizeEmail(user.Email)); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Ошибка слияния корзины не должна ломать вход
	if err := a.carts.MergeGuestCart(ctx, sess.ID, user.Email); err != nil {
		a.logger.Warnf("failed to merge guest cart: %v", e.Wrap(op, err))
	}

	publishEvent(ctx, a.events, a.logger, EventProfileUpdated, sess.ID, user.Email, a.now())
	a.logger.Infof("user %d logged in", user.ID)

	return NewLoginRes(tokens, user), nil
}

// AdminLogin пускает в админку только пользователя с ролью admin.
func (a *AuthUseCase) AdminLogin(ctx context.Context, sess domain.Session, email, password string) (*LoginRes, error) {
	const op = "AuthUseCase.AdminLogin"

	tokens, user, err := a.authenticate(ctx, email, password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !user.IsAdmin() {
		a.logger.Warnf("non-admin user %d tried to enter admin console", user.ID)
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	a.logger.Infof("admin %d logged in", user.ID)
	return NewLoginRes(tokens, user), nil
}

func (a *AuthUseCase) Register(ctx context.Context, req *RegisterUserReq) (*domain.User, error) {
	const op = "AuthUseCase.Register"

	req.Name = strings.TrimSpace(req.Name)
	req.Email = domain.NormalizeEmail(req.Email)
	req.Avatar = strings.TrimSpace(req.Avatar)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}
	if len(req.Password) < minPasswordLen {
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}
	if req.Avatar == "" {
		req.Avatar = defaultAvatar
	}

	user, err := a.api.RegisterUser(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// Logout забывает пользователя в этом браузере. Корзина аккаунта остаётся в cart_<email>,
// общая корзина браузера очищается.
func (a *AuthUseCase) Logout(ctx context.Context, sess domain.Session) error {
	const op = "AuthUseCase.Logout"

	email, err := accountEmail(ctx, a.storage, sess)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := a.storage.Delete(ctx, sess.ID,
		domain.SessionKey(domain.KeyUserName),
		domain.SessionKey(domain.KeyUserEmail),
		domain.SessionKey(domain.KeyCart),
		domain.SessionKey(domain.KeyPendingOrder),
	); err != nil {
		return e.Wrap(op, err)
	}

	now := a.now()
	publishEvent(ctx, a.events, a.logger, EventProfileUpdated, sess.ID, email, now)
	publishEvent(ctx, a.events, a.logger, EventCartUpdated, sess.ID, email, now)

	return nil
}

func (a *AuthUseCase) authenticate(ctx context.Context, email, password string) (*domain.Tokens, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, e.ErrMissingFields
	}

	tokens, err := a.api.Login(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	user, err := a.api.Profile(bearer.WithToken(ctx, tokens.AccessToken))
	if err != nil {
		return nil, nil, err
	}

	return tokens, user, nil
}
