package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/bearer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// ProfileUseCase — профиль во внешнем API и настройки аккаунта в хранилище.
type ProfileUseCase struct {
	api     StoreAPI
	storage StorageRepository
	events  EventPublisher
	logger  logger.Logger
	now     func() time.Time
}

func NewProfileUC(api StoreAPI, storage StorageRepository, events EventPublisher, logger logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		api:     api,
		storage: storage,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

func (p *ProfileUseCase) Profile(ctx context.Context, sess domain.Session) (*domain.User, error) {
	const op = "ProfileUseCase.Profile"

	if !sess.Authenticated() {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	user, err := p.api.Profile(bearer.WithToken(ctx, sess.Token))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// UpdateProfile меняет имя/аватар и обновляет userName в хранилище.
func (p *ProfileUseCase) UpdateProfile(ctx context.Context, sess domain.Session, req *UpdateUserReq) (*domain.User, error) {
	const op = "ProfileUseCase.UpdateProfile"

	req.Name = strings.TrimSpace(req.Name)
	req.Avatar = strings.TrimSpace(req.Avatar)
	if req.Name == "" && req.Avatar == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	current, err := p.Profile(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := p.api.UpdateUser(bearer.WithToken(ctx, sess.Token), current.ID, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.storage.Set(ctx, sess.ID, domain.SessionKey(domain.KeyUserName), updated.Name); err != nil {
		p.logger.Warnf("failed to update userName: %v", e.Wrap(op, err))
	}

	publishEvent(ctx, p.events, p.logger, EventProfileUpdated, sess.ID, updated.Email, p.now())
	return updated, nil
}

// Settings возвращает настройки аккаунта или значения по умолчанию.
func (p *ProfileUseCase) Settings(ctx context.Context, sess domain.Session) (*domain.UserSettings, error) {
	const op = "ProfileUseCase.Settings"

	email, err := requireEmail(ctx, p.storage, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	settings := domain.DefaultUserSettings()
	if _, err := p.storage.Get(ctx, sess.ID, domain.UserSettingsKey(email), &settings); err != nil {
		return nil, e.Wrap(op, err)
	}

	settings = settings.Normalize()
	return &settings, nil
}

func (p *ProfileUseCase) SaveSettings(ctx context.Context, sess domain.Session, settings domain.UserSettings) (*domain.UserSettings, error) {
	const op = "ProfileUseCase.SaveSettings"

	email, err := requireEmail(ctx, p.storage, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	settings = settings.Normalize()
	if len(settings.Currency) != 3 {
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}

	if err := p.storage.Set(ctx, sess.ID, domain.UserSettingsKey(email), settings); err != nil {
		return nil, e.Wrap(op, err)
	}

	publishEvent(ctx, p.events, p.logger, EventProfileUpdated, sess.ID, email, p.now())
	return &settings, nil
}
