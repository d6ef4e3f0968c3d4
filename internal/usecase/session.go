package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// accountEmail возвращает email вошедшего пользователя (ключ userEmail) или "" для гостя.
func accountEmail(ctx context.Context, storage StorageRepository, sess domain.Session) (string, error) {
	if !sess.Authenticated() {
		return "", nil
	}

	var email string
	found, err := storage.Get(ctx, sess.ID, domain.SessionKey(domain.KeyUserEmail), &email)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}

	return domain.NormalizeEmail(email), nil
}

// requireEmail работает как accountEmail, но гость получает ErrUnauthorized.
func requireEmail(ctx context.Context, storage StorageRepository, sess domain.Session) (string, error) {
	email, err := accountEmail(ctx, storage, sess)
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", e.ErrUnauthorized
	}

	return email, nil
}

// publishEvent отправляет событие синхронизации; ошибка только логируется.
func publishEvent(ctx context.Context, events EventPublisher, log logger.Logger, eventType, sid, email string, now time.Time) {
	if events == nil {
		return
	}

	if err := events.Publish(ctx, NewStorefrontEvent(eventType, sid, email, now)); err != nil {
		log.Warnf("failed to publish %s: %v", eventType, err)
	}
}
