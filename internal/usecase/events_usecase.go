package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// EventsUseCase подписывает браузер на события синхронизации: свои (по sid)
// и события аккаунта, если пользователь вошёл.
type EventsUseCase struct {
	storage    StorageRepository
	subscriber EventSubscriber
}

func NewEventsUC(storage StorageRepository, subscriber EventSubscriber) *EventsUseCase {
	return &EventsUseCase{storage: storage, subscriber: subscriber}
}

func (u *EventsUseCase) Subscribe(ctx context.Context, sess domain.Session) (<-chan StorefrontEvent, func(), error) {
	const op = "EventsUseCase.Subscribe"

	email, err := accountEmail(ctx, u.storage, sess)
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}

	ch, cancel, err := u.subscriber.Subscribe(ctx, sess.ID, email)
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}

	return ch, cancel, nil
}
