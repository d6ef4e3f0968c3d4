package redis

import (
	"context"
	"encoding/json"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

const eventBufferSize = 16

// EventBus рассылает события синхронизации вкладок через Redis pub/sub.
// Событие уходит в канал браузера и, если известен email, в канал аккаунта.
type EventBus struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewEventBus(client *clients.RedisClient, logger logger.Logger) *EventBus {
	return &EventBus{client: client, logger: logger}
}

func (b *EventBus) Publish(ctx context.Context, event usecase.StorefrontEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	for _, ch := range channels(event.SessionID, event.Email) {
		if err := b.client.Client.Publish(ctx, ch, data).Err(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

// Subscribe подписывается на каналы браузера и аккаунта. Канал событий закрывается
// после отписки или отмены ctx. Событие может прийти дважды (по обоим каналам).
func (b *EventBus) Subscribe(ctx context.Context, sid, email string) (<-chan usecase.StorefrontEvent, func(), error) {
	names := channels(sid, email)
	if len(names) == 0 {
		return nil, nil, e.Wrap(whereami.WhereAmI(), e.ErrUnauthorized)
	}

	pubsub := b.client.Client.Subscribe(ctx, names...)
	// Дожидаемся подтверждения подписки, чтобы не потерять первые события
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	out := make(chan usecase.StorefrontEvent, eventBufferSize)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var event usecase.StorefrontEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.logger.Warnf("malformed event on %s: %v", msg.Channel, err)
					continue
				}

				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	unsubscribe := func() {
		if err := pubsub.Close(); err != nil {
			b.logger.Debugf("pubsub close: %v", err)
		}
	}

	return out, unsubscribe, nil
}

func channels(sid, email string) []string {
	var res []string
	if sid != "" {
		res = append(res, "events:session:"+sid)
	}
	if email = domain.NormalizeEmail(email); email != "" {
		res = append(res, "events:account:"+email)
	}

	return res
}
