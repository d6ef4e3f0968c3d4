package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	notifyChannel = "outbox_pending"
	batchSize     = 10
	waitTimeout   = 30 * time.Second
	stuckAfter    = 60 // секунд в processing до возврата в pending
	reconnectBase = 1 * time.Second
	reconnectMax  = 30 * time.Second
	sweepInterval = 30 * time.Second
)

// OutboxWorker доставляет события из outbox_events в Kafka: при старте, по NOTIFY outbox_pending
// и периодически (зависшие в processing события возвращаются в очередь).
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	stop      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	mu        sync.Mutex // один drain за раз
	dbConnStr string
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		stop:      make(chan struct{}),
		dbConnStr: dbConnStr,
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	// Stop прерывает и ожидание NOTIFY, и запись в Kafka.
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		select {
		case <-w.stop:
		case <-ctx.Done():
		}
	}()

	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	// Запускаем слушатель уведомлений
	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx)
	}()
}

// Stop останавливает воркер и ждёт завершения горутин. Повторный вызов безопасен.
func (w *OutboxWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *OutboxWorker) run(ctx context.Context) {
	// Обрабатываем "остатки" при старте
	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Worker stopped by context cancellation")
			return
		case <-w.stop:
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep возвращает зависшие события в pending и отправляет их.
func (w *OutboxWorker) sweep(ctx context.Context) {
	n, err := w.repo.ResetStuck(ctx, stuckAfter)
	if err != nil {
		w.logger.Warnf("reset stuck outbox events failed: %v", err)
		return
	}
	if n > 0 {
		w.logger.Infof("%d stuck outbox events returned to pending", n)
		w.drain(ctx)
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	var conn *pgx.Conn

	connect := func() error {
		c, err := pgx.Connect(ctx, w.dbConnStr)
		if err != nil {
			return e.Wrap("failed to connect for LISTEN", err)
		}

		if _, err = c.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
			_ = c.Close(ctx)
			return e.Wrap("failed to LISTEN", err)
		}

		conn = c
		w.logger.Infof("Subscribed to '%s' channel", notifyChannel)
		return nil
	}

	for attempt := 0; conn == nil; attempt++ {
		if err := connect(); err != nil {
			w.logger.Warnf("LISTEN connect failed: %v", err)
			if !w.sleep(ctx, jitter.ExponentialBackoff(reconnectBase, reconnectMax, attempt, jitter.DefaultJitter)) {
				return
			}
		}
	}
	defer func() {
		if conn != nil {
			_ = conn.Close(context.Background())
		}
	}()

	for attempt := 0; ; {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		ctxWithTimeout, cancel := context.WithTimeout(ctx, waitTimeout)
		notif, err := conn.WaitForNotification(ctxWithTimeout)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}

			w.logger.Warnf("Connection lost: %v. Reconnecting...", err)
			_ = conn.Close(ctx)
			conn = nil

			for conn == nil {
				if !w.sleep(ctx, jitter.ExponentialBackoff(reconnectBase, reconnectMax, attempt, jitter.DefaultJitter)) {
					return
				}
				attempt++
				if err := connect(); err != nil {
					w.logger.Warnf("Reconnect failed: %v", err)
				}
			}
			attempt = 0

			// Пока соединения не было, уведомления могли потеряться
			w.drain(ctx)
			continue
		}

		if notif != nil && notif.Channel == notifyChannel {
			w.logger.Debugf("Received outbox notification, draining outbox events")
			w.drain(ctx)
		}
	}
}

// sleep ждёт d; false, если воркер остановлен.
func (w *OutboxWorker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	case <-w.stop:
		return false
	}
}

func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, batchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			// Событие остаётся в processing и вернётся в очередь через sweep
			w.logger.Warnf("outbox event %s not delivered: %v", event.EventID, err)
			continue
		}
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return len(events) == batchSize, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.AggregateID, event.EventType, event.Payload))
	if err != nil {
		if isRetryableError(err) {
			return e.Wrap("Temporary Kafka failure, will retry", err)
		}
		return e.Wrap("Permanent Kafka failure", err)
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
