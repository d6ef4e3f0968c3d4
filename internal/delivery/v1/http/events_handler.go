package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const heartbeatInterval = 25 * time.Second

type EventsHandler struct {
	eventsUsecase usecase.EventsUC
	logger        logger.Logger
	heartbeat     time.Duration
}

func NewEventsHandler(eventsUsecase usecase.EventsUC, logger logger.Logger) *EventsHandler {
	return &EventsHandler{eventsUsecase: eventsUsecase, logger: logger, heartbeat: heartbeatInterval}
}

// stream
//
//	@Summary		События синхронизации
//	@Description	Server-sent events: cartUpdated и profileUpdated этого браузера и аккаунта. Возможны повторы.
//	@Tags			events
//	@Produce		text/event-stream
//	@Success		200
//	@Router			/events [get]
func (h *EventsHandler) stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	// Поток живёт дольше WriteTimeout сервера.
	_ = rc.SetWriteDeadline(time.Time{})

	events, unsubscribe, err := h.eventsUsecase.Subscribe(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.logger.Warnf("%s: streaming unsupported: %v", r.URL.Path, e.Wrap("flush", err))
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Errorf(err, "marshal event %s", ev.Type)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
				return
			}
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}
