package converter

import (
	"encoding/json"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

// OrderConverter преобразует Order между domain и моделью PostgreSQL.
type OrderConverter struct{}

func (OrderConverter) ToModel(entity *domain.Order) (*OrderModel, error) {
	items, err := json.Marshal(entity.Items)
	if err != nil {
		return nil, err
	}

	return &OrderModel{
		Number:    entity.Number,
		Email:     entity.Email,
		Items:     items,
		Total:     entity.Total,
		CreatedAt: entity.CreatedAt,
	}, nil
}

func (OrderConverter) ToEntity(model *OrderModel) (*domain.Order, error) {
	var items domain.Cart
	if err := json.Unmarshal(model.Items, &items); err != nil {
		return nil, err
	}

	return &domain.Order{
		Number:    model.Number,
		Email:     model.Email,
		Items:     items,
		Total:     model.Total,
		CreatedAt: model.CreatedAt.UTC(),
	}, nil
}

// OutboxEventConverter преобразует OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		AggregateID: entity.AggregateID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		AggregateID: model.AggregateID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	res := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		res = append(res, c.ToEntity(m))
	}
	return res
}
