package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG

// CatalogRes — страница каталога вместе со списком категорий для фильтров.
type CatalogRes struct {
	Products   []domain.Product
	Categories []domain.Category
	Total      int
}

// AUTH

// LoginRes — результат логина: токены для cookie и профиль.
type LoginRes struct {
	Tokens *domain.Tokens
	User   *domain.User
}

// RegisterUserReq — регистрация пользователя во внешнем API.
type RegisterUserReq struct {
	Name     string
	Email    string
	Password string
	Avatar   string
}

// UpdateUserReq — изменение профиля во внешнем API.
type UpdateUserReq struct {
	Name   string
	Avatar string
}

// CART

// CartView — корзина с посчитанными итогами.
type CartView struct {
	Items domain.Cart
	Total decimal.Decimal
	Count int
}

// ADMIN

// ProductInput — данные товара для создания/изменения через админку.
type ProductInput struct {
	Title       string
	Price       decimal.Decimal
	Description string
	CategoryID  int64
	Images      []string
}

// CategoryInput — данные категории для создания/изменения через админку.
type CategoryInput struct {
	Name  string
	Image string
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type, определённый по содержимому
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов и ключа объекта)
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Folder string
	Images []ProductImage
}

// UploadImagesRes — ключи объектов в MinIO и публичные ссылки на них.
type UploadImagesRes struct {
	ImagesKeys []string
	URLs       []string
}

// EVENTS

const (
	EventCartUpdated    = "cartUpdated"
	EventProfileUpdated = "profileUpdated"
)

// StorefrontEvent — событие синхронизации вкладок (аналог CustomEvent в браузере).
type StorefrontEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"-"`
	Email     string    `json:"-"`
	At        time.Time `json:"at"`
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderPlaced OutboxEventType = "order.placed"

// OutboxEvent — событие, записанное в одной транзакции с заказом и отправляемое в Kafka воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	AggregateID string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// WriteRawMessageReq — готовое сообщение для продюсера.
type WriteRawMessageReq struct {
	Key       string
	EventType OutboxEventType
	Payload   []byte
}

// OrderPlacedPayload — тело события order.placed.
type OrderPlacedPayload struct {
	EventID     string          `json:"eventId"`
	OrderNumber string          `json:"orderNumber"`
	Email       string          `json:"email"`
	Total       decimal.Decimal `json:"total"`
	ItemsCount  int             `json:"itemsCount"`
	PlacedAt    time.Time       `json:"placedAt"`
}

// MAPPERS

func NewCartView(cart domain.Cart) *CartView {
	if cart == nil {
		cart = domain.Cart{}
	}

	return &CartView{
		Items: cart,
		Total: cart.Total(),
		Count: cart.Count(),
	}
}

func NewLoginRes(tokens *domain.Tokens, user *domain.User) *LoginRes {
	return &LoginRes{Tokens: tokens, User: user}
}

func NewUploadImagesReq(folder string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Folder: folder,
		Images: images,
	}
}

func NewUploadImagesRes(keys []string, urls []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: keys,
		URLs:       urls,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewStorefrontEvent(eventType, sid, email string, at time.Time) StorefrontEvent {
	return StorefrontEvent{
		Type:      eventType,
		SessionID: sid,
		Email:     domain.NormalizeEmail(email),
		At:        at.UTC(),
	}
}

func NewWriteRawMessageReq(key string, eventType OutboxEventType, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:       key,
		EventType: eventType,
		Payload:   payload,
	}
}
