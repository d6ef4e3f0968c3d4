package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/bearer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fakeStorage хранит значения так же, как Redis-реализация: JSON, ключи аккаунта без sid.
type fakeStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string][]byte)}
}

func (s *fakeStorage) key(sid string, key domain.StorageKey) string {
	if key.AccountScoped {
		return key.Name
	}
	return sid + ":" + key.Name
}

func (s *fakeStorage) Get(_ context.Context, sid string, key domain.StorageKey, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[s.key(sid, key)]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *fakeStorage) Set(_ context.Context, sid string, key domain.StorageKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.key(sid, key)] = raw
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, sid string, keys ...domain.StorageKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.data, s.key(sid, k))
	}
	return nil
}

func (s *fakeStorage) has(sid string, key domain.StorageKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.data[s.key(sid, key)]
	return ok
}

func (s *fakeStorage) putRaw(sid string, key domain.StorageKey, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.key(sid, key)] = []byte(raw)
}

// fakeAPI: внешний API в памяти. Токен "tok-<email>" выдаётся при логине.
type fakeAPI struct {
	mu         sync.Mutex
	products   map[int64]domain.Product
	categories []domain.Category
	users      map[string]fakeUser

	listErr     error
	lastToken   string
	created     []*ProductInput
	deleted     []int64
	updatedUser *UpdateUserReq
	registered  *RegisterUserReq
}

type fakeUser struct {
	password string
	user     domain.User
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		products: map[int64]domain.Product{},
		users:    map[string]fakeUser{},
	}
}

func (a *fakeAPI) addProduct(id int64, title, price string) domain.Product {
	p := domain.Product{
		ID:       id,
		Title:    title,
		Price:    decimal.RequireFromString(price),
		Category: domain.Category{ID: 1, Name: "Clothes"},
		Images:   []string{"https://i.imgur.com/" + title + ".jpeg"},
	}
	a.products[id] = p
	return p
}

func (a *fakeAPI) addUser(email, password, name, role string) {
	a.users[email] = fakeUser{
		password: password,
		user:     domain.User{ID: int64(len(a.users) + 1), Email: email, Name: name, Role: role},
	}
}

func (a *fakeAPI) ListProducts(context.Context) ([]domain.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.listErr != nil {
		return nil, a.listErr
	}
	res := make([]domain.Product, 0, len(a.products))
	for id := int64(1); len(res) < len(a.products); id++ {
		if p, ok := a.products[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func (a *fakeAPI) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &p, nil
}

func (a *fakeAPI) ListCategories(context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), a.categories...), nil
}

func (a *fakeAPI) Login(_ context.Context, email, password string) (*domain.Tokens, error) {
	u, ok := a.users[email]
	if !ok || u.password != password {
		return nil, e.ErrUnauthorized
	}
	return &domain.Tokens{AccessToken: "tok-" + email, RefreshToken: "ref-" + email}, nil
}

func (a *fakeAPI) Profile(ctx context.Context) (*domain.User, error) {
	token, ok := bearer.FromContext(ctx)
	if !ok {
		return nil, e.ErrUnauthorized
	}
	for email, u := range a.users {
		if token == "tok-"+email {
			user := u.user
			return &user, nil
		}
	}
	return nil, e.ErrUnauthorized
}

func (a *fakeAPI) RegisterUser(_ context.Context, req *RegisterUserReq) (*domain.User, error) {
	a.registered = req
	return &domain.User{ID: 99, Email: req.Email, Name: req.Name, Avatar: req.Avatar, Role: "customer"}, nil
}

func (a *fakeAPI) UpdateUser(ctx context.Context, id int64, req *UpdateUserReq) (*domain.User, error) {
	user, err := a.Profile(ctx)
	if err != nil {
		return nil, err
	}
	a.updatedUser = req
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	user.ID = id
	return user, nil
}

func (a *fakeAPI) CreateProduct(ctx context.Context, in *ProductInput) (*domain.Product, error) {
	a.lastToken, _ = bearer.FromContext(ctx)
	a.created = append(a.created, in)
	return &domain.Product{ID: 100, Title: in.Title, Price: in.Price, Images: in.Images}, nil
}

func (a *fakeAPI) UpdateProduct(ctx context.Context, id int64, in *ProductInput) (*domain.Product, error) {
	a.lastToken, _ = bearer.FromContext(ctx)
	return &domain.Product{ID: id, Title: in.Title, Price: in.Price}, nil
}

func (a *fakeAPI) DeleteProduct(ctx context.Context, id int64) error {
	a.lastToken, _ = bearer.FromContext(ctx)
	a.deleted = append(a.deleted, id)
	return nil
}

func (a *fakeAPI) CreateCategory(ctx context.Context, in *CategoryInput) (*domain.Category, error) {
	a.lastToken, _ = bearer.FromContext(ctx)
	return &domain.Category{ID: 7, Name: in.Name, Image: in.Image}, nil
}

func (a *fakeAPI) UpdateCategory(ctx context.Context, id int64, in *CategoryInput) (*domain.Category, error) {
	a.lastToken, _ = bearer.FromContext(ctx)
	return &domain.Category{ID: id, Name: in.Name, Image: in.Image}, nil
}

func (a *fakeAPI) DeleteCategory(ctx context.Context, id int64) error {
	a.lastToken, _ = bearer.FromContext(ctx)
	return nil
}

// fakeCache: кэш каталога в памяти; GetProducts вызывается и из фоновой горутины.
type fakeCache struct {
	mu             sync.Mutex
	list           []domain.Product
	byID           map[int64]domain.Product
	categories     []domain.Category
	invalidated    int
	invalidatedAll int
}

func newFakeCache() *fakeCache {
	return &fakeCache{byID: map[int64]domain.Product{}}
}

func (c *fakeCache) GetProductList(context.Context) ([]domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list, c.list != nil
}

func (c *fakeCache) SetProductList(_ context.Context, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = products
	return nil
}

func (c *fakeCache) GetProducts(_ context.Context, ids []int64) (map[int64]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := make(map[int64]domain.Product)
	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			res[id] = p
		}
	}
	return res, nil
}

func (c *fakeCache) SetProducts(_ context.Context, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return nil
}

func (c *fakeCache) GetCategories(context.Context) ([]domain.Category, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categories, c.categories != nil
}

func (c *fakeCache) SetCategories(_ context.Context, categories []domain.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = categories
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, ids ...int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidated++
	c.list = nil
	c.categories = nil
	for _, id := range ids {
		delete(c.byID, id)
	}
	return nil
}

func (c *fakeCache) InvalidateAll(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidatedAll++
	c.list = nil
	c.categories = nil
	c.byID = map[int64]domain.Product{}
	return nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []StorefrontEvent
}

func (f *fakeEvents) Publish(_ context.Context, event StorefrontEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEvents) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := make([]string, 0, len(f.events))
	for _, ev := range f.events {
		res = append(res, ev.Type)
	}
	return res
}

type fakeOrders struct {
	orders    []domain.Order
	createErr error
	listCalls int
}

func (f *fakeOrders) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.orders = append(f.orders, *order)
	return order, nil
}

func (f *fakeOrders) ListByEmail(_ context.Context, email string) ([]domain.Order, error) {
	f.listCalls++

	var res []domain.Order
	for _, o := range f.orders {
		if o.Email == email {
			res = append(res, o)
		}
	}
	return res, nil
}

type fakeOutbox struct {
	events []*OutboxEvent
}

func (f *fakeOutbox) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutbox) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkAsProcessed(context.Context, int64) error {
	return nil
}

func (f *fakeOutbox) ResetStuck(context.Context, int) (int64, error) {
	return 0, nil
}

// fakeTx выполняет fn без транзакции и запоминает число вызовов.
type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeImagesInfra struct {
	req *UploadImagesReq
}

func (f *fakeImagesInfra) UploadImages(_ context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	f.req = req

	keys := make([]string, 0, len(req.Images))
	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		key := req.Folder + "/" + img.Name
		keys = append(keys, key)
		urls = append(urls, "http://localhost:9000/storefront-images/"+key)
	}
	return NewUploadImagesRes(keys, urls), nil
}

func (f *fakeImagesInfra) CleanupImages([]string) {}

// loggedIn возвращает сессию, для которой в хранилище уже записан userEmail.
func loggedIn(storage *fakeStorage, sid, email string) domain.Session {
	_ = storage.Set(context.Background(), sid, domain.SessionKey(domain.KeyUserEmail), email)
	return domain.Session{ID: sid, Token: "tok-" + email}
}
