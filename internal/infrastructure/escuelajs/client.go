// Package escuelajs — HTTP-клиент внешнего REST API магазина (api.escuelajs.co).
package escuelajs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/telemetry"
	"github.com/jimlawless/whereami"
)

// maxBodySize ограничивает размер читаемого ответа.
const maxBodySize = 10 << 20

type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  logger.Logger
}

func NewClient(cfg *cfg.APICfg, logger logger.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: API_BASE_URL=%q", e.ErrIncorrectEnvVariable, cfg.BaseURL))
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: telemetry.Transport(newBearerTransport(base.Host, http.DefaultTransport)),
		},
		logger: logger,
	}, nil
}

// CATALOG

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.ListProducts"

	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, "/products", nil, &dtos); err != nil {
		return nil, e.Wrap(op, err)
	}

	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toDomainProduct(dto))
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "Client.GetProduct"

	var dto productDTO
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := toDomainProduct(dto)
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Client.ListCategories"

	var dtos []categoryDTO
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &dtos); err != nil {
		return nil, e.Wrap(op, err)
	}

	categories := make([]domain.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, toDomainCategory(dto))
	}

	return categories, nil
}

// AUTH

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Tokens, error) {
	const op = "Client.Login"

	var tokens domain.Tokens
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginReq{Email: email, Password: password}, &tokens); err != nil {
		return nil, e.Wrap(op, err)
	}
	if tokens.AccessToken == "" {
		return nil, e.Wrap(op, e.ErrUpstream)
	}

	return &tokens, nil
}

// Profile возвращает профиль владельца токена из контекста (bearer.WithToken).
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	const op = "Client.Profile"

	var dto userDTO
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toDomainUser(dto), nil
}

func (c *Client) RegisterUser(ctx context.Context, req *usecase.RegisterUserReq) (*domain.User, error) {
	const op = "Client.RegisterUser"

	body := registerReq{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	}

	var dto userDTO
	if err := c.do(ctx, http.MethodPost, "/users/", body, &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toDomainUser(dto), nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req *usecase.UpdateUserReq) (*domain.User, error) {
	const op = "Client.UpdateUser"

	var dto userDTO
	body := updateUserReq{Name: req.Name, Avatar: req.Avatar}
	if err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), body, &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toDomainUser(dto), nil
}

// ADMIN

func (c *Client) CreateProduct(ctx context.Context, in *usecase.ProductInput) (*domain.Product, error) {
	const op = "Client.CreateProduct"

	var dto productDTO
	if err := c.do(ctx, http.MethodPost, "/products/", fromProductInput(in), &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := toDomainProduct(dto)
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in *usecase.ProductInput) (*domain.Product, error) {
	const op = "Client.UpdateProduct"

	var dto productDTO
	if err := c.do(ctx, http.MethodPut, "/products/"+strconv.FormatInt(id, 10), fromProductInput(in), &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := toDomainProduct(dto)
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	const op = "Client.DeleteProduct"

	if err := c.do(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) CreateCategory(ctx context.Context, in *usecase.CategoryInput) (*domain.Category, error) {
	const op = "Client.CreateCategory"

	var dto categoryDTO
	if err := c.do(ctx, http.MethodPost, "/categories/", categoryReq{Name: in.Name, Image: in.Image}, &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	category := toDomainCategory(dto)
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in *usecase.CategoryInput) (*domain.Category, error) {
	const op = "Client.UpdateCategory"

	var dto categoryDTO
	body := categoryReq{Name: in.Name, Image: in.Image}
	if err := c.do(ctx, http.MethodPut, "/categories/"+strconv.FormatInt(id, 10), body, &dto); err != nil {
		return nil, e.Wrap(op, err)
	}

	category := toDomainCategory(dto)
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	const op = "Client.DeleteCategory"

	if err := c.do(ctx, http.MethodDelete, "/categories/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// do выполняет запрос и декодирует JSON-ответ в dst (при nil тело игнорируется).
// Ответы не из 2xx превращаются в *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, dst any) error {
	endpoint := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", e.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", e.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, raw)
		c.logger.Debugf("%s %s: %v", method, path, apiErr)
		return apiErr
	}

	if dst == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}
