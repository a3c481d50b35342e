// Package paymentprovider реализует HTTP-клиент Stripe-совместимого
// платежного провайдера. Клиент конструируется явно со своим ключом,
// глобального состояния нет, в тестах подменяется целиком.
package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/magabrotheeeer/course-platform/internal/errs"
)

// Client — клиент платежного провайдера. Каждый вызов идемпотентен
// на стороне провайдера сам по себе, но клиент не делает повторов:
// ошибка любого шага возвращается вызывающему как errs.ProviderError.
type Client struct {
	secretKey  string
	apiURL     string
	successURL string
	cancelURL  string
	httpClient *http.Client
}

// NewClient создаёт клиент провайдера с заданным секретным ключом
// и адресами перенаправления после оплаты.
func NewClient(secretKey, successURL, cancelURL string) *Client {
	return &Client{
		secretKey:  secretKey,
		apiURL:     "https://api.stripe.com/v1",
		successURL: successURL,
		cancelURL:  cancelURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithURL — как NewClient, но с произвольным адресом API.
// Используется в тестах с httptest-сервером.
func NewClientWithURL(secretKey, apiURL, successURL, cancelURL string) *Client {
	c := NewClient(secretKey, successURL, cancelURL)
	c.apiURL = apiURL
	return c
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	const op = "paymentprovider.do"

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &errs.ProviderError{Message: err.Error(), Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errs.ProviderError{Message: err.Error(), Err: err}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr apiError
		msg := resp.Status
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return &errs.ProviderError{Message: msg}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &errs.ProviderError{Message: err.Error(), Err: err}
	}
	return nil
}

// CreateProduct создаёт у провайдера продукт, представляющий курс.
func (c *Client) CreateProduct(ctx context.Context, name, description string) (*Product, error) {
	form := url.Values{}
	form.Set("name", name)
	if description != "" {
		form.Set("description", description)
	}
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", form, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreatePrice создаёт цену в копейках, привязанную к продукту.
func (c *Client) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*Price, error) {
	form := url.Values{}
	form.Set("product", productID)
	form.Set("unit_amount", strconv.FormatInt(unitAmount, 10))
	form.Set("currency", currency)
	var price Price
	if err := c.do(ctx, http.MethodPost, "/prices", form, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

// CreateCheckoutSession создаёт checkout-сессию на одну позицию с ценой priceID
// и возвращает её идентификатор и ссылку на оплату.
func (c *Client) CreateCheckoutSession(ctx context.Context, priceID string) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	var session Session
	if err := c.do(ctx, http.MethodPost, "/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RetrieveSession возвращает текущий статус checkout-сессии.
// Локальная запись платежа при этом не изменяется.
func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodGet, "/checkout/sessions/"+url.PathEscape(sessionID), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
