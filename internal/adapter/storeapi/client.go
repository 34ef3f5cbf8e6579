package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/fourline/orderfront/internal/domain/model"
)

// ErrParseResponse indicates a 2xx response whose body was not a valid
// envelope. Distinct from upstream failures so callers can tell a broken
// contract from a reported error.
var ErrParseResponse = errors.New("response parse failed")

// maxRawMessageLen bounds how much of a non-JSON error body is surfaced.
const maxRawMessageLen = 180

// Envelope is the uniform `{resultCode, msg, data}` wrapper every store API
// response uses.
type Envelope struct {
	ResultCode string          `json:"resultCode"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

// ErrorKind tags where an upstream error message was extracted from.
type ErrorKind string

const (
	// ErrorKindEnvelope means the body carried the standard envelope `msg`.
	ErrorKindEnvelope ErrorKind = "envelope"
	// ErrorKindGeneric means a generic `message` or `error` JSON field.
	ErrorKindGeneric ErrorKind = "generic"
	// ErrorKindText means a non-JSON body surfaced as trimmed text.
	ErrorKindText ErrorKind = "text"
	// ErrorKindStatus means the body gave nothing; only the status remains.
	ErrorKindStatus ErrorKind = "status"
)

// APIError carries an upstream failure with the best human-readable message
// that could be extracted from the response body.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// CreateOrderRequest is the upstream order creation payload.
type CreateOrderRequest struct {
	Email           string            `json:"email"`
	ShippingAddress string            `json:"shippingAddress"`
	ShippingCode    string            `json:"shippingCode"`
	Items           []model.OrderLine `json:"items"`
}

// UpdateOrderRequest carries the editable shipping fields of an order.
type UpdateOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	ShippingCode    string `json:"shippingCode"`
}

// Client exposes every store API operation the front-end needs.
type Client interface {
	CustomerExists(ctx context.Context, email string) (bool, error)
	Products(ctx context.Context) ([]model.Product, error)
	Summaries(ctx context.Context, email string) ([]model.Summary, error)
	Details(ctx context.Context, productID int64, email string) ([]model.Detail, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*model.CreatedOrder, error)
	UpdateOrder(ctx context.Context, orderID int64, req UpdateOrderRequest) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

// HTTPClient implements Client over the store's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a store API client with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse store api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("store api url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// do performs one round trip and parses the response envelope. The body is
// read as text first: error bodies may be empty, plain text, or JSON of a
// different shape, and must never be assumed well-formed.
func (c *HTTPClient) do(ctx context.Context, method, endpointPath string, query url.Values, body any) (*Envelope, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := parseError(resp.StatusCode, raw)
		c.logger.Warn("store api request failed",
			slog.String("method", method),
			slog.String("path", endpointPath),
			slog.Int("status", resp.StatusCode),
			slog.String("kind", string(apiErr.Kind)),
		)
		return nil, apiErr
	}

	// DELETE may answer 204 with no body; synthesize a success envelope
	// instead of failing to parse nothing.
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return &Envelope{ResultCode: strconv.Itoa(resp.StatusCode), Msg: "ok"}, nil
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseResponse, err)
	}
	return &env, nil
}

// parseError extracts a message from a non-2xx body by priority: envelope
// msg, generic message, generic error, trimmed raw text, bare HTTP status.
func parseError(status int, raw []byte) *APIError {
	var probe struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &probe) == nil {
		if msg := trimmed(probe.Msg); msg != "" {
			return &APIError{Kind: ErrorKindEnvelope, Status: status, Message: msg}
		}
		if msg := trimmed(probe.Message); msg != "" {
			return &APIError{Kind: ErrorKindGeneric, Status: status, Message: msg}
		}
		if msg := trimmed(probe.Error); msg != "" {
			return &APIError{Kind: ErrorKindGeneric, Status: status, Message: msg}
		}
	}
	if text := trimmed(string(raw)); text != "" {
		if len(text) > maxRawMessageLen {
			// Back up to a rune boundary so a multi-byte character is
			// never split mid-sequence.
			cut := maxRawMessageLen
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			text = text[:cut] + "..."
		}
		return &APIError{Kind: ErrorKindText, Status: status, Message: text}
	}
	return &APIError{Kind: ErrorKindStatus, Status: status, Message: fmt.Sprintf("HTTP %d", status)}
}

func trimmed(s string) string {
	return string(bytes.TrimSpace([]byte(s)))
}

// decodeData unmarshals the envelope data field. A null or absent data field
// yields the zero value, which for list endpoints is an empty result.
func decodeData[T any](env *Envelope, out *T) error {
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrParseResponse, err)
	}
	return nil
}

func emailQuery(email string) url.Values {
	q := url.Values{}
	q.Set("email", email)
	return q
}

// CustomerExists checks whether any orders can exist for the email.
func (c *HTTPClient) CustomerExists(ctx context.Context, email string) (bool, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/customers/exists", emailQuery(email), nil)
	if err != nil {
		return false, err
	}
	var data struct {
		Exists bool `json:"exists"`
	}
	if err := decodeData(env, &data); err != nil {
		return false, err
	}
	return data.Exists, nil
}

// Products fetches the catalog.
func (c *HTTPClient) Products(ctx context.Context) ([]model.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/products", nil, nil)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := decodeData(env, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Summaries fetches the per-product aggregates for a customer.
func (c *HTTPClient) Summaries(ctx context.Context, email string) ([]model.Summary, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/orders/summary", emailQuery(email), nil)
	if err != nil {
		return nil, err
	}
	var summaries []model.Summary
	if err := decodeData(env, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Details fetches the order-line rows of one product for a customer.
func (c *HTTPClient) Details(ctx context.Context, productID int64, email string) ([]model.Detail, error) {
	endpoint := "/api/orders/summary/" + strconv.FormatInt(productID, 10)
	env, err := c.do(ctx, http.MethodGet, endpoint, emailQuery(email), nil)
	if err != nil {
		return nil, err
	}
	var details []model.Detail
	if err := decodeData(env, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// CreateOrder places a new order.
func (c *HTTPClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*model.CreatedOrder, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/orders", nil, req)
	if err != nil {
		return nil, err
	}
	var created model.CreatedOrder
	if err := decodeData(env, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrder replaces the shipping fields of an existing order.
func (c *HTTPClient) UpdateOrder(ctx context.Context, orderID int64, req UpdateOrderRequest) error {
	endpoint := "/api/orders/" + strconv.FormatInt(orderID, 10)
	_, err := c.do(ctx, http.MethodPut, endpoint, nil, req)
	return err
}

// DeleteOrder removes an order. A 204 reply without a body counts as
// success.
func (c *HTTPClient) DeleteOrder(ctx context.Context, orderID int64) error {
	endpoint := "/api/orders/" + strconv.FormatInt(orderID, 10)
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}
