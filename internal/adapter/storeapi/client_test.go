package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fourline/orderfront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewHTTPClient(server.URL, 0, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, server
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", 0, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", 0, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestParseErrorMessagePriority(t *testing.T) {
	long := strings.Repeat("x", maxRawMessageLen+40)

	tests := []struct {
		name    string
		status  int
		body    string
		kind    ErrorKind
		message string
	}{
		{
			name:    "envelope msg wins over everything",
			status:  http.StatusBadRequest,
			body:    `{"msg":"out of stock","message":"generic","error":"also generic"}`,
			kind:    ErrorKindEnvelope,
			message: "out of stock",
		},
		{
			name:    "generic message field",
			status:  http.StatusBadRequest,
			body:    `{"message":"not allowed","error":"ignored"}`,
			kind:    ErrorKindGeneric,
			message: "not allowed",
		},
		{
			name:    "generic error field",
			status:  http.StatusConflict,
			body:    `{"error":"duplicate order"}`,
			kind:    ErrorKindGeneric,
			message: "duplicate order",
		},
		{
			name:    "blank envelope msg falls through to raw text",
			status:  http.StatusBadRequest,
			body:    `{"msg":"   "}`,
			kind:    ErrorKindText,
			message: `{"msg":"   "}`,
		},
		{
			name:    "plain text body",
			status:  http.StatusServiceUnavailable,
			body:    "  upstream maintenance  ",
			kind:    ErrorKindText,
			message: "upstream maintenance",
		},
		{
			name:    "long text body is truncated",
			status:  http.StatusInternalServerError,
			body:    long,
			kind:    ErrorKindText,
			message: long[:maxRawMessageLen] + "...",
		},
		{
			name:    "truncation never splits a multi-byte rune",
			status:  http.StatusInternalServerError,
			body:    strings.Repeat("x", maxRawMessageLen-1) + "é" + strings.Repeat("y", 40),
			kind:    ErrorKindText,
			message: strings.Repeat("x", maxRawMessageLen-1) + "...",
		},
		{
			name:    "empty body reports bare status",
			status:  http.StatusBadGateway,
			body:    "",
			kind:    ErrorKindStatus,
			message: "HTTP 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := parseError(tt.status, []byte(tt.body))
			if apiErr.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, apiErr.Kind)
			}
			if apiErr.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.Status)
			}
			if apiErr.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, apiErr.Message)
			}
		})
	}
}

func TestSummariesCoercesQuotedNumbers(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("email"); got != "a@b.com" {
			t.Errorf("expected email query a@b.com, got %q", got)
		}
		_, _ = w.Write([]byte(`{"resultCode":"200","msg":"ok","data":[
			{"productId":"7","productName":"Desk","totalQuantity":"3","totalAmount":"150.50"},
			{"productId":8,"productName":"Lamp","totalQuantity":1,"totalAmount":25}
		]}`))
	})

	summaries, err := client.Summaries(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if int64(summaries[0].ProductID) != 7 || int64(summaries[0].TotalQuantity) != 3 {
		t.Errorf("quoted numbers not coerced: %+v", summaries[0])
	}
	if !summaries[0].TotalAmount.Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("expected amount 150.50, got %s", summaries[0].TotalAmount)
	}
	if int64(summaries[1].ProductID) != 8 || !summaries[1].TotalAmount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("bare numbers mangled: %+v", summaries[1])
	}
}

func TestSummariesNullDataYieldsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultCode":"200","msg":"ok","data":null}`))
	})

	summaries, err := client.Summaries(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(summaries))
	}
}

func TestDoReportsParseFailureOnSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.Summaries(context.Background(), "a@b.com")
	if !errors.Is(err, ErrParseResponse) {
		t.Fatalf("expected ErrParseResponse, got %v", err)
	}
}

func TestDoReturnsAPIErrorOnFailureStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"msg":"no such product"}`))
	})

	_, err := client.Details(context.Background(), 9, "a@b.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "no such product" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestDeleteOrderAcceptsNoContent(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteOrder(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", gotMethod)
	}
	if gotPath != "/api/orders/42" {
		t.Errorf("unexpected path %q", gotPath)
	}
}

func TestCreateOrderSendsPayloadAndDecodesResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Email != "a@b.com" || len(req.Items) != 1 || req.Items[0].Quantity != 2 {
			t.Errorf("unexpected request payload: %+v", req)
		}
		_, _ = w.Write([]byte(`{"resultCode":"201","msg":"created","data":{"id":"77","email":"a@b.com","totalAmount":"40"}}`))
	})

	created, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		Email:           "a@b.com",
		ShippingAddress: "1 Main St",
		ShippingCode:    "12345",
		Items:           []model.OrderLine{{ProductID: 1, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int64(created.ID) != 77 || created.Email != "a@b.com" {
		t.Fatalf("unexpected created order: %+v", created)
	}
	if !created.TotalAmount.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected total 40, got %s", created.TotalAmount)
	}
}

func TestCustomerExists(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/customers/exists" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"resultCode":"200","msg":"ok","data":{"exists":true}}`))
	})

	exists, err := client.CustomerExists(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected customer to exist")
	}
}

func TestUpdateOrderPropagatesUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/orders/5" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"postal code rejected"}`))
	})

	err := client.UpdateOrder(context.Background(), 5, UpdateOrderRequest{ShippingAddress: "1 Main St", ShippingCode: "99999"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind != ErrorKindGeneric || apiErr.Message != "postal code rejected" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}
