package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type stubPaymentService struct {
	createIntentFn func(ctx context.Context, price float64) (string, error)
	recordFn       func(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error)
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	return s.createIntentFn(ctx, price)
}

func (s *stubPaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	return s.recordFn(ctx, input)
}

func (s *stubPaymentService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	panic("not used")
}

func (s *stubPaymentService) OrderStats(ctx context.Context) ([]*domain.CategoryStat, error) {
	panic("not used")
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		createIntentFn: func(ctx context.Context, price float64) (string, error) {
			if price != 42.5 {
				t.Fatalf("unexpected price: %v", price)
			}
			return "pi_secret_abc", nil
		},
	}
	handler := NewPaymentHandler(stub)

	body := strings.NewReader(`{"price":42.5}`)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["clientSecret"] != "pi_secret_abc" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestPaymentHandler_CreateIntent_NonPositivePrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		createIntentFn: func(ctx context.Context, price float64) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewPaymentHandler(stub)

	body := strings.NewReader(`{"price":-1}`)
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateIntent(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestPaymentHandler_Record_Created(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		recordFn: func(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
			if input.Email != "alice@example.com" || len(input.CartItemIDs) != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.RecordPaymentResult{Payment: &domain.Payment{ID: "p1", Email: input.Email}}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	body := strings.NewReader(`{
		"email": "alice@example.com",
		"price": 25,
		"transaction_id": "tx_1",
		"cart_item_ids": ["c1", "c2"],
		"menu_item_ids": ["m1", "m2"]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/payments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPaymentHandler_Record_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		recordFn: func(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
			return &ports.RecordPaymentResult{AlreadyRecorded: true}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	body := strings.NewReader(`{
		"email": "alice@example.com",
		"price": 25,
		"cart_item_ids": ["c1"],
		"menu_item_ids": ["m1"]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/payments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "payment already recorded" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestPaymentHandler_Record_MissingCartIDs(t *testing.T) {
	e := newTestEcho()
	stub := &stubPaymentService{
		recordFn: func(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPaymentHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","price":25,"menu_item_ids":["m1"]}`)
	req := httptest.NewRequest(http.MethodPost, "/payments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Record(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
