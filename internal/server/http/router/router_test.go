package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polyforge/printdesk/internal/config"
	"github.com/polyforge/printdesk/internal/domain/model"
	"github.com/polyforge/printdesk/internal/server/http/handlers"
	testhelpers "github.com/polyforge/printdesk/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{MaxUploadBytes: 50 << 20}
	facade := testhelpers.PrintShopFacadeStub{
		OrderFn: func(_ context.Context, id string) (*model.Order, error) {
			return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
		},
		OrdersFn: func(context.Context) ([]model.Order, error) {
			return []model.Order{{ID: "order-1"}}, nil
		},
	}
	engine := Setup(facade, cfg, logger)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("modelFile", "bracket.stl")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("solid bracket")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-model", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for analyze, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for order get, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for order list, got %d", resp.Code)
	}

	patch, _ := json.Marshal(map[string]string{"status": "confirmed"})
	req = httptest.NewRequest(http.MethodPatch, "/api/orders/order-1", bytes.NewReader(patch))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected default stub to report 404 for patch, got %d", resp.Code)
	}
}

func TestSetupRejectsUploadOverConfiguredCap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{MaxUploadBytes: 1024}

	var submitted bool
	facade := testhelpers.PrintShopFacadeStub{
		SubmitFn: func(context.Context, model.OrderDraft, *model.Upload) (*model.Order, error) {
			submitted = true
			return &model.Order{ID: "order-1"}, nil
		},
	}
	engine := Setup(facade, cfg, logger)

	if engine.MaxMultipartMemory != 1024 {
		t.Fatalf("expected multipart memory bound 1024, got %d", engine.MaxMultipartMemory)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range map[string]string{"name": "Ada", "phone": "5551234567", "deliveryMethod": "meetup"} {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field %q: %v", k, err)
		}
	}
	part, err := writer.CreateFormFile("modelFile", "huge.stl")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("x"), 4096)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/orders", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if submitted {
		t.Fatal("oversize upload must never reach the facade")
	}
}

var _ handlers.PrintShopFacade = (*testhelpers.PrintShopFacadeStub)(nil)
