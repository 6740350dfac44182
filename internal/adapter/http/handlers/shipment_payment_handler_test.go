package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dynamic_shipping/internal/adapter/http/handlers/mocks"
	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestShipmentPaymentHandler_CreatePaymentByShipmentID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentPaymentUseCase(ctrl)
		h := NewShipmentPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", identityFor("user-1"), h.CreatePaymentByShipmentID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body becomes empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentPaymentUseCase(ctrl)
		h := NewShipmentPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", identityFor("user-1"), h.CreatePaymentByShipmentID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "user-1", "ship-1", json.RawMessage("{}")).
			Return(entities.ShipmentPayment{ID: "pay-1", ShipmentID: "ship-1", Status: entities.PaymentStatusApproved, Date: time.Now().UTC()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("wrapped provider payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentPaymentUseCase(ctrl)
		h := NewShipmentPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", identityFor("user-1"), h.CreatePaymentByShipmentID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "user-1", "ship-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, payload json.RawMessage) (entities.ShipmentPayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.ShipmentPayment{ID: "pay-1", ShipmentID: "ship-1", Status: entities.PaymentStatusApproved}, nil
			})

		body := `{"provider_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancelled shipment maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentPaymentUseCase(ctrl)
		h := NewShipmentPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:shipment_id", identityFor("user-1"), h.CreatePaymentByShipmentID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "user-1", "ship-1", gomock.Any()).Return(entities.ShipmentPayment{}, usecase.ErrShipmentNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ship-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestShipmentPaymentHandler_GetPaymentByShipmentID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentPaymentUseCase(ctrl)
		h := NewShipmentPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:shipment_id", identityFor("user-1"), h.GetPaymentByShipmentID)

		uc.EXPECT().ListByShipmentID(gomock.Any(), "user-1", "ship-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ship-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIShipmentPaymentUseCase(ctrl)
		h := NewShipmentPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:shipment_id", identityFor("user-1"), h.GetPaymentByShipmentID)

		older := entities.ShipmentPayment{ID: "pay-1", ShipmentID: "ship-1", Date: time.Now().UTC().Add(-time.Hour), Status: entities.PaymentStatusApproved}
		newer := entities.ShipmentPayment{ID: "pay-2", ShipmentID: "ship-1", Date: time.Now().UTC(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByShipmentID(gomock.Any(), "user-1", "ship-1").Return([]entities.ShipmentPayment{older, newer}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ship-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
