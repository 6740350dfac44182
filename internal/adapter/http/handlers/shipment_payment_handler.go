package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "dynamic_shipping/internal/adapter/http/dto/response"
	"dynamic_shipping/internal/usecase"
	"dynamic_shipping/internal/usecase/interfaces"
	"dynamic_shipping/pkg"

	"github.com/gin-gonic/gin"
)

// ShipmentPaymentHandler handles HTTP requests for shipment payments.

type ShipmentPaymentHandler struct {
	usecase usecase.IShipmentPaymentUseCase
}

func NewShipmentPaymentHandler(uc usecase.IShipmentPaymentUseCase) *ShipmentPaymentHandler {
	return &ShipmentPaymentHandler{usecase: uc}
}

// CreatePaymentByShipmentID creates/approves a payment using shipment_id in path.
func (h *ShipmentPaymentHandler) CreatePaymentByShipmentID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipmentID := c.Param("shipment_id")
	log.Printf("[payment][handler] create start shipment_id=%s", shipmentID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload shipment_id=%s err=%v", shipmentID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload shipment_id=%s err=%v", shipmentID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), userID, shipmentID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed shipment_id=%s err=%v", shipmentID, err)
		appErr := mapShipmentPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success shipment_id=%s payment_id=%s status=%s", shipmentID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromShipmentPayment(created))
}

// GetPaymentByShipmentID returns the latest payment for a shipment.
func (h *ShipmentPaymentHandler) GetPaymentByShipmentID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipmentID := c.Param("shipment_id")
	log.Printf("[payment][handler] get-by-shipment start shipment_id=%s", shipmentID)

	payments, err := h.usecase.ListByShipmentID(c.Request.Context(), userID, shipmentID)
	if err != nil {
		log.Printf("[payment][handler] get-by-shipment failed shipment_id=%s err=%v", shipmentID, err)
		appErr := mapShipmentPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-shipment not-found shipment_id=%s", shipmentID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-shipment success shipment_id=%s payment_id=%s status=%s", shipmentID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromShipmentPayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapShipmentPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentShipmentID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotOwned):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Shipment belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShipmentNotPayable):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_PAYABLE", "Shipment cannot be paid in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
