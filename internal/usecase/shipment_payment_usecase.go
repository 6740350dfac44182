package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound          = errors.New("shipment payment not found")
	ErrInvalidPaymentShipmentID = errors.New("invalid shipment_id")
	ErrInvalidPaymentPayload    = errors.New("invalid payment payload")
	ErrShipmentNotPayable       = errors.New("shipment not payable")
	ErrPaymentGatewayMissing    = errors.New("payment gateway not configured")
)

// IShipmentPaymentUseCase encapsulates "pay for a booked shipment".
//
// The transaction amount is always the shipment's stored cost; whatever
// amount the caller sends in the provider payload is overwritten.

type IShipmentPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, userID, shipmentID string, providerPayload json.RawMessage) (entities.ShipmentPayment, error)
	ListByShipmentID(ctx context.Context, userID, shipmentID string) ([]entities.ShipmentPayment, error)
}

type ShipmentPaymentUseCase struct {
	repo         interfaces.IShipmentPaymentRepository
	shipmentRepo interfaces.IShipmentRepository
	gateway      interfaces.IPaymentGateway
}

var _ IShipmentPaymentUseCase = (*ShipmentPaymentUseCase)(nil)

func NewShipmentPaymentUseCase(repo interfaces.IShipmentPaymentRepository, shipmentRepo interfaces.IShipmentRepository, gateway interfaces.IPaymentGateway) *ShipmentPaymentUseCase {
	return &ShipmentPaymentUseCase{repo: repo, shipmentRepo: shipmentRepo, gateway: gateway}
}

func (u *ShipmentPaymentUseCase) CreateAndApprove(ctx context.Context, userID, shipmentID string, providerPayload json.RawMessage) (entities.ShipmentPayment, error) {
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return entities.ShipmentPayment{}, ErrInvalidPaymentShipmentID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ShipmentPayment{}, ErrInvalidUserID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return entities.ShipmentPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.ShipmentPayment{}, ErrPaymentGatewayMissing
	}

	s, err := u.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return entities.ShipmentPayment{}, err
	}
	if s.ID == "" {
		return entities.ShipmentPayment{}, ErrShipmentNotFound
	}
	if s.UserID != userID {
		return entities.ShipmentPayment{}, ErrShipmentNotOwned
	}
	if s.Status == entities.ShipmentStatusCancelled {
		return entities.ShipmentPayment{}, ErrShipmentNotPayable
	}

	// The source of truth for the amount is the shipment's cost column.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.ShipmentPayment{}, ErrInvalidPaymentPayload
	}
	reqMap["transaction_amount"] = s.Cost
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = s.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Shipment %s", s.TrackingNumber)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.ShipmentPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed shipment_id=%s err=%v", shipmentID, err)
		return entities.ShipmentPayment{}, err
	}
	log.Printf("[payment][usecase] gateway success shipment_id=%s provider_payment_id=%s provider_status=%s", shipmentID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed shipment_id=%s err=%v", shipmentID, err)
	}

	p := entities.ShipmentPayment{
		ID:                 providerPaymentID,
		ShipmentID:         shipmentID,
		Date:               time.Now().UTC(),
		Amount:             s.Cost,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *ShipmentPaymentUseCase) ListByShipmentID(ctx context.Context, userID, shipmentID string) ([]entities.ShipmentPayment, error) {
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return nil, ErrInvalidPaymentShipmentID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	s, err := u.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if s.ID == "" {
		return nil, ErrShipmentNotFound
	}
	if s.UserID != userID {
		return nil, ErrShipmentNotOwned
	}
	return u.repo.ListByShipmentID(ctx, shipmentID)
}
