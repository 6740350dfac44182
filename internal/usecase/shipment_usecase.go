package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrShipmentNotFound        = errors.New("shipment not found")
	ErrShipmentNotOwned        = errors.New("shipment not owned by caller")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrInvalidShipmentID       = errors.New("invalid shipment id")
	ErrInvalidBooking          = errors.New("invalid booking request")
	ErrInvalidUpdate           = errors.New("invalid shipment update")
	ErrInvalidStatus           = errors.New("invalid shipment status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrTrackingNumberExhausted = errors.New("could not assign a unique tracking number")
)

// trackingNumberAttempts bounds how many times booking regenerates the
// tracking number after the store reports a collision.
const trackingNumberAttempts = 3

// BookShipmentCommand is the validated input of a booking. The presentation
// layer resolves its raw form payload into this struct once, so the rate
// formula and the generator never see unvalidated data.

type BookShipmentCommand struct {
	OriginAddress      string
	DestinationAddress string
	Weight             float64
	Length             float64
	Width              float64
	Height             float64
	DimensionUnit      string
	ShippingMethod     entities.ShippingMethod
	DeclaredValue      float64
	PickupDate         time.Time
}

func (c BookShipmentCommand) validate() error {
	if strings.TrimSpace(c.OriginAddress) == "" || strings.TrimSpace(c.DestinationAddress) == "" {
		return ErrInvalidBooking
	}
	if c.Weight <= 0 || c.Length <= 0 || c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidBooking
	}
	if !c.ShippingMethod.IsValid() {
		return ErrInvalidBooking
	}
	if c.DeclaredValue < 0 {
		return ErrInvalidBooking
	}
	if c.PickupDate.IsZero() {
		return ErrInvalidBooking
	}
	return nil
}

// IShipmentUseCase exposes the shipment lifecycle operations consumed by the
// dashboard and booking screens.

type IShipmentUseCase interface {
	Book(ctx context.Context, userID string, cmd BookShipmentCommand) (entities.Shipment, error)
	GetByID(ctx context.Context, userID, id string) (entities.Shipment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Shipment, error)
	Update(ctx context.Context, userID, id string, upd entities.ShipmentUpdate) (entities.Shipment, error)
	UpdateStatus(ctx context.Context, userID, id string, next entities.ShipmentStatus) (entities.Shipment, error)
	Delete(ctx context.Context, userID, id string) error
	Stats(ctx context.Context, userID string) (entities.ShipmentStats, error)
}

type ShipmentUseCase struct {
	repo interfaces.IShipmentRepository
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(repo interfaces.IShipmentRepository) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo}
}

// Book validates the command, prices the package, mints a tracking number and
// persists the shipment. Creation is a single atomic check-and-insert in the
// store; on a tracking number collision the number is regenerated.
func (u *ShipmentUseCase) Book(ctx context.Context, userID string, cmd BookShipmentCommand) (entities.Shipment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Shipment{}, ErrInvalidUserID
	}
	if err := cmd.validate(); err != nil {
		return entities.Shipment{}, err
	}

	quote := entities.NewRateQuote(cmd.Weight, cmd.Length, cmd.Width, cmd.Height)
	now := time.Now().UTC()

	s := entities.Shipment{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Status:             entities.ShipmentStatusPending,
		OriginAddress:      strings.TrimSpace(cmd.OriginAddress),
		DestinationAddress: strings.TrimSpace(cmd.DestinationAddress),
		PackageWeight:      cmd.Weight,
		PackageDimensions:  formatDimensions(cmd),
		ShippingMethod:     cmd.ShippingMethod,
		DeclaredValue:      cmd.DeclaredValue,
		Cost:               quote.Total,
		EstimatedDelivery:  cmd.PickupDate.Add(entities.DeliveryEstimateOffset),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var lastErr error
	for attempt := 0; attempt < trackingNumberAttempts; attempt++ {
		s.TrackingNumber = entities.NewTrackingNumber()
		created, err := u.repo.Create(ctx, s)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateTrackingNumber) {
			return entities.Shipment{}, err
		}
		lastErr = err
	}
	return entities.Shipment{}, errors.Join(ErrTrackingNumberExhausted, lastErr)
}

func (u *ShipmentUseCase) GetByID(ctx context.Context, userID, id string) (entities.Shipment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Shipment{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Shipment{}, ErrInvalidShipmentID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.ID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	if s.UserID != userID {
		return entities.Shipment{}, ErrShipmentNotOwned
	}
	return s, nil
}

func (u *ShipmentUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Shipment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func validateShipmentUpdate(upd entities.ShipmentUpdate) error {
	empty := true
	if upd.OriginAddress != nil {
		empty = false
		if strings.TrimSpace(*upd.OriginAddress) == "" {
			return ErrInvalidUpdate
		}
	}
	if upd.DestinationAddress != nil {
		empty = false
		if strings.TrimSpace(*upd.DestinationAddress) == "" {
			return ErrInvalidUpdate
		}
	}
	if upd.PackageWeight != nil {
		empty = false
		if *upd.PackageWeight <= 0 {
			return ErrInvalidUpdate
		}
	}
	if upd.PackageDimensions != nil {
		empty = false
		if strings.TrimSpace(*upd.PackageDimensions) == "" {
			return ErrInvalidUpdate
		}
	}
	if upd.ShippingMethod != nil {
		empty = false
		if !upd.ShippingMethod.IsValid() {
			return ErrInvalidUpdate
		}
	}
	if upd.DeclaredValue != nil {
		empty = false
		if *upd.DeclaredValue < 0 {
			return ErrInvalidUpdate
		}
	}
	if upd.EstimatedDelivery != nil {
		empty = false
		if upd.EstimatedDelivery.IsZero() {
			return ErrInvalidUpdate
		}
	}
	if empty {
		return ErrInvalidUpdate
	}
	return nil
}

// Update patches the mutable booking fields of a pending shipment. Status
// changes go through UpdateStatus; cost is never edited after booking.
func (u *ShipmentUseCase) Update(ctx context.Context, userID, id string, upd entities.ShipmentUpdate) (entities.Shipment, error) {
	if err := validateShipmentUpdate(upd); err != nil {
		return entities.Shipment{}, err
	}

	current, err := u.GetByID(ctx, userID, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if current.Status != entities.ShipmentStatusPending {
		return entities.Shipment{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Shipment{}, err
	}
	if updated.ID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return updated, nil
}

// UpdateStatus applies one step of the status state machine. The transition
// to delivered stamps actual_delivery; terminal states reject any further
// change.
func (u *ShipmentUseCase) UpdateStatus(ctx context.Context, userID, id string, next entities.ShipmentStatus) (entities.Shipment, error) {
	if !next.IsValid() {
		return entities.Shipment{}, ErrInvalidStatus
	}

	current, err := u.GetByID(ctx, userID, id)
	if err != nil {
		return entities.Shipment{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return entities.Shipment{}, ErrInvalidStatusTransition
	}

	var actualDelivery *time.Time
	if next == entities.ShipmentStatusDelivered {
		t := time.Now().UTC()
		actualDelivery = &t
	}

	updated, err := u.repo.UpdateStatus(ctx, id, next, actualDelivery)
	if err != nil {
		return entities.Shipment{}, err
	}
	if updated.ID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return updated, nil
}

// Delete removes a shipment row. Shipments are normally never deleted; this
// is the administrative escape hatch, still ownership-checked.
func (u *ShipmentUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *ShipmentUseCase) Stats(ctx context.Context, userID string) (entities.ShipmentStats, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ShipmentStats{}, ErrInvalidUserID
	}
	return u.repo.GetStats(ctx, userID)
}

func formatDimensions(cmd BookShipmentCommand) string {
	unit := strings.TrimSpace(cmd.DimensionUnit)
	if unit == "" {
		unit = "in"
	}
	return formatFloat(cmd.Length) + "x" + formatFloat(cmd.Width) + "x" + formatFloat(cmd.Height) + " " + unit
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
