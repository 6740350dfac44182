package repository

import (
	"strings"
	"testing"
	"time"

	"dynamic_shipping/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestShipmentUpdateExpression(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("empty update still stamps updated_at", func(t *testing.T) {
		expr, vals, names := shipmentUpdateExpression(entities.ShipmentUpdate{}, now)
		if expr != "SET #updated_at = :updated_at" {
			t.Fatalf("unexpected expression: %s", expr)
		}
		if names["#updated_at"] != "updated_at" {
			t.Fatalf("missing updated_at name: %v", names)
		}
		got, ok := vals[":updated_at"].(*types.AttributeValueMemberS)
		if !ok || got.Value != now.Format(time.RFC3339Nano) {
			t.Fatalf("unexpected updated_at value: %v", vals[":updated_at"])
		}
	})

	t.Run("only set fields appear", func(t *testing.T) {
		origin := "São Paulo, SP"
		weight := 12.5
		method := entities.ShippingMethodExpress
		expr, vals, names := shipmentUpdateExpression(entities.ShipmentUpdate{
			OriginAddress:  &origin,
			PackageWeight:  &weight,
			ShippingMethod: &method,
		}, now)

		for _, want := range []string{"#origin_address = :origin_address", "#package_weight = :package_weight", "#shipping_method = :shipping_method"} {
			if !strings.Contains(expr, want) {
				t.Fatalf("expected %q in expression %s", want, expr)
			}
		}
		for _, absent := range []string{"destination_address", "declared_value", "estimated_delivery", "package_dimensions"} {
			if strings.Contains(expr, absent) {
				t.Fatalf("unexpected %q in expression %s", absent, expr)
			}
		}
		if got := vals[":package_weight"].(*types.AttributeValueMemberS).Value; got != "12.5" {
			t.Fatalf("expected weight stored as string, got %q", got)
		}
		if got := vals[":shipping_method"].(*types.AttributeValueMemberS).Value; got != "express" {
			t.Fatalf("expected method string, got %q", got)
		}
		if names["#origin_address"] != "origin_address" {
			t.Fatalf("missing attribute name mapping: %v", names)
		}
	})

	t.Run("all fields set", func(t *testing.T) {
		origin, dest, dims := "a", "b", "1x2x3 in"
		weight, declared := 1.0, 2.0
		method := entities.ShippingMethodEconomy
		eta := now.Add(7 * 24 * time.Hour)
		expr, vals, _ := shipmentUpdateExpression(entities.ShipmentUpdate{
			OriginAddress:      &origin,
			DestinationAddress: &dest,
			PackageWeight:      &weight,
			PackageDimensions:  &dims,
			ShippingMethod:     &method,
			DeclaredValue:      &declared,
			EstimatedDelivery:  &eta,
		}, now)

		if got := strings.Count(expr, " = :"); got != 8 {
			t.Fatalf("expected 8 assignments, got %d in %s", got, expr)
		}
		if got := vals[":estimated_delivery"].(*types.AttributeValueMemberS).Value; got != eta.Format(time.RFC3339Nano) {
			t.Fatalf("unexpected eta value %q", got)
		}
	})
}

func TestAggregateShipmentStats(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-entities.StatsWindow)

	t.Run("no shipments yields exact zeroes", func(t *testing.T) {
		got := aggregateShipmentStats(nil, windowStart)
		if got != (entities.ShipmentStats{}) {
			t.Fatalf("expected zero stats, got %+v", got)
		}
	})

	t.Run("active counts ignore the window", func(t *testing.T) {
		old := now.Add(-90 * 24 * time.Hour)
		got := aggregateShipmentStats([]entities.Shipment{
			{Status: entities.ShipmentStatusPending, CreatedAt: old},
			{Status: entities.ShipmentStatusInTransit, CreatedAt: old},
			{Status: entities.ShipmentStatusCancelled, CreatedAt: old},
		}, windowStart)
		if got.ActiveShipments != 2 {
			t.Fatalf("expected 2 active, got %d", got.ActiveShipments)
		}
		if got.DeliveredShipments != 0 || got.TotalSpent != 0 {
			t.Fatalf("unexpected windowed counters: %+v", got)
		}
	})

	t.Run("delivered windowed by actual delivery", func(t *testing.T) {
		inWindow := windowStart.Add(time.Hour)
		outside := windowStart.Add(-time.Hour)
		old := now.Add(-90 * 24 * time.Hour)
		got := aggregateShipmentStats([]entities.Shipment{
			{Status: entities.ShipmentStatusDelivered, ActualDelivery: &inWindow, CreatedAt: old},
			{Status: entities.ShipmentStatusDelivered, ActualDelivery: &outside, CreatedAt: old},
			{Status: entities.ShipmentStatusDelivered, CreatedAt: old},
		}, windowStart)
		if got.DeliveredShipments != 1 {
			t.Fatalf("expected 1 delivered, got %d", got.DeliveredShipments)
		}
	})

	t.Run("spent windowed by created at", func(t *testing.T) {
		got := aggregateShipmentStats([]entities.Shipment{
			{Status: entities.ShipmentStatusPending, CreatedAt: windowStart.Add(time.Hour), Cost: 28.38},
			{Status: entities.ShipmentStatusDelivered, CreatedAt: windowStart.Add(2 * time.Hour), Cost: 10},
			{Status: entities.ShipmentStatusPending, CreatedAt: windowStart.Add(-time.Hour), Cost: 100},
		}, windowStart)
		if got.TotalSpent != 38.38 {
			t.Fatalf("expected 38.38 spent, got %v", got.TotalSpent)
		}
	})

	t.Run("window boundary is inclusive", func(t *testing.T) {
		boundary := windowStart
		got := aggregateShipmentStats([]entities.Shipment{
			{Status: entities.ShipmentStatusDelivered, ActualDelivery: &boundary, CreatedAt: boundary, Cost: 5},
		}, windowStart)
		if got.DeliveredShipments != 1 {
			t.Fatalf("expected boundary delivery counted, got %d", got.DeliveredShipments)
		}
		if got.TotalSpent != 5 {
			t.Fatalf("expected boundary spend counted, got %v", got.TotalSpent)
		}
	})
}

func TestShipmentItemMapping(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	delivered := now.Add(96 * time.Hour)
	s := entities.Shipment{
		ID:                 "ship-1",
		UserID:             "user-1",
		TrackingNumber:     "DSL-20260301-12345",
		Status:             entities.ShipmentStatusDelivered,
		OriginAddress:      "São Paulo, SP",
		DestinationAddress: "Rio de Janeiro, RJ",
		PackageWeight:      10,
		PackageDimensions:  "2x2x2 in",
		ShippingMethod:     entities.ShippingMethodStandard,
		DeclaredValue:      150.5,
		Cost:               28.38,
		EstimatedDelivery:  now.Add(7 * 24 * time.Hour),
		ActualDelivery:     &delivered,
		CreatedAt:          now,
		UpdatedAt:          delivered,
	}

	it := toShipmentItem(s)

	t.Run("floats stored as strings", func(t *testing.T) {
		if it.Cost != "28.38" {
			t.Fatalf("expected cost \"28.38\", got %q", it.Cost)
		}
		if it.PackageWeight != "10" {
			t.Fatalf("expected weight \"10\", got %q", it.PackageWeight)
		}
	})

	t.Run("round trips", func(t *testing.T) {
		got := fromShipmentItem(it)
		if got.ID != s.ID || got.TrackingNumber != s.TrackingNumber || got.Status != s.Status {
			t.Fatalf("identity fields lost: %+v", got)
		}
		if got.Cost != s.Cost || got.DeclaredValue != s.DeclaredValue {
			t.Fatalf("amounts lost: %+v", got)
		}
		if got.ActualDelivery == nil || !got.ActualDelivery.Equal(delivered) {
			t.Fatalf("actual delivery lost: %+v", got.ActualDelivery)
		}
	})

	t.Run("omits optional fields when absent", func(t *testing.T) {
		open := s
		open.Status = entities.ShipmentStatusPending
		open.ActualDelivery = nil
		open.DeclaredValue = 0

		it := toShipmentItem(open)
		if it.ActualDelivery != "" || it.DeclaredValue != "" {
			t.Fatalf("expected empty optional attrs, got %+v", it)
		}
		got := fromShipmentItem(it)
		if got.ActualDelivery != nil || got.DeclaredValue != 0 {
			t.Fatalf("expected zero optionals, got %+v", got)
		}
	})
}
