package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultShipmentsTableName = "shipments"
	shipmentsUserIDIndex      = "user_id-index"
	shipmentsTrackingIndex    = "tracking_number-index"

	// Guard items share the shipments table and reserve a tracking number
	// under this id prefix. Reserving in the same transaction as the insert
	// gives an atomic check-and-insert for the business identifier.
	trackingGuardPrefix = "tracking#"
)

type shipmentItem struct {
	ID                 string `dynamodbav:"id"`
	UserID             string `dynamodbav:"user_id"`
	TrackingNumber     string `dynamodbav:"tracking_number"`
	Status             string `dynamodbav:"status"`
	OriginAddress      string `dynamodbav:"origin_address"`
	DestinationAddress string `dynamodbav:"destination_address"`
	PackageWeight      string `dynamodbav:"package_weight"`
	PackageDimensions  string `dynamodbav:"package_dimensions"`
	ShippingMethod     string `dynamodbav:"shipping_method"`
	DeclaredValue      string `dynamodbav:"declared_value,omitempty"`
	Cost               string `dynamodbav:"cost"`
	EstimatedDelivery  string `dynamodbav:"estimated_delivery"`
	ActualDelivery     string `dynamodbav:"actual_delivery,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

type trackingGuardItem struct {
	ID         string `dynamodbav:"id"`
	ShipmentID string `dynamodbav:"shipment_id"`
}

// ShipmentDynamoRepository persists Shipment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//   - GSI: tracking_number-index (PK: tracking_number)
//
// Every outbound call runs under the transport retry policy.

type ShipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	retry     retryPolicy
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb *dynamodb.Client) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
		retry:     defaultRetryPolicy(),
	}
}

// Create inserts the shipment row and its tracking-number guard item in one
// transaction. A taken tracking number cancels the whole transaction and
// surfaces ErrDuplicateTrackingNumber; nothing is written.
func (r *ShipmentDynamoRepository) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	av, err := attributevalue.MarshalMap(toShipmentItem(s))
	if err != nil {
		return entities.Shipment{}, err
	}
	guard, err := attributevalue.MarshalMap(trackingGuardItem{
		ID:         trackingGuardPrefix + s.TrackingNumber,
		ShipmentID: s.ID,
	})
	if err != nil {
		return entities.Shipment{}, err
	}

	err = r.retry.do(ctx, func(ctx context.Context) error {
		_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					Put: &types.Put{
						TableName:           aws.String(r.tableName),
						Item:                av,
						ConditionExpression: aws.String("attribute_not_exists(#id)"),
						ExpressionAttributeNames: map[string]string{
							"#id": "id",
						},
					},
				},
				{
					Put: &types.Put{
						TableName:           aws.String(r.tableName),
						Item:                guard,
						ConditionExpression: aws.String("attribute_not_exists(#id)"),
						ExpressionAttributeNames: map[string]string{
							"#id": "id",
						},
					},
				},
			},
		})
		return err
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.Shipment{}, interfaces.ErrDuplicateTrackingNumber
		}
		return entities.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Shipment, error) {
	var out *dynamodb.GetItemOutput
	err := r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConsistentRead: aws.Bool(true),
		})
		return err
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Shipment, error) {
	var out *dynamodb.QueryOutput
	err := r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(shipmentsTrackingIndex),
			KeyConditionExpression: aws.String("tracking_number = :tn"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tn": &types.AttributeValueMemberS{Value: trackingNumber},
			},
			Limit: aws.Int32(1),
		})
		return err
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

// ListByUserID returns the user's shipments ordered by created_at descending
// (the GSI sort key, walked backwards).
func (r *ShipmentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Shipment, error) {
	items, err := r.queryByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	shipments := make([]entities.Shipment, 0, len(items))
	for _, it := range items {
		shipments = append(shipments, fromShipmentItem(it))
	}
	return shipments, nil
}

func (r *ShipmentDynamoRepository) Update(ctx context.Context, id string, upd entities.ShipmentUpdate) (entities.Shipment, error) {
	expr, vals, names := shipmentUpdateExpression(upd, time.Now().UTC())
	return r.update(ctx, id, expr, vals, names)
}

// shipmentUpdateExpression builds the SET expression for a partial update.
// updated_at is always stamped; nil fields stay untouched.
func shipmentUpdateExpression(upd entities.ShipmentUpdate, now time.Time) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	set := func(name string, v types.AttributeValue) {
		expr += ", #" + name + " = :" + name
		vals[":"+name] = v
		names["#"+name] = name
	}
	if upd.OriginAddress != nil {
		set("origin_address", &types.AttributeValueMemberS{Value: *upd.OriginAddress})
	}
	if upd.DestinationAddress != nil {
		set("destination_address", &types.AttributeValueMemberS{Value: *upd.DestinationAddress})
	}
	if upd.PackageWeight != nil {
		set("package_weight", &types.AttributeValueMemberS{Value: floatToString(*upd.PackageWeight)})
	}
	if upd.PackageDimensions != nil {
		set("package_dimensions", &types.AttributeValueMemberS{Value: *upd.PackageDimensions})
	}
	if upd.ShippingMethod != nil {
		set("shipping_method", &types.AttributeValueMemberS{Value: string(*upd.ShippingMethod)})
	}
	if upd.DeclaredValue != nil {
		set("declared_value", &types.AttributeValueMemberS{Value: floatToString(*upd.DeclaredValue)})
	}
	if upd.EstimatedDelivery != nil {
		set("estimated_delivery", &types.AttributeValueMemberS{Value: upd.EstimatedDelivery.UTC().Format(time.RFC3339Nano)})
	}

	return expr, vals, names
}

func (r *ShipmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ShipmentStatus, actualDelivery *time.Time) (entities.Shipment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if actualDelivery != nil {
		expr += ", #actual_delivery = :actual_delivery"
		vals[":actual_delivery"] = &types.AttributeValueMemberS{Value: actualDelivery.UTC().Format(time.RFC3339Nano)}
		names["#actual_delivery"] = "actual_delivery"
	}

	return r.update(ctx, id, expr, vals, names)
}

// Delete removes the shipment row and releases its tracking-number guard in
// one transaction.
func (r *ShipmentDynamoRepository) Delete(ctx context.Context, id string) error {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return nil
	}

	return r.retry.do(ctx, func(ctx context.Context) error {
		_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					Delete: &types.Delete{
						TableName: aws.String(r.tableName),
						Key: map[string]types.AttributeValue{
							"id": &types.AttributeValueMemberS{Value: id},
						},
					},
				},
				{
					Delete: &types.Delete{
						TableName: aws.String(r.tableName),
						Key: map[string]types.AttributeValue{
							"id": &types.AttributeValueMemberS{Value: trackingGuardPrefix + s.TrackingNumber},
						},
					},
				},
			},
		})
		return err
	})
}

// GetStats aggregates the user's rows client-side: active counts are
// unwindowed, delivered and spent use the trailing 30-day window.
func (r *ShipmentDynamoRepository) GetStats(ctx context.Context, userID string) (entities.ShipmentStats, error) {
	items, err := r.queryByUser(ctx, userID, true)
	if err != nil {
		return entities.ShipmentStats{}, err
	}

	shipments := make([]entities.Shipment, 0, len(items))
	for _, it := range items {
		shipments = append(shipments, fromShipmentItem(it))
	}
	return aggregateShipmentStats(shipments, time.Now().UTC().Add(-entities.StatsWindow)), nil
}

// aggregateShipmentStats folds the user's rows into the dashboard counters.
// Active counts ignore the window; delivered is windowed by actual_delivery
// and spent by created_at, both inclusive at windowStart.
func aggregateShipmentStats(shipments []entities.Shipment, windowStart time.Time) entities.ShipmentStats {
	var stats entities.ShipmentStats
	for _, s := range shipments {
		switch s.Status {
		case entities.ShipmentStatusPending, entities.ShipmentStatusInTransit:
			stats.ActiveShipments++
		case entities.ShipmentStatusDelivered:
			if s.ActualDelivery != nil && !s.ActualDelivery.Before(windowStart) {
				stats.DeliveredShipments++
			}
		}
		if !s.CreatedAt.Before(windowStart) {
			stats.TotalSpent += s.Cost
		}
	}
	return stats
}

func (r *ShipmentDynamoRepository) queryByUser(ctx context.Context, userID string, forward bool) ([]shipmentItem, error) {
	var items []shipmentItem
	var startKey map[string]types.AttributeValue
	for {
		var out *dynamodb.QueryOutput
		err := r.retry.do(ctx, func(ctx context.Context) error {
			var err error
			out, err = r.ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:              aws.String(r.tableName),
				IndexName:              aws.String(shipmentsUserIDIndex),
				KeyConditionExpression: aws.String("user_id = :uid"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":uid": &types.AttributeValueMemberS{Value: userID},
				},
				ScanIndexForward:  aws.Bool(forward),
				ExclusiveStartKey: startKey,
			})
			return err
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it shipmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *ShipmentDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Shipment, error) {
	var out *dynamodb.UpdateItemOutput
	err := r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			UpdateExpression:          aws.String(updateExpr),
			ExpressionAttributeValues: values,
			ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
			ReturnValues:              types.ReturnValueAllNew,
		})
		return err
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Shipment{}, nil
		}
		return entities.Shipment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Shipment{}, nil
	}
	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func toShipmentItem(s entities.Shipment) shipmentItem {
	it := shipmentItem{
		ID:                 s.ID,
		UserID:             s.UserID,
		TrackingNumber:     s.TrackingNumber,
		Status:             string(s.Status),
		OriginAddress:      s.OriginAddress,
		DestinationAddress: s.DestinationAddress,
		PackageWeight:      floatToString(s.PackageWeight),
		PackageDimensions:  s.PackageDimensions,
		ShippingMethod:     string(s.ShippingMethod),
		Cost:               floatToString(s.Cost),
		EstimatedDelivery:  s.EstimatedDelivery.UTC().Format(time.RFC3339Nano),
		CreatedAt:          s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.DeclaredValue > 0 {
		it.DeclaredValue = floatToString(s.DeclaredValue)
	}
	if s.ActualDelivery != nil {
		it.ActualDelivery = s.ActualDelivery.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromShipmentItem(it shipmentItem) entities.Shipment {
	weight, _ := strconv.ParseFloat(it.PackageWeight, 64)
	cost, _ := strconv.ParseFloat(it.Cost, 64)
	estimated, _ := time.Parse(time.RFC3339Nano, it.EstimatedDelivery)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	s := entities.Shipment{
		ID:                 it.ID,
		UserID:             it.UserID,
		TrackingNumber:     it.TrackingNumber,
		Status:             entities.ShipmentStatus(it.Status),
		OriginAddress:      it.OriginAddress,
		DestinationAddress: it.DestinationAddress,
		PackageWeight:      weight,
		PackageDimensions:  it.PackageDimensions,
		ShippingMethod:     entities.ShippingMethod(it.ShippingMethod),
		Cost:               cost,
		EstimatedDelivery:  estimated,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.DeclaredValue != "" {
		s.DeclaredValue, _ = strconv.ParseFloat(it.DeclaredValue, 64)
	}
	if it.ActualDelivery != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ActualDelivery); err == nil {
			s.ActualDelivery = &t
		}
	}
	return s
}
