package repository

import (
	"context"
	"encoding/json"
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
	defaultPaymentsTableName = "shipment_payments"
	paymentsShipmentIDIndex  = "shipment_id-index"
)

type shipmentPaymentItem struct {
	ID              string `dynamodbav:"id"`
	ShipmentID      string `dynamodbav:"shipment_id"`
	Date            string `dynamodbav:"date"`
	Amount          string `dynamodbav:"amount"`
	Status          string `dynamodbav:"status"`
	ProviderPayload string `dynamodbav:"provider_payload,omitempty"`
}

// ShipmentPaymentDynamoRepository persists payment records keyed by the
// provider payment id, with a shipment_id GSI for per-shipment listing.
type ShipmentPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	retry     retryPolicy
}

var _ interfaces.IShipmentPaymentRepository = (*ShipmentPaymentDynamoRepository)(nil)

func NewShipmentPaymentDynamoRepository(ddb *dynamodb.Client) *ShipmentPaymentDynamoRepository {
	return &ShipmentPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPMENT_PAYMENTS_TABLE", defaultPaymentsTableName),
		retry:     defaultRetryPolicy(),
	}
}

func (r *ShipmentPaymentDynamoRepository) Create(ctx context.Context, p entities.ShipmentPayment) (entities.ShipmentPayment, error) {
	av, err := attributevalue.MarshalMap(toShipmentPaymentItem(p))
	if err != nil {
		return entities.ShipmentPayment{}, err
	}

	err = r.retry.do(ctx, func(ctx context.Context) error {
		_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		return err
	})
	if err != nil {
		return entities.ShipmentPayment{}, err
	}
	return p, nil
}

func (r *ShipmentPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ShipmentPayment, error) {
	var out *dynamodb.GetItemOutput
	err := r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		})
		return err
	})
	if err != nil {
		return entities.ShipmentPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShipmentPayment{}, nil
	}

	var it shipmentPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShipmentPayment{}, err
	}
	return fromShipmentPaymentItem(it), nil
}

func (r *ShipmentPaymentDynamoRepository) ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.ShipmentPayment, error) {
	var out *dynamodb.QueryOutput
	err := r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(paymentsShipmentIDIndex),
			KeyConditionExpression: aws.String("shipment_id = :sid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid": &types.AttributeValueMemberS{Value: shipmentID},
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.ShipmentPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shipmentPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromShipmentPaymentItem(it))
	}
	return payments, nil
}

func toShipmentPaymentItem(p entities.ShipmentPayment) shipmentPaymentItem {
	return shipmentPaymentItem{
		ID:              p.ID,
		ShipmentID:      p.ShipmentID,
		Date:            p.Date.UTC().Format(time.RFC3339Nano),
		Amount:          floatToString(p.Amount),
		Status:          string(p.Status),
		ProviderPayload: string(p.ProviderPayloadRaw),
	}
}

func fromShipmentPaymentItem(it shipmentPaymentItem) entities.ShipmentPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	p := entities.ShipmentPayment{
		ID:         it.ID,
		ShipmentID: it.ShipmentID,
		Date:       date,
		Amount:     amount,
		Status:     entities.PaymentStatus(it.Status),
	}
	if it.ProviderPayload != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayload)
		_ = json.Unmarshal(p.ProviderPayloadRaw, &p.ProviderPayload)
	}
	return p
}
