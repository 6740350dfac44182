package repository

import (
	"context"
	"time"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfilesTableName = "shipping_profiles"

type profileItem struct {
	ID                      string `dynamodbav:"id"`
	FirstName               string `dynamodbav:"first_name"`
	LastName                string `dynamodbav:"last_name"`
	Email                   string `dynamodbav:"email"`
	Phone                   string `dynamodbav:"phone,omitempty"`
	Address                 string `dynamodbav:"address,omitempty"`
	Company                 string `dynamodbav:"company,omitempty"`
	PreferredShippingMethod string `dynamodbav:"preferred_shipping_method,omitempty"`
	AvatarURL               string `dynamodbav:"avatar_url,omitempty"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository stores one profile row per user, keyed by user id.
type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	retry     retryPolicy
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
		retry:     defaultRetryPolicy(),
	}
}

func (r *ProfileDynamoRepository) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
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
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	var out *dynamodb.GetItemOutput
	err := r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: userID},
			},
		})
		return err
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) Update(ctx context.Context, userID string, upd entities.ProfileUpdate) (entities.Profile, error) {
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	set := func(name, value string) {
		expr += ", #" + name + " = :" + name
		vals[":"+name] = &types.AttributeValueMemberS{Value: value}
		names["#"+name] = name
	}
	if upd.FirstName != nil {
		set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		set("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		set("email", *upd.Email)
	}
	if upd.Phone != nil {
		set("phone", *upd.Phone)
	}
	if upd.Address != nil {
		set("address", *upd.Address)
	}
	if upd.Company != nil {
		set("company", *upd.Company)
	}
	if upd.PreferredShippingMethod != nil {
		set("preferred_shipping_method", string(*upd.PreferredShippingMethod))
	}
	if upd.AvatarURL != nil {
		set("avatar_url", *upd.AvatarURL)
	}

	var out *dynamodb.UpdateItemOutput
	err := r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		out, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: userID},
			},
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			UpdateExpression:          aws.String(expr),
			ExpressionAttributeValues: vals,
			ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
			ReturnValues:              types.ReturnValueAllNew,
		})
		return err
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func toProfileItem(p entities.Profile) profileItem {
	return profileItem{
		ID:                      p.ID,
		FirstName:               p.FirstName,
		LastName:                p.LastName,
		Email:                   p.Email,
		Phone:                   p.Phone,
		Address:                 p.Address,
		Company:                 p.Company,
		PreferredShippingMethod: string(p.PreferredShippingMethod),
		AvatarURL:               p.AvatarURL,
		CreatedAt:               p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:               p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Profile{
		ID:                      it.ID,
		FirstName:               it.FirstName,
		LastName:                it.LastName,
		Email:                   it.Email,
		Phone:                   it.Phone,
		Address:                 it.Address,
		Company:                 it.Company,
		PreferredShippingMethod: it.PreferredShippingMethod,
		AvatarURL:               it.AvatarURL,
		CreatedAt:               createdAt,
		UpdatedAt:               updatedAt,
	}
}
