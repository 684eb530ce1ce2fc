package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"control_plagas/internal/domain/entities"
	"control_plagas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultNeighborsTableName = "neighbors"

type addressItem struct {
	Street   string `dynamodbav:"street"`
	Number   string `dynamodbav:"number"`
	Locality string `dynamodbav:"locality"`
}

type neighborItem struct {
	ID               string      `dynamodbav:"id"`
	Name             string      `dynamodbav:"name"`
	Address          addressItem `dynamodbav:"address"`
	Neighborhood     string      `dynamodbav:"neighborhood"`
	Phone            string      `dynamodbav:"phone"`
	AreaM2           string      `dynamodbav:"area_m2"`
	IsDelegation     bool        `dynamodbav:"is_delegation"`
	Delegation       string      `dynamodbav:"delegation"`
	Pays             bool        `dynamodbav:"pays"`
	ReceiptNumber    string      `dynamodbav:"receipt_number"`
	NonPaymentReason string      `dynamodbav:"non_payment_reason"`
	CreatedAt        string      `dynamodbav:"created_at"`
	UpdatedAt        string      `dynamodbav:"updated_at"`
}

// NeighborDynamoRepository persists Neighbor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type NeighborDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INeighborRepository = (*NeighborDynamoRepository)(nil)

func NewNeighborDynamoRepository(ddb *dynamodb.Client) *NeighborDynamoRepository {
	return &NeighborDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NEIGHBORS_TABLE", defaultNeighborsTableName),
	}
}

func (r *NeighborDynamoRepository) Create(ctx context.Context, n entities.Neighbor) (entities.Neighbor, error) {
	av, err := attributevalue.MarshalMap(toNeighborItem(n))
	if err != nil {
		return entities.Neighbor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Neighbor{}, err
	}
	return n, nil
}

func (r *NeighborDynamoRepository) GetByID(ctx context.Context, id string) (entities.Neighbor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Neighbor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Neighbor{}, nil
	}

	var it neighborItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Neighbor{}, err
	}
	return fromNeighborItem(it), nil
}

func (r *NeighborDynamoRepository) List(ctx context.Context) ([]entities.Neighbor, error) {
	neighbors := []entities.Neighbor{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []neighborItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			neighbors = append(neighbors, fromNeighborItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return neighbors, nil
}

func (r *NeighborDynamoRepository) Update(ctx context.Context, id string, patch entities.NeighborPatch) (entities.Neighbor, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	setString := func(field string, v *string) {
		if v == nil {
			return
		}
		expr += ", #" + field + " = :" + field
		names["#"+field] = field
		values[":"+field] = &types.AttributeValueMemberS{Value: *v}
	}
	setBool := func(field string, v *bool) {
		if v == nil {
			return
		}
		expr += ", #" + field + " = :" + field
		names["#"+field] = field
		values[":"+field] = &types.AttributeValueMemberBOOL{Value: *v}
	}

	setString("name", patch.Name)
	setString("neighborhood", patch.Neighborhood)
	setString("phone", patch.Phone)
	setString("delegation", patch.Delegation)
	setString("receipt_number", patch.ReceiptNumber)
	setString("non_payment_reason", patch.NonPaymentReason)
	setBool("is_delegation", patch.IsDelegation)
	setBool("pays", patch.Pays)

	if patch.AreaM2 != nil {
		expr += ", #area_m2 = :area_m2"
		names["#area_m2"] = "area_m2"
		values[":area_m2"] = &types.AttributeValueMemberS{Value: floatToString(*patch.AreaM2)}
	}
	if patch.Address != nil {
		av, err := attributevalue.Marshal(addressItem{
			Street:   patch.Address.Street,
			Number:   patch.Address.Number,
			Locality: patch.Address.Locality,
		})
		if err != nil {
			return entities.Neighbor{}, err
		}
		expr += ", #address = :address"
		names["#address"] = "address"
		values[":address"] = av
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Neighbor{}, nil
		}
		return entities.Neighbor{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Neighbor{}, nil
	}

	var it neighborItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Neighbor{}, err
	}
	return fromNeighborItem(it), nil
}

func (r *NeighborDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toNeighborItem(n entities.Neighbor) neighborItem {
	return neighborItem{
		ID:   n.ID,
		Name: n.Name,
		Address: addressItem{
			Street:   n.Address.Street,
			Number:   n.Address.Number,
			Locality: n.Address.Locality,
		},
		Neighborhood:     n.Neighborhood,
		Phone:            n.Phone,
		AreaM2:           floatToString(n.AreaM2),
		IsDelegation:     n.IsDelegation,
		Delegation:       n.Delegation,
		Pays:             n.Pays,
		ReceiptNumber:    n.ReceiptNumber,
		NonPaymentReason: n.NonPaymentReason,
		CreatedAt:        n.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        n.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNeighborItem(it neighborItem) entities.Neighbor {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	areaM2, _ := strconv.ParseFloat(it.AreaM2, 64)
	return entities.Neighbor{
		ID:   it.ID,
		Name: it.Name,
		Address: entities.Address{
			Street:   it.Address.Street,
			Number:   it.Address.Number,
			Locality: it.Address.Locality,
		},
		Neighborhood:     it.Neighborhood,
		Phone:            it.Phone,
		AreaM2:           areaM2,
		IsDelegation:     it.IsDelegation,
		Delegation:       it.Delegation,
		Pays:             it.Pays,
		ReceiptNumber:    it.ReceiptNumber,
		NonPaymentReason: it.NonPaymentReason,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
