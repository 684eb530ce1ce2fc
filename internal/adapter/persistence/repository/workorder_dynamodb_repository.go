package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"control_plagas/internal/domain/entities"
	"control_plagas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	defaultCountersTableName   = "counters"

	// Counter item holding the last assigned numero_orden.
	workOrderCounterID = "work_order_numero_orden"
)

type visitItem struct {
	Date            string   `dynamodbav:"date"`
	Observations    string   `dynamodbav:"observations"`
	ProductQuantity string   `dynamodbav:"product_quantity"`
	ProductType     string   `dynamodbav:"product_type"`
	Technicians     []string `dynamodbav:"technicians"`
}

type workOrderItem struct {
	ID            string      `dynamodbav:"id"`
	NumeroOrden   int64       `dynamodbav:"numero_orden"`
	NeighborID    string      `dynamodbav:"neighbor_id"`
	ServiceType   string      `dynamodbav:"service_type"`
	ProblemType   string      `dynamodbav:"problem_type"`
	Status        string      `dynamodbav:"status"`
	ReceiptNumber string      `dynamodbav:"receipt_number"`
	ScheduledAt   string      `dynamodbav:"scheduled_at"`
	Visits        []visitItem `dynamodbav:"visits"`
	CreatedAt     string      `dynamodbav:"created_at"`
	UpdatedAt     string      `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - work_orders: PK id (string). numero_orden is written once at creation
//     and excluded from every update expression, so it can never change.
//   - counters: PK id (string), N attribute seq. NextNumeroOrden runs an ADD
//     on it, which DynamoDB applies atomically; concurrent creations always
//     observe distinct values.
type WorkOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

// NextNumeroOrden atomically increments and returns the order sequence.
// Deleted orders leave gaps; the counter never goes backwards.
func (r *WorkOrderDynamoRepository) NextNumeroOrden(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: workOrderCounterID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	seq, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no numeric seq", workOrderCounterID)
	}
	return strconv.ParseInt(seq.Value, 10, 64)
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	orders := []entities.WorkOrder{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []workOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromWorkOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	// numero_orden is deliberately never part of this expression.
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	setString := func(field, v string) {
		expr += ", #" + field + " = :" + field
		names["#"+field] = field
		values[":"+field] = &types.AttributeValueMemberS{Value: v}
	}

	if patch.NeighborID != nil {
		setString("neighbor_id", *patch.NeighborID)
	}
	if patch.ServiceType != nil {
		setString("service_type", *patch.ServiceType)
	}
	if patch.ProblemType != nil {
		setString("problem_type", *patch.ProblemType)
	}
	if patch.Status != nil {
		setString("status", string(*patch.Status))
	}
	if patch.ReceiptNumber != nil {
		setString("receipt_number", *patch.ReceiptNumber)
	}
	if patch.ScheduledAt != nil {
		setString("scheduled_at", patch.ScheduledAt.UTC().Format(time.RFC3339Nano))
	}

	return r.updateItem(ctx, id, expr, values, names)
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

// AppendVisit appends through list_append, so two concurrent appends to the
// same order both land; there is no read-modify-write to lose.
func (r *WorkOrderDynamoRepository) AppendVisit(ctx context.Context, id string, v entities.Visit) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	visitAV, err := attributevalue.MarshalMap(toVisitItem(v))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	expr := "SET #visits = list_append(if_not_exists(#visits, :empty), :visit), #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":visit":      &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: visitAV}}},
		":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#visits":     "visits",
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	return r.updateItem(ctx, id, expr, values, names)
}

func (r *WorkOrderDynamoRepository) SetStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	return r.updateItem(ctx, id, expr, values, names)
}

func (r *WorkOrderDynamoRepository) updateItem(
	ctx context.Context,
	id string,
	expr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.WorkOrder, error) {
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
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toVisitItem(v entities.Visit) visitItem {
	technicians := v.Technicians
	if technicians == nil {
		technicians = []string{}
	}
	return visitItem{
		Date:            v.Date.UTC().Format(time.RFC3339Nano),
		Observations:    v.Observations,
		ProductQuantity: floatToString(v.ProductQuantity),
		ProductType:     v.ProductType,
		Technicians:     technicians,
	}
}

func fromVisitItem(it visitItem) entities.Visit {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	qty, _ := strconv.ParseFloat(it.ProductQuantity, 64)
	technicians := it.Technicians
	if technicians == nil {
		technicians = []string{}
	}
	return entities.Visit{
		Date:            date,
		Observations:    it.Observations,
		ProductQuantity: qty,
		ProductType:     it.ProductType,
		Technicians:     technicians,
	}
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	scheduledAt := ""
	if o.ScheduledAt != nil {
		scheduledAt = o.ScheduledAt.UTC().Format(time.RFC3339Nano)
	}
	visits := make([]visitItem, 0, len(o.Visits))
	for _, v := range o.Visits {
		visits = append(visits, toVisitItem(v))
	}
	return workOrderItem{
		ID:            o.ID,
		NumeroOrden:   o.NumeroOrden,
		NeighborID:    o.NeighborID,
		ServiceType:   o.ServiceType,
		ProblemType:   o.ProblemType,
		Status:        string(o.Status),
		ReceiptNumber: o.ReceiptNumber,
		ScheduledAt:   scheduledAt,
		Visits:        visits,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var scheduledAt *time.Time
	if it.ScheduledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ScheduledAt); err == nil {
			scheduledAt = &t
		}
	}

	visits := make([]entities.Visit, 0, len(it.Visits))
	for _, v := range it.Visits {
		visits = append(visits, fromVisitItem(v))
	}

	return entities.WorkOrder{
		ID:            it.ID,
		NumeroOrden:   it.NumeroOrden,
		NeighborID:    it.NeighborID,
		ServiceType:   it.ServiceType,
		ProblemType:   it.ProblemType,
		Status:        entities.WorkOrderStatus(it.Status),
		ReceiptNumber: it.ReceiptNumber,
		ScheduledAt:   scheduledAt,
		Visits:        visits,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
