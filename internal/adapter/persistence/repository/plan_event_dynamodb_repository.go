package repository

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPlanEventsTableName = "plan_events"
	planCodeIndex              = "plan_code-index"
)

type planEventItem struct {
	ID             string `dynamodbav:"id"`
	PlanCode       string `dynamodbav:"plan_code"`
	Kind           string `dynamodbav:"kind"`
	ApprovalStatus string `dynamodbav:"approval_status"`
	CapEdit        bool   `dynamodbav:"cap_edit"`
	CapApprove     bool   `dynamodbav:"cap_approve"`
	CapEditPricing bool   `dynamodbav:"cap_edit_pricing"`
	CapBook        bool   `dynamodbav:"cap_book"`
	Notes          string `dynamodbav:"notes,omitempty"`
	PayloadRaw     string `dynamodbav:"payload_raw,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// PlanEventDynamoRepository persists PlanEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plan_code-index (PK: plan_code)

type PlanEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanEventRepository = (*PlanEventDynamoRepository)(nil)

func NewPlanEventDynamoRepository(ddb *dynamodb.Client) *PlanEventDynamoRepository {
	return &PlanEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLAN_EVENTS_TABLE", defaultPlanEventsTableName),
	}
}

func (r *PlanEventDynamoRepository) Create(ctx context.Context, e entities.PlanEvent) (entities.PlanEvent, error) {
	av, err := attributevalue.MarshalMap(toPlanEventItem(e))
	if err != nil {
		return entities.PlanEvent{}, err
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
		return entities.PlanEvent{}, err
	}
	return e, nil
}

// ListByPlanCode returns the events of a plan, oldest first.
func (r *PlanEventDynamoRepository) ListByPlanCode(ctx context.Context, planCode string) ([]entities.PlanEvent, error) {
	raws, err := queryByPlanCode(ctx, r.ddb, r.tableName, planCode)
	if err != nil {
		return nil, err
	}

	events := make([]entities.PlanEvent, 0, len(raws))
	for _, raw := range raws {
		var it planEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromPlanEventItem(it))
	}
	slices.SortStableFunc(events, func(a, b entities.PlanEvent) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return events, nil
}

// queryByPlanCode reads every page of the plan_code GSI.
func queryByPlanCode(ctx context.Context, ddb *dynamodb.Client, table, planCode string) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(planCodeIndex),
		KeyConditionExpression: aws.String("plan_code = :pc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pc": &types.AttributeValueMemberS{Value: planCode},
		},
	})

	var out []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func toPlanEventItem(e entities.PlanEvent) planEventItem {
	return planEventItem{
		ID:             e.ID,
		PlanCode:       e.PlanCode,
		Kind:           string(e.Kind),
		ApprovalStatus: string(e.ApprovalStatus),
		CapEdit:        e.Capabilities.Edit,
		CapApprove:     e.Capabilities.Approve,
		CapEditPricing: e.Capabilities.EditPricing,
		CapBook:        e.Capabilities.Book,
		Notes:          e.Notes,
		PayloadRaw:     string(e.Payload),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPlanEventItem(it planEventItem) entities.PlanEvent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var payload json.RawMessage
	if it.PayloadRaw != "" {
		payload = json.RawMessage(it.PayloadRaw)
	}
	return entities.PlanEvent{
		ID:             it.ID,
		PlanCode:       it.PlanCode,
		Kind:           entities.PlanEventKind(it.Kind),
		ApprovalStatus: entities.NormalizeApprovalStatus(it.ApprovalStatus),
		Capabilities: entities.Capabilities{
			Edit:        it.CapEdit,
			Approve:     it.CapApprove,
			EditPricing: it.CapEditPricing,
			Book:        it.CapBook,
		},
		Notes:     it.Notes,
		Payload:   payload,
		CreatedAt: createdAt,
	}
}
