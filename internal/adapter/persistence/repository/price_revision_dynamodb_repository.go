package repository

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPriceRevisionsTableName = "price_revisions"

	// DynamoDB accepts at most 25 put requests per BatchWriteItem call.
	maxBatchWriteItems  = 25
	maxUnprocessedRetry = 3
)

type priceRevisionItem struct {
	ID        string `dynamodbav:"id"`
	BatchID   string `dynamodbav:"batch_id"`
	PlanCode  string `dynamodbav:"plan_code"`
	ItemID    string `dynamodbav:"item_id"`
	OldPrice  string `dynamodbav:"old_price"`
	NewPrice  string `dynamodbav:"new_price"`
	Note      string `dynamodbav:"note,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PriceRevisionDynamoRepository persists PriceRevision entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plan_code-index (PK: plan_code)

type PriceRevisionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceRevisionRepository = (*PriceRevisionDynamoRepository)(nil)

func NewPriceRevisionDynamoRepository(ddb *dynamodb.Client) *PriceRevisionDynamoRepository {
	return &PriceRevisionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_REVISIONS_TABLE", defaultPriceRevisionsTableName),
	}
}

func (r *PriceRevisionDynamoRepository) CreateBatch(ctx context.Context, revisions []entities.PriceRevision) error {
	for _, chunk := range chunkRevisions(revisions, maxBatchWriteItems) {
		reqs := make([]types.WriteRequest, 0, len(chunk))
		for _, rev := range chunk {
			av, err := attributevalue.MarshalMap(toPriceRevisionItem(rev))
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		if err := r.batchWrite(ctx, reqs); err != nil {
			return err
		}
	}
	return nil
}

func (r *PriceRevisionDynamoRepository) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for attempt := 0; attempt <= maxUnprocessedRetry; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
		}
	}
	return fmt.Errorf("price revisions: %d items left unprocessed", len(pending[r.tableName]))
}

// ListByPlanCode returns the revisions of a plan, oldest first.
func (r *PriceRevisionDynamoRepository) ListByPlanCode(ctx context.Context, planCode string) ([]entities.PriceRevision, error) {
	raws, err := queryByPlanCode(ctx, r.ddb, r.tableName, planCode)
	if err != nil {
		return nil, err
	}

	revs := make([]entities.PriceRevision, 0, len(raws))
	for _, raw := range raws {
		var it priceRevisionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		revs = append(revs, fromPriceRevisionItem(it))
	}
	slices.SortStableFunc(revs, func(a, b entities.PriceRevision) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return revs, nil
}

func chunkRevisions(revs []entities.PriceRevision, size int) [][]entities.PriceRevision {
	var chunks [][]entities.PriceRevision
	for len(revs) > size {
		chunks = append(chunks, revs[:size])
		revs = revs[size:]
	}
	if len(revs) > 0 {
		chunks = append(chunks, revs)
	}
	return chunks
}

func toPriceRevisionItem(p entities.PriceRevision) priceRevisionItem {
	return priceRevisionItem{
		ID:        p.ID,
		BatchID:   p.BatchID,
		PlanCode:  p.PlanCode,
		ItemID:    p.ItemID,
		OldPrice:  floatToString(p.OldPrice),
		NewPrice:  floatToString(p.NewPrice),
		Note:      p.Note,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPriceRevisionItem(it priceRevisionItem) entities.PriceRevision {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	oldPrice, _ := strconv.ParseFloat(it.OldPrice, 64)
	newPrice, _ := strconv.ParseFloat(it.NewPrice, 64)
	return entities.PriceRevision{
		ID:        it.ID,
		BatchID:   it.BatchID,
		PlanCode:  it.PlanCode,
		ItemID:    it.ItemID,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		Note:      it.Note,
		CreatedAt: createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
