package repository

import (
	"testing"
	"time"

	"treatment_planner/internal/domain/entities"
)

func TestChunkRevisions(t *testing.T) {
	revs := make([]entities.PriceRevision, 53)
	chunks := chunkRevisions(revs, maxBatchWriteItems)
	if len(chunks) != 3 || len(chunks[0]) != 25 || len(chunks[2]) != 3 {
		t.Fatalf("unexpected chunks: %d", len(chunks))
	}
	if got := chunkRevisions(nil, maxBatchWriteItems); len(got) != 0 {
		t.Fatalf("expected no chunks, got %d", len(got))
	}
}

func TestPriceRevisionItem_KeepsPrecision(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	rev := entities.PriceRevision{ID: "r1", BatchID: "b1", PlanCode: "PLAN-1", ItemID: "a", OldPrice: 200000, NewPrice: 149999.99, CreatedAt: at}

	it := toPriceRevisionItem(rev)
	if it.NewPrice != "149999.99" || it.OldPrice != "200000" {
		t.Fatalf("unexpected encoded prices: %+v", it)
	}
	if got := fromPriceRevisionItem(it); got != rev {
		t.Fatalf("expected %+v, got %+v", rev, got)
	}
}
