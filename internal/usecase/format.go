package usecase

import (
	"fmt"
	"strings"
	"time"

	"treatment_planner/internal/domain/entities"
)

func FormatTotals(res entities.PriceUpdateResult) string {
	return fmt.Sprintf("Total %.2f -> %.2f", res.TotalCostBefore, res.TotalCostAfter)
}

// formatClock normalizes "15:04" or "15:04:05" to "15:04".
func formatClock(v string) (string, error) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid clock time %q", v)
}
