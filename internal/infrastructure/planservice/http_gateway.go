package planservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"
	"treatment_planner/pkg"
)

const (
	CodeUnavailable = "PLAN_SERVICE_UNAVAILABLE"
	CodeRemote      = "PLAN_SERVICE_ERROR"

	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

var ErrMissingPlanServiceURL = errors.New("missing PLAN_SERVICE_URL")

// HTTPGateway talks JSON to the remote plan service.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPlanService = (*HTTPGateway)(nil)

func NewHTTPGateway(baseURL string, timeout time.Duration) (*HTTPGateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[plan][gateway] missing PLAN_SERVICE_URL")
		return nil, ErrMissingPlanServiceURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log.Printf("[plan][gateway] plan service client initialized base_url=%s timeout=%s", baseURL, timeout)
	return &HTTPGateway{baseURL: baseURL, client: &http.Client{Timeout: timeout}}, nil
}

func (g *HTTPGateway) GetPlan(ctx context.Context, planCode string) (entities.Plan, error) {
	var out planDTO
	if err := g.do(ctx, http.MethodGet, "/plans/"+url.PathEscape(planCode), nil, &out); err != nil {
		return entities.Plan{}, err
	}
	return toPlan(out), nil
}

func (g *HTTPGateway) SubmitForReview(ctx context.Context, planCode string, notes string) (entities.Plan, error) {
	var out planDTO
	path := "/plans/" + url.PathEscape(planCode) + "/submit"
	if err := g.do(ctx, http.MethodPost, path, submitBody{Notes: notes}, &out); err != nil {
		return entities.Plan{}, err
	}
	return toPlan(out), nil
}

func (g *HTTPGateway) ApproveOrReject(ctx context.Context, planCode string, status entities.ApprovalStatus, notes string) (entities.Plan, error) {
	var out planDTO
	path := "/plans/" + url.PathEscape(planCode) + "/approval"
	if err := g.do(ctx, http.MethodPost, path, approvalBody{ApprovalStatus: status, Notes: notes}, &out); err != nil {
		return entities.Plan{}, err
	}
	return toPlan(out), nil
}

func (g *HTTPGateway) AddItemsToPhase(ctx context.Context, phaseID string, items []entities.NewItem, autoSubmit bool) (entities.AddItemsResult, error) {
	body := addItemsBody{Items: make([]newItemDTO, 0, len(items)), AutoSubmit: autoSubmit}
	for _, it := range items {
		body.Items = append(body.Items, newItemDTO{
			ServiceCode:      it.ServiceCode,
			Name:             it.Name,
			Price:            it.Price,
			EstimatedMinutes: it.EstimatedMinutes,
			Quantity:         it.Quantity,
			Notes:            it.Notes,
		})
	}
	var out addItemsResponse
	if err := g.do(ctx, http.MethodPost, "/phases/"+url.PathEscape(phaseID)+"/items", body, &out); err != nil {
		return entities.AddItemsResult{}, err
	}
	return entities.AddItemsResult{
		Items:            toItems(out.Items),
		Message:          out.Message,
		ApprovalRequired: out.ApprovalWorkflow.ApprovalRequired,
	}, nil
}

func (g *HTTPGateway) ReorderItems(ctx context.Context, phaseID string, itemIDs []string) (entities.ReorderResult, error) {
	var out reorderResponse
	path := "/phases/" + url.PathEscape(phaseID) + "/items/order"
	if err := g.do(ctx, http.MethodPut, path, reorderBody{ItemIDs: itemIDs}, &out); err != nil {
		return entities.ReorderResult{}, err
	}
	return entities.ReorderResult{ItemsReordered: out.ItemsReordered}, nil
}

func (g *HTTPGateway) UpdatePrices(ctx context.Context, planCode string, changes []entities.PriceChange) (entities.PriceUpdateResult, error) {
	body := pricesBody{Items: make([]priceChangeDTO, 0, len(changes))}
	for _, c := range changes {
		body.Items = append(body.Items, priceChangeDTO{ItemID: c.ItemID, NewPrice: c.NewPrice, Note: c.Note})
	}
	var out pricesResponse
	if err := g.do(ctx, http.MethodPut, "/plans/"+url.PathEscape(planCode)+"/prices", body, &out); err != nil {
		return entities.PriceUpdateResult{}, err
	}
	return entities.PriceUpdateResult{
		ItemsUpdated:    out.ItemsUpdated,
		TotalCostBefore: out.TotalCostBefore,
		TotalCostAfter:  out.TotalCostAfter,
	}, nil
}

func (g *HTTPGateway) GenerateSchedule(ctx context.Context, scope entities.ScheduleScope, req entities.AutoScheduleRequest) (entities.ScheduleResult, error) {
	path := "/plans/" + url.PathEscape(scope.PlanID) + "/schedule"
	if scope.PhaseID != "" {
		path = "/phases/" + url.PathEscape(scope.PhaseID) + "/schedule"
	}
	body := scheduleBody{
		PreferredDoctorID: req.PreferredDoctorID,
		PreferredRoomID:   req.PreferredRoomID,
		LookAheadDays:     req.LookAheadDays,
		Force:             req.Force,
	}
	for _, t := range req.PreferredTimes {
		body.PreferredTimes = append(body.PreferredTimes, string(t))
	}
	var out scheduleResponse
	if err := g.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return entities.ScheduleResult{}, err
	}
	return toScheduleResult(out), nil
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[plan][gateway] %s %s transport failed err=%v", method, path, err)
		return pkg.NewDomainError(CodeUnavailable, "plan service unavailable", err, http.StatusBadGateway)
	}
	defer resp.Body.Close()
	log.Printf("[plan][gateway] %s %s status=%d elapsed=%s", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkg.NewDomainError(CodeRemote, "invalid plan service response", err, http.StatusBadGateway)
	}
	return nil
}

// decodeError turns a non-2xx response into an *pkg.AppError carrying the
// service's machine code and the response status.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	code := strings.TrimSpace(body.Code)
	if code == "" {
		code = CodeRemote
	}
	msg := strings.TrimSpace(body.Message)
	if msg == "" {
		msg = strings.TrimSpace(body.Error)
	}
	if msg == "" {
		msg = fmt.Sprintf("plan service returned %d", resp.StatusCode)
	}
	return pkg.NewDomainErrorSimple(code, msg, resp.StatusCode)
}

// isPlanServiceMockEnabled follows the same truthy values as the other mock toggles.
func isPlanServiceMockEnabled(getenv func(string) string) bool {
	return isTruthy(getenv("PLAN_SERVICE_MOCK"))
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
