package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	request "treatment_planner/internal/adapter/http/dto/request"
	response "treatment_planner/internal/adapter/http/dto/response"
	"treatment_planner/internal/adapter/http/middleware"
	"treatment_planner/internal/usecase"
	"treatment_planner/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// PlanHandler exposes the treatment plan workflow over HTTP.
type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

// GetPlan godoc
// @Summary      Get a treatment plan
// @Description  Fetches the plan, normalizes statuses and returns progress, banner and allowed actions.
// @Tags         plans
// @Produce      json
// @Param        code                 path    string  true   "Plan code"
// @Param        X-Plan-Capabilities  header  string  false  "edit,approve,edit_pricing,book"
// @Success      200  {object}  usecase.PlanView
// @Failure      404  {object}  pkg.HTTPError
// @Router       /plans/{code} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	view, err := h.usecase.GetPlan(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitForReview godoc
// @Summary  Submit a plan for review
// @Tags     approval
// @Accept   json
// @Produce  json
// @Param    code  path  string                true  "Plan code"
// @Param    body  body  request.NotesRequest  false "Notes"
// @Success  200  {object}  usecase.PlanView
// @Failure  400  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /plans/{code}/submit [post]
func (h *PlanHandler) SubmitForReview(c *gin.Context) {
	var payload request.NotesRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	view, err := h.usecase.SubmitForReview(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c), payload.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Approve godoc
// @Summary  Approve a plan under review
// @Tags     approval
// @Accept   json
// @Produce  json
// @Param    code  path  string                true  "Plan code"
// @Param    body  body  request.NotesRequest  true  "Review notes"
// @Success  200  {object}  usecase.PlanView
// @Failure  403  {object}  pkg.HTTPError
// @Router   /plans/{code}/approve [post]
func (h *PlanHandler) Approve(c *gin.Context) {
	var payload request.NotesRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	view, err := h.usecase.Approve(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c), payload.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Reject godoc
// @Summary  Return a plan for edits
// @Tags     approval
// @Accept   json
// @Produce  json
// @Param    code  path  string                true  "Plan code"
// @Param    body  body  request.NotesRequest  true  "Review notes"
// @Success  200  {object}  usecase.PlanView
// @Failure  403  {object}  pkg.HTTPError
// @Router   /plans/{code}/reject [post]
func (h *PlanHandler) Reject(c *gin.Context) {
	var payload request.NotesRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	view, err := h.usecase.Reject(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c), payload.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddItems godoc
// @Summary  Add emergent items to a phase
// @Tags     items
// @Accept   json
// @Produce  json
// @Param    code     path  string                   true  "Plan code"
// @Param    phaseId  path  string                   true  "Phase id"
// @Param    body     body  request.AddItemsRequest  true  "Items"
// @Success  201  {object}  response.AddItemsResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /plans/{code}/phases/{phaseId}/items [post]
func (h *PlanHandler) AddItems(c *gin.Context) {
	var payload request.AddItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	res, err := h.usecase.AddItems(c.Request.Context(), c.Param("code"), c.Param("phaseId"), middleware.CapabilitiesFrom(c), payload.ToEntities())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAddItemsResult(res))
}

// MoveItem godoc
// @Summary  Move an item in the local phase order
// @Tags     order
// @Accept   json
// @Produce  json
// @Param    code     path  string               true  "Plan code"
// @Param    phaseId  path  string               true  "Phase id"
// @Param    body     body  request.MoveRequest  true  "Move"
// @Success  200  {object}  usecase.ReorderState
// @Router   /plans/{code}/phases/{phaseId}/order/moves [post]
func (h *PlanHandler) MoveItem(c *gin.Context) {
	var payload request.MoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Valid() {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	state, err := h.usecase.MoveItem(c.Request.Context(), c.Param("code"), c.Param("phaseId"), middleware.CapabilitiesFrom(c), payload.ToMove())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResetOrder godoc
// @Summary  Discard the local phase order
// @Tags     order
// @Produce  json
// @Param    code     path  string  true  "Plan code"
// @Param    phaseId  path  string  true  "Phase id"
// @Success  200  {object}  usecase.ReorderState
// @Router   /plans/{code}/phases/{phaseId}/order/reset [post]
func (h *PlanHandler) ResetOrder(c *gin.Context) {
	state, err := h.usecase.ResetOrder(c.Request.Context(), c.Param("code"), c.Param("phaseId"), middleware.CapabilitiesFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveOrder godoc
// @Summary  Save the local phase order
// @Tags     order
// @Produce  json
// @Param    code     path  string  true  "Plan code"
// @Param    phaseId  path  string  true  "Phase id"
// @Success  200  {object}  usecase.ReorderState
// @Failure  409  {object}  pkg.HTTPError
// @Router   /plans/{code}/phases/{phaseId}/order [put]
func (h *PlanHandler) SaveOrder(c *gin.Context) {
	state, err := h.usecase.SaveOrder(c.Request.Context(), c.Param("code"), c.Param("phaseId"), middleware.CapabilitiesFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ToggleSelection godoc
// @Summary  Toggle an item in the booking selection
// @Tags     selection
// @Accept   json
// @Produce  json
// @Param    code  path  string                          true  "Plan code"
// @Param    body  body  request.ToggleSelectionRequest  true  "Item"
// @Success  200  {object}  usecase.SelectionView
// @Router   /plans/{code}/selection/toggle [post]
func (h *PlanHandler) ToggleSelection(c *gin.Context) {
	var payload request.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	view, err := h.usecase.ToggleSelection(c.Request.Context(), c.Param("code"), strings.TrimSpace(payload.ItemID), middleware.CapabilitiesFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary  Clear the booking selection
// @Tags     selection
// @Produce  json
// @Param    code  path  string  true  "Plan code"
// @Success  200  {object}  usecase.SelectionView
// @Router   /plans/{code}/selection [delete]
func (h *PlanHandler) ClearSelection(c *gin.Context) {
	view, err := h.usecase.ClearSelection(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary  Get the booking selection
// @Tags     selection
// @Produce  json
// @Param    code  path  string  true  "Plan code"
// @Success  200  {object}  usecase.SelectionView
// @Router   /plans/{code}/selection [get]
func (h *PlanHandler) GetSelection(c *gin.Context) {
	view, err := h.usecase.GetSelection(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// BookSelection godoc
// @Summary  Hand the selected items to the booking flow
// @Tags     selection
// @Produce  json
// @Param    code  path  string  true  "Plan code"
// @Success  202  {object}  usecase.SelectionView
// @Failure  503  {object}  pkg.HTTPError
// @Router   /plans/{code}/selection/book [post]
func (h *PlanHandler) BookSelection(c *gin.Context) {
	view, err := h.usecase.BookSelection(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, view)
}

// PreviewPrices godoc
// @Summary  Preview a batch of price changes
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    code  path  string                       true  "Plan code"
// @Param    body  body  request.PriceChangesRequest  true  "Changes"
// @Success  200  {object}  usecase.PricePreview
// @Router   /plans/{code}/prices/preview [post]
func (h *PlanHandler) PreviewPrices(c *gin.Context) {
	var payload request.PriceChangesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	preview, err := h.usecase.PreviewPrices(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c), payload.ToEntities())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// CommitPrices godoc
// @Summary  Commit a batch of price changes
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    code  path  string                       true  "Plan code"
// @Param    body  body  request.PriceChangesRequest  true  "Changes"
// @Success  200  {object}  response.PriceCommitResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /plans/{code}/prices [put]
func (h *PlanHandler) CommitPrices(c *gin.Context) {
	var payload request.PriceChangesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	res, err := h.usecase.CommitPrices(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c), payload.ToEntities())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPriceCommit(res))
}

// GenerateSchedule godoc
// @Summary  Generate schedule suggestions for a plan or one phase
// @Tags     schedule
// @Accept   json
// @Produce  json
// @Param    code  path  string                   true  "Plan code"
// @Param    body  body  request.ScheduleRequest  false "Preferences"
// @Success  200  {object}  entities.ScheduleResult
// @Router   /plans/{code}/schedule [post]
func (h *PlanHandler) GenerateSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	res, err := h.usecase.GenerateSchedule(c.Request.Context(), c.Param("code"), payload.PhaseID, middleware.CapabilitiesFrom(c), payload.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SelectSlot godoc
// @Summary  Pick a suggested slot and start its booking
// @Tags     schedule
// @Accept   json
// @Produce  json
// @Param    code  path  string                   true  "Plan code"
// @Param    body  body  request.SlotPickRequest  true  "Pick"
// @Success  202  {object}  response.SlotSelectedResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /plans/{code}/schedule/select [post]
func (h *PlanHandler) SelectSlot(c *gin.Context) {
	var payload request.SlotPickRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	booking, err := h.usecase.SelectSlot(c.Request.Context(), c.Param("code"), middleware.CapabilitiesFrom(c), payload.ToPick())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, response.FromBookingRequest(booking))
}

// ListEvents godoc
// @Summary  List the audit trail of a plan
// @Tags     audit
// @Produce  json
// @Param    code  path  string  true  "Plan code"
// @Success  200  {array}  response.PlanEventResponse
// @Router   /plans/{code}/events [get]
func (h *PlanHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPlanEvents(events))
}

// ListPriceRevisions godoc
// @Summary  List the committed price changes of a plan
// @Tags     audit
// @Produce  json
// @Param    code  path  string  true  "Plan code"
// @Success  200  {array}  response.PriceRevisionResponse
// @Router   /plans/{code}/prices/revisions [get]
func (h *PlanHandler) ListPriceRevisions(c *gin.Context) {
	revs, err := h.usecase.ListPriceRevisions(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPriceRevisions(revs))
}

// bindOptionalJSON accepts an empty body. It writes the error response and
// returns false when a body is present but malformed.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return false
	}
	return true
}

func writeError(c *gin.Context, err error) {
	appErr := mapPlanError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[plan][handler] request failed path=%s request_id=%s err=%v", c.FullPath(), middleware.RequestIDFrom(c), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapPlanError keeps the code and message of plan service errors and maps local
// failures by their handling category.
func mapPlanError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrBookingNotConfigured) {
		return pkg.NewDomainError("BOOKING_UNAVAILABLE", "Booking flow not configured", err, http.StatusServiceUnavailable)
	}
	if appErr, ok := pkg.AsAppError(err); ok {
		return pkg.NewDomainError(appErr.Code, appErr.Message, err, appErr.StatusOrDefault())
	}

	switch usecase.ClassifyError(err) {
	case usecase.KindValidation:
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case usecase.KindPermissionDenied:
		return pkg.NewDomainError("PERMISSION_DENIED", "Permission denied", err, http.StatusForbidden)
	case usecase.KindNotFound:
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case usecase.KindConflict:
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case usecase.KindBusy:
		return pkg.NewDomainError("OPERATION_IN_PROGRESS", "Operation already in progress", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
