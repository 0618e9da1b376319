package usecase

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/usecase/interfaces"
)

// MaxNotesLength bounds review notes, in characters.
const MaxNotesLength = 1000

// Banner is the workflow message shown above a plan.
type Banner string

const (
	BannerNone                  Banner = ""
	BannerEditableDraft         Banner = "editable_draft"
	BannerAwaitingYourApproval  Banner = "awaiting_your_approval"
	BannerAwaitingOtherApproval Banner = "awaiting_other_approval"
	BannerReturnedForEdit       Banner = "returned_for_edit"
)

// Actions lists what the caller may do with a plan in its current state.
type Actions struct {
	CanSubmit      bool `json:"can_submit"`
	CanApprove     bool `json:"can_approve"`
	CanReject      bool `json:"can_reject"`
	CanAddItems    bool `json:"can_add_items"`
	CanReorder     bool `json:"can_reorder"`
	CanEditPricing bool `json:"can_edit_pricing"`
	CanBook        bool `json:"can_book"`
}

// DeriveBanner selects the workflow banner. REJECTED and a DRAFT carrying review
// notes behave the same and share the "returned" banner.
func DeriveBanner(status entities.ApprovalStatus, hasReviewNotes bool, caps entities.Capabilities) Banner {
	switch status {
	case entities.ApprovalStatusPendingReview:
		if caps.Approve {
			return BannerAwaitingYourApproval
		}
		return BannerAwaitingOtherApproval
	case entities.ApprovalStatusRejected:
		return BannerReturnedForEdit
	case entities.ApprovalStatusApproved:
		return BannerNone
	default:
		if hasReviewNotes {
			return BannerReturnedForEdit
		}
		return BannerEditableDraft
	}
}

// isEditable is true for the states a plan can be edited and (re)submitted from.
func isEditable(status entities.ApprovalStatus) bool {
	return status == entities.ApprovalStatusDraft || status == entities.ApprovalStatusRejected
}

func DeriveActions(plan entities.Plan, caps entities.Capabilities) Actions {
	status := plan.ApprovalStatus
	pending := status == entities.ApprovalStatusPendingReview
	return Actions{
		CanSubmit:      caps.Edit && isEditable(status) && plan.HasSubmittableContent(),
		CanApprove:     caps.Approve && pending,
		CanReject:      caps.Approve && pending,
		CanAddItems:    caps.Edit && !pending,
		CanReorder:     caps.Edit && !pending,
		CanEditPricing: caps.EditPricing && !pending,
		CanBook:        caps.Book && status == entities.ApprovalStatusApproved,
	}
}

func validateNotes(notes string, required bool) (string, error) {
	notes = strings.TrimSpace(notes)
	if required && notes == "" {
		return "", ErrNotesRequired
	}
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return "", ErrNotesTooLong
	}
	return notes, nil
}

// ApprovalController drives submit / approve / reject against the plan service.
type ApprovalController struct {
	service  interfaces.IPlanService
	notifier interfaces.INotifier
	audit    *AuditRecorder
	guard    *OperationGuard
}

func NewApprovalController(service interfaces.IPlanService, notifier interfaces.INotifier, audit *AuditRecorder) *ApprovalController {
	return &ApprovalController{service: service, notifier: notifier, audit: audit, guard: NewOperationGuard()}
}

// SubmitForReview sends a draft for review and re-fetches the plan, since the
// plan service may adjust derived fields on submission.
func (c *ApprovalController) SubmitForReview(ctx context.Context, plan entities.Plan, caps entities.Capabilities, notes string) (entities.Plan, error) {
	release, ok := c.guard.TryAcquire(OpSubmit)
	if !ok {
		return entities.Plan{}, ErrOperationInProgress
	}
	defer release()

	log.Printf("[plan][approval] submit start plan_code=%s status=%s", plan.Code, plan.ApprovalStatus)
	if !caps.Edit {
		return entities.Plan{}, ErrPermissionDenied
	}
	if !isEditable(plan.ApprovalStatus) {
		return entities.Plan{}, ErrInvalidApprovalState
	}
	if !plan.HasSubmittableContent() {
		return entities.Plan{}, ErrEmptyPlan
	}
	notes, err := validateNotes(notes, false)
	if err != nil {
		return entities.Plan{}, err
	}

	if _, err := c.service.SubmitForReview(ctx, plan.Code, notes); err != nil {
		log.Printf("[plan][approval] submit failed plan_code=%s err=%v", plan.Code, err)
		c.notifyFailure(ctx, "Could not submit plan for review", err)
		return entities.Plan{}, err
	}

	fresh, err := c.service.GetPlan(ctx, plan.Code)
	if err != nil {
		log.Printf("[plan][approval] re-fetch after submit failed plan_code=%s err=%v", plan.Code, err)
		return entities.Plan{}, err
	}
	log.Printf("[plan][approval] submit success plan_code=%s status=%s", fresh.Code, fresh.ApprovalStatus)
	c.notifier.Success(ctx, "Plan submitted for review", "")
	c.audit.Record(ctx, fresh, entities.PlanEventSubmitted, caps, notes, nil)
	return fresh, nil
}

func (c *ApprovalController) Approve(ctx context.Context, plan entities.Plan, caps entities.Capabilities, notes string) (entities.Plan, error) {
	return c.review(ctx, OpApprove, plan, caps, entities.ApprovalStatusApproved, notes, false)
}

// Reject returns the plan to its author. Notes are mandatory.
func (c *ApprovalController) Reject(ctx context.Context, plan entities.Plan, caps entities.Capabilities, notes string) (entities.Plan, error) {
	return c.review(ctx, OpReject, plan, caps, entities.ApprovalStatusRejected, notes, true)
}

func (c *ApprovalController) review(
	ctx context.Context,
	op Operation,
	plan entities.Plan,
	caps entities.Capabilities,
	decision entities.ApprovalStatus,
	notes string,
	notesRequired bool,
) (entities.Plan, error) {
	release, ok := c.guard.TryAcquire(op)
	if !ok {
		return entities.Plan{}, ErrOperationInProgress
	}
	defer release()

	log.Printf("[plan][approval] %s start plan_code=%s status=%s", op, plan.Code, plan.ApprovalStatus)
	if !caps.Approve {
		return entities.Plan{}, ErrPermissionDenied
	}
	if plan.ApprovalStatus != entities.ApprovalStatusPendingReview {
		return entities.Plan{}, ErrInvalidApprovalState
	}
	notes, err := validateNotes(notes, notesRequired)
	if err != nil {
		return entities.Plan{}, err
	}

	updated, err := c.service.ApproveOrReject(ctx, plan.Code, decision, notes)
	if err != nil {
		log.Printf("[plan][approval] %s failed plan_code=%s err=%v", op, plan.Code, err)
		c.notifyFailure(ctx, "Could not record review decision", err)
		return entities.Plan{}, err
	}
	log.Printf("[plan][approval] %s success plan_code=%s status=%s", op, updated.Code, updated.ApprovalStatus)

	kind := entities.PlanEventApproved
	message := "Plan approved"
	if decision == entities.ApprovalStatusRejected {
		kind = entities.PlanEventRejected
		message = "Plan returned for changes"
	}
	c.notifier.Success(ctx, message, "")
	c.audit.Record(ctx, updated, kind, caps, notes, nil)
	return updated, nil
}

func (c *ApprovalController) notifyFailure(ctx context.Context, message string, err error) {
	notifyFailure(ctx, c.notifier, message, err)
}

// notifyFailure picks the notification for a failed remote call from its kind.
func notifyFailure(ctx context.Context, notifier interfaces.INotifier, message string, err error) {
	switch ClassifyError(err) {
	case KindPermissionDenied:
		notifier.Error(ctx, message, "You do not have permission for this action")
	case KindNotFound:
		notifier.Error(ctx, message, "The plan changed or no longer exists; reloading")
	case KindConflict:
		notifier.Warning(ctx, message, "The plan was changed by someone else; reloading")
	default:
		notifier.Error(ctx, message, remoteMessage(err))
	}
}
