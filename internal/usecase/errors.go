package usecase

import (
	"errors"
	"net/http"
	"treatment_planner/pkg"
)

var (
	ErrInvalidPlanCode        = errors.New("invalid plan code")
	ErrInvalidPhaseID         = errors.New("invalid phase id")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrInvalidApprovalState   = errors.New("operation not allowed in current approval state")
	ErrEmptyPlan              = errors.New("plan has no phase with items")
	ErrNotesRequired          = errors.New("notes are required")
	ErrNotesTooLong           = errors.New("notes too long")
	ErrOperationInProgress    = errors.New("operation already in progress")
	ErrPhaseNotFound          = errors.New("phase not found")
	ErrItemNotFound           = errors.New("item not found")
	ErrItemNotBookable        = errors.New("item not ready for booking")
	ErrPlanNotApproved        = errors.New("plan not approved")
	ErrEmptySelection         = errors.New("no items selected")
	ErrInvalidMove            = errors.New("invalid move")
	ErrNoOrderChanges         = errors.New("no order changes to save")
	ErrNoPriceChanges         = errors.New("no price changes")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrNoItemsToAdd           = errors.New("no items to add")
	ErrInvalidNewItem         = errors.New("invalid item")
	ErrInvalidScheduleRequest = errors.New("invalid schedule request")
	ErrSuggestionNotFound     = errors.New("no schedule suggestion for item")
	ErrSlotNotFound           = errors.New("slot not found")
	ErrSlotUnavailable        = errors.New("slot not available")
	ErrDoctorReassignRequired = errors.New("doctor reassignment required before booking")
	ErrBookingNotConfigured   = errors.New("booking flow not configured")
)

// ErrorKind is the handling category of a failure.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindValidation
	KindPermissionDenied
	KindNotFound
	KindConflict
	KindBusy
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindBusy:
		return "busy"
	default:
		return "generic"
	}
}

// Machine codes sent by the plan service in error bodies.
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodePermissionDenied       = "PERMISSION_DENIED"
	CodePlanNotFound           = "PLAN_NOT_FOUND"
	CodePhaseNotFound          = "PHASE_NOT_FOUND"
	CodeItemNotFound           = "ITEM_NOT_FOUND"
	CodeInvalidApprovalState   = "INVALID_APPROVAL_STATE"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
	CodeEmptyPlan              = "PLAN_HAS_NO_ITEMS"
)

var remoteCodeKinds = map[string]ErrorKind{
	CodeValidation:             KindValidation,
	CodeEmptyPlan:              KindValidation,
	CodePermissionDenied:       KindPermissionDenied,
	CodePlanNotFound:           KindNotFound,
	CodePhaseNotFound:          KindNotFound,
	CodeItemNotFound:           KindNotFound,
	CodeInvalidApprovalState:   KindConflict,
	CodeConcurrentModification: KindConflict,
}

// ClassifyError dispatches on the remote machine code first and falls back to the
// HTTP status. Local sentinel errors are classified directly.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindGeneric
	}
	switch {
	case errors.Is(err, ErrOperationInProgress):
		return KindBusy
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, ErrPhaseNotFound), errors.Is(err, ErrItemNotFound), errors.Is(err, ErrSuggestionNotFound), errors.Is(err, ErrSlotNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidApprovalState), errors.Is(err, ErrItemNotBookable), errors.Is(err, ErrPlanNotApproved),
		errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrDoctorReassignRequired):
		return KindConflict
	case errors.Is(err, ErrInvalidPlanCode), errors.Is(err, ErrInvalidPhaseID), errors.Is(err, ErrEmptyPlan),
		errors.Is(err, ErrNotesRequired), errors.Is(err, ErrNotesTooLong), errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrInvalidMove), errors.Is(err, ErrNoOrderChanges), errors.Is(err, ErrNoPriceChanges),
		errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrNoItemsToAdd), errors.Is(err, ErrInvalidNewItem),
		errors.Is(err, ErrInvalidScheduleRequest):
		return KindValidation
	}

	appErr, ok := pkg.AsAppError(err)
	if !ok {
		return KindGeneric
	}
	if kind, ok := remoteCodeKinds[appErr.Code]; ok {
		return kind
	}
	switch appErr.HTTPStatus {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusForbidden:
		return KindPermissionDenied
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindGeneric
	}
}

// remoteMessage returns the human-readable message of a remote error, or the raw
// error text.
func remoteMessage(err error) string {
	if appErr, ok := pkg.AsAppError(err); ok && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
