package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"treatment_planner/pkg"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: KindGeneric},
		{name: "busy", err: ErrOperationInProgress, want: KindBusy},
		{name: "wrapped local validation", err: fmt.Errorf("%w: bad", ErrInvalidScheduleRequest), want: KindValidation},
		{name: "local permission", err: ErrPermissionDenied, want: KindPermissionDenied},
		{name: "local conflict", err: ErrDoctorReassignRequired, want: KindConflict},
		{name: "code wins over status", err: pkg.NewDomainErrorSimple(CodeInvalidApprovalState, "x", http.StatusBadRequest), want: KindConflict},
		{name: "empty plan code", err: pkg.NewDomainErrorSimple(CodeEmptyPlan, "x", http.StatusConflict), want: KindValidation},
		{name: "phase not found code", err: pkg.NewDomainErrorSimple(CodePhaseNotFound, "x", http.StatusBadRequest), want: KindNotFound},
		{name: "unknown code 403", err: pkg.NewDomainErrorSimple("NOPE", "x", http.StatusForbidden), want: KindPermissionDenied},
		{name: "unknown code 404", err: pkg.NewDomainErrorSimple("NOPE", "x", http.StatusNotFound), want: KindNotFound},
		{name: "unknown code 409", err: pkg.NewDomainErrorSimple("", "x", http.StatusConflict), want: KindConflict},
		{name: "unknown code 422", err: pkg.NewDomainErrorSimple("", "x", http.StatusUnprocessableEntity), want: KindValidation},
		{name: "unknown code 500", err: pkg.NewDomainErrorSimple("", "x", http.StatusInternalServerError), want: KindGeneric},
		{name: "wrapped remote", err: fmt.Errorf("call: %w", conflictErr()), want: KindConflict},
		{name: "plain error", err: errors.New("boom"), want: KindGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyError(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestRemoteMessage(t *testing.T) {
	if got := remoteMessage(conflictErr()); got != "Phase was modified" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := remoteMessage(errors.New("boom")); got != "boom" {
		t.Fatalf("unexpected message %q", got)
	}
}
