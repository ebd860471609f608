package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/checkout-fel/internal/app/uisession"
	"github.com/jsamuelsen11/checkout-fel/internal/app/vatverify"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

func openDraft() partner.ContactDraft {
	return partner.ContactDraft{PartnerID: 7, CompanyID: 1, Name: "Walk-in", City: "Mixco"}
}

func newPartnerService(t *testing.T) (*PartnerService, *mocks.MockDraftStore, *mocks.MockTaxIDVerifier) {
	t.Helper()
	drafts := mocks.NewMockDraftStore(t)
	verifier := mocks.NewMockTaxIDVerifier(t)
	svc := NewPartnerService(drafts, vatverify.New(verifier, nil), discardLogger())
	return svc, drafts, verifier
}

func TestPartnerService_BeginEdit(t *testing.T) {
	t.Parallel()

	t.Run("valid draft opens a session", func(t *testing.T) {
		t.Parallel()
		svc, drafts, _ := newPartnerService(t)
		drafts.EXPECT().Begin(mock.Anything, openDraft()).Return(nil)

		got, err := svc.BeginEdit(context.Background(), openDraft())
		if err != nil {
			t.Fatalf("BeginEdit() error = %v", err)
		}
		if got != openDraft() {
			t.Errorf("BeginEdit() = %+v", got)
		}
	})

	t.Run("invalid draft is rejected before the store", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newPartnerService(t)

		_, err := svc.BeginEdit(context.Background(), partner.ContactDraft{PartnerID: 0})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("BeginEdit() error = %v, want ErrValidation", err)
		}
	})
}

func TestPartnerService_VerifyTaxID_SavesMergedDraft(t *testing.T) {
	t.Parallel()
	svc, drafts, verifier := newPartnerService(t)

	merged := openDraft()
	merged.Name = "Acme"
	merged.Street = "1 Main St"

	drafts.EXPECT().Get(mock.Anything, int64(7)).Return(openDraft(), nil).Once()
	verifier.EXPECT().CheckTaxID(mock.Anything, "1234567-8", "5").
		Return(partner.Check{Valid: true, CompanyName: "Acme", Address: "1 Main St"}, nil).Once()
	drafts.EXPECT().Save(mock.Anything, merged).Return(nil).Once()

	report, err := svc.VerifyTaxID(context.Background(), 7, "1234567-8",
		&partner.SessionContext{CompanyID: int64Ptr(5)})
	if err != nil {
		t.Fatalf("VerifyTaxID() error = %v", err)
	}
	if report.Outcome.Kind != partner.OutcomeVerified {
		t.Errorf("Outcome = %v, want verified", report.Outcome.Kind)
	}
	if report.Draft != merged {
		t.Errorf("Draft = %+v, want %+v", report.Draft, merged)
	}
	if !report.RenderRequested || report.Busy {
		t.Errorf("RenderRequested = %v Busy = %v, want true false", report.RenderRequested, report.Busy)
	}
}

func TestPartnerService_VerifyTaxID_InvalidDoesNotSave(t *testing.T) {
	t.Parallel()
	svc, drafts, verifier := newPartnerService(t)

	drafts.EXPECT().Get(mock.Anything, int64(7)).Return(openDraft(), nil).Once()
	verifier.EXPECT().CheckTaxID(mock.Anything, "999", "1").
		Return(partner.Check{ErrorMessage: "not found"}, nil).Once()

	report, err := svc.VerifyTaxID(context.Background(), 7, "999", nil)
	if err != nil {
		t.Fatalf("VerifyTaxID() error = %v", err)
	}
	if report.Outcome.Kind != partner.OutcomeInvalidTaxID || report.Outcome.Reason != "not found" {
		t.Errorf("Outcome = %+v", report.Outcome)
	}
	if report.Draft != openDraft() {
		t.Errorf("Draft = %+v, want unchanged", report.Draft)
	}
	drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	var sawError bool
	for _, n := range report.Notifications {
		if n.Kind == uisession.KindError && n.Title == vatverify.TitleVerificationError {
			sawError = true
		}
	}
	if !sawError {
		t.Errorf("Notifications = %+v, want a verification error", report.Notifications)
	}
}

func TestPartnerService_VerifyTaxID_UnchangedDraftIsNotSaved(t *testing.T) {
	t.Parallel()
	svc, drafts, verifier := newPartnerService(t)

	current := openDraft()
	current.Name = "Acme"
	drafts.EXPECT().Get(mock.Anything, int64(7)).Return(current, nil).Once()
	verifier.EXPECT().CheckTaxID(mock.Anything, "1234567-8", "1").
		Return(partner.Check{Valid: true, CompanyName: "Acme"}, nil).Once()

	report, err := svc.VerifyTaxID(context.Background(), 7, "1234567-8", nil)
	if err != nil {
		t.Fatalf("VerifyTaxID() error = %v", err)
	}
	if report.Outcome.Kind != partner.OutcomeVerified {
		t.Errorf("Outcome = %v, want verified", report.Outcome.Kind)
	}
	drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPartnerService_VerifyTaxID_NoSession(t *testing.T) {
	t.Parallel()
	svc, drafts, _ := newPartnerService(t)
	drafts.EXPECT().Get(mock.Anything, int64(9)).Return(partner.ContactDraft{}, domain.ErrNotFound)

	_, err := svc.VerifyTaxID(context.Background(), 9, "1234567-8", nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("VerifyTaxID() error = %v, want ErrNotFound", err)
	}
}

func TestPartnerService_VerifyTaxID_SaveFailure(t *testing.T) {
	t.Parallel()
	svc, drafts, verifier := newPartnerService(t)

	drafts.EXPECT().Get(mock.Anything, int64(7)).Return(openDraft(), nil).Once()
	verifier.EXPECT().CheckTaxID(mock.Anything, mock.Anything, mock.Anything).
		Return(partner.Check{Valid: true, CompanyName: "Acme"}, nil).Once()
	drafts.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrNotFound).Once()

	_, err := svc.VerifyTaxID(context.Background(), 7, "1234567-8", nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("VerifyTaxID() error = %v, want ErrNotFound", err)
	}
}
