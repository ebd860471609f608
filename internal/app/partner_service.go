package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen11/checkout-fel/internal/app/busy"
	appctx "github.com/jsamuelsen11/checkout-fel/internal/app/context"
	"github.com/jsamuelsen11/checkout-fel/internal/app/uisession"
	"github.com/jsamuelsen11/checkout-fel/internal/app/vatverify"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.PartnerService = (*PartnerService)(nil)

// PartnerService implements ports.PartnerService: contact editing sessions
// backed by a ports.DraftStore, and tax ID verification through the
// vatverify client.
type PartnerService struct {
	drafts   ports.DraftStore
	verifier *vatverify.Client
	logger   *slog.Logger
}

// NewPartnerService creates a PartnerService.
func NewPartnerService(drafts ports.DraftStore, verifier *vatverify.Client, logger *slog.Logger) *PartnerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PartnerService{drafts: drafts, verifier: verifier, logger: logger}
}

// BeginEdit validates draft and opens its editing session.
func (s *PartnerService) BeginEdit(ctx context.Context, draft partner.ContactDraft) (partner.ContactDraft, error) {
	s.logger.InfoContext(ctx, "opening contact draft", slog.Int64("partner_id", draft.PartnerID))

	if err := draft.Validate(); err != nil {
		return partner.ContactDraft{}, err
	}

	if err := s.drafts.Begin(ctx, draft); err != nil {
		s.logger.ErrorContext(ctx, "failed to open contact draft",
			slog.String("operation", "BeginEdit"),
			slog.Int64("partner_id", draft.PartnerID),
			slog.Any("error", err),
		)
		return partner.ContactDraft{}, fmt.Errorf("opening draft: %w", err)
	}

	return draft, nil
}

// GetDraft returns the draft of an open session.
func (s *PartnerService) GetDraft(ctx context.Context, partnerID int64) (partner.ContactDraft, error) {
	return s.drafts.Get(ctx, partnerID)
}

// DiscardEdit closes the editing session.
func (s *PartnerService) DiscardEdit(ctx context.Context, partnerID int64) error {
	s.logger.InfoContext(ctx, "discarding contact draft", slog.Int64("partner_id", partnerID))
	return s.drafts.Discard(ctx, partnerID)
}

// VerifyTaxID runs one verification against the partner's open draft. The
// merged draft is saved only when the registry accepted the tax ID and
// something changed.
func (s *PartnerService) VerifyTaxID(ctx context.Context, partnerID int64, taxID string, session *partner.SessionContext) (*ports.VerificationReport, error) {
	rc := appctx.ForRequest(ctx)
	key := draftKey(partnerID)

	draft, err := appctx.GetOrFetch(rc, key, func(ctx context.Context) (partner.ContactDraft, error) {
		return s.drafts.Get(ctx, partnerID)
	})
	if err != nil {
		return nil, err
	}

	ui := uisession.New(s.logger)
	working := draft
	outcome := s.verifier.Verify(ctx, vatverify.UI{Notifier: ui, Renderer: ui, Busy: ui}, taxID, &working,
		partner.Scope{Session: session, CompanyID: draft.CompanyID})

	if outcome.Kind == partner.OutcomeVerified && working != draft {
		save := &saveDraftAction{drafts: s.drafts, next: working, prev: draft}
		if err := rc.Stage(key, working, save); err != nil {
			return nil, err
		}
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to save verified draft",
			slog.String("operation", "VerifyTaxID"),
			slog.Int64("partner_id", partnerID),
			slog.Any("error", err),
		)
		return nil, err
	}

	final, err := appctx.GetOrFetch(rc, key, func(ctx context.Context) (partner.ContactDraft, error) {
		return s.drafts.Get(ctx, partnerID)
	})
	if err != nil {
		return nil, err
	}

	return &ports.VerificationReport{
		Outcome:         outcome,
		Draft:           final,
		Notifications:   ui.Notifications(),
		RenderRequested: ui.RenderRequested(),
		Busy:            ui.State() == busy.Busy,
	}, nil
}

func draftKey(partnerID int64) string {
	return "draft:" + strconv.FormatInt(partnerID, 10)
}

// saveDraftAction persists a verified draft and restores the previous one
// on rollback.
type saveDraftAction struct {
	drafts ports.DraftStore
	next   partner.ContactDraft
	prev   partner.ContactDraft
}

var _ domain.Action = (*saveDraftAction)(nil)

func (a *saveDraftAction) Execute(ctx context.Context) error {
	return a.drafts.Save(ctx, a.next)
}

func (a *saveDraftAction) Rollback(ctx context.Context) error {
	return a.drafts.Save(ctx, a.prev)
}

func (a *saveDraftAction) Description() string {
	return fmt.Sprintf("save draft for partner %d", a.next.PartnerID)
}
