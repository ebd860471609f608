// Package vatverify runs the tax ID verification flow of the contact form:
// validate the input, call the registry once, and reconcile the answer into
// the contact draft while keeping the user informed.
package vatverify

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// User-facing messages.
const (
	TitleError             = "Error"
	TitleVerificationError = "Verification error"
	TitleConnectionError   = "Connection error"

	MsgEmptyInput   = "Please enter a tax ID before verifying."
	MsgLoading      = "Verifying tax ID…"
	MsgInvalidTaxID = "Invalid tax ID."
	MsgUnavailable  = "Could not verify the tax ID. Try again later."
)

var resultKey = attribute.Key("result")

// UI groups the view hooks a verification drives.
type UI struct {
	Notifier ports.Notifier
	Renderer ports.Renderer
	Busy     ports.BusyIndicator
}

// Option configures a Client.
type Option func(*Client)

// WithResultCounter counts verification outcomes, labelled by result.
func WithResultCounter(c metric.Int64Counter) Option {
	return func(cl *Client) { cl.results = c }
}

// Client verifies tax IDs through a ports.TaxIDVerifier.
type Client struct {
	verifier ports.TaxIDVerifier
	logger   *slog.Logger
	results  metric.Int64Counter
}

// New creates a Client.
func New(verifier ports.TaxIDVerifier, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{verifier: verifier, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Verify checks input against the registry and, when the registry accepts
// it, merges the returned contact data into draft. The draft is left as is
// on every other path. Verify never returns an error: the Outcome carries
// the failure category, and the user has already been told about it.
func (c *Client) Verify(ctx context.Context, ui UI, input string, draft *partner.ContactDraft, scope partner.Scope) partner.Outcome {
	taxID, ok := partner.ParseTaxID(input)
	if !ok {
		ui.Notifier.ShowError(TitleError, MsgEmptyInput)
		return c.finish(ctx, partner.Outcome{Kind: partner.OutcomeEmptyInput})
	}

	ui.Busy.Block()
	defer ui.Busy.Unblock()

	ui.Notifier.ShowLoading(MsgLoading)
	defer ui.Notifier.Dismiss()

	res := c.lookup(ctx, taxID, scope)

	var out partner.Outcome
	switch res.Verdict {
	case partner.VerdictValid:
		out = c.reconcile(ctx, ui, res.Patch, draft)
	case partner.VerdictInvalid:
		reason := res.Reason
		if reason == "" {
			reason = MsgInvalidTaxID
		}
		ui.Notifier.ShowError(TitleVerificationError, reason)
		out = partner.Outcome{Kind: partner.OutcomeInvalidTaxID, Reason: res.Reason}
	default:
		out = partner.Outcome{Kind: partner.OutcomeTransportError}
	}

	if out.Kind == partner.OutcomeTransportError {
		ui.Notifier.ShowError(TitleConnectionError, MsgUnavailable)
	}
	return c.finish(ctx, out)
}

func (c *Client) lookup(ctx context.Context, taxID partner.TaxID, scope partner.Scope) partner.Result {
	contextID, err := partner.ResolveContextID(scope)
	if err != nil {
		c.logger.WarnContext(ctx, "cannot resolve verification context",
			slog.String("operation", "VerifyTaxID"),
			slog.Any("error", err),
		)
		return partner.TransportFailure()
	}

	check, err := c.verifier.CheckTaxID(ctx, taxID.String(), contextID)
	if err != nil {
		c.logger.ErrorContext(ctx, "tax ID lookup failed",
			slog.String("operation", "VerifyTaxID"),
			slog.String("context_id", contextID),
			slog.Any("error", err),
		)
		return partner.TransportFailure()
	}
	return partner.ResultFromCheck(check)
}

// reconcile applies the patch to a copy of the draft and publishes the copy
// only after the merge and the render request both returned. A panic in
// either is reported as a transport error and leaves the draft unchanged.
func (c *Client) reconcile(ctx context.Context, ui UI, p partner.Patch, draft *partner.ContactDraft) (out partner.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.ErrorContext(ctx, "reconciling verification result failed",
				slog.String("operation", "VerifyTaxID"),
				slog.Any("error", fmt.Errorf("panic: %v", r)),
			)
			out = partner.Outcome{Kind: partner.OutcomeTransportError}
		}
	}()

	merged := *draft
	p.ApplyTo(&merged)
	ui.Renderer.RequestRender()

	*draft = merged
	return partner.Outcome{Kind: partner.OutcomeVerified}
}

func (c *Client) finish(ctx context.Context, out partner.Outcome) partner.Outcome {
	c.logger.InfoContext(ctx, "tax ID verification finished",
		slog.String("result", out.Kind.String()),
	)
	if c.results != nil {
		c.results.Add(ctx, 1, metric.WithAttributes(resultKey.String(out.Kind.String())))
	}
	return out
}
