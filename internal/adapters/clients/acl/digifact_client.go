package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/clients/acl/digifact"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/httpclient"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/telemetry"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.TaxIDVerifier = (*DigifactClient)(nil)

// DigifactClient is the outbound adapter for the Digifact tax ID registry.
// It implements [ports.TaxIDVerifier].
//
// Every lookup is made on behalf of one company, selected by the context ID.
// Access tokens are cached per company in a [ports.TokenCache] until shortly
// before they expire; concurrent refreshes for the same company share one
// login call.
type DigifactClient struct {
	req     *Requester
	cache   ports.TokenCache
	cfg     config.DigifactConfig
	logger  *slog.Logger
	logins  singleflight.Group
	refresh metric.Int64Counter // nil: not recorded

	now      func() time.Time
	location *time.Location
}

// DigifactOption configures a DigifactClient.
type DigifactOption func(*DigifactClient)

// WithClock replaces the time source used for token expiry.
func WithClock(now func() time.Time) DigifactOption {
	return func(c *DigifactClient) { c.now = now }
}

// WithTokenRefreshCounter counts logins by result ("success" or "failure").
func WithTokenRefreshCounter(c metric.Int64Counter) DigifactOption {
	return func(d *DigifactClient) { d.refresh = c }
}

// WithExpiryLocation sets the zone the registry's zoneless expiry
// timestamps are read in. Defaults to UTC.
func WithExpiryLocation(loc *time.Location) DigifactOption {
	return func(c *DigifactClient) { c.location = loc }
}

// NewDigifactClient creates a DigifactClient sending requests through client.
func NewDigifactClient(client *httpclient.Client, cache ports.TokenCache, cfg config.DigifactConfig, logger *slog.Logger, opts ...DigifactOption) *DigifactClient {
	c := &DigifactClient{
		req:      NewRequester(client, logger),
		cache:    cache,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckTaxID looks up taxID on behalf of the company identified by
// contextID. Registry rejections come back as a Check with Valid=false;
// transport, authentication and decoding failures come back as errors.
func (c *DigifactClient) CheckTaxID(ctx context.Context, taxID, contextID string) (partner.Check, error) {
	cred, ok := c.cfg.Credentials[contextID]
	if !ok {
		return partner.Check{}, fmt.Errorf("no registry credentials for company %s: %w", contextID, domain.ErrForbidden)
	}

	token, err := c.token(ctx, contextID, cred)
	if err != nil {
		return partner.Check{}, err
	}

	query := url.Values{}
	query.Set("NIT", digifact.PadTaxID(cred.TaxID))
	query.Set("DATA1", digifact.LookupOperation)
	query.Set("DATA2", digifact.LookupSubject(taxID))
	query.Set("USERNAME", cred.User)

	var dto digifact.LookupResponseDTO
	err = c.req.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   c.cfg.NITPath,
		Query:  query,
		Header: http.Header{"Authorization": []string{token}},
		Out:    &dto,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.evict(ctx, contextID)
		}
		return partner.Check{}, fmt.Errorf("looking up tax ID: %w", err)
	}

	return digifact.ToCheck(dto), nil
}

// token returns a cached access token for contextID or logs in for a new one.
func (c *DigifactClient) token(ctx context.Context, contextID string, cred config.DigifactCredential) (string, error) {
	if tok, err := c.cache.Get(ctx, contextID); err == nil {
		return tok, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		c.logger.WarnContext(ctx, "token cache read failed",
			slog.String("operation", "CheckTaxID"),
			slog.String("context_id", contextID),
			slog.Any("error", err),
		)
	}

	v, err, _ := c.logins.Do(contextID, func() (any, error) {
		tok, err := c.login(ctx, contextID, cred)
		c.countRefresh(ctx, err)
		return tok, err
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *DigifactClient) login(ctx context.Context, contextID string, cred config.DigifactCredential) (string, error) {
	c.logger.InfoContext(ctx, "requesting registry token", slog.String("context_id", contextID))

	var dto digifact.TokenResponseDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   c.cfg.TokenPath,
		Body: digifact.TokenRequestDTO{
			Username: digifact.LoginUsername(cred.TaxID, cred.User),
			Password: cred.Password,
		},
		Out:        &dto,
		Replayable: true,
	})
	if err != nil {
		return "", fmt.Errorf("requesting registry token: %w", err)
	}
	if dto.Token == "" {
		return "", fmt.Errorf("registry login returned no token (%s): %w", dto.Message, domain.ErrForbidden)
	}

	expiresAt, err := digifact.ParseExpiry(dto.ExpiresAt, c.location)
	if err != nil {
		c.logger.WarnContext(ctx, "registry token expiry unreadable, not caching",
			slog.String("context_id", contextID),
			slog.Any("error", err),
		)
		return dto.Token, nil
	}

	ttl := expiresAt.Sub(c.now()) - c.cfg.TokenSkew
	if ttl <= 0 {
		return dto.Token, nil
	}
	if err := c.cache.Set(ctx, contextID, dto.Token, ttl); err != nil {
		c.logger.WarnContext(ctx, "token cache write failed",
			slog.String("context_id", contextID),
			slog.Any("error", err),
		)
	}
	return dto.Token, nil
}

func (c *DigifactClient) countRefresh(ctx context.Context, err error) {
	if c.refresh == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.refresh.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

func (c *DigifactClient) evict(ctx context.Context, contextID string) {
	if err := c.cache.Delete(ctx, contextID); err != nil {
		c.logger.WarnContext(ctx, "token cache evict failed",
			slog.String("context_id", contextID),
			slog.Any("error", err),
		)
	}
}

// Name returns the identifier used in the health registry. It matches the
// service name of the underlying httpclient.Client.
func (c *DigifactClient) Name() string {
	return "digifact"
}

// HealthCheck reports the registry's availability from the circuit breaker
// state. No network call is made.
func (c *DigifactClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
