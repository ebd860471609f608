package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/cache"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/clients/acl/digifact"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/httpclient"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/telemetry"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
	"github.com/jsamuelsen11/checkout-fel/mocks"
)

const (
	tokenPath = "/api/login/get_token"
	nitPath   = "/api/SHAREDINFO"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// registry is a fake Digifact server.
type registry struct {
	logins  atomic.Int32
	lookups atomic.Int32

	loginDelay   time.Duration
	loginBody    func() any
	lookupStatus int
	lookupBody   any

	mu        sync.Mutex
	lastQuery map[string]string
	lastAuth  string
	lastLogin digifact.TokenRequestDTO
}

func (reg *registry) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+tokenPath, func(w http.ResponseWriter, r *http.Request) {
		reg.logins.Add(1)
		var body digifact.TokenRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding login body: %v", err)
		}
		reg.mu.Lock()
		reg.lastLogin = body
		reg.mu.Unlock()

		time.Sleep(reg.loginDelay)

		resp := any(map[string]string{
			"Token":      "tok-" + string(rune('0'+reg.logins.Load())),
			"expira_en":  fixedNow.Add(time.Hour).Format("2006-01-02T15:04:05") + ".5",
			"otorgado_a": body.Username,
		})
		if reg.loginBody != nil {
			resp = reg.loginBody()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("GET "+nitPath, func(w http.ResponseWriter, r *http.Request) {
		reg.lookups.Add(1)
		q := r.URL.Query()
		reg.mu.Lock()
		reg.lastQuery = map[string]string{
			"NIT":      q.Get("NIT"),
			"DATA1":    q.Get("DATA1"),
			"DATA2":    q.Get("DATA2"),
			"USERNAME": q.Get("USERNAME"),
		}
		reg.lastAuth = r.Header.Get("Authorization")
		reg.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if reg.lookupStatus != 0 {
			w.WriteHeader(reg.lookupStatus)
		}
		_ = json.NewEncoder(w).Encode(reg.lookupBody)
	})
	return mux
}

func acceptedLookup() any {
	return map[string]any{
		"REQUEST":  []map[string]any{{"Respuesta": 1, "Mensaje": ""}},
		"RESPONSE": []map[string]any{{"NIT": "1234567-8", "NOMBRE": "Acme", "Direccion": "1 Main St"}},
	}
}

func newTestDigifactClient(t *testing.T, reg *registry) (*DigifactClient, *cache.Memory) {
	t.Helper()
	tokens := cache.NewMemory(func() time.Time { return fixedNow })
	return newTestDigifactClientWithCache(t, reg, tokens), tokens
}

func newTestDigifactClientWithCache(t *testing.T, reg *registry, tokens ports.TokenCache, opts ...DigifactOption) *DigifactClient {
	t.Helper()

	srv := httptest.NewServer(reg.handler(t))
	t.Cleanup(srv.Close)

	clientCfg := &config.ClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	hc := httpclient.New(clientCfg, "digifact", nil, logger)

	cfg := config.DigifactConfig{
		TokenPath: tokenPath,
		NITPath:   nitPath,
		TokenSkew: 30 * time.Second,
		Credentials: map[string]config.DigifactCredential{
			"1": {TaxID: "12345678", User: "TESTUSER", Password: "secret"},
		},
	}

	opts = append([]DigifactOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewDigifactClient(hc, tokens, cfg, logger, opts...)
}

func TestDigifactClient_CheckTaxID_Valid(t *testing.T) {
	t.Parallel()

	reg := &registry{lookupBody: acceptedLookup()}
	c, _ := newTestDigifactClient(t, reg)

	got, err := c.CheckTaxID(context.Background(), "1234567-8", "1")
	if err != nil {
		t.Fatalf("CheckTaxID() error = %v", err)
	}

	want := partner.Check{Valid: true, CompanyName: "Acme", Address: "1 Main St"}
	if got != want {
		t.Errorf("CheckTaxID() = %+v, want %+v", got, want)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.lastLogin.Username != "GT.000012345678.TESTUSER" || reg.lastLogin.Password != "secret" {
		t.Errorf("login body = %+v", reg.lastLogin)
	}
	wantQuery := map[string]string{
		"NIT":      "000012345678",
		"DATA1":    "SHARED_GETINFONITcom",
		"DATA2":    "NIT|1234567-8",
		"USERNAME": "TESTUSER",
	}
	for k, v := range wantQuery {
		if reg.lastQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, reg.lastQuery[k], v)
		}
	}
	if reg.lastAuth != "tok-1" {
		t.Errorf("Authorization = %q, want tok-1", reg.lastAuth)
	}
}

func TestDigifactClient_CheckTaxID_Rejected(t *testing.T) {
	t.Parallel()

	reg := &registry{lookupBody: map[string]any{
		"REQUEST": []map[string]any{{"Respuesta": 0, "Mensaje": "not found"}},
	}}
	c, _ := newTestDigifactClient(t, reg)

	got, err := c.CheckTaxID(context.Background(), "999", "1")
	if err != nil {
		t.Fatalf("CheckTaxID() error = %v", err)
	}
	if got.Valid || got.ErrorMessage != "not found" {
		t.Errorf("CheckTaxID() = %+v, want rejection with message", got)
	}
}

func TestDigifactClient_ReusesCachedToken(t *testing.T) {
	t.Parallel()

	reg := &registry{lookupBody: acceptedLookup()}
	c, tokens := newTestDigifactClient(t, reg)

	for range 3 {
		if _, err := c.CheckTaxID(context.Background(), "1234567-8", "1"); err != nil {
			t.Fatalf("CheckTaxID() error = %v", err)
		}
	}

	if n := reg.logins.Load(); n != 1 {
		t.Errorf("logins = %d, want 1", n)
	}
	if tok, err := tokens.Get(context.Background(), "1"); err != nil || tok != "tok-1" {
		t.Errorf("cached token = (%q, %v), want tok-1", tok, err)
	}
}

func TestDigifactClient_ConcurrentRefreshesShareOneLogin(t *testing.T) {
	t.Parallel()

	reg := &registry{lookupBody: acceptedLookup(), loginDelay: 50 * time.Millisecond}
	c, _ := newTestDigifactClient(t, reg)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.CheckTaxID(context.Background(), "1234567-8", "1"); err != nil {
				t.Errorf("CheckTaxID() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if n := reg.logins.Load(); n != 1 {
		t.Errorf("logins = %d, want 1", n)
	}
	if n := reg.lookups.Load(); n != 8 {
		t.Errorf("lookups = %d, want 8", n)
	}
}

func TestDigifactClient_UnknownContext(t *testing.T) {
	t.Parallel()

	reg := &registry{lookupBody: acceptedLookup()}
	c, _ := newTestDigifactClient(t, reg)

	_, err := c.CheckTaxID(context.Background(), "1234567-8", "99")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("CheckTaxID() error = %v, want ErrForbidden", err)
	}
	if reg.logins.Load() != 0 || reg.lookups.Load() != 0 {
		t.Errorf("registry was called for an unknown company")
	}
}

func TestDigifactClient_UnauthorizedLookupEvictsToken(t *testing.T) {
	t.Parallel()

	reg := &registry{
		lookupStatus: http.StatusUnauthorized,
		lookupBody:   map[string]string{"Message": "Authorization has been denied for this request."},
	}
	c, tokens := newTestDigifactClient(t, reg)

	_, err := c.CheckTaxID(context.Background(), "1234567-8", "1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("CheckTaxID() error = %v, want ErrForbidden", err)
	}
	if _, err := tokens.Get(context.Background(), "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("token still cached after 401: %v", err)
	}
}

func TestDigifactClient_ServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	reg := &registry{lookupStatus: http.StatusInternalServerError, lookupBody: map[string]string{}}
	c, _ := newTestDigifactClient(t, reg)

	_, err := c.CheckTaxID(context.Background(), "1234567-8", "1")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("CheckTaxID() error = %v, want ErrUnavailable", err)
	}
}

func TestDigifactClient_LoginWithoutToken(t *testing.T) {
	t.Parallel()

	reg := &registry{
		lookupBody: acceptedLookup(),
		loginBody:  func() any { return map[string]string{"message": "bad credentials"} },
	}
	c, _ := newTestDigifactClient(t, reg)

	_, err := c.CheckTaxID(context.Background(), "1234567-8", "1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("CheckTaxID() error = %v, want ErrForbidden", err)
	}
	if reg.lookups.Load() != 0 {
		t.Error("lookup attempted without a token")
	}
}

func TestDigifactClient_ExpiringTokenIsNotCached(t *testing.T) {
	t.Parallel()

	reg := &registry{
		lookupBody: acceptedLookup(),
		loginBody: func() any {
			return map[string]string{
				"Token":     "short-lived",
				"expira_en": fixedNow.Add(10 * time.Second).Format("2006-01-02T15:04:05"),
			}
		},
	}
	c, tokens := newTestDigifactClient(t, reg)

	if _, err := c.CheckTaxID(context.Background(), "1234567-8", "1"); err != nil {
		t.Fatalf("CheckTaxID() error = %v", err)
	}
	if _, err := tokens.Get(context.Background(), "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("token inside the skew window was cached")
	}
}

func TestDigifactClient_ReadsExpiryInConfiguredZone(t *testing.T) {
	t.Parallel()

	// The registry answers fixedNow+1h as wall-clock time with no offset.
	tests := []struct {
		name    string
		opts    []DigifactOption
		wantTTL time.Duration
	}{
		{name: "default UTC", wantTTL: time.Hour - 30*time.Second},
		{
			name:    "registry six hours behind UTC",
			opts:    []DigifactOption{WithExpiryLocation(time.FixedZone("CST", -6*60*60))},
			wantTTL: 7*time.Hour - 30*time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewMockTokenCache(t)
			tokens.EXPECT().Get(mock.Anything, "1").Return("", domain.ErrNotFound)
			tokens.EXPECT().Set(mock.Anything, "1", "tok-1", tt.wantTTL).Return(nil)

			reg := &registry{lookupBody: acceptedLookup()}
			c := newTestDigifactClientWithCache(t, reg, tokens, tt.opts...)

			if _, err := c.CheckTaxID(context.Background(), "1234567-8", "1"); err != nil {
				t.Fatalf("CheckTaxID() error = %v", err)
			}
		})
	}
}

func TestDigifactClient_CacheFailuresDoNotBlockLookups(t *testing.T) {
	t.Parallel()

	tokens := mocks.NewMockTokenCache(t)
	tokens.EXPECT().Get(mock.Anything, "1").Return("", errors.New("connection reset"))
	tokens.EXPECT().Set(mock.Anything, "1", "tok-1", mock.AnythingOfType("time.Duration")).
		Return(errors.New("connection reset"))

	reg := &registry{lookupBody: acceptedLookup()}
	c := newTestDigifactClientWithCache(t, reg, tokens)

	got, err := c.CheckTaxID(context.Background(), "1234567-8", "1")
	if err != nil {
		t.Fatalf("CheckTaxID() error = %v", err)
	}
	if !got.Valid {
		t.Errorf("CheckTaxID() = %+v, want valid", got)
	}
	if n := reg.logins.Load(); n != 1 {
		t.Errorf("logins = %d, want 1", n)
	}
}

func TestDigifactClient_Health(t *testing.T) {
	t.Parallel()

	c, _ := newTestDigifactClient(t, &registry{})

	if c.Name() != "digifact" {
		t.Errorf("Name() = %q, want digifact", c.Name())
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}

func TestDigifactClient_CountsTokenRefreshes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })
	metrics, err := telemetry.NewMetrics(mp, "checkout-fel")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	reg := &registry{lookupBody: acceptedLookup()}
	c := newTestDigifactClientWithCache(t, reg, cache.NewMemory(func() time.Time { return fixedNow }),
		WithTokenRefreshCounter(metrics.TokenRefreshTotal))

	for range 3 {
		if _, err := c.CheckTaxID(ctx, "1234567-8", "1"); err != nil {
			t.Fatalf("CheckTaxID() error = %v", err)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "digifact.token.refresh.total" {
				continue
			}
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 {
				t.Fatalf("data = %#v, want one int64 sum point", md.Data)
			}
			dp := sum.DataPoints[0]
			if dp.Value != 1 {
				t.Errorf("refreshes = %d, want 1 (token reused)", dp.Value)
			}
			if v, _ := dp.Attributes.Value(attribute.Key("result")); v.AsString() != "success" {
				t.Errorf("result = %q, want success", v.AsString())
			}
			return
		}
	}
	t.Error("digifact.token.refresh.total not recorded")
}
