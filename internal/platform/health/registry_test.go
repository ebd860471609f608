package health_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/health"
	"github.com/jsamuelsen11/checkout-fel/mocks"
)

// funcChecker adapts a function for tests that need real blocking.
type funcChecker struct {
	name string
	fn   func(ctx context.Context) error
}

func (f funcChecker) Name() string                          { return f.name }
func (f funcChecker) HealthCheck(ctx context.Context) error { return f.fn(ctx) }

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("dial tcp 10.0.0.5:6379: connection refused")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "no checkers",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "digifact", nil), checker(t, "token-cache", nil)}
			},
			want: map[string]error{"digifact": nil, "token-cache": nil},
		},
		{
			name: "token cache down",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "digifact", nil), checker(t, "token-cache", refused)}
			},
			want: map[string]error{"digifact": nil, "token-cache": refused},
		},
		{
			name: "duplicate name keeps last registered",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "token-cache", refused), checker(t, "token-cache", nil)}
			},
			want: map[string]error{"token-cache": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	type probeKey struct{}
	ctx := context.WithValue(context.Background(), probeKey{}, "readiness")

	var seen any
	r := health.New()
	r.Register(funcChecker{name: "digifact", fn: func(ctx context.Context) error {
		seen = ctx.Value(probeKey{})
		return nil
	}})

	r.CheckAll(ctx)
	assert.Equal(t, "readiness", seen)
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	t.Parallel()

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(funcChecker{name: "token-cache", fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	start := time.Now()
	got := r.CheckAll(context.Background())

	assert.ErrorIs(t, got["token-cache"], context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCheckAll_PanicIsFailure(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(funcChecker{name: "digifact", fn: func(context.Context) error { panic("nil breaker") }})
	r.Register(funcChecker{name: "token-cache", fn: func(context.Context) error { return nil }})

	got := r.CheckAll(context.Background())

	require.Error(t, got["digifact"])
	assert.Contains(t, got["digifact"].Error(), "nil breaker")
	assert.NoError(t, got["token-cache"])
}

func TestCheckAll_ParallelismLimit(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	slow := func(context.Context) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return nil
	}

	r := health.New(health.WithParallelism(2))
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		r.Register(funcChecker{name: name, fn: slow})
	}

	got := r.CheckAll(context.Background())

	assert.Len(t, got, 5)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestCheckAll_ChecksRunConcurrently(t *testing.T) {
	t.Parallel()

	const n = 4
	var arrived sync.WaitGroup
	arrived.Add(n)
	rendezvous := func(ctx context.Context) error {
		arrived.Done()
		done := make(chan struct{})
		go func() { arrived.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New(health.WithParallelism(n), health.WithCheckTimeout(time.Second))
	for _, name := range []string{"a", "b", "c", "d"} {
		r.Register(funcChecker{name: name, fn: rendezvous})
	}

	for name, err := range r.CheckAll(context.Background()) {
		assert.NoError(t, err, name)
	}
}

func TestRegister_ConcurrentWithCheckAll(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(funcChecker{name: string(rune('a' + i)), fn: func(context.Context) error { return nil }})
		}()
		go func() {
			defer wg.Done()
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 20)
}
