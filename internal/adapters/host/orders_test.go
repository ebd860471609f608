package host

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestOrderStore() *OrderStore {
	return NewOrderStore(func() time.Time { return testNow })
}

func TestOrderStore_NewOrderBecomesCurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestOrderStore()

	_, ok := s.CurrentOrder(ctx)
	assert.False(t, ok, "empty store has no current order")

	first, err := s.NewOrder(ctx, 7, "")
	require.NoError(t, err)
	second, err := s.NewOrder(ctx, 8, "table 4")
	require.NoError(t, err)

	cur, ok := s.CurrentOrder(ctx)
	require.True(t, ok)
	assert.Equal(t, second.OrderID(), cur.OrderID())
	assert.NotEqual(t, first.OrderID(), second.OrderID())

	v := cur.View()
	assert.Equal(t, "Order 0002", v.Name)
	assert.Equal(t, int64(8), v.PartnerID)
	assert.Equal(t, "table 4", v.Note)
	assert.Equal(t, testNow, v.CreatedAt)
	assert.False(t, v.MustInvoice, "host default is not invoiced")
}

func TestOrderStore_OrderLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestOrderStore()

	o, err := s.NewOrder(ctx, 7, "")
	require.NoError(t, err)

	o.SetMustInvoice(true)

	got, err := s.Order(ctx, o.OrderID())
	require.NoError(t, err)
	assert.True(t, got.MustInvoice(), "writes through one handle are visible through another")

	_, err = s.Order(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStore_RejectsNegativePartner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestOrderStore()

	_, err := s.NewOrder(ctx, -1, "")
	require.ErrorIs(t, err, domain.ErrValidation)

	o, err := s.NewOrder(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "Order 0001", o.View().Name, "failed creation does not consume a sequence number")
}

func TestOrderStore_ConcurrentToggles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestOrderStore()

	o, err := s.NewOrder(ctx, 7, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.ToggleMustInvoice()
		}()
	}
	wg.Wait()

	assert.False(t, o.MustInvoice(), "an even number of toggles restores the flag")
}
