package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/checkout-fel/internal/app/invoiceguard"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.CheckoutService = (*CheckoutService)(nil)

// CheckoutService implements ports.CheckoutService on top of the host's
// order store and screen catalog, both seen through the invoice flag guard.
type CheckoutService struct {
	orders  ports.OrderStore
	screens ports.ScreenCatalog
	guard   *invoiceguard.Guard
	logger  *slog.Logger
}

// NewCheckoutService decorates orders and screens with guard.
func NewCheckoutService(orders ports.OrderStore, screens ports.ScreenCatalog, guard *invoiceguard.Guard, logger *slog.Logger) *CheckoutService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CheckoutService{
		orders:  invoiceguard.NewStore(orders, guard),
		screens: invoiceguard.NewCatalog(screens, guard),
		guard:   guard,
		logger:  logger,
	}
}

// OpenOrder creates a new current order for the partner.
func (s *CheckoutService) OpenOrder(ctx context.Context, partnerID int64, note string) (checkout.OrderView, error) {
	s.logger.InfoContext(ctx, "opening order", slog.Int64("partner_id", partnerID))

	if partnerID < 0 {
		return checkout.OrderView{}, &domain.ValidationError{
			Fields: map[string]string{"partner_id": "must not be negative"},
		}
	}

	o, err := s.orders.NewOrder(ctx, partnerID, note)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to open order",
			slog.String("operation", "OpenOrder"),
			slog.Int64("partner_id", partnerID),
			slog.Any("error", err),
		)
		return checkout.OrderView{}, fmt.Errorf("creating order: %w", err)
	}

	return o.View(), nil
}

// CurrentOrder returns the active order.
func (s *CheckoutService) CurrentOrder(ctx context.Context) (checkout.OrderView, error) {
	o, ok := s.orders.CurrentOrder(ctx)
	if !ok {
		return checkout.OrderView{}, fmt.Errorf("current order: %w", domain.ErrNotFound)
	}
	return o.View(), nil
}

// GetOrder returns an order by ID.
func (s *CheckoutService) GetOrder(ctx context.Context, id string) (checkout.OrderView, error) {
	o, err := s.orders.Order(ctx, id)
	if err != nil {
		return checkout.OrderView{}, err
	}
	return o.View(), nil
}

// SetMustInvoice writes the invoicing flag through the guard.
func (s *CheckoutService) SetMustInvoice(ctx context.Context, id string, requested bool) (checkout.OrderView, error) {
	s.logger.InfoContext(ctx, "setting invoicing flag",
		slog.String("order_id", id),
		slog.Bool("requested", requested),
	)

	o, err := s.orders.Order(ctx, id)
	if err != nil {
		return checkout.OrderView{}, err
	}

	s.guard.AttemptSet(ctx, o, requested)
	return o.View(), nil
}

// ToggleMustInvoice forwards the host's toggle, which the guard swallows.
func (s *CheckoutService) ToggleMustInvoice(ctx context.Context, id string) (checkout.OrderView, error) {
	o, err := s.orders.Order(ctx, id)
	if err != nil {
		return checkout.OrderView{}, err
	}

	o.ToggleMustInvoice()
	return o.View(), nil
}

// EnterScreen runs the activation hooks of the named screen and returns the
// current order, or nil when there is none.
func (s *CheckoutService) EnterScreen(ctx context.Context, screen string) (*checkout.OrderView, error) {
	sc, err := s.screens.Screen(screen)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "entering screen", slog.String("screen", sc.Name()))

	if sc.Name() == checkout.ScreenPayment {
		s.guard.OnPaymentScreenEnter(ctx, s.orders)
	}

	o, ok := s.orders.CurrentOrder(ctx)
	if !ok {
		return nil, nil
	}
	v := o.View()
	return &v, nil
}

// ScreenActions returns the named screen's visible actions.
func (s *CheckoutService) ScreenActions(_ context.Context, screen string) ([]checkout.Action, error) {
	sc, err := s.screens.Screen(screen)
	if err != nil {
		return nil, err
	}
	return sc.Actions(), nil
}
