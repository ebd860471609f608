package checkout

// Well-known screen names.
const (
	ScreenPayment = "PaymentScreen"
	ScreenOrder   = "OrderScreen"
)

// InvoiceButton is the name of the action that toggles an order's invoicing
// flag.
const InvoiceButton = "InvoiceButton"

// Action is a button a checkout screen exposes.
type Action struct {
	Name  string
	Label string
}
