package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

// TaxIDVerifier is the client port for the external tax ID registry.
// Implemented by the ACL adapter; called by the verification client.
type TaxIDVerifier interface {
	// CheckTaxID looks up taxID in the registry on behalf of the company
	// identified by contextID. A semantic rejection comes back as a Check
	// with Valid=false and an ErrorMessage; transport failures come back as
	// an error.
	CheckTaxID(ctx context.Context, taxID, contextID string) (partner.Check, error)
}

// TokenCache stores registry access tokens between calls.
type TokenCache interface {
	// Get returns the cached value for key.
	// Returns domain.ErrNotFound if there is no live entry.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete evicts key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
