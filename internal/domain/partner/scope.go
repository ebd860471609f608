package partner

import (
	"strconv"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

// SessionContext describes the point-of-sale session a verification runs in,
// when there is one.
type SessionContext struct {
	CompanyID *int64
}

// Scope carries the optional session and the contact being edited. It is
// what the verification context identifier is resolved from.
type Scope struct {
	Session   *SessionContext
	CompanyID int64
}

// ResolveContextID picks the company the verification applies to: the
// session's company when a session with a company is present, otherwise the
// contact's company.
func ResolveContextID(s Scope) (string, error) {
	if s.Session != nil && s.Session.CompanyID != nil && *s.Session.CompanyID > 0 {
		return strconv.FormatInt(*s.Session.CompanyID, 10), nil
	}
	if s.CompanyID > 0 {
		return strconv.FormatInt(s.CompanyID, 10), nil
	}
	return "", &domain.ValidationError{
		Fields: map[string]string{"company_id": "no session or contact company to verify against"},
	}
}
