package partner

// Check is the registry's answer for one tax ID. Empty strings mean the
// registry did not provide the value.
type Check struct {
	Valid        bool
	CompanyName  string
	Address      string
	City         string
	CountryID    string
	ErrorMessage string
}

// Verdict discriminates a Result.
type Verdict int

const (
	VerdictValid Verdict = iota + 1
	VerdictInvalid
	VerdictTransportError
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictInvalid:
		return "invalid"
	case VerdictTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Patch holds the contact fields a valid check provides. Nil fields are left
// untouched when the patch is applied.
type Patch struct {
	CompanyName *string
	Street      *string
	City        *string
	CountryID   *string
}

// Result is the outcome of one registry round trip. Patch is meaningful only
// for VerdictValid and Reason only for VerdictInvalid.
type Result struct {
	Verdict Verdict
	Patch   Patch
	Reason  string
}

// ResultFromCheck classifies a registry answer.
func ResultFromCheck(c Check) Result {
	if !c.Valid {
		return Result{Verdict: VerdictInvalid, Reason: c.ErrorMessage}
	}
	return Result{
		Verdict: VerdictValid,
		Patch: Patch{
			CompanyName: optional(c.CompanyName),
			Street:      optional(c.Address),
			City:        optional(c.City),
			CountryID:   optional(c.CountryID),
		},
	}
}

// TransportFailure is the Result for a call that never produced an answer.
func TransportFailure() Result {
	return Result{Verdict: VerdictTransportError}
}

// ApplyTo overwrites the draft fields present in the patch and reports
// whether anything was provided. Applying the same patch twice yields the
// same draft.
func (p Patch) ApplyTo(d *ContactDraft) bool {
	applied := false
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			applied = true
		}
	}

	set(&d.Name, p.CompanyName)
	set(&d.Street, p.Street)
	set(&d.City, p.City)
	set(&d.CountryID, p.CountryID)

	return applied
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
