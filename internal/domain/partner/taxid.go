package partner

import "strings"

// TaxID is a fiscal identifier (NIT/VAT) as typed by the user, trimmed of
// surrounding whitespace.
type TaxID string

// ParseTaxID trims the raw input. The second return value is false when
// nothing is left.
func ParseTaxID(raw string) (TaxID, bool) {
	id := TaxID(strings.TrimSpace(raw))
	return id, id != ""
}

// String implements fmt.Stringer.
func (t TaxID) String() string {
	return string(t)
}
