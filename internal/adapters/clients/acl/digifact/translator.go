package digifact

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

// Query parameter values the lookup endpoint expects.
const (
	LookupOperation = "SHARED_GETINFONITcom"
	countryPrefix   = "GT"
	taxIDWidth      = 12
)

// MsgNoRegistryInfo is the rejection reason when the registry answers
// without a verdict or a taxpayer record.
const MsgNoRegistryInfo = "tax ID has no registry information"

// PadTaxID left-pads a company tax ID with zeros to the registry's width.
func PadTaxID(taxID string) string {
	taxID = strings.TrimSpace(taxID)
	if len(taxID) >= taxIDWidth {
		return taxID
	}
	return strings.Repeat("0", taxIDWidth-len(taxID)) + taxID
}

// LoginUsername builds the registry login name: GT.<padded tax ID>.<user>.
func LoginUsername(companyTaxID, user string) string {
	return fmt.Sprintf("%s.%s.%s", countryPrefix, PadTaxID(companyTaxID), user)
}

// LookupSubject builds the DATA2 parameter for a tax ID lookup.
func LookupSubject(taxID string) string {
	return "NIT|" + taxID
}

// ParseExpiry parses the login response's expiry timestamp. Fractional
// seconds are dropped and timestamps without a zone are read in loc.
func ParseExpiry(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}

	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.Replace(raw, " ", "T", 1)

	t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing token expiry %q: %w", raw, err)
	}
	return t, nil
}

// ToCheck converts a lookup response into a domain Check.
func ToCheck(dto LookupResponseDTO) partner.Check {
	if dto.Message != nil {
		return partner.Check{ErrorMessage: *dto.Message}
	}

	if len(dto.Request) > 0 && dto.Request[0].Respuesta.Rejected() {
		return partner.Check{ErrorMessage: dto.Request[0].Mensaje}
	}

	if len(dto.Response) > 0 && strings.TrimSpace(dto.Response[0].NIT) != "" {
		rec := dto.Response[0]
		return partner.Check{
			Valid:       true,
			CompanyName: strings.TrimSpace(rec.Nombre),
			Address:     strings.TrimSpace(rec.Direccion),
		}
	}

	return partner.Check{ErrorMessage: MsgNoRegistryInfo}
}
