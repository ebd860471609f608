// Package digifact implements the Anti-Corruption Layer translators for the
// Digifact SHAREDINFO API used to look up Guatemalan tax IDs (NIT).
package digifact

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TokenRequestDTO matches the login request body.
type TokenRequestDTO struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// TokenResponseDTO matches the login response body. ExpiresAt is a local
// timestamp without zone, optionally with fractional seconds.
type TokenResponseDTO struct {
	Token     string `json:"Token"`
	ExpiresAt string `json:"expira_en"`
	GrantedTo string `json:"otorgado_a"`
	Message   string `json:"message"`
}

// LookupResponseDTO matches the NIT lookup response. Message is only present
// when the registry rejects the request outright.
type LookupResponseDTO struct {
	Message  *string             `json:"Message"`
	Request  []LookupStatusDTO   `json:"REQUEST"`
	Response []LookupTaxpayerDTO `json:"RESPONSE"`
}

// LookupStatusDTO carries the registry's verdict.
type LookupStatusDTO struct {
	Respuesta Verdict `json:"Respuesta"`
	Mensaje   string  `json:"Mensaje"`
}

// Verdict is the registry's Respuesta flag. It arrives as a number or a
// string and sometimes as neither; only zero means the tax ID was rejected.
type Verdict struct {
	rejected bool
}

// Rejected reports whether the registry answered zero.
func (v Verdict) Rejected() bool {
	return v.rejected
}

// UnmarshalJSON accepts any JSON value so an odd flag never fails the
// whole response.
func (v *Verdict) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if s, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(raw, 64)
	v.rejected = err == nil && f == 0
	return nil
}

var _ json.Unmarshaler = (*Verdict)(nil)

// LookupTaxpayerDTO carries the taxpayer record for an accepted tax ID.
type LookupTaxpayerDTO struct {
	NIT       string `json:"NIT"`
	Nombre    string `json:"NOMBRE"`
	Direccion string `json:"Direccion"`
}
