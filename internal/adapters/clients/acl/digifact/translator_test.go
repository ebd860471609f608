package digifact

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

func TestPadTaxID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "12345678", want: "000012345678"},
		{in: " 1234567K ", want: "00001234567K"},
		{in: "123456789012", want: "123456789012"},
		{in: "1234567890123", want: "1234567890123"},
	}

	for _, tt := range tests {
		if got := PadTaxID(tt.in); got != tt.want {
			t.Errorf("PadTaxID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoginUsername(t *testing.T) {
	t.Parallel()

	if got := LoginUsername("12345678", "TESTUSER"); got != "GT.000012345678.TESTUSER" {
		t.Errorf("LoginUsername() = %q", got)
	}
}

func TestParseExpiry(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CST", -6*60*60)
	want := time.Date(2026, 10, 16, 14, 30, 0, 0, loc)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "local with fraction", raw: "2026-10-16T14:30:00.1234567", want: want},
		{name: "local without fraction", raw: "2026-10-16T14:30:00", want: want},
		{name: "space separated", raw: "2026-10-16 14:30:00", want: want},
		{name: "rfc3339 with zone", raw: "2026-10-16T20:30:00Z", want: want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseExpiry(tt.raw, loc)
			if err != nil {
				t.Fatalf("ParseExpiry(%q) error = %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseExpiry(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseExpiry_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := ParseExpiry("tomorrow", time.UTC); err == nil {
		t.Fatal("ParseExpiry(tomorrow) error = nil, want error")
	}
}

func TestToCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want partner.Check
	}{
		{
			name: "message rejects",
			body: `{"Message":"Authorization has been denied"}`,
			want: partner.Check{ErrorMessage: "Authorization has been denied"},
		},
		{
			name: "zero respuesta rejects with mensaje",
			body: `{"REQUEST":[{"Respuesta":0,"Mensaje":"NIT no valido"}],"RESPONSE":[]}`,
			want: partner.Check{ErrorMessage: "NIT no valido"},
		},
		{
			name: "zero respuesta as string",
			body: `{"REQUEST":[{"Respuesta":"0","Mensaje":"NIT no valido"}]}`,
			want: partner.Check{ErrorMessage: "NIT no valido"},
		},
		{
			name: "taxpayer record accepts",
			body: `{"REQUEST":[{"Respuesta":1,"Mensaje":""}],"RESPONSE":[{"NIT":"1234567-8","NOMBRE":"Acme ","Direccion":"1 Main St"}]}`,
			want: partner.Check{Valid: true, CompanyName: "Acme", Address: "1 Main St"},
		},
		{
			name: "record without address",
			body: `{"RESPONSE":[{"NIT":"1234567-8","NOMBRE":"Acme"}]}`,
			want: partner.Check{Valid: true, CompanyName: "Acme"},
		},
		{
			name: "empty nit has no information",
			body: `{"REQUEST":[{"Respuesta":1}],"RESPONSE":[{"NIT":""}]}`,
			want: partner.Check{ErrorMessage: MsgNoRegistryInfo},
		},
		{
			name: "zero respuesta as decimal",
			body: `{"REQUEST":[{"Respuesta":0.0,"Mensaje":"NIT no valido"}]}`,
			want: partner.Check{ErrorMessage: "NIT no valido"},
		},
		{
			name: "empty respuesta falls through to the record",
			body: `{"REQUEST":[{"Respuesta":"","Mensaje":""}],"RESPONSE":[{"NIT":"1234567-8","NOMBRE":"Acme"}]}`,
			want: partner.Check{Valid: true, CompanyName: "Acme"},
		},
		{
			name: "non-numeric respuesta without record has no information",
			body: `{"REQUEST":[{"Respuesta":"N/D","Mensaje":"sin datos"}],"RESPONSE":[]}`,
			want: partner.Check{ErrorMessage: MsgNoRegistryInfo},
		},
		{
			name: "null respuesta has no information",
			body: `{"REQUEST":[{"Respuesta":null}]}`,
			want: partner.Check{ErrorMessage: MsgNoRegistryInfo},
		},
		{
			name: "empty body has no information",
			body: `{}`,
			want: partner.Check{ErrorMessage: MsgNoRegistryInfo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var dto LookupResponseDTO
			if err := json.Unmarshal([]byte(tt.body), &dto); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := ToCheck(dto); got != tt.want {
				t.Errorf("ToCheck() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
