package extension_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/checkout-fel/internal/app/extension"
)

func TestInstall_RunsOnce(t *testing.T) {
	t.Parallel()

	r := extension.NewRegistry()
	calls := 0
	apply := func() error {
		calls++
		return nil
	}

	if err := r.Install("invoice-flag-guard", apply); err != nil {
		t.Fatalf("first Install() error = %v", err)
	}
	err := r.Install("invoice-flag-guard", apply)
	if !errors.Is(err, extension.ErrAlreadyInstalled) {
		t.Fatalf("second Install() error = %v, want ErrAlreadyInstalled", err)
	}
	if calls != 1 {
		t.Errorf("apply called %d times, want 1", calls)
	}
}

func TestInstall_FailureCanBeRetried(t *testing.T) {
	t.Parallel()

	r := extension.NewRegistry()
	boom := errors.New("boom")

	if err := r.Install("partner-vat-verification", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Install() error = %v, want %v", err, boom)
	}
	if err := r.Install("partner-vat-verification", func() error { return nil }); err != nil {
		t.Fatalf("retry Install() error = %v", err)
	}
	if got := r.Installed(); len(got) != 1 || got[0] != "partner-vat-verification" {
		t.Errorf("Installed() = %v", got)
	}
}

func TestInstall_IndependentNames(t *testing.T) {
	t.Parallel()

	r := extension.NewRegistry()
	for _, name := range []string{"invoice-flag-guard", "partner-vat-verification"} {
		if err := r.Install(name, func() error { return nil }); err != nil {
			t.Fatalf("Install(%q) error = %v", name, err)
		}
	}

	got := r.Installed()
	if len(got) != 2 || got[0] != "invoice-flag-guard" || got[1] != "partner-vat-verification" {
		t.Errorf("Installed() = %v", got)
	}
}
