package utils

import (
	"regexp"
	"testing"
)

func TestNewInvoiceNumberFormat(t *testing.T) {
	re := regexp.MustCompile(`^OMNI/\d{2}-\d{2}/\d{3}$`)
	for i := 0; i < 50; i++ {
		if n := NewInvoiceNumber("OMNI"); !re.MatchString(n) {
			t.Fatalf("invoice number %q does not match PREFIX/YY-MM/NNN", n)
		}
	}
}

func TestNewEventIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^EVT/\d{2}-\d{2}/\d{4}$`)
	for i := 0; i < 50; i++ {
		if id := NewEventID(); !re.MatchString(id) {
			t.Fatalf("event id %q does not match EVT/YY-MM/NNNN", id)
		}
	}
}
