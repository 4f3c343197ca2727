package billing

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2500, "2,500"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{-2600, "-2,600"},
		{1250.5, "1,250.50"},
		{99.99, "99.99"},
		{0.005, "0.01"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// A fraction that rounds up to a full unit must carry into the whole
// part, not wrap back to .00.
func TestFormatAmountCentCarry(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.999, "2"},
		{2.995, "3"},
		{999.999, "1,000"},
		{99999.999, "1,00,000"},
		{-1.999, "-2"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
