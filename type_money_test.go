package pricetrack

import "testing"

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"$35.99", 35.99, false},
		{"$1,234.56", 1234.56, false},
		{"19.99", 19.99, false},
		{" $0.00 ", 0, false},
		{"-$4.56", -4.56, false},
		{"", 0, true},
		{"$", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParsePrice(tc.input, "USD")
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePrice(%q): err = %v, wantErr = %v", tc.input, err, tc.wantErr)
			continue
		}
		if err == nil && got.InexactFloat64() != tc.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.input, got.InexactFloat64(), tc.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value float64
		want  string
	}{
		{35.99, "$35.99"},
		{1234.56, "$1,234.56"},
		{0, "$0.00"},
		{-4.56, "-$4.56"},
		{0.005, "$0.01"}, // rounds to cents
	}
	for _, tc := range testCases {
		if got := M(tc.value, "USD").String(); got != tc.want {
			t.Errorf("M(%v).String() = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(20.00, "USD")
	b := M(10.00, "USD")
	if got := a.Sub(b).InexactFloat64(); got != 10.00 {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Add(b).DivCount(2).InexactFloat64(); got != 15.00 {
		t.Errorf("mean = %v", got)
	}
	if !M(0, "USD").IsZero() {
		t.Error("zero must be zero")
	}
}

func TestMoney_DisplayRoundTrip(t *testing.T) {
	// the ledger stores the display form, so it must parse back exactly
	for _, value := range []float64{35.99, 1234.56, 0, 999999.99} {
		m := M(value, "USD")
		back, err := ParsePrice(m.String(), "USD")
		if err != nil {
			t.Fatalf("ParsePrice(%q): %v", m.String(), err)
		}
		if !back.Equal(m) {
			t.Errorf("display roundtrip lost value: %s != %s", back, m)
		}
	}
}
