package domain

import "testing"

func TestParseDisplayPrice(t *testing.T) {
	tests := []struct {
		in       string
		amount   int64
		currency string
		ok       bool
	}{
		{"₹1,299", 129900, "INR", true},
		{"1299", 129900, "INR", true},
		{"₹ 2,990", 299000, "INR", true},
		{"$49", 4900, "USD", true},
		{"€120", 12000, "EUR", true},
		{"", 0, "", false},
		{"N/A", 0, "", false},
		{"free", 0, "", false},
	}
	for _, tt := range tests {
		m, ok := ParseDisplayPrice(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDisplayPrice(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if m.Amount != tt.amount || m.Currency != tt.currency {
			t.Errorf("ParseDisplayPrice(%q) = %+v, want amount=%d currency=%s",
				tt.in, m, tt.amount, tt.currency)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{Money{Amount: 129900, Currency: "INR"}, "₹1,299"},
		{Money{Amount: 299000, Currency: "INR"}, "₹2,990"},
		{Money{Amount: 4900, Currency: "USD"}, "$49"},
		{Money{Amount: 100000000, Currency: "INR"}, "₹1,000,000"},
		{Money{Amount: 0, Currency: "INR"}, "₹0"},
	}
	for _, tt := range tests {
		if got := tt.m.Format(); got != tt.want {
			t.Errorf("Format(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	m := Money{Amount: 129900, Currency: "INR"}
	back, ok := ParseDisplayPrice(m.Format())
	if !ok || back != m {
		t.Fatalf("round trip of %+v came back as %+v (ok=%v)", m, back, ok)
	}
}

func TestAutoDiscount(t *testing.T) {
	tests := []struct {
		price, original, want string
	}{
		{"₹1,299", "₹2,990", "57% OFF"},
		{"₹2,499", "₹4,999", "50% OFF"},
		{"₹899", "", ""},
		{"₹899", "₹899", ""},
		{"₹1,499", "₹899", ""}, // original below price
		{"N/A", "₹899", ""},
	}
	for _, tt := range tests {
		if got := AutoDiscount(tt.price, tt.original); got != tt.want {
			t.Errorf("AutoDiscount(%q, %q) = %q, want %q", tt.price, tt.original, got, tt.want)
		}
	}
}
