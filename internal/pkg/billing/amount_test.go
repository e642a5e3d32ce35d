package billing

import "testing"

func TestParsePriceToPaise(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "999", want: 99900},
		{in: "0", want: 0},
		{in: "", want: 0},
		{in: "499.50", want: 49950},
		{in: "499.5", want: 49950},
		{in: "0.01", want: 1},
		{in: ".50", want: 50},
		{in: "1.234", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-10", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePriceToPaise(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParsePriceToPaise(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePriceToPaise(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePriceToPaise(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		amount  int64
		percent int
		want    int64
	}{
		{amount: 99900, percent: 20, want: 79920},
		{amount: 99900, percent: 0, want: 99900},
		{amount: 99900, percent: 100, want: 0},
		{amount: 99900, percent: -5, want: 99900},
		{amount: 99900, percent: 150, want: 0},
		// round half-up on the paisa
		{amount: 99, percent: 50, want: 50},
		{amount: 101, percent: 50, want: 51},
		{amount: 33, percent: 33, want: 22},
	}

	for _, tt := range tests {
		if got := ApplyDiscount(tt.amount, tt.percent); got != tt.want {
			t.Fatalf("ApplyDiscount(%d, %d) = %d, want %d", tt.amount, tt.percent, got, tt.want)
		}
	}
}
