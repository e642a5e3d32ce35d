package models

import "testing"

func TestPlanIsFree(t *testing.T) {
	tests := []struct {
		name    string
		monthly string
		yearly  string
		want    bool
	}{
		{"both zero", "0", "0.00", true},
		{"empty prices", "", "", true},
		{"paid monthly", "999", "0", false},
		{"paid yearly", "0", "9990", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Plan{MonthlyPrice: tt.monthly, YearlyPrice: tt.yearly}
			if got := p.IsFree(); got != tt.want {
				t.Errorf("IsFree() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLimitLabel(t *testing.T) {
	if got := LimitLabel(50, UnlimitedLinksThreshold); got != "50" {
		t.Errorf("LimitLabel(50) = %q, want %q", got, "50")
	}
	if got := LimitLabel(999, UnlimitedLinksThreshold); got != UnlimitedLabel {
		t.Errorf("LimitLabel(999) = %q, want %q", got, UnlimitedLabel)
	}
	if got := LimitLabel(99, UnlimitedPagesThreshold); got != UnlimitedLabel {
		t.Errorf("LimitLabel(99) = %q, want %q", got, UnlimitedLabel)
	}
	if got := LimitLabel(5, UnlimitedPagesThreshold); got != "5" {
		t.Errorf("LimitLabel(5) = %q, want %q", got, "5")
	}
}
