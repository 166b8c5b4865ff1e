package brcode

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{100, "1.00"},
		{567, "5.67"},
		{1050, "10.50"},
		{100000, "1000.00"},
		{123456789, "1234567.89"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%d) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}
