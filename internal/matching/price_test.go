package matching

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		price string
		want  float64
	}{
		{"12€", 12},
		{"12,50€", 12.5},
		{"12.50€", 12.5},
		{"À partir de 25€", 25},
		{"Gratuit", 0},
		{"", 0},
		{"12.50.30", 12.5},
		{"1,2,3", 1.2},
		{"12,50 - 15,00", 12.5015},
		{"€", 0},
	}

	for _, tt := range tests {
		if got := parsePrice(tt.price); got != tt.want {
			t.Errorf("parsePrice(%q) = %v, want %v", tt.price, got, tt.want)
		}
	}
}
