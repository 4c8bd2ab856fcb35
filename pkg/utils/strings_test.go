package utils

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"France", "france"},
		{"Sénégal", "senegal"},
		{"Côte d'Ivoire", "cote d'ivoire"},
		{"JAPON", "japon"},
		{"Åland", "aland"},
		{"", ""},
		{"déjà-vu", "deja-vu"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
