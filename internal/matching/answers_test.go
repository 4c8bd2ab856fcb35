package matching

import "testing"

func TestParseAnswersDropsNonIntegerKeys(t *testing.T) {
	answers := ParseAnswers(map[string]string{
		"0":    "France",
		"4":    "Gratuit",
		"abc":  "ignored",
		"10.5": "ignored",
		"":     "ignored",
		"101":  "Italienne",
		"-3":   "kept",
	})

	if len(answers) != 4 {
		t.Errorf("got %d answers, want 4", len(answers))
	}
	if answers.Get(0) != "France" || answers.Get(4) != "Gratuit" || answers.Get(-3) != "kept" {
		t.Errorf("parsed answers missing expected entries: %v", answers)
	}
}

func TestIsFoodQuiz(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    bool
	}{
		{"empty", Answers{}, false},
		{"regular only", Answers{2: "Seul(e)", 6: "Nature"}, false},
		{"food question", Answers{101: "Italienne"}, true},
		{"threshold exactly", Answers{101: ""}, true},
		{"mixed", Answers{4: "Gratuit", 106: "Salé"}, true},
		{"just below threshold", Answers{100: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answers.IsFoodQuiz(); got != tt.want {
				t.Errorf("IsFoodQuiz() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetAndHas(t *testing.T) {
	answers := Answers{4: "Gratuit", 6: ""}

	if answers.Get(4) != "Gratuit" {
		t.Errorf("Get(4) = %q, want %q", answers.Get(4), "Gratuit")
	}
	if answers.Get(99) != "" {
		t.Errorf("Get(99) = %q, want empty", answers.Get(99))
	}
	if answers.Has(6) {
		t.Error("Has(6) = true for an empty answer, want false")
	}
	if !answers.Has(4) {
		t.Error("Has(4) = false, want true")
	}
}
