// Package matching implements the quiz scoring heuristics: the main catalog
// matcher and the smaller local recommender used when the AI path is
// unavailable. Both are pure functions over the catalog and the answers.
package matching

import "strconv"

// Reserved question IDs. Everything at or above the food threshold marks the
// session as a food quiz and flips restaurant scoring.
const (
	QuestionCountry = 0
	QuestionCity    = 1

	foodQuizThreshold = 101
)

// Answers maps question IDs to the raw answer string. Multi-select answers
// arrive as a single comma-separated string.
type Answers map[int]string

// Get returns the answer for a question, "" when unanswered. An empty string
// counts as unanswered everywhere in the scorers.
func (a Answers) Get(id int) string {
	return a[id]
}

func (a Answers) Has(id int) bool {
	return a[id] != ""
}

// IsFoodQuiz reports whether any food-quiz question has been answered.
func (a Answers) IsFoodQuiz() bool {
	for id := range a {
		if id >= foodQuizThreshold {
			return true
		}
	}
	return false
}

// ParseAnswers converts the wire format (string keys) into Answers. Keys that
// are not integers are dropped rather than rejected; a malformed key carries
// no signal.
func ParseAnswers(raw map[string]string) Answers {
	answers := make(Answers, len(raw))
	for key, value := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		answers[id] = value
	}
	return answers
}
