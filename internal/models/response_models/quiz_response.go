package response_models

// QuizQuestion is one step of either quiz flow. MultiSelect answers are
// submitted as a single comma-separated string.
type QuizQuestion struct {
	ID          int      `json:"id"`
	Text        string   `json:"text"`
	Icon        string   `json:"icon"`
	Options     []string `json:"options"`
	MultiSelect bool     `json:"multi_select,omitempty"`
}

type QuizStartResponse struct {
	SessionID string `json:"session_id"`
}

type QuizMatchResponse struct {
	SessionID  string             `json:"session_id,omitempty"`
	FoodQuiz   bool               `json:"food_quiz"`
	Activities []ActivityResponse `json:"activities"`
}
