package request_models

// Answer keys are question IDs as strings: "0" and "1" are the reserved
// country/city filters, IDs 101 and above mark a food-quiz session.
type QuizMatchRequest struct {
	SessionID string            `json:"session_id,omitempty"`
	Answers   map[string]string `json:"answers,omitempty"`
}

type QuizAnswerRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer" binding:"required"`
}

type QuizResetRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
