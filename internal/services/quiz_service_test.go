package services

import (
	"errors"
	"testing"
	"time"

	"escapade/internal/catalog"
	"escapade/internal/models/request_models"
	mem "escapade/pkg/memcache"
	"escapade/pkg/utils"
)

func quizTestCatalog() []catalog.Activity {
	return []catalog.Activity{
		{ID: 1, City: "Paris", Country: "France", Price: "Gratuit", Tags: []string{"Nature", "Extérieur"}},
		{ID: 2, City: "Paris", Country: "France", Price: "25€", Tags: []string{"Restaurant", "Italienne"}},
		{ID: 3, City: "Lyon", Country: "France", Price: "12€", Tags: []string{"Culturel", "Intérieur"}},
	}
}

func newQuizService() QuizServiceInterface {
	return NewQuizService(quizTestCatalog(), mem.NewQuizSessions(time.Minute))
}

func TestStartSessionGeneratesUniqueIDs(t *testing.T) {
	svc := newQuizService()

	a := svc.StartSession()
	b := svc.StartSession()
	if a.SessionID == "" || a.SessionID == b.SessionID {
		t.Errorf("session ids %q and %q should be distinct and non-empty", a.SessionID, b.SessionID)
	}
}

func TestQuestionsByType(t *testing.T) {
	svc := newQuizService()

	regular := svc.Questions("")
	if len(regular) != 5 || regular[0].ID != 2 || regular[len(regular)-1].ID != 6 {
		t.Errorf("regular questions: got %d entries", len(regular))
	}

	food := svc.Questions("food")
	if len(food) != 6 || food[0].ID != 101 || food[len(food)-1].ID != 106 {
		t.Errorf("food questions: got %d entries", len(food))
	}
}

func TestSubmitAnswerAndMatchFromSession(t *testing.T) {
	svc := newQuizService()
	session := svc.StartSession()

	svc.SubmitAnswer(request_models.QuizAnswerRequest{SessionID: session.SessionID, QuestionID: 0, Answer: "France"})
	svc.SubmitAnswer(request_models.QuizAnswerRequest{SessionID: session.SessionID, QuestionID: 1, Answer: "Paris"})
	svc.SubmitAnswer(request_models.QuizAnswerRequest{SessionID: session.SessionID, QuestionID: 4, Answer: "Gratuit"})

	result, err := svc.Match(request_models.QuizMatchRequest{SessionID: session.SessionID})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if result.FoodQuiz {
		t.Error("regular session flagged as food quiz")
	}
	if len(result.Activities) != 2 {
		t.Fatalf("got %d activities, want the 2 Paris entries", len(result.Activities))
	}
	if result.Activities[0].ID != 1 {
		t.Errorf("top activity ID = %d, want 1 (free activity on a free budget)", result.Activities[0].ID)
	}
}

func TestMatchInlineAnswersWinOverSession(t *testing.T) {
	svc := newQuizService()
	session := svc.StartSession()
	svc.SubmitAnswer(request_models.QuizAnswerRequest{SessionID: session.SessionID, QuestionID: 1, Answer: "Paris"})

	result, err := svc.Match(request_models.QuizMatchRequest{
		SessionID: session.SessionID,
		Answers:   map[string]string{"1": "Lyon"},
	})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if len(result.Activities) != 1 || result.Activities[0].ID != 3 {
		t.Errorf("inline city filter ignored: %v", result.Activities)
	}
}

func TestMatchUnknownSession(t *testing.T) {
	svc := newQuizService()

	_, err := svc.Match(request_models.QuizMatchRequest{SessionID: "ghost"})
	if !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestMatchNoAnswersReturnsWholeCatalog(t *testing.T) {
	svc := newQuizService()

	result, err := svc.Match(request_models.QuizMatchRequest{})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if len(result.Activities) != 3 {
		t.Errorf("got %d activities, want the full catalog", len(result.Activities))
	}
}

func TestMatchFoodQuizFlag(t *testing.T) {
	svc := newQuizService()

	result, err := svc.Match(request_models.QuizMatchRequest{
		Answers: map[string]string{"101": "Italienne"},
	})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if !result.FoodQuiz {
		t.Error("food-quiz answers not flagged")
	}
	if result.Activities[0].ID != 2 {
		t.Errorf("top activity ID = %d, want the Italian restaurant", result.Activities[0].ID)
	}
}

func TestResetClearsSessionAnswers(t *testing.T) {
	svc := newQuizService()
	session := svc.StartSession()
	svc.SubmitAnswer(request_models.QuizAnswerRequest{SessionID: session.SessionID, QuestionID: 1, Answer: "Paris"})

	svc.Reset(session.SessionID)

	answers, err := svc.SessionAnswers(session.SessionID)
	if err != nil {
		t.Fatalf("SessionAnswers error: %v", err)
	}
	if len(answers) != 0 {
		t.Errorf("got %d answers after reset, want 0", len(answers))
	}
}
