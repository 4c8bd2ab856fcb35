package services

import (
	"github.com/google/uuid"

	"escapade/internal/catalog"
	"escapade/internal/matching"
	"escapade/internal/models/request_models"
	"escapade/internal/models/response_models"
	mem "escapade/pkg/memcache"
	"escapade/pkg/utils"
)

// Question definitions for both quiz flows. IDs 0 and 1 are reserved for the
// country/city pickers and never appear here.
var regularQuestions = []response_models.QuizQuestion{
	{
		ID:      2,
		Text:    "Nombre de participants ?",
		Icon:    "👥",
		Options: []string{"Seul(e)", "En duo", "Petit groupe (3-5)", "Grand groupe (6+)"},
	},
	{
		ID:      3,
		Text:    "Type de relation ?",
		Icon:    "💝",
		Options: []string{"Famille", "Amis", "Couple", "Collègues", "Avec enfants"},
	},
	{
		ID:      4,
		Text:    "Ambiance recherchée ?",
		Icon:    "✨",
		Options: []string{"Détente", "Fun et énergique", "Sportif", "Culturel", "Nature"},
	},
	{
		ID:      5,
		Text:    "Budget ?",
		Icon:    "💰",
		Options: []string{"Gratuit", "< 25€", "25-50€", "50-100€", "Peu importe"},
	},
	{
		ID:   6,
		Text: "Préférences spécifiques ?",
		Icon: "🎯",
		Options: []string{
			"Intérieur",
			"Extérieur",
			"Jour",
			"Soirée",
			"Activité physique",
			"Ludique",
			"Créatif",
			"Nature",
		},
		MultiSelect: true,
	},
}

var foodQuestions = []response_models.QuizQuestion{
	{
		ID:   101,
		Text: "Quel type de cuisine vous fait envie ?",
		Icon: "🍽️",
		Options: []string{
			"Française",
			"Italienne",
			"Japonaise",
			"Méditerranéenne",
			"Africaine",
			"Peu importe",
		},
	},
	{
		ID:      102,
		Text:    "Quel est votre budget par personne ?",
		Icon:    "💰",
		Options: []string{"< 15€", "15-30€", "30-50€", "50€+"},
	},
	{
		ID:   103,
		Text: "Quelle ambiance recherchez-vous ?",
		Icon: "✨",
		Options: []string{
			"Décontractée",
			"Romantique",
			"Branchée",
			"Traditionnelle",
			"Gastronomique",
			"Familiale",
		},
	},
	{
		ID:      104,
		Text:    "Préférence pour le moment du repas ?",
		Icon:    "⏰",
		Options: []string{"Déjeuner", "Dîner", "Brunch", "En-cas", "Peu importe"},
	},
	{
		ID:      105,
		Text:    "Des restrictions alimentaires ?",
		Icon:    "🥗",
		Options: []string{"Végétarien", "Végan", "Sans gluten", "Halal", "Casher", "Aucune"},
	},
	{
		ID:      106,
		Text:    "Plutôt sucré ou salé ?",
		Icon:    "🍰",
		Options: []string{"Sucré (glaces, crêpes, pâtisseries...)", "Salé", "Les deux"},
	},
}

type QuizServiceInterface interface {
	StartSession() response_models.QuizStartResponse
	Questions(quizType string) []response_models.QuizQuestion
	SubmitAnswer(req request_models.QuizAnswerRequest)
	Reset(sessionID string)
	Match(req request_models.QuizMatchRequest) (response_models.QuizMatchResponse, error)

	// SessionAnswers exposes the stored answers for the recommendation path.
	SessionAnswers(sessionID string) (matching.Answers, error)
}

type QuizService struct {
	activities []catalog.Activity
	sessions   mem.QuizSessionStore
}

func NewQuizService(activities []catalog.Activity, sessions mem.QuizSessionStore) QuizServiceInterface {
	return &QuizService{
		activities: activities,
		sessions:   sessions,
	}
}

func (q *QuizService) StartSession() response_models.QuizStartResponse {
	return response_models.QuizStartResponse{SessionID: uuid.New().String()}
}

func (q *QuizService) Questions(quizType string) []response_models.QuizQuestion {
	if quizType == "food" {
		return foodQuestions
	}
	return regularQuestions
}

func (q *QuizService) SubmitAnswer(req request_models.QuizAnswerRequest) {
	q.sessions.SetAnswer(req.SessionID, req.QuestionID, req.Answer)
}

func (q *QuizService) Reset(sessionID string) {
	q.sessions.Reset(sessionID)
}

func (q *QuizService) SessionAnswers(sessionID string) (matching.Answers, error) {
	stored, ok := q.sessions.Answers(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return matching.Answers(stored), nil
}

// Match ranks the catalog against either the stored session answers or the
// inline answers of a stateless request. Inline answers win when both are
// present, so callers can preview alternative answer sets.
func (q *QuizService) Match(req request_models.QuizMatchRequest) (response_models.QuizMatchResponse, error) {
	var answers matching.Answers

	switch {
	case len(req.Answers) > 0:
		answers = matching.ParseAnswers(req.Answers)
	case req.SessionID != "":
		stored, err := q.SessionAnswers(req.SessionID)
		if err != nil {
			return response_models.QuizMatchResponse{}, err
		}
		answers = stored
	default:
		answers = matching.Answers{}
	}

	matched := matching.Match(q.activities, answers)

	return response_models.QuizMatchResponse{
		SessionID:  req.SessionID,
		FoodQuiz:   answers.IsFoodQuiz(),
		Activities: response_models.FromActivities(matched),
	}, nil
}
