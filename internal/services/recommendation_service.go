package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"escapade/internal/catalog"
	"escapade/internal/matching"
	"escapade/internal/models/response_models"
	"escapade/pkg/utils"
)

// preferenceLabels translates question IDs into the labels the model sees.
var preferenceLabels = map[int]string{
	1:  "Ville",
	2:  "Âge",
	3:  "Groupe",
	4:  "Budget",
	5:  "Durée préférée",
	6:  "Type d'activité",
	7:  "Environnement",
	8:  "Niveau activité",
	9:  "Centre d'intérêt",
	10: "Ambiance",
}

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, answers matching.Answers) ([]response_models.ActivityResponse, error)
}

type RecommendationService struct {
	activities []catalog.Activity
	client     utils.RecommendationClientInterface // nil when no provider is configured
}

func NewRecommendationService(activities []catalog.Activity, client utils.RecommendationClientInterface) RecommendationServiceInterface {
	return &RecommendationService{
		activities: activities,
		client:     client,
	}
}

// Recommend asks the chat model for the three best activity IDs and falls
// back to the local scorer when the model is unavailable, errors out, or
// returns fewer than two usable IDs. With three or fewer candidates there is
// nothing to rank and the candidates are returned as-is.
func (r *RecommendationService) Recommend(ctx context.Context, answers matching.Answers) ([]response_models.ActivityResponse, error) {
	candidates := matching.FilterByLocation(r.activities, answers)

	if len(candidates) <= 3 {
		return response_models.FromActivities(candidates), nil
	}

	if r.client != nil {
		ids, err := r.client.RecommendActivityIDs(ctx, buildRecommendationPrompt(answers, candidates))
		if err != nil {
			log.Printf("AI recommendation failed, falling back to local scoring: %v", err)
		} else if len(ids) > 0 {
			recommended := filterByIDs(candidates, ids)
			if len(recommended) >= 2 {
				return response_models.FromActivities(recommended), nil
			}
		}
	}

	return response_models.FromActivities(matching.LocalRecommendations(candidates, answers)), nil
}

// formatUserPreferences renders the answered questions as "label: value"
// lines, in question order so prompts stay deterministic.
func formatUserPreferences(answers matching.Answers) string {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		label, ok := preferenceLabels[id]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", label, answers[id])
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildRecommendationPrompt(answers matching.Answers, activities []catalog.Activity) string {
	var ctx strings.Builder
	for _, a := range activities {
		fmt.Fprintf(&ctx, "ID: %d\nTitre: %s\nDescription: %s\nPrix: %s\nDurée: %s\nTags: %s\n---\n",
			a.ID, a.Title, a.Description, a.Price, a.Duration, strings.Join(a.Tags, ", "))
	}

	return fmt.Sprintf(`En tant qu'expert en recommandations d'activités touristiques, analyse ces préférences utilisateur:

%s

Voici les activités disponibles:

%s

En te basant sur:
1. La correspondance entre les préférences et les activités
2. L'âge et le type de groupe
3. Le budget et la durée disponible
4. Les centres d'intérêt et l'ambiance recherchée

Retourne UNIQUEMENT les IDs des 3 activités les plus pertinentes sous ce format exact: ID1,ID2,ID3
Ne fournis aucune explication, uniquement les IDs.`, formatUserPreferences(answers), ctx.String())
}

// filterByIDs keeps candidate order, not model order, matching how results
// are displayed.
func filterByIDs(activities []catalog.Activity, ids []int) []catalog.Activity {
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []catalog.Activity
	for _, a := range activities {
		if wanted[a.ID] {
			out = append(out, a)
		}
	}
	return out
}
