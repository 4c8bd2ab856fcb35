package matching

import (
	"log"
	"sort"
	"strings"

	"escapade/internal/catalog"
	"escapade/pkg/utils"
)

// Keyword sets used to classify entries. The food-quiz restaurant set is
// wider than the regular-quiz one; the two call sites grew separately and
// their behavior is kept distinct.
var (
	sweetKeywords = []string{"sucré", "dessert", "pâtisserie", "glace", "crêpe"}

	foodRestaurantTags    = []string{"restaurant", "gastronomie", "cuisine", "food", "repas", "café", "bistro"}
	regularRestaurantTags = []string{"restaurant", "gastronomie", "cuisine"}
)

type scoredActivity struct {
	activity catalog.Activity
	score    int
}

// Match filters the catalog by the selected country and city, then ranks the
// survivors by how well they match the quiz answers. Country comparison is
// accent- and case-insensitive; city comparison is case-insensitive only.
// With no answers the catalog is returned unchanged. Ties keep catalog order.
func Match(activities []catalog.Activity, answers Answers) []catalog.Activity {
	if activities == nil {
		log.Printf("warning: activity catalog is not a valid list")
		return []catalog.Activity{}
	}

	if len(answers) == 0 {
		return activities
	}

	filtered := FilterByLocation(activities, answers)
	isFoodQuiz := answers.IsFoodQuiz()

	scored := make([]scoredActivity, 0, len(filtered))
	for _, activity := range filtered {
		scored = append(scored, scoredActivity{
			activity: activity,
			score:    scoreActivity(activity, answers, isFoodQuiz),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]catalog.Activity, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.activity)
	}
	return result
}

// FilterByLocation applies the hard country/city filter without scoring.
// Country comparison normalizes accents and case; city comparison is
// case-insensitive only. Entries with no country are dropped from
// country-filtered views.
func FilterByLocation(activities []catalog.Activity, answers Answers) []catalog.Activity {
	filtered := activities

	if country := answers.Get(QuestionCountry); country != "" {
		wanted := utils.NormalizeName(country)
		kept := make([]catalog.Activity, 0, len(filtered))
		for _, a := range filtered {
			if a.Country == "" {
				continue
			}
			if utils.NormalizeName(a.Country) == wanted {
				kept = append(kept, a)
			}
		}
		filtered = kept
	}

	if city := answers.Get(QuestionCity); city != "" {
		kept := make([]catalog.Activity, 0, len(filtered))
		for _, a := range filtered {
			if a.City == "" {
				continue
			}
			if strings.EqualFold(a.City, city) {
				kept = append(kept, a)
			}
		}
		filtered = kept
	}

	return filtered
}

// scoreActivity accumulates the weighted dimension scores for one activity.
// matches counts the dimensions that had an applicable answer; when none
// applied the activity gets the neutral score 50.
func scoreActivity(activity catalog.Activity, answers Answers, isFoodQuiz bool) int {
	score := 0
	matches := 0

	// City bonus. The hard filter already ran; this grades the degree of
	// match when several cities survive.
	if city := answers.Get(QuestionCity); city != "" && activity.City != "" {
		matches++
		if strings.EqualFold(activity.City, city) {
			score += 15
		}
	}

	// Budget (question 4 regular, 102 food).
	budgetQuestion := 4
	if isFoodQuiz {
		budgetQuestion = 102
	}
	if budget := answers.Get(budgetQuestion); budget != "" && activity.Price != "" {
		matches++
		score += scoreBudget(activity.Price, budget, isFoodQuiz)
	}

	// Activity type (question 4).
	if answerType := answers.Get(4); answerType != "" {
		matches++
		needle := strings.ToLower(answerType)
		if tagContains(activity.Tags, needle) {
			score += 15
		} else if descriptionContains(activity.Description, needle) {
			score += 10
		}
	}

	// Specific preferences (question 6), comma-separated multi-select.
	if prefs := answers.Get(6); prefs != "" {
		matches++
		for _, pref := range strings.Split(prefs, ", ") {
			if tagContains(activity.Tags, strings.ToLower(pref)) {
				score += 10
			}
		}
	}

	if isFoodQuiz {
		// Cuisine type (question 101).
		if cuisine := answers.Get(101); cuisine != "" {
			matches++
			needle := strings.ToLower(cuisine)
			if tagContains(activity.Tags, needle) {
				score += 20
			} else if descriptionContains(activity.Description, needle) {
				score += 10
			}
		}

		// Ambiance (question 103).
		if ambiance := answers.Get(103); ambiance != "" {
			matches++
			needle := strings.ToLower(ambiance)
			if tagContains(activity.Tags, needle) {
				score += 15
			} else if descriptionContains(activity.Description, needle) {
				score += 8
			}
		}

		// Meal time (question 104).
		if mealTime := answers.Get(104); mealTime != "" {
			matches++
			if tagContains(activity.Tags, strings.ToLower(mealTime)) {
				score += 10
			}
		}

		// Dietary restrictions (question 105), "Aucune" carries no signal.
		if dietary := answers.Get(105); dietary != "" && dietary != "Aucune" {
			matches++
			needle := strings.ToLower(dietary)
			if tagContains(activity.Tags, needle) {
				score += 15
			} else if descriptionContains(activity.Description, needle) {
				score += 8
			}
		}

		// Sweet or savory (question 106). "Les deux" always matches.
		if taste := answers.Get(106); taste != "" {
			matches++
			needle := strings.ToLower(taste)
			isSweet := isSweetActivity(activity.Tags)
			if (strings.Contains(needle, "sucré") && isSweet) ||
				(strings.Contains(needle, "salé") && !isSweet) ||
				strings.Contains(needle, "les deux") {
				score += 10
			}
		}

		// Strong restaurant bias for food sessions, penalty otherwise.
		if hasRestaurantTag(activity.Tags, foodRestaurantTags) {
			score += 25
		} else {
			score -= 15
		}
	} else {
		// Regular sessions push restaurants down unless the user asked for
		// something gastronomy-related.
		isRestaurant := hasRestaurantTag(activity.Tags, regularRestaurantTags)
		prefs := answers.Get(6)
		if isRestaurant && prefs != "" && !strings.Contains(strings.ToLower(prefs), "gastronomie") {
			score -= 10
		}
	}

	if matches > 0 {
		return score
	}
	return 50
}

// scoreBudget grades the parsed price against the selected bracket. Exact
// bracket hit is 15, a near miss 5. The bracket tables differ between food
// and regular sessions.
func scoreBudget(price, budget string, isFoodQuiz bool) int {
	if strings.ToLower(price) == "gratuit" {
		if budget == "Gratuit" {
			return 15
		}
		return 0
	}

	amount := parsePrice(price)

	if isFoodQuiz {
		switch budget {
		case "< 15€":
			if amount < 15 {
				return 15
			} else if amount < 20 {
				return 5
			}
		case "15-30€":
			if amount >= 15 && amount <= 30 {
				return 15
			} else if amount < 35 {
				return 5
			}
		case "30-50€":
			if amount >= 30 && amount <= 50 {
				return 15
			} else if amount > 25 {
				return 5
			}
		case "50€+":
			if amount > 50 {
				return 15
			} else if amount > 40 {
				return 5
			}
		}
		return 0
	}

	switch budget {
	case "Gratuit":
		if amount == 0 {
			return 15
		} else if amount < 10 {
			return 5
		}
	case "< 25€":
		if amount < 25 {
			return 15
		} else if amount < 30 {
			return 5
		}
	case "25-50€":
		if amount >= 25 && amount <= 50 {
			return 15
		} else if amount < 60 {
			return 5
		}
	case "50-100€":
		if amount >= 50 && amount <= 100 {
			return 15
		} else if amount > 40 {
			return 5
		}
	case "Peu importe":
		return 15
	}
	return 0
}

// tagContains reports whether any tag contains needle as a case-insensitive
// substring. Empty tags are skipped.
func tagContains(tags []string, needle string) bool {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func descriptionContains(description, needle string) bool {
	if description == "" {
		return false
	}
	return strings.Contains(strings.ToLower(description), needle)
}

// hasRestaurantTag checks exact membership of a lowercased tag in the set.
func hasRestaurantTag(tags []string, set []string) bool {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		lower := strings.ToLower(tag)
		for _, s := range set {
			if lower == s {
				return true
			}
		}
	}
	return false
}

func isSweetActivity(tags []string) bool {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		lower := strings.ToLower(tag)
		for _, sweet := range sweetKeywords {
			if strings.Contains(lower, sweet) {
				return true
			}
		}
	}
	return false
}
