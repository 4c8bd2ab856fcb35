package matching

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"escapade/internal/catalog"
)

// fallbackResultCount is how many activities the local recommender returns.
const fallbackResultCount = 3

var durationPattern = regexp.MustCompile(`(\d+)h?(\d*)`)

type fallbackScored struct {
	activity catalog.Activity
	score    float64
}

// LocalRecommendations is the deterministic stand-in for the AI recommender.
// It normalizes each activity to a 0-100 score across weighted dimensions
// (budget 3, type 3, environment 2, duration 2, interests 4, age/group 2) and
// returns the top three. It is a separate strategy from Match and the two are
// not interchangeable.
func LocalRecommendations(activities []catalog.Activity, answers Answers) []catalog.Activity {
	scored := make([]fallbackScored, 0, len(activities))

	for _, activity := range activities {
		score := 0
		maxScore := 0

		// Budget
		if budget := answers.Get(4); budget != "" {
			maxScore += 3
			price := fallbackPrice(activity.Price)

			switch budget {
			case "Gratuit":
				if price == 0 {
					score += 3
				} else if price < 10 {
					score += 1
				}
			case "< 20€":
				if price < 20 {
					score += 3
				} else if price < 25 {
					score += 1
				}
			case "20-50€":
				if price >= 20 && price <= 50 {
					score += 3
				} else if price < 60 {
					score += 1
				}
			case "50-100€":
				if price >= 50 && price <= 100 {
					score += 3
				} else if price > 40 {
					score += 1
				}
			case "100€+":
				if price > 100 {
					score += 3
				} else if price > 80 {
					score += 1
				}
			}
		}

		// Activity type
		if answerType := answers.Get(6); answerType != "" {
			maxScore += 3
			needle := strings.ToLower(answerType)
			if tagContains(activity.Tags, needle) {
				score += 3
			} else if descriptionContains(activity.Description, needle) {
				score += 2
			}
		}

		// Indoor/outdoor
		if env := answers.Get(7); env != "" {
			maxScore += 2
			location := strings.ToLower(env)
			if location == "les deux" {
				score += 2
			} else {
				keyword := "extérieur"
				if location == "intérieur" {
					keyword = "intérieur"
				}
				if tagEquals(activity.Tags, keyword) {
					score += 2
				}
			}
		}

		// Duration
		if wanted := answers.Get(5); wanted != "" {
			maxScore += 2
			hours := parseDurationHours(activity.Duration)

			switch wanted {
			case "1-2 heures":
				if hours >= 1 && hours <= 2 {
					score += 2
				} else {
					score += 1
				}
			case "Demi-journée":
				if hours > 2 && hours <= 4 {
					score += 2
				} else {
					score += 1
				}
			case "Journée entière":
				if hours > 4 {
					score += 2
				}
			case "Flexible":
				score += 2
			}
		}

		// Interests and ambiance
		if answers.Has(9) || answers.Has(10) {
			maxScore += 4
			for _, interest := range []string{answers.Get(9), answers.Get(10)} {
				if interest == "" {
					continue
				}
				needle := strings.ToLower(interest)
				if tagContains(activity.Tags, needle) {
					score += 2
				} else if descriptionContains(activity.Description, needle) {
					score += 1
				}
			}
		}

		// Age and group
		if answers.Has(2) && answers.Has(3) {
			maxScore += 2
			age := answers.Get(2)
			group := answers.Get(3)

			if (age == "18-25 ans" && (tagContains(activity.Tags, "fun") || tagContains(activity.Tags, "aventure"))) ||
				(age == "60+ ans" && (tagContains(activity.Tags, "calme") || tagContains(activity.Tags, "culture"))) ||
				(group == "En famille" && tagEquals(activity.Tags, "famille")) ||
				(group == "En couple" && tagEquals(activity.Tags, "romantique")) {
				score += 2
			}
		}

		final := 50.0
		if maxScore > 0 {
			final = float64(score) / float64(maxScore) * 100
		}
		scored = append(scored, fallbackScored{activity: activity, score: final})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := fallbackResultCount
	if len(scored) < n {
		n = len(scored)
	}
	result := make([]catalog.Activity, 0, n)
	for _, s := range scored[:n] {
		result = append(result, s.activity)
	}
	return result
}

// fallbackPrice is the recommender's own, simpler price parse: "Gratuit" is
// free, otherwise the leading number after stripping the first euro sign.
// Commas are not treated as decimal separators here.
func fallbackPrice(price string) float64 {
	if price == "Gratuit" {
		return 0
	}
	cleaned := strings.TrimSpace(strings.Replace(price, "€", "", 1))

	end := 0
	seenDot := false
	for i, r := range cleaned {
		if r >= '0' && r <= '9' {
			end = i + 1
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end = i + 1
			continue
		}
		break
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(cleaned[:end], "."), 64)
	if err != nil {
		return 0
	}
	return value
}

// parseDurationHours reads "<N>h<M>" display durations as fractional hours.
// Unparseable durations count as zero hours.
func parseDurationHours(duration string) float64 {
	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}
	hours, _ := strconv.ParseFloat(m[1], 64)
	if m[2] != "" {
		minutes, _ := strconv.ParseFloat(m[2], 64)
		hours += minutes / 60
	}
	return hours
}

// tagEquals checks exact membership, used where the original matched whole
// tags rather than substrings.
func tagEquals(tags []string, wanted string) bool {
	for _, tag := range tags {
		if tag == wanted {
			return true
		}
	}
	return false
}
