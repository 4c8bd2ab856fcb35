package catalog

import (
	"sort"

	"escapade/pkg/utils"
)

// cityCountryMap backfills the country of catalog entries that only carry a
// city. Keys are exact city names as they appear in the catalog.
var cityCountryMap = map[string]string{
	"Paris":        "France",
	"Marseille":    "France",
	"Lyon":         "France",
	"Bordeaux":     "France",
	"Strasbourg":   "France",
	"Nice":         "France",
	"Tokyo":        "Japon",
	"Kyoto":        "Japon",
	"Osaka":        "Japon",
	"Hiroshima":    "Japon",
	"Montréal":     "Canada",
	"Toronto":      "Canada",
	"Vancouver":    "Canada",
	"Québec":       "Canada",
	"Ottawa":       "Canada",
	"Marrakech":    "Maroc",
	"Casablanca":   "Maroc",
	"Fès":          "Maroc",
	"Rabat":        "Maroc",
	"Dakar":        "Sénégal",
	"Saint-Louis":  "Sénégal",
	"Abidjan":      "Côte d'Ivoire",
	"Yamoussoukro": "Côte d'Ivoire",
	"Reykjavik":    "Islande",
	"Akureyri":     "Islande",
	"Vik":          "Islande",
}

// CityCountry returns the country for a known city, or ok=false. Lookup is by
// exact city name, no normalization on the key side.
func CityCountry(city string) (string, bool) {
	country, ok := cityCountryMap[city]
	return country, ok
}

// VerifiedMapping lists the cities shown in the country pickers. It is wider
// than the catalog on purpose so the pickers stay useful as the catalog grows.
var VerifiedMapping = map[string][]string{
	"France":        {"Paris", "Marseille", "Lyon", "Bordeaux", "Strasbourg", "Nice"},
	"Japon":         {"Tokyo", "Kyoto", "Osaka", "Hiroshima", "Sapporo", "Nara"},
	"Canada":        {"Montréal", "Toronto", "Vancouver", "Québec", "Ottawa", "Calgary"},
	"Maroc":         {"Marrakech", "Casablanca", "Fès", "Rabat", "Tanger", "Agadir"},
	"Sénégal":       {"Dakar", "Saint-Louis", "Thiès", "Ziguinchor", "Touba", "Mbour"},
	"Côte d'Ivoire": {"Abidjan", "Yamoussoukro", "Bouaké", "San Pedro", "Korhogo", "Man"},
	"Islande":       {"Reykjavik", "Akureyri", "Vik", "Husavik", "Selfoss", "Keflavik"},
}

// countryCityMapping groups catalog cities by country, cities sorted.
func countryCityMapping(activities []Activity) map[string][]string {
	mapping := make(map[string][]string)

	for _, activity := range activities {
		if activity.Country == "" || activity.City == "" {
			continue
		}
		cities := mapping[activity.Country]
		found := false
		for _, c := range cities {
			if c == activity.City {
				found = true
				break
			}
		}
		if !found {
			mapping[activity.Country] = append(cities, activity.City)
		}
	}

	for country := range mapping {
		sort.Strings(mapping[country])
	}
	return mapping
}

// IsCityInCountry checks the verified mapping first, then what the catalog
// actually contains.
func IsCityInCountry(activities []Activity, city, country string) bool {
	for _, c := range VerifiedMapping[country] {
		if c == city {
			return true
		}
	}
	for _, c := range countryCityMapping(activities)[country] {
		if c == city {
			return true
		}
	}
	return false
}

// CitiesForCountry merges verified and catalog cities, deduplicated and sorted.
func CitiesForCountry(activities []Activity, country string) []string {
	if country == "" {
		return nil
	}

	seen := make(map[string]bool)
	var cities []string
	for _, c := range VerifiedMapping[country] {
		if !seen[c] {
			seen[c] = true
			cities = append(cities, c)
		}
	}
	for _, c := range countryCityMapping(activities)[country] {
		if !seen[c] {
			seen[c] = true
			cities = append(cities, c)
		}
	}

	sort.Strings(cities)
	return cities
}

// Countries returns the countries present in the catalog, sorted, comparing
// names with accent-insensitive normalization to avoid duplicates from
// inconsistent catalog entries.
func Countries(activities []Activity) []string {
	seen := make(map[string]string)
	for _, activity := range activities {
		if activity.Country == "" {
			continue
		}
		key := utils.NormalizeName(activity.Country)
		if _, ok := seen[key]; !ok {
			seen[key] = activity.Country
		}
	}

	countries := make([]string, 0, len(seen))
	for _, name := range seen {
		countries = append(countries, name)
	}
	sort.Strings(countries)
	return countries
}
