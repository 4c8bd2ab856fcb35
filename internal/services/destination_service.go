package services

import (
	"sort"

	"escapade/internal/models/response_models"
	"escapade/pkg/utils"
)

type DestinationServiceInterface interface {
	ListDestinations() []response_models.TravelDestination
	GetDestination(id string) (response_models.TravelDestination, error)
}

// DestinationService serves the static country sheets of the travel planner.
// The data is editorial and ships with the binary, the same way the activity
// catalog does.
type DestinationService struct {
	destinations map[string]response_models.TravelDestination
}

func NewDestinationService() DestinationServiceInterface {
	return &DestinationService{destinations: travelDestinations}
}

func (d *DestinationService) ListDestinations() []response_models.TravelDestination {
	result := make([]response_models.TravelDestination, 0, len(d.destinations))
	for _, dest := range d.destinations {
		result = append(result, dest)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (d *DestinationService) GetDestination(id string) (response_models.TravelDestination, error) {
	dest, ok := d.destinations[id]
	if !ok {
		return response_models.TravelDestination{}, utils.ErrDestinationNotFound
	}
	return dest, nil
}

var travelDestinations = map[string]response_models.TravelDestination{
	"canada": {
		ID:          "canada",
		Name:        "Canada",
		Capital:     "Ottawa",
		Description: "Le Canada séduit par ses grands espaces sauvages et sa diversité culturelle. Des montagnes Rocheuses aux chutes du Niagara, en passant par les métropoles cosmopolites, découvrez un pays où nature et modernité coexistent en harmonie.",
		Currency:    "CAD",
		Languages: response_models.DestinationLanguages{
			Primary: "Anglais et Français",
			French:  "high",
			English: "high",
		},
		WeeklyBudget: response_models.WeeklyBudget{Low: 600, Medium: 1200, High: 2000},
		Ratings: response_models.DestinationRatings{
			Cost: 2, Safety: 5, Culture: 4, Weather: 3, Accessibility: 5,
		},
		Preparations: []string{
			"Passeport valide",
			"AVE (Autorisation de Voyage Électronique)",
			"Assurance voyage et santé",
			"Vêtements adaptés aux saisons",
			"Réservations d'hébergement à l'avance",
		},
		Recommendations: []string{
			"Parc national de Banff",
			"Chutes du Niagara",
			"Vieux-Québec",
			"CN Tower à Toronto",
			"Observation des aurores boréales",
		},
		Warnings: []string{
			"Températures extrêmes en hiver",
			"Coût de la vie élevé",
			"Distances importantes entre les villes",
			"Faune sauvage dans les parcs",
			"Variations climatiques importantes",
		},
		OfficialLinks: response_models.OfficialLinks{
			Tourism: "https://www.canada.ca/fr/services/tourisme.html",
			Health:  "https://www.canada.ca/fr/sante-publique.html",
		},
	},
	"cote-ivoire": {
		ID:          "cote-ivoire",
		Name:        "Côte d'Ivoire",
		Capital:     "Yamoussoukro",
		Description: "La Côte d'Ivoire séduit par sa diversité culturelle et sa richesse naturelle. Un pays où forêts tropicales et plages de sable fin côtoient une culture vibrante, où l'art, la musique et la gastronomie créent une expérience unique.",
		Currency:    "XOF - Franc CFA",
		Languages: response_models.DestinationLanguages{
			Primary: "Français",
			French:  "high",
			English: "low",
		},
		WeeklyBudget: response_models.WeeklyBudget{Low: 300, Medium: 600, High: 1000},
		Ratings: response_models.DestinationRatings{
			Cost: 2, Safety: 3, Culture: 5, Weather: 4, Accessibility: 3,
		},
		Preparations: []string{
			"Passeport valide 6 mois après le retour",
			"Visa obligatoire",
			"Vaccin fièvre jaune obligatoire",
			"Traitement antipaludéen recommandé",
			"Assurance voyage indispensable",
		},
		Recommendations: []string{
			"Basilique Notre-Dame de la Paix à Yamoussoukro",
			"Parc national de Taï",
			"Plages de Grand-Bassam",
			"Marché artisanal de Treichville",
			"Parc national de la Comoé",
		},
		Warnings: []string{
			"Éviter les zones frontalières sensibles",
			"Vigilance dans les grandes villes",
			"Attention aux arnaques touristiques",
			"Protection contre les moustiques",
			"Boire uniquement de l'eau en bouteille",
		},
		OfficialLinks: response_models.OfficialLinks{
			Tourism: "https://tourisme.gouv.ci",
			Health:  "https://www.sante.gouv.ci",
		},
	},
	"france": {
		ID:          "france",
		Name:        "France",
		Capital:     "Paris",
		Description: "La France enchante par son patrimoine culturel exceptionnel et sa gastronomie mondialement reconnue. Des châteaux de la Loire aux plages de la Côte d'Azur, en passant par les sommets alpins, chaque région offre une expérience unique.",
		Currency:    "EUR",
		Languages: response_models.DestinationLanguages{
			Primary: "Français",
			French:  "high",
			English: "medium",
		},
		WeeklyBudget: response_models.WeeklyBudget{Low: 500, Medium: 1000, High: 2000},
		Ratings: response_models.DestinationRatings{
			Cost: 3, Safety: 4, Culture: 5, Weather: 4, Accessibility: 5,
		},
		Preparations: []string{
			"Carte d'identité ou passeport",
			"Carte européenne d'assurance maladie (UE)",
			"Réservations restaurants/musées conseillées",
			"Adaptateur électrique (UK/US)",
			"Quelques phrases en français",
		},
		Recommendations: []string{
			"Tour Eiffel et Musée du Louvre",
			"Châteaux de la Loire",
			"Mont Saint-Michel",
			"Promenade sur la Côte d'Azur",
			"Dégustation de vins en Bourgogne",
		},
		Warnings: []string{
			"Pickpockets dans les zones touristiques",
			"Restaurants touristiques à éviter",
			"Grèves possibles des transports",
			"Heures de fermeture des commerces",
			"Éviter les périodes de vacances scolaires",
		},
		OfficialLinks: response_models.OfficialLinks{
			Tourism: "https://www.france.fr",
			Health:  "https://www.sante.gouv.fr",
		},
	},
	"islande": {
		ID:          "islande",
		Name:        "Islande",
		Capital:     "Reykjavik",
		Description: "L'Islande fascine par ses paysages lunaires, ses volcans actifs et ses sources d'eau chaude naturelles. Terre de feu et de glace, ce pays nordique offre une expérience unique entre aurores boréales, geysers et cascades spectaculaires.",
		Currency:    "ISK",
		Languages: response_models.DestinationLanguages{
			Primary: "Islandais",
			French:  "low",
			English: "high",
		},
		WeeklyBudget: response_models.WeeklyBudget{Low: 800, Medium: 1500, High: 2500},
		Ratings: response_models.DestinationRatings{
			Cost: 1, Safety: 5, Culture: 4, Weather: 2, Accessibility: 4,
		},
		Preparations: []string{
			"Passeport ou carte d'identité (UE)",
			"Vêtements chauds et imperméables",
			"Crampons pour la glace (hiver)",
			"Réservation de voiture à l'avance",
			"Budget conséquent pour la nourriture",
		},
		Recommendations: []string{
			"Cercle d'Or (Geysir, Gullfoss, Thingvellir)",
			"Lagon Bleu",
			"Plage de sable noir de Reynisfjara",
			"Glacier Vatnajökull",
			"Observation des aurores boréales (sept-avril)",
		},
		Warnings: []string{
			"Conditions météo changeantes et imprévisibles",
			"Coût de la vie très élevé",
			"Conduite difficile en hiver",
			"Respecter les sentiers balisés",
			"Ne pas s'approcher des bords de falaises",
		},
		OfficialLinks: response_models.OfficialLinks{
			Tourism: "https://www.visiticeland.com",
			Health:  "https://www.landlaeknir.is/english/",
		},
	},
	"japon": {
		ID:          "japon",
		Name:        "Japon",
		Capital:     "Tokyo",
		Description: "Le Japon fascine par son mélange unique de traditions ancestrales et d'innovations futuristes. Des temples zen aux gratte-ciels de Tokyo, en passant par la gastronomie raffinée, découvrez un pays où passé et futur se rencontrent.",
		Currency:    "JPY",
		Languages: response_models.DestinationLanguages{
			Primary: "Japonais",
			French:  "low",
			English: "medium",
		},
		WeeklyBudget: response_models.WeeklyBudget{Low: 700, Medium: 1500, High: 3000},
		Ratings: response_models.DestinationRatings{
			Cost: 2, Safety: 5, Culture: 5, Weather: 4, Accessibility: 5,
		},
		Preparations: []string{
			"Passeport valide",
			"Japan Rail Pass avant le départ",
			"Réservations d'hébergement",
			"Application de traduction",
			"Carte de crédit internationale",
		},
		Recommendations: []string{
			"Temple Senso-ji à Tokyo",
			"Mont Fuji",
			"Temples de Kyoto",
			"Parc aux daims de Nara",
			"Quartier de Shibuya",
		},
		Warnings: []string{
			"Coût de la vie élevé",
			"Barrière de la langue",
			"Risques sismiques",
			"Période des typhons (été-automne)",
			"Règles d'étiquette strictes",
		},
		OfficialLinks: response_models.OfficialLinks{
			Tourism: "https://www.japan.travel/fr/",
			Health:  "https://www.mhlw.go.jp/english/",
		},
	},
	"maroc": {
		ID:          "maroc",
		Name:        "Maroc",
		Capital:     "Rabat",
		Description: "Le Maroc séduit par ses médinas labyrinthiques et ses paysages contrastés. Des souks animés de Marrakech aux dunes du Sahara, en passant par les montagnes de l'Atlas, vivez une expérience sensorielle unique entre tradition et modernité.",
		Currency:    "MAD",
		Languages: response_models.DestinationLanguages{
			Primary: "Arabe",
			French:  "high",
			English: "medium",
		},
		WeeklyBudget: response_models.WeeklyBudget{Low: 300, Medium: 600, High: 1200},
		Ratings: response_models.DestinationRatings{
			Cost: 4, Safety: 4, Culture: 5, Weather: 4, Accessibility: 4,
		},
		Preparations: []string{
			"Passeport valide",
			"Respect des coutumes locales",
			"Tenue vestimentaire adaptée",
			"Vaccins recommandés à jour",
			"Assurance voyage",
		},
		Recommendations: []string{
			"Médina de Marrakech",
			"Désert du Sahara",
			"Fès",
			"Chefchaouen",
			"Essaouira",
		},
		Warnings: []string{
			"Attention aux pickpockets",
			"Marchandage obligatoire",
			"Éviter certains quartiers la nuit",
			"Respect des traditions pendant le Ramadan",
			"Eau du robinet déconseillée",
		},
		OfficialLinks: response_models.OfficialLinks{
			Tourism: "https://www.visitmorocco.com",
			Health:  "https://www.sante.gov.ma",
		},
	},
	"senegal": {
		ID:          "senegal",
		Name:        "Sénégal",
		Capital:     "Dakar",
		Description: "Le Sénégal enchante par ses plages dorées, sa culture vibrante et son hospitalité légendaire. De Dakar la cosmopolite à la mystique île de Gorée, en passant par les parcs nationaux, découvrez un pays riche en histoire et en émotions.",
		Currency:    "XOF - Franc CFA",
		Languages: response_models.DestinationLanguages{
			Primary: "Français (Wolof langue nationale)",
			French:  "high",
			English: "low",
		},
		WeeklyBudget: response_models.WeeklyBudget{Low: 300, Medium: 600, High: 1000},
		Ratings: response_models.DestinationRatings{
			Cost: 4, Safety: 4, Culture: 5, Weather: 4, Accessibility: 3,
		},
		Preparations: []string{
			"Passeport valide 6 mois après le retour",
			"Visa selon nationalité",
			"Vaccin fièvre jaune recommandé",
			"Traitement antipaludéen conseillé",
			"Assurance voyage",
		},
		Recommendations: []string{
			"Île de Gorée",
			"Parc national du Djoudj",
			"Lac Rose",
			"Saint-Louis",
			"Réserve de Bandia",
		},
		Warnings: []string{
			"Éviter la Casamance / y aller avec un guide de confiance",
			"Attention aux arnaques touristiques",
			"Protection contre le soleil",
			"Boire uniquement de l'eau en bouteille",
			"Éviter les plages isolées la nuit",
		},
		OfficialLinks: response_models.OfficialLinks{
			Tourism: "https://www.tourisme.gouv.sn",
			Health:  "https://www.sante.gouv.sn",
		},
	},
}
