package knowledge

// Bhava is one of the twelve houses.
type Bhava struct {
	Number          int
	Name            string
	English         string
	NaturalSign     string
	Karaka          string
	Category        string
	Significations  []string
	PredictionAreas []string
}

var bhavas = []Bhava{
	{
		Number: 1, Name: "Lagna/Tanu Bhāva", English: "Ascendant/First House",
		NaturalSign: "Aries", Karaka: "Sun",
		Category: "kendra (angle), trikona (trine)",
		Significations: []string{
			"self", "body", "personality", "appearance", "health", "vitality",
			"birth", "head", "brain", "general fortune", "beginning of life",
		},
		PredictionAreas: []string{
			"physical constitution", "personality traits", "general health",
			"life direction", "fame", "success", "longevity indicators",
		},
	},
	{
		Number: 2, Name: "Dhana Bhāva", English: "Second House",
		NaturalSign: "Taurus", Karaka: "Jupiter",
		Category: "maraka (death-inflicting)",
		Significations: []string{
			"wealth", "family", "speech", "food", "face", "right eye",
			"accumulated wealth", "values", "early childhood", "death",
		},
		PredictionAreas: []string{
			"financial status", "family relations", "speech patterns",
			"food habits", "savings", "facial features", "early education",
		},
	},
	{
		Number: 3, Name: "Sahaja/Parākrama Bhāva", English: "Third House",
		NaturalSign: "Gemini", Karaka: "Mars",
		Category: "upachaya (growing)",
		Significations: []string{
			"siblings", "courage", "communication", "short journeys",
			"arms", "shoulders", "neighbors", "skills", "hobbies", "efforts",
		},
		PredictionAreas: []string{
			"sibling relations", "courage and valor", "communication skills",
			"short travels", "writing ability", "artistic talents",
		},
	},
	{
		Number: 4, Name: "Sukha/Bandhu Bhāva", English: "Fourth House",
		NaturalSign: "Cancer", Karaka: "Moon, Mercury",
		Category: "kendra (angle)",
		Significations: []string{
			"mother", "home", "property", "vehicles", "education", "happiness",
			"chest", "heart", "comfort", "land", "domestic peace", "emotions",
		},
		PredictionAreas: []string{
			"mother's health", "property ownership", "vehicle acquisition",
			"domestic happiness", "formal education", "emotional well-being",
		},
	},
	{
		Number: 5, Name: "Putra/Suta Bhāva", English: "Fifth House",
		NaturalSign: "Leo", Karaka: "Jupiter",
		Category: "trikona (trine)",
		Significations: []string{
			"children", "creativity", "intelligence", "romance", "speculation",
			"past life merit", "mantras", "stomach", "higher education", "fame",
		},
		PredictionAreas: []string{
			"childbirth timing", "children's welfare", "creative pursuits",
			"speculative gains", "romantic affairs", "spiritual practices",
		},
	},
	{
		Number: 6, Name: "Ripu/Ari Bhāva", English: "Sixth House",
		NaturalSign: "Virgo", Karaka: "Mars, Saturn",
		Category: "trik (evil), upachaya (growing)",
		Significations: []string{
			"enemies", "diseases", "debts", "service", "obstacles", "pets",
			"maternal uncle", "theft", "accidents", "intestines", "competition",
		},
		PredictionAreas: []string{
			"health issues", "legal disputes", "debts", "employment",
			"enemies and competitors", "daily work", "service to others",
		},
	},
	{
		Number: 7, Name: "Kalatrā/Jāyā Bhāva", English: "Seventh House",
		NaturalSign: "Libra", Karaka: "Venus",
		Category: "kendra (angle), maraka (death-inflicting)",
		Significations: []string{
			"spouse", "marriage", "partnerships", "business", "foreign travel",
			"public dealings", "lower abdomen", "kidneys", "contracts", "desires",
		},
		PredictionAreas: []string{
			"marriage timing", "spouse characteristics", "marital harmony",
			"business partnerships", "foreign settlement", "public image",
		},
	},
	{
		Number: 8, Name: "Āyu/Mṛtyu Bhāva", English: "Eighth House",
		NaturalSign: "Scorpio", Karaka: "Saturn",
		Category: "trik (evil)",
		Significations: []string{
			"longevity", "death", "transformation", "inheritance", "occult",
			"research", "accidents", "chronic disease", "hidden matters", "obstacles",
		},
		PredictionAreas: []string{
			"longevity calculation", "mode of death", "inheritance",
			"sudden events", "chronic diseases", "occult abilities", "research",
		},
	},
	{
		Number: 9, Name: "Dharma/Bhāgya Bhāva", English: "Ninth House",
		NaturalSign: "Sagittarius", Karaka: "Jupiter, Sun",
		Category: "trikona (trine)",
		Significations: []string{
			"father", "fortune", "religion", "dharma", "guru", "long journeys",
			"higher education", "philosophy", "law", "grandchildren", "thighs",
		},
		PredictionAreas: []string{
			"father's welfare", "fortune and luck", "religious inclination",
			"foreign travel", "higher learning", "spiritual guru", "legal matters",
		},
	},
	{
		Number: 10, Name: "Karma/Rājya Bhāva", English: "Tenth House",
		NaturalSign: "Capricorn", Karaka: "Sun, Saturn, Mercury, Jupiter",
		Category: "kendra (angle), upachaya (growing)",
		Significations: []string{
			"career", "profession", "status", "authority", "government",
			"fame", "karma", "father (alternate)", "knees", "achievement",
		},
		PredictionAreas: []string{
			"career success", "professional growth", "public recognition",
			"government relations", "authority positions", "achievements",
		},
	},
	{
		Number: 11, Name: "Lābha Bhāva", English: "Eleventh House",
		NaturalSign: "Aquarius", Karaka: "Jupiter",
		Category: "upachaya (growing)",
		Significations: []string{
			"gains", "income", "elder siblings", "friends", "desires fulfilled",
			"ankles", "social network", "achievements", "aspirations",
		},
		PredictionAreas: []string{
			"financial gains", "elder sibling relations", "friendships",
			"wish fulfillment", "networking", "income sources",
		},
	},
	{
		Number: 12, Name: "Vyaya/Mokṣa Bhāva", English: "Twelfth House",
		NaturalSign: "Pisces", Karaka: "Saturn, Ketu",
		Category: "trik (evil)",
		Significations: []string{
			"losses", "expenses", "foreign lands", "moksha", "hospitalization",
			"isolation", "bed pleasures", "feet", "left eye", "subconscious",
		},
		PredictionAreas: []string{
			"foreign settlement", "spiritual liberation", "expenses",
			"hospitalization", "sleep patterns", "subconscious tendencies",
		},
	},
}
