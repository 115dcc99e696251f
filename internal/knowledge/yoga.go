package knowledge

// Yoga is a named planetary combination with its classical effects.
type Yoga struct {
	Key       string
	Name      string
	Planets   []string
	Condition string
	Effects   string
	Category  string
}

var yogas = []Yoga{
	{
		Key: "ruchaka", Name: "Ruchaka Yoga", Planets: []string{"Mars"},
		Condition: "Mars in own sign or exaltation in kendra",
		Effects:   "Courage, commander, powerful, successful in battles",
		Category:  "pancha_mahapurusha",
	},
	{
		Key: "bhadra", Name: "Bhadra Yoga", Planets: []string{"Mercury"},
		Condition: "Mercury in own sign or exaltation in kendra",
		Effects:   "Intelligence, eloquence, learned, good in business",
		Category:  "pancha_mahapurusha",
	},
	{
		Key: "hamsa", Name: "Hamsa Yoga", Planets: []string{"Jupiter"},
		Condition: "Jupiter in own sign or exaltation in kendra",
		Effects:   "Righteous, religious, respected, blessed with good fortune",
		Category:  "pancha_mahapurusha",
	},
	{
		Key: "malavya", Name: "Malavya Yoga", Planets: []string{"Venus"},
		Condition: "Venus in own sign or exaltation in kendra",
		Effects:   "Prosperous, beautiful spouse, artistic, luxurious life",
		Category:  "pancha_mahapurusha",
	},
	{
		Key: "shasha", Name: "Śaśa Yoga", Planets: []string{"Saturn"},
		Condition: "Saturn in own sign or exaltation in kendra",
		Effects:   "Leader, commands servants, successful late in life",
		Category:  "pancha_mahapurusha",
	},
	{
		Key: "dhana", Name: "Dhana Yoga", Planets: []string{"various"},
		Condition: "Lords of 1, 2, 5, 9, 11 in mutual connection",
		Effects:   "Wealth accumulation, financial prosperity",
		Category:  "wealth",
	},
	{
		Key: "lakshmi", Name: "Lakshmi Yoga", Planets: []string{"Venus", "9th lord"},
		Condition: "9th lord strong in kendra/trikona with Venus",
		Effects:   "Great wealth, prosperity, blessed by Lakshmi",
		Category:  "wealth",
	},
	{
		Key: "raja", Name: "Rāja Yoga", Planets: []string{"kendra/trikona lords"},
		Condition: "Kendra lord conjunct trikona lord",
		Effects:   "Power, authority, success, recognition",
		Category:  "raja",
	},
	{
		Key: "dharma_karmadhipati", Name: "Dharma-Karmādhipati Yoga",
		Planets:   []string{"9th lord", "10th lord"},
		Condition: "9th and 10th lords conjunct or in mutual aspect",
		Effects:   "Fortune through career, righteous success",
		Category:  "raja",
	},
	{
		Key: "kemadruma", Name: "Kemadruma Yoga", Planets: []string{"Moon"},
		Condition: "No planets in 2nd or 12th from Moon",
		Effects:   "Poverty, struggles, lack of support (cancelled by various factors)",
		Category:  "negative",
	},
	{
		Key: "kala_sarpa", Name: "Kālasarpa Yoga",
		Planets:   []string{"all grahas", "Rahu", "Ketu"},
		Condition: "All planets between Rahu-Ketu axis",
		Effects:   "Karmic struggles, delays, ultimate transformation",
		Category:  "negative",
	},
}
