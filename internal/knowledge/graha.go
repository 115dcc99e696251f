package knowledge

// Graha is one of the nine planets of the Vedic system.
type Graha struct {
	Key           string
	Sanskrit      string
	English       string
	Nature        string
	Gender        string
	Element       string
	Guna          string
	Day           string
	Direction     string
	Color         string
	Gemstone      string
	Metal         string
	Deity         string
	BodyParts     []string
	Diseases      []string
	Significations []string
	Karakatva     Karakatva
	Exaltation    Dignity
	Debilitation  Dignity
	OwnSigns      []string
	Friends       []string
	Enemies       []string
	Neutral       []string
	Aspects       []int
	DashaYears    int
	DashaOrder    int
}

type Karakatva struct {
	Primary       string
	Relationships string
	Profession    string
}

// Dignity names the sign (and optional degree) of an exaltation or
// debilitation point. Degree 0 with Exact=false means the classical
// texts give no degree (the nodes).
type Dignity struct {
	Sign   string
	Degree int
	Exact  bool
}

var grahas = []Graha{
	{
		Key:      "surya",
		Sanskrit: "Sūrya",
		English:  "Sun",
		Nature:   "natural malefic",
		Gender:   "masculine",
		Element:  "fire",
		Guna:     "sattvic",
		Day:      "Sunday",
		Direction: "East",
		Color:    "copper/red",
		Gemstone: "Ruby (Māṇikya)",
		Metal:    "gold",
		Deity:    "Agni/Śiva",
		BodyParts: []string{"heart", "bones", "right eye", "spine"},
		Diseases:  []string{"heart disease", "eye problems", "fever", "bone disorders"},
		Significations: []string{
			"soul", "father", "king", "government", "authority", "ego", "vitality",
			"health", "fame", "honor", "leadership", "self-confidence", "willpower",
		},
		Karakatva: Karakatva{
			Primary:       "Ātmakāraka (soul)",
			Relationships: "father, paternal figures, authority",
			Profession:    "government, politics, medicine, administration",
		},
		Exaltation:   Dignity{Sign: "Meṣa (Aries)", Degree: 10, Exact: true},
		Debilitation: Dignity{Sign: "Tulā (Libra)", Degree: 10, Exact: true},
		OwnSigns:     []string{"Siṃha (Leo)"},
		Friends:      []string{"Moon", "Mars", "Jupiter"},
		Enemies:      []string{"Venus", "Saturn"},
		Neutral:      []string{"Mercury"},
		Aspects:      []int{7},
		DashaYears:   6,
		DashaOrder:   1,
	},
	{
		Key:      "chandra",
		Sanskrit: "Candra",
		English:  "Moon",
		Nature:   "benefic when waxing, malefic when waning",
		Gender:   "feminine",
		Element:  "water",
		Guna:     "sattvic",
		Day:      "Monday",
		Direction: "Northwest",
		Color:    "white",
		Gemstone: "Pearl (Muktā)",
		Metal:    "silver",
		Deity:    "Pārvatī/Durgā",
		BodyParts: []string{"mind", "blood", "left eye", "breasts", "stomach"},
		Diseases:  []string{"mental disorders", "cold", "cough", "water retention"},
		Significations: []string{
			"mind", "mother", "emotions", "feelings", "public", "popularity",
			"nurturing", "memory", "imagination", "fertility", "travel",
		},
		Karakatva: Karakatva{
			Primary:       "Manas (mind), Mātṛkāraka (mother)",
			Relationships: "mother, maternal figures, women",
			Profession:    "nursing, hospitality, liquids, agriculture",
		},
		Exaltation:   Dignity{Sign: "Vṛṣabha (Taurus)", Degree: 3, Exact: true},
		Debilitation: Dignity{Sign: "Vṛścika (Scorpio)", Degree: 3, Exact: true},
		OwnSigns:     []string{"Karkaṭa (Cancer)"},
		Friends:      []string{"Sun", "Mercury"},
		Enemies:      []string{},
		Neutral:      []string{"Mars", "Jupiter", "Venus", "Saturn"},
		Aspects:      []int{7},
		DashaYears:   10,
		DashaOrder:   2,
	},
	{
		Key:      "mangala",
		Sanskrit: "Maṅgala/Kuja",
		English:  "Mars",
		Nature:   "natural malefic",
		Gender:   "masculine",
		Element:  "fire",
		Guna:     "tamasic",
		Day:      "Tuesday",
		Direction: "South",
		Color:    "red",
		Gemstone: "Red Coral (Pravāla)",
		Metal:    "copper",
		Deity:    "Subrahmaṇya/Kārttikeya",
		BodyParts: []string{"muscles", "blood", "marrow", "head"},
		Diseases:  []string{"accidents", "surgery", "burns", "blood disorders", "fever"},
		Significations: []string{
			"courage", "energy", "brothers", "land", "property", "warfare",
			"aggression", "passion", "sports", "engineering", "surgery",
		},
		Karakatva: Karakatva{
			Primary:       "Bhrātṛkāraka (siblings)",
			Relationships: "younger siblings, brothers",
			Profession:    "military, police, surgery, engineering, sports",
		},
		Exaltation:   Dignity{Sign: "Makara (Capricorn)", Degree: 28, Exact: true},
		Debilitation: Dignity{Sign: "Karkaṭa (Cancer)", Degree: 28, Exact: true},
		OwnSigns:     []string{"Meṣa (Aries)", "Vṛścika (Scorpio)"},
		Friends:      []string{"Sun", "Moon", "Jupiter"},
		Enemies:      []string{"Mercury"},
		Neutral:      []string{"Venus", "Saturn"},
		Aspects:      []int{4, 7, 8},
		DashaYears:   7,
		DashaOrder:   3,
	},
	{
		Key:      "budha",
		Sanskrit: "Budha",
		English:  "Mercury",
		Nature:   "benefic with benefics, malefic with malefics",
		Gender:   "neuter",
		Element:  "earth",
		Guna:     "rajasic",
		Day:      "Wednesday",
		Direction: "North",
		Color:    "green",
		Gemstone: "Emerald (Marakata)",
		Metal:    "bronze",
		Deity:    "Viṣṇu",
		BodyParts: []string{"nervous system", "skin", "tongue", "arms", "lungs"},
		Diseases:  []string{"nervous disorders", "skin diseases", "speech problems"},
		Significations: []string{
			"intelligence", "communication", "commerce", "writing", "mathematics",
			"education", "siblings", "friends", "adaptability", "youth",
		},
		Karakatva: Karakatva{
			Primary:       "Buddhikāraka (intellect)",
			Relationships: "maternal uncle, adopted children",
			Profession:    "writing, accounting, teaching, astrology, trade",
		},
		Exaltation:   Dignity{Sign: "Kanyā (Virgo)", Degree: 15, Exact: true},
		Debilitation: Dignity{Sign: "Mīna (Pisces)", Degree: 15, Exact: true},
		OwnSigns:     []string{"Mithuna (Gemini)", "Kanyā (Virgo)"},
		Friends:      []string{"Sun", "Venus"},
		Enemies:      []string{"Moon"},
		Neutral:      []string{"Mars", "Jupiter", "Saturn"},
		Aspects:      []int{7},
		DashaYears:   17,
		DashaOrder:   4,
	},
	{
		Key:      "guru",
		Sanskrit: "Guru/Bṛhaspati",
		English:  "Jupiter",
		Nature:   "greatest natural benefic",
		Gender:   "masculine",
		Element:  "ether/space",
		Guna:     "sattvic",
		Day:      "Thursday",
		Direction: "Northeast",
		Color:    "yellow",
		Gemstone: "Yellow Sapphire (Puṣparāga)",
		Metal:    "gold",
		Deity:    "Indra/Dakṣiṇāmūrti",
		BodyParts: []string{"liver", "fat", "thighs", "ears"},
		Diseases:  []string{"liver problems", "diabetes", "obesity", "tumors"},
		Significations: []string{
			"wisdom", "knowledge", "dharma", "teacher", "children", "wealth",
			"expansion", "optimism", "husband (for women)", "religion", "fortune",
		},
		Karakatva: Karakatva{
			Primary:       "Putrakāraka (children), Dhana (wealth)",
			Relationships: "husband (female chart), children, teachers",
			Profession:    "teaching, law, finance, priesthood, counseling",
		},
		Exaltation:   Dignity{Sign: "Karkaṭa (Cancer)", Degree: 5, Exact: true},
		Debilitation: Dignity{Sign: "Makara (Capricorn)", Degree: 5, Exact: true},
		OwnSigns:     []string{"Dhanu (Sagittarius)", "Mīna (Pisces)"},
		Friends:      []string{"Sun", "Moon", "Mars"},
		Enemies:      []string{"Mercury", "Venus"},
		Neutral:      []string{"Saturn"},
		Aspects:      []int{5, 7, 9},
		DashaYears:   16,
		DashaOrder:   5,
	},
	{
		Key:      "shukra",
		Sanskrit: "Śukra",
		English:  "Venus",
		Nature:   "natural benefic",
		Gender:   "feminine",
		Element:  "water",
		Guna:     "rajasic",
		Day:      "Friday",
		Direction: "Southeast",
		Color:    "white/variegated",
		Gemstone: "Diamond (Vajra)",
		Metal:    "silver",
		Deity:    "Lakṣmī",
		BodyParts: []string{"reproductive organs", "face", "eyes", "kidneys"},
		Diseases:  []string{"venereal diseases", "kidney problems", "diabetes"},
		Significations: []string{
			"love", "beauty", "art", "music", "luxury", "vehicles", "wife",
			"marriage", "pleasure", "romance", "creativity", "comforts",
		},
		Karakatva: Karakatva{
			Primary:       "Kalatrākāraka (spouse)",
			Relationships: "wife (male chart), lovers, artists",
			Profession:    "arts, fashion, entertainment, luxury goods",
		},
		Exaltation:   Dignity{Sign: "Mīna (Pisces)", Degree: 27, Exact: true},
		Debilitation: Dignity{Sign: "Kanyā (Virgo)", Degree: 27, Exact: true},
		OwnSigns:     []string{"Vṛṣabha (Taurus)", "Tulā (Libra)"},
		Friends:      []string{"Mercury", "Saturn"},
		Enemies:      []string{"Sun", "Moon"},
		Neutral:      []string{"Mars", "Jupiter"},
		Aspects:      []int{7},
		DashaYears:   20,
		DashaOrder:   6,
	},
	{
		Key:      "shani",
		Sanskrit: "Śani",
		English:  "Saturn",
		Nature:   "greatest natural malefic",
		Gender:   "neuter",
		Element:  "air",
		Guna:     "tamasic",
		Day:      "Saturday",
		Direction: "West",
		Color:    "black/dark blue",
		Gemstone: "Blue Sapphire (Nīlam)",
		Metal:    "iron",
		Deity:    "Brahma/Yama",
		BodyParts: []string{"legs", "nerves", "teeth", "bones", "joints"},
		Diseases:  []string{"chronic diseases", "paralysis", "arthritis", "depression"},
		Significations: []string{
			"karma", "discipline", "longevity", "delays", "obstacles",
			"servants", "old age", "sorrow", "persistence", "hard work", "detachment",
		},
		Karakatva: Karakatva{
			Primary:       "Āyuṣkāraka (longevity)",
			Relationships: "servants, elderly, laborers",
			Profession:    "labor, mining, agriculture, judiciary, real estate",
		},
		Exaltation:   Dignity{Sign: "Tulā (Libra)", Degree: 20, Exact: true},
		Debilitation: Dignity{Sign: "Meṣa (Aries)", Degree: 20, Exact: true},
		OwnSigns:     []string{"Makara (Capricorn)", "Kumbha (Aquarius)"},
		Friends:      []string{"Mercury", "Venus"},
		Enemies:      []string{"Sun", "Moon", "Mars"},
		Neutral:      []string{"Jupiter"},
		Aspects:      []int{3, 7, 10},
		DashaYears:   19,
		DashaOrder:   7,
	},
	{
		Key:      "rahu",
		Sanskrit: "Rāhu",
		English:  "North Node",
		Nature:   "malefic (like Saturn)",
		Gender:   "feminine",
		Element:  "air",
		Guna:     "tamasic",
		Day:      "Saturday",
		Direction: "Southwest",
		Color:    "smoky/dark",
		Gemstone: "Hessonite (Gomed)",
		Metal:    "lead",
		Deity:    "Durgā",
		BodyParts: []string{"skin", "breathing"},
		Diseases:  []string{"mysterious diseases", "poison", "psychological disorders"},
		Significations: []string{
			"illusion", "foreign", "unconventional", "obsession", "ambition",
			"technology", "outcasts", "sudden events", "material desires",
		},
		Karakatva: Karakatva{
			Primary:       "Māyā (illusion), foreign matters",
			Relationships: "foreigners, outcasts, paternal grandparents",
			Profession:    "technology, foreign trade, research, speculation",
		},
		Exaltation:   Dignity{Sign: "Vṛṣabha (Taurus)"},
		Debilitation: Dignity{Sign: "Vṛścika (Scorpio)"},
		OwnSigns:     []string{"Kumbha (Aquarius)"},
		Friends:      []string{"Mercury", "Venus", "Saturn"},
		Enemies:      []string{"Sun", "Moon", "Mars"},
		Neutral:      []string{"Jupiter"},
		Aspects:      []int{5, 7, 9},
		DashaYears:   18,
		DashaOrder:   8,
	},
	{
		Key:      "ketu",
		Sanskrit: "Ketu",
		English:  "South Node",
		Nature:   "malefic (like Mars)",
		Gender:   "neuter",
		Element:  "fire",
		Guna:     "tamasic",
		Day:      "Tuesday",
		Direction: "Northeast",
		Color:    "smoky/multicolored",
		Gemstone: "Cat's Eye (Vaidūrya)",
		Metal:    "lead",
		Deity:    "Gaṇeśa",
		BodyParts: []string{"spine", "nervous system"},
		Diseases:  []string{"mysterious diseases", "surgery", "accidents"},
		Significations: []string{
			"moksha", "liberation", "spirituality", "past life karma",
			"detachment", "isolation", "occult", "psychic abilities", "losses",
		},
		Karakatva: Karakatva{
			Primary:       "Mokṣa (liberation)",
			Relationships: "maternal grandparents, spiritual teachers",
			Profession:    "occult, research, mathematics, programming",
		},
		Exaltation:   Dignity{Sign: "Vṛścika (Scorpio)"},
		Debilitation: Dignity{Sign: "Vṛṣabha (Taurus)"},
		OwnSigns:     []string{"Vṛścika (Scorpio)"},
		Friends:      []string{"Mercury", "Venus", "Saturn"},
		Enemies:      []string{"Sun", "Moon", "Mars"},
		Neutral:      []string{"Jupiter"},
		Aspects:      []int{5, 7, 9},
		DashaYears:   7,
		DashaOrder:   9,
	},
}
