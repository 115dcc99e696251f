package knowledge

// Rashi is one of the twelve zodiacal signs.
type Rashi struct {
	Key             string
	Sanskrit        string
	English         string
	Number          int
	Element         string
	Quality         string
	Gender          string
	Direction       string
	Lord            string
	CoLord          string
	BodyPart        string
	Nature          string
	Characteristics []string
}

var rashis = []Rashi{
	{
		Key: "mesha", Sanskrit: "Meṣa", English: "Aries", Number: 1,
		Element: "fire", Quality: "movable (cara)", Gender: "masculine",
		Direction: "East", Lord: "Mars", BodyPart: "head",
		Nature: "aggressive, pioneering, independent",
		Characteristics: []string{
			"leadership", "initiative", "courage", "impulsiveness",
			"competitive", "energetic", "direct", "self-assertive",
		},
	},
	{
		Key: "vrishabha", Sanskrit: "Vṛṣabha", English: "Taurus", Number: 2,
		Element: "earth", Quality: "fixed (sthira)", Gender: "feminine",
		Direction: "South", Lord: "Venus", BodyPart: "face, throat",
		Nature: "stable, sensual, materialistic",
		Characteristics: []string{
			"patience", "reliability", "determination", "possessiveness",
			"artistic", "comfort-loving", "practical", "stubborn",
		},
	},
	{
		Key: "mithuna", Sanskrit: "Mithuna", English: "Gemini", Number: 3,
		Element: "air", Quality: "dual (dvisvabhāva)", Gender: "masculine",
		Direction: "West", Lord: "Mercury", BodyPart: "shoulders, arms",
		Nature: "communicative, intellectual, versatile",
		Characteristics: []string{
			"adaptability", "curiosity", "wit", "restlessness",
			"duality", "communication", "learning", "superficiality",
		},
	},
	{
		Key: "karkata", Sanskrit: "Karkaṭa", English: "Cancer", Number: 4,
		Element: "water", Quality: "movable (cara)", Gender: "feminine",
		Direction: "North", Lord: "Moon", BodyPart: "chest, breasts",
		Nature: "emotional, nurturing, protective",
		Characteristics: []string{
			"sensitivity", "domesticity", "intuition", "moodiness",
			"caring", "tenacity", "patriotism", "insecurity",
		},
	},
	{
		Key: "simha", Sanskrit: "Siṃha", English: "Leo", Number: 5,
		Element: "fire", Quality: "fixed (sthira)", Gender: "masculine",
		Direction: "East", Lord: "Sun", BodyPart: "heart, stomach",
		Nature: "royal, creative, dramatic",
		Characteristics: []string{
			"leadership", "generosity", "pride", "creativity",
			"confidence", "warmth", "arrogance", "loyalty",
		},
	},
	{
		Key: "kanya", Sanskrit: "Kanyā", English: "Virgo", Number: 6,
		Element: "earth", Quality: "dual (dvisvabhāva)", Gender: "feminine",
		Direction: "South", Lord: "Mercury", BodyPart: "intestines, waist",
		Nature: "analytical, practical, service-oriented",
		Characteristics: []string{
			"discrimination", "precision", "criticism", "modesty",
			"health-conscious", "perfectionism", "worry", "helpfulness",
		},
	},
	{
		Key: "tula", Sanskrit: "Tulā", English: "Libra", Number: 7,
		Element: "air", Quality: "movable (cara)", Gender: "masculine",
		Direction: "West", Lord: "Venus", BodyPart: "lower abdomen, kidneys",
		Nature: "balanced, harmonious, partnership-oriented",
		Characteristics: []string{
			"diplomacy", "justice", "partnership", "indecision",
			"charm", "refinement", "balance", "dependency",
		},
	},
	{
		Key: "vrishchika", Sanskrit: "Vṛścika", English: "Scorpio", Number: 8,
		Element: "water", Quality: "fixed (sthira)", Gender: "feminine",
		Direction: "North", Lord: "Mars", CoLord: "Ketu",
		BodyPart: "genitals, reproductive organs",
		Nature:   "intense, transformative, secretive",
		Characteristics: []string{
			"intensity", "passion", "secrecy", "jealousy",
			"transformation", "research", "occult", "vengeance",
		},
	},
	{
		Key: "dhanu", Sanskrit: "Dhanu", English: "Sagittarius", Number: 9,
		Element: "fire", Quality: "dual (dvisvabhāva)", Gender: "masculine",
		Direction: "East", Lord: "Jupiter", BodyPart: "thighs, hips",
		Nature: "philosophical, adventurous, optimistic",
		Characteristics: []string{
			"optimism", "philosophy", "travel", "restlessness",
			"honesty", "higher learning", "preaching", "exaggeration",
		},
	},
	{
		Key: "makara", Sanskrit: "Makara", English: "Capricorn", Number: 10,
		Element: "earth", Quality: "movable (cara)", Gender: "feminine",
		Direction: "South", Lord: "Saturn", BodyPart: "knees",
		Nature: "ambitious, disciplined, practical",
		Characteristics: []string{
			"ambition", "discipline", "responsibility", "pessimism",
			"status", "authority", "tradition", "coldness",
		},
	},
	{
		Key: "kumbha", Sanskrit: "Kumbha", English: "Aquarius", Number: 11,
		Element: "air", Quality: "fixed (sthira)", Gender: "masculine",
		Direction: "West", Lord: "Saturn", CoLord: "Rahu",
		BodyPart: "ankles, calves",
		Nature:   "humanitarian, innovative, detached",
		Characteristics: []string{
			"originality", "humanitarianism", "detachment", "eccentricity",
			"independence", "innovation", "rebellion", "aloofness",
		},
	},
	{
		Key: "meena", Sanskrit: "Mīna", English: "Pisces", Number: 12,
		Element: "water", Quality: "dual (dvisvabhāva)", Gender: "feminine",
		Direction: "North", Lord: "Jupiter", CoLord: "Ketu",
		BodyPart: "feet",
		Nature:   "spiritual, intuitive, compassionate",
		Characteristics: []string{
			"spirituality", "compassion", "imagination", "escapism",
			"psychic", "sacrifice", "illusion", "transcendence",
		},
	},
}
