package templates

// QA types.
const (
	TypeDefinition     = "definition"
	TypeConcept        = "concept"
	TypeInterpretation = "interpretation"
	TypeComparison     = "comparison"
	TypePrediction     = "prediction"
	TypeProcedure      = "procedure"
	TypeRule           = "rule"
)

var GrahaBasic = []Template{
	{
		Pattern:        "Describe the nature and significations of {graha_sanskrit} ({graha_english}).",
		AnswerGuidance: "Include: nature (benefic/malefic), element, guna, primary significations, body parts, diseases, karakatva",
		QAType:         TypeDefinition,
		Difficulty:     "easy",
	},
	{
		Pattern:        "What does {graha_sanskrit} represent as a kāraka in Vedic astrology?",
		AnswerGuidance: "Focus on karakatva: primary signification, relationships, profession indications",
		QAType:         TypeConcept,
		Difficulty:     "easy",
	},
	{
		Pattern:        "List the friends, enemies, and neutral planets for {graha_sanskrit}.",
		AnswerGuidance: "Provide natural relationships: friends, enemies, neutral planets",
		QAType:         TypeDefinition,
		Difficulty:     "easy",
	},
}

var GrahaBhavaPlacement = []Template{
	{
		Pattern:        "Interpret {graha_sanskrit} placed in the {bhava_ordinal} house ({bhava_name}).",
		AnswerGuidance: "Combine graha significations with bhava significations, give practical results",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
}

var GrahaRashiPlacement = []Template{
	{
		Pattern:        "How does {graha_sanskrit} behave when placed in {rashi_sanskrit} ({rashi_english})?",
		AnswerGuidance: "Consider dignity (exaltation/debilitation/own/friend/enemy), element compatibility, specific results",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
}

var GrahaDignity = []Template{
	{
		Pattern:        "Explain the effects of exalted {graha_sanskrit} in a birth chart.",
		AnswerGuidance: "Include: exaltation sign, degree, enhanced positive significations, potential issues from over-strength",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
	{
		Pattern:        "What happens when {graha_sanskrit} is debilitated? Can it give good results?",
		AnswerGuidance: "Debilitation sign, degree, neecha bhanga conditions, contextual analysis",
		QAType:         TypeInterpretation,
		Difficulty:     "hard",
	},
	{
		Pattern:        "Compare {graha_sanskrit} in its own sign versus its exaltation sign.",
		AnswerGuidance: "Contrast svakshetra vs uccha effects, which is stronger for what purposes",
		QAType:         TypeComparison,
		Difficulty:     "hard",
	},
}

var GrahaDasha = []Template{
	{
		Pattern:        "What general results occur during {graha_sanskrit} Mahādaśā?",
		AnswerGuidance: "Include: dasha duration, general themes, what areas of life are activated",
		QAType:         TypePrediction,
		Difficulty:     "medium",
	},
	{
		Pattern:        "How does {graha_sanskrit} Mahādaśā affect career prospects?",
		AnswerGuidance: "Link graha nature to career changes, promotions, or challenges during its period",
		QAType:         TypePrediction,
		Difficulty:     "medium",
		Category:       "career",
	},
	{
		Pattern:        "Predict health during {graha_sanskrit} Mahādaśā based on its significations.",
		AnswerGuidance: "Connect the graha's body parts and diseases to potential health issues during its period",
		QAType:         TypePrediction,
		Difficulty:     "hard",
		Category:       "health",
	},
}

var GrahaAspects = []Template{
	{
		Pattern:        "Which houses does {graha_sanskrit} aspect and what is the significance of each aspect?",
		AnswerGuidance: "List aspects (7th for all, special aspects for Mars/Jupiter/Saturn), describe what each aspect does",
		QAType:         TypeRule,
		Difficulty:     "medium",
	},
}

var GrahaConjunction = []Template{
	{
		Pattern:        "Analyze the conjunction of {graha1_sanskrit} and {graha2_sanskrit}.",
		AnswerGuidance: "Natural relationship, combined significations, yoga formation if any, practical results",
		QAType:         TypeInterpretation,
		Difficulty:     "hard",
	},
	{
		Pattern:        "How does {graha1_sanskrit}'s aspect on {graha2_sanskrit} modify the latter's results?",
		AnswerGuidance: "Benefic/malefic influence, enhancement or affliction, specific combinations",
		QAType:         TypeInterpretation,
		Difficulty:     "hard",
	},
}

var BhavaBasic = []Template{
	{
		Pattern:        "What are the primary significations of the {bhava_ordinal} house ({bhava_name})?",
		AnswerGuidance: "List all major significations, karaka, natural sign, category",
		QAType:         TypeDefinition,
		Difficulty:     "easy",
	},
	{
		Pattern:        "Which planet is the natural significator (kāraka) of the {bhava_ordinal} house?",
		AnswerGuidance: "Name the karaka and explain why it signifies this house",
		QAType:         TypeDefinition,
		Difficulty:     "easy",
	},
}

var BhavaLordship = []Template{
	{
		Pattern:        "When the {bhava_ordinal} lord is in the {target_bhava_ordinal} house, what results?",
		AnswerGuidance: "Combine source house themes going to target house, practical predictions",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
}

var BhavaPrediction = []Template{
	{
		Pattern:        "Using the {bhava_ordinal} house, how do you predict {prediction_area}?",
		AnswerGuidance: "Step-by-step analysis: sign, lord, planets in house, aspects, karaka",
		QAType:         TypeProcedure,
		Difficulty:     "medium",
	},
	{
		Pattern:        "What factors in the {bhava_ordinal} house indicate success in {prediction_area}?",
		AnswerGuidance: "Benefic placements, strong lord, positive aspects, yoga formations",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
	{
		Pattern:        "What combinations in the {bhava_ordinal} house cause problems for {prediction_area}?",
		AnswerGuidance: "Malefic influences, weak lord, negative aspects, dosha formations",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
}

var RashiBasic = []Template{
	{
		Pattern:        "Describe the characteristics of {rashi_sanskrit} ({rashi_english}) rāśi.",
		AnswerGuidance: "Element, quality, lord, gender, direction, nature, key traits",
		QAType:         TypeDefinition,
		Difficulty:     "easy",
	},
	{
		Pattern:        "What body part is associated with {rashi_sanskrit} and how is this used in medical astrology?",
		AnswerGuidance: "Body part, related health issues, diagnostic applications",
		QAType:         TypeConcept,
		Difficulty:     "medium",
	},
}

var RashiLagna = []Template{
	{
		Pattern:        "What are the personality traits of a {rashi_sanskrit} ascendant native?",
		AnswerGuidance: "Physical appearance, personality, strengths, weaknesses, life themes",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
	{
		Pattern:        "What career suits a {rashi_sanskrit} ascendant based on the 10th house lord?",
		AnswerGuidance: "Identify the 10th house sign, its lord, suitable professions",
		QAType:         TypePrediction,
		Difficulty:     "medium",
		Category:       "career",
	},
}

var YogaDefinition = []Template{
	{
		Pattern:        "Define {yoga_name} and explain how it forms.",
		AnswerGuidance: "Formation conditions, planets involved, requirements",
		QAType:         TypeDefinition,
		Difficulty:     "medium",
	},
	{
		Pattern:        "What are the effects of {yoga_name} when fully formed?",
		AnswerGuidance: "Positive/negative results, areas of life affected, strength variations",
		QAType:         TypeInterpretation,
		Difficulty:     "medium",
	},
}

var YogaApplication = []Template{
	{
		Pattern:        "How do you verify if {yoga_name} is actually present and strong in a chart?",
		AnswerGuidance: "Verification steps, strength assessment, cancellation factors",
		QAType:         TypeProcedure,
		Difficulty:     "hard",
	},
	{
		Pattern:        "During which daśā period does {yoga_name} give its results?",
		AnswerGuidance: "Which planet's dasha activates the yoga, timing principles",
		QAType:         TypePrediction,
		Difficulty:     "hard",
	},
}
