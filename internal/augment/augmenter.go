// Package augment multiplies a curated dataset with domain-aware
// variations: Sanskrit/English term swaps, astrological synonym
// replacement, question paraphrasing, and question restructuring.
package augment

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/platform/logger"
)

// Pair is one augmented question/answer produced from an original.
type Pair struct {
	Question   string
	Answer     string
	OriginalID string
	Type       string
	Details    string
}

// Augmentation type names, used as the id suffix on augmented records.
const (
	TypeTermSwap          = "term_swap"
	TypeSynonym           = "synonym"
	TypeParaphrase        = "paraphrase"
	TypeQuestionTransform = "question_transform"
)

// DefaultMethods is the order augmentation strategies are attempted.
var DefaultMethods = []string{TypeTermSwap, TypeSynonym, TypeParaphrase, TypeQuestionTransform}

type termPair struct {
	from string
	to   string
}

// sanskritEnglish maps transliterated Sanskrit terms to their common
// English renderings. Order matters: the first term found in a
// question is the one swapped.
var sanskritEnglish = []termPair{
	{"sūrya", "Sun"},
	{"candra", "Moon"},
	{"maṅgala", "Mars"},
	{"kuja", "Mars"},
	{"budha", "Mercury"},
	{"guru", "Jupiter"},
	{"bṛhaspati", "Jupiter"},
	{"śukra", "Venus"},
	{"śani", "Saturn"},
	{"rāhu", "Rahu/North Node"},
	{"ketu", "Ketu/South Node"},
	{"meṣa", "Aries"},
	{"vṛṣabha", "Taurus"},
	{"mithuna", "Gemini"},
	{"karkaṭa", "Cancer"},
	{"siṃha", "Leo"},
	{"kanyā", "Virgo"},
	{"tulā", "Libra"},
	{"vṛścika", "Scorpio"},
	{"dhanu", "Sagittarius"},
	{"makara", "Capricorn"},
	{"kumbha", "Aquarius"},
	{"mīna", "Pisces"},
	{"graha", "planet"},
	{"rāśi", "sign"},
	{"bhāva", "house"},
	{"nakṣatra", "lunar mansion/nakshatra"},
	{"daśā", "planetary period/dasha"},
	{"lagna", "ascendant"},
	{"kāraka", "significator"},
	{"dṛṣṭi", "aspect"},
	{"yoga", "combination"},
	{"svāṃśa", "navamsha position of atmakaraka"},
	{"argalā", "intervention"},
	{"upapada", "marriage indicator lagna"},
}

// englishSanskrit is the reverse direction. For multi-word or slashed
// English renderings only the first word is matched.
var englishSanskrit = buildReverse(sanskritEnglish)

func buildReverse(pairs []termPair) []termPair {
	out := make([]termPair, 0, len(pairs))
	seen := map[string]bool{}
	for _, p := range pairs {
		first := strings.Fields(strings.Split(p.to, "/")[0])[0]
		low := strings.ToLower(first)
		if seen[low] {
			continue
		}
		seen[low] = true
		out = append(out, termPair{from: first, to: p.from})
	}
	return out
}

type synonymSet struct {
	word     string
	synonyms []string
}

var astroSynonyms = []synonymSet{
	{"effects", []string{"results", "outcomes", "manifestations", "influences"}},
	{"indicates", []string{"signifies", "suggests", "shows", "points to"}},
	{"native", []string{"person", "individual", "jatak", "chart owner"}},
	{"strong", []string{"powerful", "well-placed", "dignified", "fortified"}},
	{"weak", []string{"afflicted", "debilitated", "troubled", "challenged"}},
	{"benefic", []string{"favorable", "auspicious", "positive", "supportive"}},
	{"malefic", []string{"unfavorable", "challenging", "negative", "troublesome"}},
	{"house", []string{"bhāva", "place", "domain", "sector"}},
	{"sign", []string{"rāśi", "zodiac sign"}},
	{"aspect", []string{"dṛṣṭi", "glance", "influence"}},
	{"period", []string{"daśā", "time cycle", "planetary period"}},
	{"conjunction", []string{"yuti", "combination", "union"}},
	{"placed", []string{"posited", "situated", "located", "positioned"}},
}

var whatIsParaphrases = []string{
	"Define %s.",
	"Explain the concept of %s.",
	"How would you describe %s?",
	"What do you understand by %s?",
	"Describe %s in Vedic astrology.",
}

var howDoesParaphrases = []string{
	"In what way does %s %s?",
	"Explain how %s %s.",
	"Describe the mechanism by which %s %s.",
	"What is the process through which %s %s?",
}

var interpretParaphrases = []string{
	"How should one interpret %s?",
	"What does %s indicate?",
	"Analyze the significance of %s.",
	"What conclusions can be drawn from %s?",
}

var (
	whatIsRE    = regexp.MustCompile(`(?i)^what (?:is|are) (?:the )?(.+?)[?.]?$`)
	howDoesRE   = regexp.MustCompile(`(?i)^how (?:does|do) (\S+(?:\s\S+)?) (.+?)[?.]?$`)
	interpretRE = regexp.MustCompile(`(?i)(?:interpret|analyze) (.+?)[?.]?$`)
)

// Augmenter produces augmented Q&A pairs. The random source is seeded
// so a run is reproducible.
type Augmenter struct {
	rng *rand.Rand
	log *logger.Logger
}

func NewAugmenter(seed int64, baseLog *logger.Logger) *Augmenter {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &Augmenter{
		rng: rand.New(rand.NewSource(seed)),
		log: baseLog.With("component", "augmenter"),
	}
}

// AugmentPair generates up to n augmented versions of a single pair.
// Each strategy is tried once, in DefaultMethods order, and variants
// whose question collapses back onto one already produced (or onto the
// original) are dropped.
func (a *Augmenter) AugmentPair(question, answer, originalID string, n int) []Pair {
	var out []Pair
	used := map[string]bool{strings.ToLower(question): true}

	for _, method := range DefaultMethods {
		if len(out) >= n {
			break
		}
		var p *Pair
		switch method {
		case TypeTermSwap:
			p = a.termSwap(question, answer, originalID)
		case TypeSynonym:
			p = a.synonym(question, answer, originalID)
		case TypeParaphrase:
			p = a.paraphrase(question, answer, originalID)
		case TypeQuestionTransform:
			p = a.questionTransform(question, answer, originalID)
		}
		if p == nil {
			continue
		}
		low := strings.ToLower(p.Question)
		if used[low] {
			continue
		}
		used[low] = true
		out = append(out, *p)
	}
	return out
}

func (a *Augmenter) termSwap(question, answer, originalID string) *Pair {
	qLower := strings.ToLower(question)
	pairs := sanskritEnglish
	toSanskrit := a.rng.Float64() >= 0.5
	if toSanskrit {
		pairs = englishSanskrit
	}
	for _, p := range pairs {
		if !strings.Contains(qLower, strings.ToLower(p.from)) {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(p.from) + `\b`)
		if err != nil {
			return nil
		}
		replacement := p.to
		if toSanskrit {
			replacement = capitalize(p.to)
		}
		newQ := re.ReplaceAllString(question, replacement)
		if newQ == question {
			return nil
		}
		return &Pair{
			Question:   newQ,
			Answer:     answer,
			OriginalID: originalID,
			Type:       TypeTermSwap,
			Details:    p.from + "→" + replacement,
		}
	}
	return nil
}

func (a *Augmenter) synonym(question, answer, originalID string) *Pair {
	qLower := strings.ToLower(question)
	for _, set := range astroSynonyms {
		if !strings.Contains(qLower, set.word) {
			continue
		}
		syn := set.synonyms[a.rng.Intn(len(set.synonyms))]
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(set.word) + `\b`)
		newQ := re.ReplaceAllString(question, syn)
		if newQ == question {
			return nil
		}
		// One replacement per augmentation.
		return &Pair{
			Question:   newQ,
			Answer:     answer,
			OriginalID: originalID,
			Type:       TypeSynonym,
			Details:    set.word + "→" + syn,
		}
	}
	return nil
}

func (a *Augmenter) paraphrase(question, answer, originalID string) *Pair {
	qLower := strings.ToLower(question)

	switch {
	case strings.Contains(qLower, "what is") || strings.Contains(qLower, "what are"):
		m := whatIsRE.FindStringSubmatch(strings.TrimSpace(question))
		if m == nil {
			return nil
		}
		term := strings.TrimSpace(strings.ToLower(m[1]))
		tmpl := whatIsParaphrases[a.rng.Intn(len(whatIsParaphrases))]
		return &Pair{
			Question:   fmt.Sprintf(tmpl, term),
			Answer:     answer,
			OriginalID: originalID,
			Type:       TypeParaphrase,
			Details:    "what_is pattern",
		}
	case strings.Contains(qLower, "how does") || strings.Contains(qLower, "how do"):
		m := howDoesRE.FindStringSubmatch(strings.TrimSpace(question))
		if m == nil {
			return nil
		}
		subject := strings.TrimSpace(strings.ToLower(m[1]))
		action := strings.TrimSpace(strings.ToLower(m[2]))
		tmpl := howDoesParaphrases[a.rng.Intn(len(howDoesParaphrases))]
		return &Pair{
			Question:   fmt.Sprintf(tmpl, subject, action),
			Answer:     answer,
			OriginalID: originalID,
			Type:       TypeParaphrase,
			Details:    "how_does pattern",
		}
	case strings.Contains(qLower, "interpret") || strings.Contains(qLower, "analyze"):
		m := interpretRE.FindStringSubmatch(strings.TrimSpace(question))
		if m == nil {
			return nil
		}
		element := strings.TrimSpace(strings.ToLower(m[1]))
		tmpl := interpretParaphrases[a.rng.Intn(len(interpretParaphrases))]
		return &Pair{
			Question:   fmt.Sprintf(tmpl, element),
			Answer:     answer,
			OriginalID: originalID,
			Type:       TypeParaphrase,
			Details:    "interpretation pattern",
		}
	}
	return nil
}

func (a *Augmenter) questionTransform(question, answer, originalID string) *Pair {
	qLower := strings.ToLower(question)

	if strings.HasPrefix(qLower, "what is ") {
		content := strings.TrimRight(strings.TrimSpace(question[len("what is "):]), "?.")
		transforms := []string{
			"Explain " + content + ".",
			"Describe " + content + ".",
			"Define " + content + " in Jyotiṣa.",
			"How is " + content + " understood in Vedic astrology?",
		}
		return &Pair{
			Question:   transforms[a.rng.Intn(len(transforms))],
			Answer:     answer,
			OriginalID: originalID,
			Type:       TypeQuestionTransform,
			Details:    "what_is → explain",
		}
	}
	if strings.HasPrefix(qLower, "how does ") {
		content := strings.TrimRight(strings.TrimSpace(question[len("how does "):]), "?.")
		transforms := []string{
			"Explain how " + content + ".",
			"Describe the way " + content + ".",
			"In what manner does " + content + "?",
		}
		return &Pair{
			Question:   transforms[a.rng.Intn(len(transforms))],
			Answer:     answer,
			OriginalID: originalID,
			Type:       TypeQuestionTransform,
			Details:    "how_does → explain",
		}
	}
	return nil
}

// AugmentDataset returns the originals followed by augmented copies.
// Augmented records get an id of the form <original>_aug_<type>, carry
// augmentation metadata, and are marked as augmented generation.
func (a *Augmenter) AugmentDataset(records []dataset.Record, perItem int) []dataset.Record {
	out := make([]dataset.Record, 0, len(records)*(1+perItem))
	for _, rec := range records {
		out = append(out, rec.Clone())
	}
	for _, rec := range records {
		for _, p := range a.AugmentPair(rec.Question, rec.Answer, rec.ID, perItem) {
			aug := rec.Clone()
			aug.ID = rec.ID + "_aug_" + p.Type
			aug.Question = p.Question
			aug.Answer = p.Answer
			aug.GenerationMethod = dataset.MethodAugmented
			aug.Augmentation = &dataset.AugmentationMeta{
				Type:       p.Type,
				Details:    p.Details,
				OriginalID: p.OriginalID,
			}
			out = append(out, aug)
		}
	}
	a.log.Info("dataset augmented",
		"original", len(records),
		"total", len(out),
		"added", len(out)-len(records))
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
