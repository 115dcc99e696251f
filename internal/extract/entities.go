package extract

import (
	"regexp"
	"strings"

	"github.com/yungbote/vedicqa/internal/knowledge"
)

// jyotishTerms are transliterated terms scanned for in tag detection.
// Slice, not set: match order determines tag order, which keeps chunk
// tags deterministic.
var jyotishTerms = []string{
	// Grahas
	"sūrya", "candra", "maṅgala", "budha", "guru", "bṛhaspati",
	"śukra", "śani", "rāhu", "ketu",
	// Rashis
	"meṣa", "vṛṣabha", "mithuna", "karkaṭa", "siṃha", "kanyā",
	"tulā", "vṛścika", "dhanu", "makara", "kumbha", "mīna",
	// Bhavas
	"lagna", "tanu", "dhana", "sahaja", "sukha", "bandhu",
	"putra", "suta", "ripu", "ari", "kalatrā", "jāyā",
	"āyu", "mṛtyu", "dharma", "bhāgya", "karma", "rājya",
	"lābha", "vyaya", "mokṣa",
	// Concepts
	"daśā", "bhukti", "antara", "pratyantara",
	"nakṣatra", "navāṃśa", "varga", "dṛṣṭi",
	"yoga", "rāja", "ariṣṭa",
	"kāraka", "ātmakāraka", "amatyakāraka",
	"argalā", "virodhargalā",
	"upapada", "ārūḍha", "svāṃśa",
	"cara", "sthira", "dvisvabhāva",
	"krūra", "saumya", "śubha", "pāpa",
	// Jaimini
	"jaiminī", "sūtra", "upadeśa",
	"maheśvara", "māraka", "kakṣyā",
}

var (
	diacriticRE   = regexp.MustCompile(`[āīūṛṝḷḹṃḥṅñṭḍṇśṣ]`)
	capitalizedRE = regexp.MustCompile(`\b[A-Z][a-zāīūṛṝḷḹṃḥṅñṭḍṇśṣ]+(?:\s+[A-Z][a-zāīūṛṝḷḹṃḥṅñṭḍṇśṣ]+)*\b`)
)

// lexiconWords are single-word knowledge-graph surface forms, matched
// on word boundaries after the transliterated scan.
var lexiconWords = func() map[string]bool {
	set := make(map[string]bool)
	for _, t := range knowledge.NewGraph().Lexicon() {
		t = strings.ToLower(t)
		if t != "" && !strings.ContainsRune(t, ' ') {
			set[t] = true
		}
	}
	return set
}()

// DetectEntities returns the transliterated terms present in text,
// any capitalized diacritic-bearing words not already covered, and
// knowledge-graph names appearing as whole words.
func DetectEntities(text string) []string {
	low := strings.ToLower(text)
	var found []string
	seen := map[string]bool{}
	for _, term := range jyotishTerms {
		if strings.Contains(low, term) && !seen[term] {
			seen[term] = true
			found = append(found, term)
		}
	}
	for _, cand := range capitalizedRE.FindAllString(text, -1) {
		if !diacriticRE.MatchString(cand) {
			continue
		}
		lowCand := strings.ToLower(cand)
		if !seen[lowCand] {
			seen[lowCand] = true
			found = append(found, lowCand)
		}
	}
	for _, w := range strings.Fields(low) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if lexiconWords[w] && !seen[w] {
			seen[w] = true
			found = append(found, w)
		}
	}
	return found
}
