// Package knowledge holds the static Vedic astrology reference data
// that drives question generation: the nine grahas, twelve rashis,
// twelve bhavas, the nakshatras, and a set of classical yogas, plus a
// term lexicon used for entity tagging and domain-relevance checks.
package knowledge

import "strings"

// Graph is an immutable, keyed view over the reference data. Key
// slices preserve declaration order so iteration (and therefore
// generation output) is deterministic.
type Graph struct {
	grahaByKey  map[string]*Graha
	rashiByKey  map[string]*Rashi
	bhavaByNum  map[int]*Bhava
	yogaByKey   map[string]*Yoga
	nakByNum    map[int]*Nakshatra
	grahaKeys   []string
	rashiKeys   []string
	bhavaNums   []int
	yogaKeys    []string
}

func NewGraph() *Graph {
	g := &Graph{
		grahaByKey: make(map[string]*Graha, len(grahas)),
		rashiByKey: make(map[string]*Rashi, len(rashis)),
		bhavaByNum: make(map[int]*Bhava, len(bhavas)),
		yogaByKey:  make(map[string]*Yoga, len(yogas)),
		nakByNum:   make(map[int]*Nakshatra, len(nakshatras)),
	}
	for i := range grahas {
		g.grahaByKey[grahas[i].Key] = &grahas[i]
		g.grahaKeys = append(g.grahaKeys, grahas[i].Key)
	}
	for i := range rashis {
		g.rashiByKey[rashis[i].Key] = &rashis[i]
		g.rashiKeys = append(g.rashiKeys, rashis[i].Key)
	}
	for i := range bhavas {
		g.bhavaByNum[bhavas[i].Number] = &bhavas[i]
		g.bhavaNums = append(g.bhavaNums, bhavas[i].Number)
	}
	for i := range yogas {
		g.yogaByKey[yogas[i].Key] = &yogas[i]
		g.yogaKeys = append(g.yogaKeys, yogas[i].Key)
	}
	for i := range nakshatras {
		g.nakByNum[nakshatras[i].Number] = &nakshatras[i]
	}
	return g
}

// Graha returns the graha for key (case-insensitive), or nil.
func (g *Graph) Graha(key string) *Graha {
	return g.grahaByKey[strings.ToLower(key)]
}

func (g *Graph) Rashi(key string) *Rashi {
	return g.rashiByKey[strings.ToLower(key)]
}

func (g *Graph) Bhava(num int) *Bhava {
	return g.bhavaByNum[num]
}

func (g *Graph) Yoga(key string) *Yoga {
	return g.yogaByKey[strings.ToLower(key)]
}

func (g *Graph) Nakshatra(num int) *Nakshatra {
	return g.nakByNum[num]
}

// GrahaKeys returns the graha keys in declaration order. The returned
// slice is shared; callers must not mutate it.
func (g *Graph) GrahaKeys() []string { return g.grahaKeys }

func (g *Graph) RashiKeys() []string { return g.rashiKeys }

func (g *Graph) BhavaNumbers() []int { return g.bhavaNums }

func (g *Graph) YogaKeys() []string { return g.yogaKeys }

// Lexicon returns the Sanskrit/English term surface forms used for
// entity tagging in extracted text and for the off-topic vocabulary
// check. Ordering is deterministic: graha terms, rashi terms, then
// general vocabulary.
func (g *Graph) Lexicon() []string {
	var out []string
	seen := map[string]bool{}
	add := func(terms ...string) {
		for _, t := range terms {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			low := strings.ToLower(t)
			if seen[low] {
				continue
			}
			seen[low] = true
			out = append(out, t)
		}
	}
	for _, k := range g.grahaKeys {
		gr := g.grahaByKey[k]
		add(gr.Key, gr.English)
		for _, part := range strings.Split(gr.Sanskrit, "/") {
			add(part)
		}
	}
	for _, k := range g.rashiKeys {
		r := g.rashiByKey[k]
		add(r.Key, r.Sanskrit, r.English)
	}
	add(generalTerms...)
	return out
}

var generalTerms = []string{
	"graha", "rashi", "bhava", "house", "sign", "planet", "lagna",
	"ascendant", "nakshatra", "dasha", "mahadasha", "antardasha",
	"yoga", "kundali", "horoscope", "chart", "astrology", "vedic",
	"jyotish", "kendra", "trikona", "karaka", "exaltation",
	"debilitation", "conjunction", "aspect", "transit", "navamsa",
	"lord", "benefic", "malefic",
}
