// Package generate enumerates template/entity combinations from the
// knowledge graph and renders them into question/answer records.
package generate

import (
	"fmt"

	"github.com/yungbote/vedicqa/internal/knowledge"
	"github.com/yungbote/vedicqa/internal/templates"
)

// Combo is one template paired with the parameter values that fill it.
// The entity references are what the renderer synthesizes the answer
// from; unset references mean that entity plays no part.
type Combo struct {
	Template templates.Template
	Params   map[string]string
	Tags     []string
	Strategy string

	GrahaKey  string
	Graha2Key string
	RashiKey  string
	YogaKey   string
	BhavaNum  int

	// PlacementHint marks combos whose answer should carry the
	// placement interpretation closing sentence.
	PlacementHint bool
}

// Strategy names, recorded in each output record's source.
const (
	StrategyGraha       = "template_graha"
	StrategyBhava       = "template_bhava"
	StrategyRashi       = "template_rashi"
	StrategyYoga        = "template_yoga"
	StrategyConjunction = "template_conjunction"
)

type Generator struct {
	graph *knowledge.Graph
}

func NewGenerator(graph *knowledge.Graph) *Generator {
	return &Generator{graph: graph}
}

// GrahaCombinations enumerates basic, placement, dignity, dasha, and
// aspect questions for every graha. Enumeration order is fixed by the
// graph's key order; max > 0 truncates the tail.
func (g *Generator) GrahaCombinations(max int) []Combo {
	var out []Combo
	for _, key := range g.graph.GrahaKeys() {
		gr := g.graph.Graha(key)
		base := map[string]string{
			"graha_sanskrit": gr.Sanskrit,
			"graha_english":  gr.English,
		}
		for _, t := range templates.GrahaBasic {
			out = append(out, Combo{Template: t, Params: base, Tags: []string{key}, Strategy: StrategyGraha, GrahaKey: key})
		}
		for _, num := range g.graph.BhavaNumbers() {
			bh := g.graph.Bhava(num)
			params := merge(base, map[string]string{
				"bhava_ordinal": templates.Ordinal(num),
				"bhava_name":    bh.Name,
			})
			for _, t := range templates.GrahaBhavaPlacement {
				out = append(out, Combo{
					Template: t, Params: params,
					Tags:          []string{key, bhavaTag(num)},
					Strategy:      StrategyGraha,
					GrahaKey:      key,
					BhavaNum:      num,
					PlacementHint: true,
				})
			}
		}
		for _, rkey := range g.graph.RashiKeys() {
			r := g.graph.Rashi(rkey)
			params := merge(base, map[string]string{
				"rashi_sanskrit": r.Sanskrit,
				"rashi_english":  r.English,
			})
			for _, t := range templates.GrahaRashiPlacement {
				out = append(out, Combo{
					Template: t, Params: params,
					Tags:          []string{key, rkey},
					Strategy:      StrategyGraha,
					GrahaKey:      key,
					RashiKey:      rkey,
					PlacementHint: true,
				})
			}
		}
		for _, t := range templates.GrahaDignity {
			out = append(out, Combo{Template: t, Params: base, Tags: []string{key}, Strategy: StrategyGraha, GrahaKey: key})
		}
		for _, t := range templates.GrahaDasha {
			out = append(out, Combo{Template: t, Params: base, Tags: []string{key}, Strategy: StrategyGraha, GrahaKey: key})
		}
		for _, t := range templates.GrahaAspects {
			out = append(out, Combo{Template: t, Params: base, Tags: []string{key}, Strategy: StrategyGraha, GrahaKey: key})
		}
	}
	return truncate(out, max)
}

// BhavaCombinations enumerates basic, lordship, and prediction-area
// questions per house. Lordship pairs every house with every other
// house exactly once per direction (the 3rd lord in the 9th is a
// different question from the 9th lord in the 3rd).
func (g *Generator) BhavaCombinations(max int) []Combo {
	var out []Combo
	for _, num := range g.graph.BhavaNumbers() {
		bh := g.graph.Bhava(num)
		base := map[string]string{
			"bhava_ordinal": templates.Ordinal(num),
			"bhava_name":    bh.Name,
		}
		for _, t := range templates.BhavaBasic {
			out = append(out, Combo{Template: t, Params: base, Tags: []string{bhavaTag(num)}, Strategy: StrategyBhava, BhavaNum: num})
		}
		for _, target := range g.graph.BhavaNumbers() {
			if target == num {
				continue
			}
			params := merge(base, map[string]string{
				"target_bhava_ordinal": templates.Ordinal(target),
			})
			for _, t := range templates.BhavaLordship {
				out = append(out, Combo{
					Template: t, Params: params,
					Tags:     []string{bhavaTag(num), bhavaTag(target)},
					Strategy: StrategyBhava,
					BhavaNum: num,
				})
			}
		}
		for _, area := range bh.PredictionAreas {
			params := merge(base, map[string]string{"prediction_area": area})
			for _, t := range templates.BhavaPrediction {
				out = append(out, Combo{
					Template: t, Params: params,
					Tags:     []string{bhavaTag(num)},
					Strategy: StrategyBhava,
					BhavaNum: num,
				})
			}
		}
	}
	return truncate(out, max)
}

func (g *Generator) RashiCombinations(max int) []Combo {
	var out []Combo
	for _, key := range g.graph.RashiKeys() {
		r := g.graph.Rashi(key)
		params := map[string]string{
			"rashi_sanskrit": r.Sanskrit,
			"rashi_english":  r.English,
		}
		for _, t := range templates.RashiBasic {
			out = append(out, Combo{Template: t, Params: params, Tags: []string{key}, Strategy: StrategyRashi, RashiKey: key})
		}
		for _, t := range templates.RashiLagna {
			out = append(out, Combo{Template: t, Params: params, Tags: []string{key}, Strategy: StrategyRashi, RashiKey: key})
		}
	}
	return truncate(out, max)
}

func (g *Generator) YogaCombinations(max int) []Combo {
	var out []Combo
	for _, key := range g.graph.YogaKeys() {
		y := g.graph.Yoga(key)
		params := map[string]string{"yoga_name": y.Name}
		for _, t := range templates.YogaDefinition {
			out = append(out, Combo{Template: t, Params: params, Tags: []string{key}, Strategy: StrategyYoga, YogaKey: key})
		}
		for _, t := range templates.YogaApplication {
			out = append(out, Combo{Template: t, Params: params, Tags: []string{key}, Strategy: StrategyYoga, YogaKey: key})
		}
	}
	return truncate(out, max)
}

// ConjunctionCombinations pairs each distinct graha pair exactly once,
// never pairing a graha with itself. 9 grahas yield C(9,2)=36 pairs.
func (g *Generator) ConjunctionCombinations(max int) []Combo {
	keys := g.graph.GrahaKeys()
	var out []Combo
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			g1 := g.graph.Graha(keys[i])
			g2 := g.graph.Graha(keys[j])
			params := map[string]string{
				"graha1_sanskrit": g1.Sanskrit,
				"graha2_sanskrit": g2.Sanskrit,
			}
			for _, t := range templates.GrahaConjunction {
				out = append(out, Combo{
					Template: t, Params: params,
					Tags:      []string{keys[i], keys[j]},
					Strategy:  StrategyConjunction,
					GrahaKey:  keys[i],
					Graha2Key: keys[j],
				})
			}
		}
	}
	return truncate(out, max)
}

// All concatenates every strategy with the same per-strategy cap.
func (g *Generator) All(maxPerStrategy int) []Combo {
	var out []Combo
	out = append(out, g.GrahaCombinations(maxPerStrategy)...)
	out = append(out, g.BhavaCombinations(maxPerStrategy)...)
	out = append(out, g.RashiCombinations(maxPerStrategy)...)
	out = append(out, g.YogaCombinations(maxPerStrategy)...)
	out = append(out, g.ConjunctionCombinations(maxPerStrategy)...)
	return out
}

func truncate(combos []Combo, max int) []Combo {
	if max > 0 && len(combos) > max {
		return combos[:max]
	}
	return combos
}

func merge(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func bhavaTag(num int) string {
	return fmt.Sprintf("bhava_%d", num)
}
