package augment

import (
	"strconv"
	"strings"

	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/knowledge"
	"github.com/yungbote/vedicqa/internal/templates"
)

// enhanceSkipLen is the answer length above which no context is added.
const enhanceSkipLen = 200

// DefaultMaxAddition bounds the context appended to one answer.
const DefaultMaxAddition = 100

// Enhancer appends brief reference context to short answers based on
// the entities mentioned in the pair.
type Enhancer struct {
	graph *knowledge.Graph
}

func NewEnhancer(graph *knowledge.Graph) *Enhancer {
	return &Enhancer{graph: graph}
}

// Enhance returns the answer, extended with entity context when the
// original is short. maxAddition bounds the appended text; answers
// longer than enhanceSkipLen are returned unchanged.
func (e *Enhancer) Enhance(answer, question string, maxAddition int) string {
	if len(answer) > enhanceSkipLen {
		return answer
	}
	text := strings.ToLower(question + " " + answer)

	var additions []string
	total := 0
	add := func(s string) bool {
		if s == "" {
			return true
		}
		additions = append(additions, s)
		total += len(s) + 1
		return total <= maxAddition
	}

	for _, key := range e.graph.GrahaKeys() {
		if !strings.Contains(text, key) {
			continue
		}
		if !add(grahaContext(e.graph.Graha(key))) {
			break
		}
	}
	if total <= maxAddition {
		for _, key := range e.graph.RashiKeys() {
			if !strings.Contains(text, key) {
				continue
			}
			if !add(rashiContext(e.graph.Rashi(key))) {
				break
			}
		}
	}
	if total <= maxAddition {
		for _, num := range e.graph.BhavaNumbers() {
			ord := templates.Ordinal(num)
			if !strings.Contains(text, ord+" house") && !strings.Contains(text, strconv.Itoa(num)+"h") {
				continue
			}
			if !add(bhavaContext(e.graph.Bhava(num))) {
				break
			}
		}
	}

	if len(additions) == 0 {
		return answer
	}
	return answer + " " + strings.Join(additions, " ")
}

// EnhanceDataset rewrites short answers in place with entity context
// and reports how many records changed.
func (e *Enhancer) EnhanceDataset(records []dataset.Record, maxAddition int) int {
	if maxAddition <= 0 {
		maxAddition = DefaultMaxAddition
	}
	changed := 0
	for i := range records {
		enhanced := e.Enhance(records[i].Answer, records[i].Question, maxAddition)
		if enhanced != records[i].Answer {
			records[i].Answer = enhanced
			changed++
		}
	}
	return changed
}

func grahaContext(g *knowledge.Graha) string {
	if g == nil {
		return ""
	}
	sig := g.Significations
	if len(sig) > 3 {
		sig = sig[:3]
	}
	return g.Sanskrit + " (" + g.English + ") is a " + g.Nature +
		" that signifies " + strings.Join(sig, ", ") + "."
}

func rashiContext(r *knowledge.Rashi) string {
	if r == nil {
		return ""
	}
	return r.Sanskrit + " is a " + r.Element + " sign of " + r.Quality +
		" quality, ruled by " + r.Lord + "."
}

func bhavaContext(b *knowledge.Bhava) string {
	if b == nil {
		return ""
	}
	sig := b.Significations
	if len(sig) > 3 {
		sig = sig[:3]
	}
	return "The " + b.Name + " signifies " + strings.Join(sig, ", ") + "."
}
