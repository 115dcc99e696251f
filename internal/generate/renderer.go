package generate

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/knowledge"
)

// ErrUnrenderable marks combos whose knowledge data cannot produce an
// answer of useful length. Callers skip these without failing the run.
var ErrUnrenderable = errors.New("combination cannot be rendered")

type Renderer struct {
	graph        *knowledge.Graph
	runNonce     string
	minAnswerLen int
}

// NewRenderer creates a renderer whose record ids are deterministic
// within a run: the nonce is fixed at construction, so rendering the
// same combo twice yields the same id.
func NewRenderer(graph *knowledge.Graph, minAnswerLen int) *Renderer {
	return &Renderer{
		graph:        graph,
		runNonce:     uuid.NewString(),
		minAnswerLen: minAnswerLen,
	}
}

func (r *Renderer) Render(combo Combo) (*dataset.Record, error) {
	question, _, err := combo.Template.Fill(combo.Params)
	if err != nil {
		return nil, fmt.Errorf("fill template: %w", err)
	}

	answer := r.synthesizeAnswer(combo)
	if answer == "" || len(answer) < r.minAnswerLen {
		return nil, ErrUnrenderable
	}

	return &dataset.Record{
		ID:         r.recordID(combo.Strategy, question),
		Question:   question,
		Answer:     answer,
		QAType:     combo.Template.QAType,
		Difficulty: combo.Template.Difficulty,
		Tags:       append([]string(nil), combo.Tags...),
		Category:   combo.Template.Category,
		Source: dataset.Source{
			Type:     combo.Strategy,
			Template: combo.Template.Pattern,
		},
		GenerationMethod: dataset.MethodTemplate,
	}, nil
}

// synthesizeAnswer composes an answer from the knowledge entries the
// combo references, one sentence group per entity.
func (r *Renderer) synthesizeAnswer(combo Combo) string {
	var parts []string

	appendGraha := func(key string) {
		gr := r.graph.Graha(key)
		if gr == nil {
			return
		}
		parts = append(parts, fmt.Sprintf("%s (%s) is a %s.", gr.Sanskrit, gr.English, gr.Nature))
		if len(gr.Significations) > 0 {
			n := len(gr.Significations)
			if n > 5 {
				n = 5
			}
			parts = append(parts, fmt.Sprintf("Its primary significations include %s.", strings.Join(gr.Significations[:n], ", ")))
		}
		if gr.Karakatva.Primary != "" {
			parts = append(parts, fmt.Sprintf("As a kāraka, it represents %s.", gr.Karakatva.Primary))
		}
	}

	if combo.GrahaKey != "" {
		appendGraha(combo.GrahaKey)
	}
	if combo.Graha2Key != "" {
		appendGraha(combo.Graha2Key)
	}

	if combo.BhavaNum != 0 {
		if bh := r.graph.Bhava(combo.BhavaNum); bh != nil && len(bh.Significations) > 0 {
			n := len(bh.Significations)
			if n > 4 {
				n = 4
			}
			parts = append(parts, fmt.Sprintf("The %s signifies %s.", bh.Name, strings.Join(bh.Significations[:n], ", ")))
		}
	}

	if combo.RashiKey != "" {
		if rs := r.graph.Rashi(combo.RashiKey); rs != nil {
			parts = append(parts, fmt.Sprintf("%s (%s) is a %s sign of %s quality, ruled by %s.",
				rs.Sanskrit, rs.English, rs.Element, rs.Quality, rs.Lord))
			if len(rs.Characteristics) > 0 {
				n := len(rs.Characteristics)
				if n > 4 {
					n = 4
				}
				parts = append(parts, fmt.Sprintf("Its key traits are %s.", strings.Join(rs.Characteristics[:n], ", ")))
			}
		}
	}

	if combo.YogaKey != "" {
		if y := r.graph.Yoga(combo.YogaKey); y != nil {
			parts = append(parts, fmt.Sprintf("%s forms when %s.", y.Name, strings.ToLower(y.Condition[:1])+y.Condition[1:]))
			parts = append(parts, fmt.Sprintf("Its classical effects are: %s.", strings.ToLower(y.Effects[:1])+y.Effects[1:]))
		}
	}

	if len(parts) == 0 {
		return ""
	}
	answer := strings.Join(parts, " ")
	if combo.PlacementHint {
		answer += " The combination indicates specific results based on the interaction of these significations."
	}
	return answer
}

func (r *Renderer) recordID(prefix, question string) string {
	sum := sha256.Sum256([]byte(prefix + "|" + question + "|" + r.runNonce))
	return prefix + "_" + hex.EncodeToString(sum[:])[:8]
}
