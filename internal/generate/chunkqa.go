package generate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/extract"
)

// chunkAnswerMax caps how much raw chunk text is used as an answer.
const chunkAnswerMax = 500

// chunkTextMin is the shortest chunk worth turning into a pair.
const chunkTextMin = 100

// FromChunk builds a Q&A record directly from an extracted text chunk
// without a generation service: the leading tagged entity anchors the
// question and the chunk text becomes the answer. Returns nil when the
// chunk is too short or carries no entities.
func (r *Renderer) FromChunk(chunk extract.Chunk) *dataset.Record {
	text := strings.TrimSpace(chunk.Text)
	if len(text) < chunkTextMin || len(chunk.Entities) == 0 {
		return nil
	}

	mainEntity := chunk.Entities[0]
	question := fmt.Sprintf("Based on the Jyotiṣa text, explain the concept of %s.", mainEntity)

	answer := truncateRunes(text, chunkAnswerMax)

	tags := chunk.Entities
	if len(tags) > 5 {
		tags = tags[:5]
	}

	return &dataset.Record{
		ID:         r.recordID("chunk_"+sanitizeDoc(chunk.Document), question),
		Question:   question,
		Answer:     answer,
		QAType:     "concept",
		Difficulty: dataset.DifficultyMedium,
		Tags:       append([]string(nil), tags...),
		Source: dataset.Source{
			Type:     "text_extraction",
			Document: chunk.Document,
			Section:  chunk.SectionTitle,
			Locator:  fmt.Sprintf("pages %d-%d", chunk.PageStart, chunk.PageEnd),
		},
		GenerationMethod: dataset.MethodChunk,
	}
}

// FromServicePair wraps a generation-service pair as a record,
// validating the fields the service is allowed to choose.
func (r *Renderer) FromServicePair(question, answer, qaType, difficulty, document, model string) *dataset.Record {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return nil
	}
	switch difficulty {
	case dataset.DifficultyEasy, dataset.DifficultyMedium, dataset.DifficultyHard:
	default:
		difficulty = dataset.DifficultyMedium
	}
	if qaType == "" {
		qaType = "concept"
	}

	tags := extract.DetectEntities(question + " " + answer)
	if tags == nil {
		tags = []string{}
	}

	return &dataset.Record{
		ID:         r.recordID("svc_"+sanitizeDoc(document), question),
		Question:   question,
		Answer:     answer,
		QAType:     qaType,
		Difficulty: difficulty,
		Tags:       tags,
		Source: dataset.Source{
			Type:     "service_generation",
			Document: document,
			Model:    model,
		},
		GenerationMethod: dataset.MethodService,
	}
}

// truncateRunes cuts s to at most max bytes without splitting a
// multi-byte rune, so diacritics at the boundary stay valid UTF-8.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimRight(s[:cut], " ")
}

// sanitizeDoc reduces a document name to an id-safe token.
func sanitizeDoc(doc string) string {
	doc = strings.ToLower(strings.TrimSpace(doc))
	if doc == "" {
		return "doc"
	}
	var b strings.Builder
	for _, r := range doc {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			// drop extension dots
		default:
			b.WriteByte('_')
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "doc"
	}
	return s
}
