package extract

import "strings"

// Chunker splits sections into appropriately sized spans with
// sentence-boundary overlap between consecutive chunks.
type Chunker struct {
	ChunkSize int
	Overlap   int
	MinSize   int
}

func NewChunker(size, overlap, minSize int) *Chunker {
	return &Chunker{ChunkSize: size, Overlap: overlap, MinSize: minSize}
}

// ChunkSections sizes each section: short sections become a single
// chunk, long ones are split along sentence boundaries with overlap.
// Chunks below the minimum size are dropped.
func (c *Chunker) ChunkSections(sections []Section, document string) []Chunk {
	var chunks []Chunk
	for _, sec := range sections {
		body := strings.TrimSpace(sec.Content)
		if body == "" {
			continue
		}
		if len(body) <= c.ChunkSize {
			if len(body) >= c.MinSize {
				chunks = append(chunks, Chunk{
					Text:         body,
					Document:     document,
					PageStart:    sec.PageStart,
					PageEnd:      sec.PageEnd,
					SectionTitle: sec.Title,
					ChunkType:    sec.Type,
				})
			}
			continue
		}
		chunks = append(chunks, c.splitWithOverlap(body, sec, document)...)
	}
	for i := range chunks {
		chunks[i].Entities = DetectEntities(chunks[i].Text)
	}
	return chunks
}

func (c *Chunker) splitWithOverlap(text string, sec Section, document string) []Chunk {
	var chunks []Chunk
	emit := func(sentences []string) {
		joined := strings.Join(sentences, " ")
		if len(joined) >= c.MinSize {
			chunks = append(chunks, Chunk{
				Text:         joined,
				Document:     document,
				PageStart:    sec.PageStart,
				PageEnd:      sec.PageEnd,
				SectionTitle: sec.Title,
				ChunkType:    sec.Type,
			})
		}
	}

	var current []string
	length := 0
	for _, sentence := range SplitSentences(text) {
		if length+len(sentence) > c.ChunkSize && len(current) > 0 {
			emit(current)
			current = append(c.overlapTail(current), sentence)
			length = 0
			for _, s := range current {
				length += len(s)
			}
			continue
		}
		current = append(current, sentence)
		length += len(sentence)
	}
	if len(current) > 0 {
		emit(current)
	}
	return chunks
}

// overlapTail takes sentences from the end of a chunk up to the
// overlap budget, preserving order.
func (c *Chunker) overlapTail(sentences []string) []string {
	budget := 0
	cut := len(sentences)
	for i := len(sentences) - 1; i >= 0; i-- {
		if budget+len(sentences[i]) > c.Overlap {
			break
		}
		budget += len(sentences[i])
		cut = i
	}
	return append([]string(nil), sentences[cut:]...)
}

// SplitSentences breaks text at sentence-ending punctuation followed
// by whitespace. The Sanskrit daṇḍa (।) and double daṇḍa (॥) count as
// sentence ends alongside ASCII terminators.
func SplitSentences(text string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if isSentenceEnd(r) && i+1 < len(runes) && isSpaceRune(runes[i+1]) {
			s := strings.TrimSpace(b.String())
			if s != "" {
				out = append(out, s)
			}
			b.Reset()
			for i+1 < len(runes) && isSpaceRune(runes[i+1]) {
				i++
			}
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '।', '॥':
		return true
	}
	return false
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
