// Package extract turns pre-extracted source text into cleaned,
// sectioned, entity-tagged chunks sized for question generation. PDF
// binary parsing happens upstream; this package consumes the text
// dump (pages separated by form feeds).
package extract

// Chunk is a span of source text ready for pair generation.
type Chunk struct {
	Text         string   `json:"text"`
	Document     string   `json:"document"`
	PageStart    int      `json:"page_start"`
	PageEnd      int      `json:"page_end"`
	SectionTitle string   `json:"section_title,omitempty"`
	ChunkType    string   `json:"chunk_type"`
	Entities     []string `json:"entities"`
}

// Chunk types.
const (
	TypeConcept = "concept"
	TypeRule    = "rule"
	TypeExample = "example"
	TypeVerse   = "verse"
	TypeTable   = "table"
)

// Source supplies chunks from some document. Implementations are
// fallible black boxes; callers treat an error as zero chunks.
type Source interface {
	Chunks() ([]Chunk, error)
}
