package dataset

// Record is one question/answer training example. JSON field names are
// the on-disk JSONL contract and must stay stable.
type Record struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	Answer           string   `json:"answer"`
	QAType           string   `json:"qa_type"`
	Difficulty       string   `json:"difficulty"`
	Tags             []string `json:"tags"`
	Category         string   `json:"category,omitempty"`
	Source           Source   `json:"source"`
	GenerationMethod string   `json:"generation_method"`

	// Augmentation is set only on augmented copies.
	Augmentation *AugmentationMeta `json:"augmentation,omitempty"`

	// RemovedReasons is populated only in the removed-records audit
	// file written by the quality filter.
	RemovedReasons []string `json:"removed_reasons,omitempty"`
}

// Source records where a pair came from. Only the fields relevant to
// the generation method are set.
type Source struct {
	Type     string `json:"type"`
	Template string `json:"template,omitempty"`
	Document string `json:"document,omitempty"`
	Section  string `json:"section,omitempty"`
	Locator  string `json:"locator,omitempty"`
	Model    string `json:"model,omitempty"`
}

type AugmentationMeta struct {
	Type       string `json:"type"`
	Details    string `json:"details,omitempty"`
	OriginalID string `json:"original_id"`
}

// Difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Generation methods.
const (
	MethodTemplate  = "template"
	MethodChunk     = "chunk"
	MethodService   = "service"
	MethodAugmented = "augmented"
)

// Clone returns a deep copy so downstream stages can annotate records
// without mutating the caller's slice.
func (r Record) Clone() Record {
	out := r
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	if r.Augmentation != nil {
		meta := *r.Augmentation
		out.Augmentation = &meta
	}
	if r.RemovedReasons != nil {
		out.RemovedReasons = append([]string(nil), r.RemovedReasons...)
	}
	return out
}
