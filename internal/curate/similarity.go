package curate

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Similarity scores two normalized strings in [0,1]. Implementations
// plug in here; the filter degrades to exact-only dedup when nil.
type Similarity interface {
	Ratio(a, b string) float64
}

type levenshteinSimilarity struct {
	metric *metrics.Levenshtein
}

// NewLevenshteinSimilarity returns the default edit-distance backend.
func NewLevenshteinSimilarity() Similarity {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false
	return &levenshteinSimilarity{metric: m}
}

func (s *levenshteinSimilarity) Ratio(a, b string) float64 {
	return strutil.Similarity(a, b, s.metric)
}
