// Package diversity measures question-opening pattern distribution
// and rebalances datasets dominated by a few stems.
package diversity

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/yungbote/vedicqa/internal/dataset"
)

type starterPattern struct {
	re   *regexp.Regexp
	name string
}

// Ordered specific-before-generic: "what is the" must win over a
// hypothetical bare "what" stem, and only the first match counts.
var starterPatterns = []starterPattern{
	{regexp.MustCompile(`^what is the`), "what_is"},
	{regexp.MustCompile(`^what are the`), "what_are"},
	{regexp.MustCompile(`^what does`), "what_does"},
	{regexp.MustCompile(`^how does`), "how_does"},
	{regexp.MustCompile(`^how is`), "how_is"},
	{regexp.MustCompile(`^how do you`), "how_do"},
	{regexp.MustCompile(`^how to`), "how_to"},
	{regexp.MustCompile(`^why`), "why"},
	{regexp.MustCompile(`^when`), "when"},
	{regexp.MustCompile(`^where`), "where"},
	{regexp.MustCompile(`^which`), "which"},
	{regexp.MustCompile(`^explain`), "explain"},
	{regexp.MustCompile(`^describe`), "describe"},
	{regexp.MustCompile(`^define`), "define"},
	{regexp.MustCompile(`^compare`), "compare"},
	{regexp.MustCompile(`^analyze`), "analyze"},
	{regexp.MustCompile(`^interpret`), "interpret"},
	{regexp.MustCompile(`^predict`), "predict"},
	{regexp.MustCompile(`^if `), "conditional"},
	{regexp.MustCompile(`^given`), "given"},
	{regexp.MustCompile(`^suppose`), "suppose"},
}

// PatternOther buckets questions no stem matches.
const PatternOther = "other"

// expectedPatterns are stems a healthy dataset should carry at least
// a floor share of.
var expectedPatterns = []string{"how_does", "why", "compare", "analyze", "predict", "conditional"}

// Classify returns the stem bucket for a question.
func Classify(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, p := range starterPatterns {
		if p.re.MatchString(q) {
			return p.name
		}
	}
	return PatternOther
}

// Report is the diversity analysis of a dataset.
type Report struct {
	Total            int                `json:"total_questions"`
	PatternCounts    map[string]int     `json:"pattern_counts"`
	PatternRatios    map[string]float64 `json:"pattern_ratios"`
	OverRepresented  map[string]float64 `json:"over_represented"`
	UnderRepresented map[string]float64 `json:"under_represented"`
	DiversityScore   float64            `json:"diversity_score"`
	Recommendations  []string           `json:"recommendations"`
}

type Analyzer struct {
	ceiling float64
	floor   float64
}

func NewAnalyzer(ceiling, floor float64) *Analyzer {
	return &Analyzer{ceiling: ceiling, floor: floor}
}

// Analyze computes stem distribution, the normalized entropy score,
// and over/under-representation against the ceiling and floor. Ratios
// over present buckets sum to 1 for any non-empty input.
func (a *Analyzer) Analyze(records []dataset.Record) Report {
	rep := Report{
		Total:            len(records),
		PatternCounts:    make(map[string]int),
		PatternRatios:    make(map[string]float64),
		OverRepresented:  make(map[string]float64),
		UnderRepresented: make(map[string]float64),
	}
	if len(records) == 0 {
		return rep
	}

	for i := range records {
		rep.PatternCounts[Classify(records[i].Question)]++
	}
	for name, count := range rep.PatternCounts {
		rep.PatternRatios[name] = float64(count) / float64(rep.Total)
	}
	for name, ratio := range rep.PatternRatios {
		if ratio > a.ceiling {
			rep.OverRepresented[name] = ratio
		}
	}
	for _, name := range expectedPatterns {
		if rep.PatternRatios[name] < a.floor {
			rep.UnderRepresented[name] = rep.PatternRatios[name]
		}
	}
	rep.DiversityScore = entropyScore(rep.PatternRatios)

	for name, ratio := range rep.OverRepresented {
		rep.Recommendations = append(rep.Recommendations,
			fmt.Sprintf("Reduce %q questions from %.1f%% to under %.1f%%", name, ratio*100, a.ceiling*100))
	}
	for name, ratio := range rep.UnderRepresented {
		rep.Recommendations = append(rep.Recommendations,
			fmt.Sprintf("Add more %q questions (currently %.1f%%)", name, ratio*100))
	}
	return rep
}

// entropyScore is Shannon entropy over the present buckets, normalized
// by the maximum possible entropy for that bucket count. A single
// bucket scores 0, a uniform spread scores 1.
func entropyScore(ratios map[string]float64) float64 {
	if len(ratios) <= 1 {
		return 0
	}
	entropy := 0.0
	for _, r := range ratios {
		if r > 0 {
			entropy -= r * math.Log2(r)
		}
	}
	return entropy / math.Log2(float64(len(ratios)))
}
