// Package curate applies quality gates and duplicate detection to
// candidate question/answer pairs.
package curate

import (
	"regexp"
	"strings"

	"github.com/yungbote/vedicqa/internal/dataset"
	"github.com/yungbote/vedicqa/internal/knowledge"
	"github.com/yungbote/vedicqa/internal/platform/logger"
)

// Rejection reasons.
const (
	ReasonQuestionTooShort   = "question_too_short"
	ReasonAnswerTooShort     = "answer_too_short"
	ReasonAnswerTooFewWords  = "answer_too_few_words"
	ReasonLowQualityQuestion = "low_quality_question"
	ReasonRepetitiveAnswer   = "repetitive_answer"
	ReasonOffTopic           = "off_topic"
	ReasonDuplicate          = "duplicate"
	ReasonNearDuplicate      = "near_duplicate"
)

// Verdict is the filter's decision for one candidate.
type Verdict struct {
	Accept      bool
	Reasons     []string
	Score       float64
	DuplicateOf string
}

// Config carries the filter thresholds.
type Config struct {
	MinQuestionLength   int
	MinAnswerLength     int
	MinAnswerWords      int
	RepetitionNGram     int
	RepetitionMaxRatio  float64
	SimilarityThreshold float64
}

type Filter struct {
	cfg Config
	sim Similarity
	log *logger.Logger
}

// NewFilter builds a filter. sim may be nil, in which case only exact
// fingerprint dedup runs.
func NewFilter(cfg Config, sim Similarity, baseLog *logger.Logger) *Filter {
	if cfg.RepetitionNGram <= 0 {
		cfg.RepetitionNGram = 3
	}
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &Filter{cfg: cfg, sim: sim, log: baseLog.With("component", "quality_filter")}
}

var lowQualityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^what$`),
	regexp.MustCompile(`^how$`),
	regexp.MustCompile(`^why$`),
	regexp.MustCompile(`^\?+$`),
	regexp.MustCompile(`^please explain$`),
	regexp.MustCompile(`^tell me about$`),
}

// domainTerms are matched as substrings so inflected and compounded
// forms still count. Single-word knowledge-graph names (lexiconWords)
// are matched on word boundaries to avoid accidental hits inside
// unrelated words.
var domainTerms = []string{
	"graha", "planet", "rāśi", "rashi", "sign", "bhāva", "bhava",
	"house", "lagna", "ascendant", "jaiminī", "sūtra", "kāraka",
	"karaka", "argalā", "svāṃśa", "daśā", "dasha", "transit",
	"prediction", "result", "effect", "outcome",
}

var lexiconWords = func() map[string]bool {
	set := make(map[string]bool)
	for _, t := range knowledge.NewGraph().Lexicon() {
		t = strings.ToLower(t)
		if t != "" && !strings.ContainsRune(t, ' ') {
			set[t] = true
		}
	}
	return set
}()

var sanskritTerms = []string{
	"graha", "rashi", "bhava", "nakshatra", "dasha",
	"yoga", "karaka", "lagna", "navamsa",
}

var diacriticRE = regexp.MustCompile(`(?i)[āīūṛṝḷḹṃḥṅñṭḍṇśṣ]`)

// Evaluate scores a candidate against the thresholds and the run's
// dedup state. It does not mutate state; callers Remember accepted
// records themselves so rejected candidates never poison the window.
func (f *Filter) Evaluate(rec *dataset.Record, state *RunState) Verdict {
	var reasons []string

	qLen := len(rec.Question)
	aLen := len(rec.Answer)
	aWords := len(strings.Fields(rec.Answer))

	if qLen < f.cfg.MinQuestionLength {
		reasons = append(reasons, ReasonQuestionTooShort)
	}
	if aLen < f.cfg.MinAnswerLength {
		reasons = append(reasons, ReasonAnswerTooShort)
	}
	if aWords < f.cfg.MinAnswerWords {
		reasons = append(reasons, ReasonAnswerTooFewWords)
	}

	qLower := strings.TrimSpace(strings.ToLower(rec.Question))
	for _, re := range lowQualityPatterns {
		if re.MatchString(qLower) {
			reasons = append(reasons, ReasonLowQualityQuestion)
			break
		}
	}

	if f.repetitive(rec.Answer) {
		reasons = append(reasons, ReasonRepetitiveAnswer)
	}
	if !hasDomainTerms(rec.Question, rec.Answer) {
		reasons = append(reasons, ReasonOffTopic)
	}

	hasSanskrit := hasSanskritTerms(rec.Question + " " + rec.Answer)

	// Score reflects quality issues only; duplication is tracked as a
	// rejection reason but never lowers the score.
	score := qualityScore(qLen, aLen, aWords, hasSanskrit, len(reasons))

	dupOf, dupReason := f.findDuplicate(rec, state)
	if dupReason != "" {
		reasons = append(reasons, dupReason)
	}

	return Verdict{
		Accept:      len(reasons) == 0,
		Reasons:     reasons,
		Score:       score,
		DuplicateOf: dupOf,
	}
}

// findDuplicate checks exact question/answer fingerprints first, then
// edit-distance similarity over the recency window. Question matches
// win attribution when both fields collide.
func (f *Filter) findDuplicate(rec *dataset.Record, state *RunState) (string, string) {
	if id, ok := state.questionDup(rec.Question); ok {
		return id, ReasonDuplicate
	}
	if id, ok := state.answerDup(rec.Answer); ok {
		return id, ReasonDuplicate
	}
	if f.sim == nil || state.window == 0 {
		return "", ""
	}
	qn := Normalize(rec.Question)
	for _, e := range state.recentQuestions {
		if f.sim.Ratio(qn, e.norm) > f.cfg.SimilarityThreshold {
			return e.id, ReasonNearDuplicate
		}
	}
	an := Normalize(rec.Answer)
	for _, e := range state.recentAnswers {
		if f.sim.Ratio(an, e.norm) > f.cfg.SimilarityThreshold {
			return e.id, ReasonNearDuplicate
		}
	}
	return "", ""
}

// repetitive measures the fraction of repeated word n-grams. Texts
// shorter than 2n words are never flagged.
func (f *Filter) repetitive(text string) bool {
	n := f.cfg.RepetitionNGram
	words := strings.Fields(strings.ToLower(text))
	if len(words) < n*2 {
		return false
	}
	total := len(words) - n + 1
	unique := make(map[string]struct{}, total)
	for i := 0; i < total; i++ {
		unique[strings.Join(words[i:i+n], " ")] = struct{}{}
	}
	ratio := 1 - float64(len(unique))/float64(total)
	return ratio > f.cfg.RepetitionMaxRatio
}

func hasDomainTerms(question, answer string) bool {
	combined := strings.ToLower(question + " " + answer)
	for _, term := range domainTerms {
		if strings.Contains(combined, term) {
			return true
		}
	}
	for _, w := range strings.Fields(combined) {
		if lexiconWords[strings.Trim(w, ".,;:!?()[]\"'")] {
			return true
		}
	}
	return false
}

func hasSanskritTerms(text string) bool {
	if diacriticRE.MatchString(text) {
		return true
	}
	low := strings.ToLower(text)
	for _, term := range sanskritTerms {
		if strings.Contains(low, term) {
			return true
		}
	}
	return false
}

func qualityScore(qLen, aLen, aWords int, hasSanskrit bool, numIssues int) float64 {
	score := 1.0
	if qLen < 50 {
		score -= 0.1
	}
	if aLen < 100 {
		score -= 0.1
	}
	if aWords < 20 {
		score -= 0.1
	}
	if aWords > 40 {
		score += 0.1
	}
	if aLen > 200 {
		score += 0.1
	}
	if hasSanskrit {
		score += 0.1
	}
	score -= float64(numIssues) * 0.2
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Result summarizes a whole-dataset filtering pass.
type Result struct {
	Kept            []dataset.Record
	Removed         []dataset.Record
	DuplicateGroups map[string][]string
	Stats           map[string]int
}

// FilterAll runs Evaluate over every record in order with a fresh run
// state. Rejected records come back annotated with their reasons so
// the caller can write the removed-records audit file.
func (f *Filter) FilterAll(records []dataset.Record, window int) Result {
	state := NewRunState(window)
	res := Result{
		DuplicateGroups: make(map[string][]string),
		Stats:           make(map[string]int),
	}
	for i := range records {
		rec := records[i]
		v := f.Evaluate(&rec, state)
		if v.Accept {
			state.Remember(rec.ID, rec.Question, rec.Answer)
			res.Kept = append(res.Kept, rec)
			res.Stats["kept"]++
			continue
		}
		annotated := rec.Clone()
		annotated.RemovedReasons = v.Reasons
		res.Removed = append(res.Removed, annotated)
		for _, reason := range v.Reasons {
			res.Stats[reason]++
		}
		if v.DuplicateOf != "" {
			res.DuplicateGroups[v.DuplicateOf] = append(res.DuplicateGroups[v.DuplicateOf], rec.ID)
		}
	}
	res.Stats["total"] = len(records)
	res.Stats["removed"] = len(res.Removed)
	f.log.Info("filter pass complete",
		"total", len(records),
		"kept", len(res.Kept),
		"removed", len(res.Removed))
	return res
}
