package curate

// seenEntry pairs a normalized text with the id of the record that
// introduced it.
type seenEntry struct {
	norm string
	id   string
}

// RunState carries the dedup memory for one filtering pass. Exact
// fingerprints are unbounded; the near-duplicate comparison window is
// bounded to the most recent `window` accepted entries per field.
type RunState struct {
	window int

	questionSeen map[string]string // fingerprint -> id
	answerSeen   map[string]string

	recentQuestions []seenEntry
	recentAnswers   []seenEntry
}

func NewRunState(window int) *RunState {
	if window < 0 {
		window = 0
	}
	return &RunState{
		window:       window,
		questionSeen: make(map[string]string),
		answerSeen:   make(map[string]string),
	}
}

// Remember records an accepted pair so later candidates dedup against it.
func (s *RunState) Remember(id, question, answer string) {
	qn := Normalize(question)
	an := Normalize(answer)
	s.questionSeen[Fingerprint(question)] = id
	s.answerSeen[Fingerprint(answer)] = id
	if s.window > 0 {
		s.recentQuestions = pushBounded(s.recentQuestions, seenEntry{qn, id}, s.window)
		s.recentAnswers = pushBounded(s.recentAnswers, seenEntry{an, id}, s.window)
	}
}

func (s *RunState) questionDup(question string) (string, bool) {
	id, ok := s.questionSeen[Fingerprint(question)]
	return id, ok
}

func (s *RunState) answerDup(answer string) (string, bool) {
	id, ok := s.answerSeen[Fingerprint(answer)]
	return id, ok
}

// Seen reports how many distinct question fingerprints are remembered.
func (s *RunState) Seen() int {
	return len(s.questionSeen)
}

func pushBounded(entries []seenEntry, e seenEntry, max int) []seenEntry {
	entries = append(entries, e)
	if len(entries) > max {
		// Drop the oldest; copy to avoid unbounded backing growth.
		entries = append(entries[:0], entries[1:]...)
	}
	return entries
}
