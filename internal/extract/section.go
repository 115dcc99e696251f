package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Section is a titled run of source text spanning one or more pages.
type Section struct {
	Title     string
	Content   string
	PageStart int
	PageEnd   int
	Type      string
}

var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^chapter\s+\d+`),
	regexp.MustCompile(`(?i)^adhyāya\s+\d+`),
	regexp.MustCompile(`^\d+\.\s+[A-Z]`),
	regexp.MustCompile(`(?i)^section\s+\d+`),
}

var numberedHeadingRE = regexp.MustCompile(`^\d+\.\d*\s+[A-Z]`)

var versePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+[.\-]\d+`),
	regexp.MustCompile(`(?i)^sūtra\s+\d+`),
	regexp.MustCompile(`(?i)^śloka`),
}

// DetectSections walks cleaned pages line by line, starting a new
// section whenever a header line appears. Text before the first
// header forms an untitled section.
func DetectSections(pages []string) []Section {
	var sections []Section
	var title string
	var content []string
	startPage := 0

	flush := func(endPage int) {
		if len(content) == 0 {
			return
		}
		body := strings.Join(content, "\n")
		sections = append(sections, Section{
			Title:     title,
			Content:   body,
			PageStart: startPage,
			PageEnd:   endPage,
			Type:      classifySection(content),
		})
	}

	for pageNum, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if isSectionHeader(line) {
				flush(pageNum)
				title = line
				content = content[:0]
				startPage = pageNum
				continue
			}
			content = append(content, line)
		}
	}
	flush(len(pages) - 1)
	return sections
}

func isSectionHeader(line string) bool {
	for _, re := range chapterPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	if isAllUpper(line) && len(line) > 3 && len(line) < 100 {
		return true
	}
	return numberedHeadingRE.MatchString(line)
}

// isAllUpper reports whether the line contains letters and none of
// them are lowercase.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func classifySection(lines []string) string {
	joined := strings.ToLower(strings.Join(lines, " "))
	for _, re := range versePatterns {
		if re.MatchString(joined) {
			return TypeVerse
		}
	}
	if strings.Contains(joined, "example") || strings.Contains(joined, "chart") || strings.Contains(joined, "kuṇḍalī") {
		return TypeExample
	}
	if strings.Contains(joined, "rule") || strings.Contains(joined, "principle") {
		return TypeRule
	}
	short := 0
	for _, l := range lines {
		if len(l) < 30 {
			short++
		}
	}
	if len(lines) > 0 && float64(short) > float64(len(lines))*0.7 {
		return TypeTable
	}
	return TypeConcept
}
