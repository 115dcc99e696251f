package extract

import (
	"regexp"
	"strings"
)

// OCR frequently splits a diacritic from its base letter in Sanskrit
// transliteration. Order matters: combining-mark forms before the
// plain ASCII digraph forms.
var diacriticFixes = []struct{ wrong, right string }{
	{"a ̄", "ā"}, {"i ̄", "ī"}, {"u ̄", "ū"},
	{"a¯", "ā"}, {"i¯", "ī"}, {"u¯", "ū"},
	{"s´", "ś"},
	{"n~", "ñ"},
}

var (
	controlRE    = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f]`)
	spacesRE     = regexp.MustCompile(`[ \t]+`)
	newlineRunRE = regexp.MustCompile(`\n{3,}`)
	aroundNLRE   = regexp.MustCompile(` *\n *`)
	pageNumRE    = regexp.MustCompile(`(?m)^\d+\s*$`)
	pageHdrRE    = regexp.MustCompile(`(?m)^Page \d+.*$`)
)

// CleanText strips OCR artifacts and normalizes whitespace while
// leaving diacritics intact. Paragraph breaks (blank lines) survive.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = controlRE.ReplaceAllString(text, "")
	for _, f := range diacriticFixes {
		text = strings.ReplaceAll(text, f.wrong, f.right)
	}
	text = spacesRE.ReplaceAllString(text, " ")
	text = newlineRunRE.ReplaceAllString(text, "\n\n")
	text = aroundNLRE.ReplaceAllString(text, "\n")
	text = pageNumRE.ReplaceAllString(text, "")
	text = pageHdrRE.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
