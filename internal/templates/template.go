// Package templates holds the question pattern library. Patterns use
// {placeholder} syntax; Fill substitutes values and fails loudly when
// a placeholder has no value, so a bad template never produces a
// question with a literal "{graha_sanskrit}" in it.
package templates

import (
	"fmt"
	"regexp"
	"strings"
)

type Template struct {
	Pattern        string
	AnswerGuidance string
	QAType         string
	Difficulty     string
	Category       string
}

var placeholderRE = regexp.MustCompile(`\{([a-z0-9_]+)\}`)

// Placeholders returns the distinct placeholder names in s, in order
// of first appearance.
func Placeholders(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, m := range placeholderRE.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// Fill substitutes params into the pattern and answer guidance. Every
// placeholder must have a non-empty value.
func (t Template) Fill(params map[string]string) (question, guidance string, err error) {
	question, err = fill(t.Pattern, params)
	if err != nil {
		return "", "", err
	}
	guidance, err = fill(t.AnswerGuidance, params)
	if err != nil {
		return "", "", err
	}
	return question, guidance, nil
}

func fill(s string, params map[string]string) (string, error) {
	var missing []string
	out := placeholderRE.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := params[name]
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, name)
			return m
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q: missing placeholder value(s): %s", s, strings.Join(missing, ", "))
	}
	return out, nil
}

// Ordinal renders 1 as "1st", 2 as "2nd", 11 as "11th" and so on.
func Ordinal(n int) string {
	suffix := "th"
	if n%100 < 10 || n%100 > 20 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
