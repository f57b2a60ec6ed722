package enhancer

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var errEmptySummary = errors.New("provider returned an empty summary")

// sanitizeSummary reduces provider output to escaped plain text and bounds its
// length. The summary is rendered by browser clients, so markup never passes
// through, including markup that only appears after entity decoding.
func sanitizeSummary(text string, maxLen int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()

	plain := strings.TrimSpace(doc.Text())
	if plain == "" {
		return "", errEmptySummary
	}
	return escapeBounded(plain, maxLen), nil
}

// escapeBounded escapes s rune by rune and stops before the output would
// exceed maxLen runes. An entity is either written whole or not at all.
func escapeBounded(s string, maxLen int) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		esc := html.EscapeString(string(r))
		c := utf8.RuneCountInString(esc)
		if n+c > maxLen {
			break
		}
		b.WriteString(esc)
		n += c
	}
	return strings.TrimSpace(b.String())
}
