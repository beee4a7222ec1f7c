package ranking

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText renders a program description to plain text. Descriptions come
// from a rich-text editor and may carry HTML markup; keyword matching runs
// over the rendered text so tags never split a match.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
