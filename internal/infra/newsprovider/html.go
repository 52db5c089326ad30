package newsprovider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxAbstractRunes = 200

// plainText strips markup from an HTML fragment and collapses whitespace.
func plainText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// abstract is the plain text of fragment cut to maxAbstractRunes, with an
// ellipsis when cut.
func abstract(fragment string) string {
	text := []rune(plainText(fragment))
	if len(text) <= maxAbstractRunes {
		return string(text)
	}
	return string(text[:maxAbstractRunes]) + "..."
}

// firstImage returns the src of the first <img> in an HTML fragment.
func firstImage(fragment string) string {
	if !strings.Contains(fragment, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}
