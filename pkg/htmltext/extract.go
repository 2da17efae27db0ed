package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText returns the text content of an HTML fragment, the same string a
// browser reports as the body's textContent. Script and style bodies are dropped.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	return doc.Text(), nil
}
