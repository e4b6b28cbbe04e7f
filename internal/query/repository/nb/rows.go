package nb

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"nb-query/internal/model"
)

const identifierSelector = ".identifier"

// ParseRows extracts one Row per element matching selector, in document order.
func ParseRows(r io.Reader, selector string) ([]model.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	sel := doc.Find(selector)
	rows := make([]model.Row, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")

		visible := s.Clone()
		visible.Find("span").Remove()

		rows = append(rows, model.Row{
			ID:          strings.TrimSpace(s.Find(identifierSelector).First().Text()),
			Href:        href,
			Text:        s.Text(),
			VisibleText: visible.Text(),
		})
	})
	return rows, nil
}
