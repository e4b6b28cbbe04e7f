package usecase

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"nb-query/internal/query"
)

// documentRe spots markup of a whole document. <html> and <head> are optional
// in HTML5, so any of these tags makes the input a document.
var documentRe = regexp.MustCompile(`(?i)<(!doctype|html|head|body)[\s>]`)

type placeholderResult struct {
	out query.Output
	err error
}

// RenderPage runs every [data-query] placeholder of page concurrently and
// replaces each with its own output. A failed query keeps its placeholder,
// marked with data-query-error, and does not affect the others.
func (uc *implUseCase) RenderPage(ctx context.Context, page string) (query.PageOutput, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return query.PageOutput{}, fmt.Errorf("%w: %w", query.ErrInvalidPage, err)
	}

	placeholders := doc.Find("[" + query.AttrQuery + "]")
	n := placeholders.Length()
	specs := make([]query.Spec, n)
	results := make([]placeholderResult, n)

	placeholders.Each(func(i int, sel *goquery.Selection) {
		specs[i], results[i].err = query.SpecFromAttributes(sel.Attr)
	})

	var g errgroup.Group
	for i := range specs {
		if results[i].err != nil {
			continue
		}
		g.Go(func() error {
			results[i].out, results[i].err = uc.Execute(ctx, specs[i])
			return nil
		})
	}
	_ = g.Wait()

	output := query.PageOutput{Queries: n}
	placeholders.Each(func(i int, sel *goquery.Selection) {
		res := results[i]
		if res.err != nil {
			uc.l.Errorf(ctx, "uc.RenderPage query %d %q: %v", i, specs[i].Query, res.err)
			sel.SetAttr(query.AttrQueryError, res.err.Error())
			output.Failures = append(output.Failures, query.QueryFailure{Index: i, Query: specs[i].Query, Err: res.err})
			return
		}
		sel.ReplaceWithHtml(placeholderHTML(res.out))
	})

	output.HTML, err = pageHTML(doc, page)
	if err != nil {
		return query.PageOutput{}, fmt.Errorf("%w: %w", query.ErrInvalidPage, err)
	}

	uc.l.Infof(ctx, "uc.RenderPage: %d queries, %d failed", n, len(output.Failures))
	return output, nil
}

func placeholderHTML(out query.Output) string {
	switch {
	case out.NoResults:
		return html.EscapeString(out.Body)
	case out.Format == query.FormatJSON:
		return "<pre>" + html.EscapeString(out.Body) + "</pre>"
	default:
		return out.Body
	}
}

// pageHTML renders the whole document when the input was one, otherwise only
// the fragment the parser wrapped in <body>.
func pageHTML(doc *goquery.Document, page string) (string, error) {
	if documentRe.MatchString(page) {
		return goquery.OuterHtml(doc.Selection)
	}
	return doc.Find("body").Html()
}
