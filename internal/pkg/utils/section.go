//nolint:revive,nolintlint // I like this package name, leave me alone
package utils

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseDocument builds a queryable document tree from raw HTML.
// Malformed markup is repaired by the HTML5 parser; only reader failures are errors.
func ParseDocument(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html document: %w", err)
	}
	return doc, nil
}

// SectionTables returns every table inside the <div> with the given id, in document order.
// A missing section yields no tables and no error.
func SectionTables(doc *goquery.Document, sectionID string) ([]Table, error) {
	section := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, ok := s.Attr("id")
		return ok && id == sectionID
	}).First()
	if section.Length() == 0 {
		return nil, nil
	}

	var (
		tables   []Table
		parseErr error
	)
	section.Find(TagTable).EachWithBreak(func(i int, s *goquery.Selection) bool {
		rawTable, err := goquery.OuterHtml(s)
		if err != nil {
			parseErr = fmt.Errorf("failed rendering table %d of section %q: %w", i, sectionID, err)
			return false
		}

		table, err := ParseTableHTML(rawTable)
		if err != nil {
			parseErr = fmt.Errorf("failed parsing table %d of section %q: %w", i, sectionID, err)
			return false
		}

		tables = append(tables, table)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return tables, nil
}
