//nolint:revive,nolintlint // I like this package name, leave me alone
package utils

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

const (
	TagTable = "table"
	TagTr    = "tr"
	TagTh    = "th"
	TagTd    = "td"
)

// Cell is the normalized text of a single table cell.
// Header is true for <th> cells and false for <td> cells.
type Cell struct {
	Text   string
	Header bool
}

type Row []Cell

// HeaderCells returns the text of the row's <th> cells in order.
func (r Row) HeaderCells() []string {
	return r.cellTexts(true)
}

// DataCells returns the text of the row's <td> cells in order.
func (r Row) DataCells() []string {
	return r.cellTexts(false)
}

func (r Row) cellTexts(header bool) []string {
	texts := make([]string, 0, len(r))
	for _, c := range r {
		if c.Header == header {
			texts = append(texts, c.Text)
		}
	}
	return texts
}

// Table holds the first <tr> as Header, even when it has no cells, and every
// following row with at least one cell in Rows.
type Table struct {
	Header Row
	Rows   []Row
}

// ParseTableHTML parses the first table found in rawHTML.
func ParseTableHTML(rawHTML string) (Table, error) {
	return ParseTable(html.NewTokenizer(strings.NewReader(rawHTML)))
}

// ParseTable parses the Table starting from the current position of the tokenizer.
func ParseTable(tokenizer *html.Tokenizer) (Table, error) {
	var (
		t          Table
		headerSeen bool
	)

	for {
		tt := tokenizer.Next()
		switch tt { //nolint: exhaustive // we only care about start tags, end tags, and errors
		case html.ErrorToken:
			return t, handleErrToken(tokenizer.Err())

		case html.StartTagToken:
			row, isRow, err := extractTableRow(tokenizer)
			if isRow { // even with an error, there might be a valid row
				headerSeen = addRowToTable(&t, row, headerSeen)
			}
			if errors.Is(err, io.EOF) {
				return t, nil // reached end of table or document
			}
			if err != nil {
				return t, err
			}

		case html.EndTagToken:
			if isClosingTableTag(tokenizer) {
				return t, nil
			}

		default:
			continue
		}
	}
}

// addRowToTable reports whether the table has a header after adding row.
func addRowToTable(t *Table, row Row, headerSeen bool) bool {
	switch {
	case !headerSeen:
		t.Header = row
	case len(row) > 0:
		t.Rows = append(t.Rows, row)
	}
	return true
}

func isClosingTableTag(tokenizer *html.Tokenizer) bool {
	tn, _ := tokenizer.TagName()
	return string(tn) == TagTable
}

func extractTableRow(tokenizer *html.Tokenizer) (Row, bool, error) {
	tn, _ := tokenizer.TagName()
	if string(tn) != TagTr {
		return nil, false, nil
	}

	row, err := parseTableRow(tokenizer)
	return row, true, err
}

func handleErrToken(err error) error {
	if errors.Is(err, io.EOF) {
		return nil // done, no error
	}
	return err
}

// Helper function to parse a Table row.
func parseTableRow(tokenizer *html.Tokenizer) (Row, error) {
	var row Row

	for {
		tt := tokenizer.Next()
		switch tt { //nolint: exhaustive // we only care about start tags, end tags, and errors
		case html.ErrorToken:
			return row, handleErrToken(tokenizer.Err())

		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			tagName := string(tn)
			if tagName != TagTh && tagName != TagTd {
				continue
			}

			cellContent, err := extractTextFromCell(tokenizer)
			row = append(row, Cell{Text: cellContent, Header: tagName == TagTh})
			if err != nil {
				return row, err
			}

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tagName := string(tn)
			if tagName == TagTr {
				return row, nil
			}
			if tagName == TagTable {
				return row, io.EOF
			}
		default:
			continue
		}
	}
}

// Function to extract text content from within a cell tag.
func extractTextFromCell(tokenizer *html.Tokenizer) (string, error) {
	var sb strings.Builder
	var err error
loop:
	for {
		tt := tokenizer.Next()
		switch tt { //nolint: exhaustive // we only care about text tokens, end tags, and errors
		case html.ErrorToken:
			err = tokenizer.Err()
			break loop

		case html.TextToken:
			sb.Write(tokenizer.Text())

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == TagTd || tag == TagTh || tag == TagTr {
				break loop
			}
			if tag == TagTable {
				err = io.EOF
				break loop
			}
		default:
			continue
		}
	}

	return NormalizeSpaces(sb.String()), err
}
