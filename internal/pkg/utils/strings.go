//nolint:revive,nolintlint // I like this package name, leave me alone
package utils

import (
	"strconv"
	"strings"
)

// FootnoteMarker is the footnote reference the tariff page appends to plan names.
const FootnoteMarker = "**"

func NormalizeSpaces(str string) string {
	str = strings.ReplaceAll(str, "&nbsp;", " ") // html non-breaking space
	str = strings.ReplaceAll(str, "\u00A0", " ") // no-break space
	str = strings.ReplaceAll(str, "\u0085", " ") // next line
	str = strings.ReplaceAll(str, "\u2009", " ") // thin space
	str = strings.ReplaceAll(str, "\u200A", " ") // hair space
	str = strings.ReplaceAll(str, "\u200B", " ") // zero-width space
	str = strings.ReplaceAll(str, "\u200C", " ") // zero-width non-joiner
	str = strings.ReplaceAll(str, "\u200D", " ") // zero-width joiner
	str = strings.ReplaceAll(str, "\uFEFF", " ") // zero-width non-breaking space
	str = strings.ReplaceAll(str, "\u202F", " ") // narrow no-break space
	str = strings.ReplaceAll(str, "\t", " ")     // tab
	str = strings.ReplaceAll(str, "\n", " ")     // newline
	str = strings.ReplaceAll(str, "\r", " ")     // carriage return
	str = strings.ReplaceAll(str, "\v", " ")     // vertical tab
	str = strings.ReplaceAll(str, "\f", " ")     // form feed
	str = strings.Join(strings.Fields(str), " ") // replace consecutive spaces with single space
	str = strings.TrimSpace(str)                 // remove leading and trailing spaces

	return str
}

// StripMarkers removes every footnote marker from str.
func StripMarkers(str string) string {
	return strings.ReplaceAll(str, FootnoteMarker, "")
}

// FirstDigitRun returns the value of the first maximal run of ASCII digits in str.
// ok is false when str contains no digit or the run does not fit into an int.
func FirstDigitRun(str string) (value int, ok bool) {
	start := strings.IndexFunc(str, isDigit)
	if start < 0 {
		return 0, false
	}

	end := start
	for end < len(str) && isDigit(rune(str[end])) {
		end++
	}

	return atoi(str[start:end])
}

// DigitsOnly drops every non-digit from str and parses the rest.
// "1 200 руб." yields 1200. ok is false when nothing is left to parse.
func DigitsOnly(str string) (value int, ok bool) {
	var sb strings.Builder
	for _, r := range str {
		if isDigit(r) {
			sb.WriteRune(r)
		}
	}

	if sb.Len() == 0 {
		return 0, false
	}

	return atoi(sb.String())
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func atoi(digits string) (int, bool) {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return v, true
}
