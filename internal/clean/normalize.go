// Package clean turns raw catalog rows into the four normalized tables
// loaded into the search store: products, reviews, conversations and
// seller quotes.
//
// The package is a strictly sequential, in-memory transform. Field-level
// problems never abort a run: a value that fails validation becomes a
// missing value (nil) and the row is kept. Rows that have no data for a
// one-to-many field are simply absent from the corresponding child table.
// The only structural condition treated as fatal is a sellers entry with
// no key/value separator at all, because it means the schema assumption
// about the sellers notation no longer holds.
package clean

import (
	"regexp"
	"strconv"
	"strings"
)

// priceRe accepts an optional integer part, a literal dot, and at least
// one fractional digit. Anything else (including "N/A" or a stray
// currency symbol in the middle) is invalid.
var priceRe = regexp.MustCompile(`^\d*\.\d+$`)

// noteRe accepts exactly the five whole-star ratings "1.0".."5.0".
var noteRe = regexp.MustCompile(`^[1-5]\.0$`)

// Price converts a raw price string ("£21.99") to a number. The leading
// and trailing currency symbols are stripped before validation. Returns
// nil for anything that does not match the expected format.
func Price(raw string) *float64 {
	s := strings.Trim(raw, "£")
	if !priceRe.MatchString(s) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Stock splits a raw stock string ("5 new") into a quantity and a label.
// A missing or unparsable quantity becomes 0; a missing label becomes the
// sentinel "no".
func Stock(raw string) (float64, string) {
	toks := strings.Fields(raw)
	qty := 0.0
	label := "no"
	if len(toks) > 0 {
		if v, err := strconv.ParseFloat(toks[0], 64); err == nil {
			qty = v
		}
	}
	if len(toks) > 1 {
		label = toks[1]
	}
	return qty, label
}

// AverageRating extracts the leading number from a rating string such as
// "4.5 out of 5 stars". Returns nil when there is no parsable leading
// number.
func AverageRating(raw string) *float64 {
	toks := strings.Fields(raw)
	if len(toks) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(toks[0], 64)
	if err != nil {
		return nil
	}
	return &v
}

// Note validates an individual review rating. Only the five exact values
// "1.0".."5.0" are accepted; "4.5" or "6.0" are invalid.
func Note(raw string) *float64 {
	if !noteRe.MatchString(raw) {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ReviewCount parses a review count that may carry thousands-separator
// commas ("1,234"). Returns nil when the result is not a number.
func ReviewCount(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}

// CategoryLevels is the fixed depth of the category schema. Taxonomy
// strings deeper than this lose their extra levels; this is a fixed
// schema limit, not a heuristic.
const CategoryLevels = 5

// Categories splits a ">"-delimited taxonomy string into exactly
// CategoryLevels columns. Levels beyond the string's depth are nil; an
// empty input yields all nil. Level text is not trimmed.
func Categories(raw string) [CategoryLevels]*string {
	var out [CategoryLevels]*string
	if raw == "" {
		return out
	}
	parts := strings.Split(raw, ">")
	for i := 0; i < CategoryLevels && i < len(parts); i++ {
		p := parts[i]
		out[i] = &p
	}
	return out
}
