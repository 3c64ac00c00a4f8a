package clean

import (
	"strconv"
	"strings"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// reviewFields is the positional schema of one "//"-joined review chunk.
// The four trailing fields are carried for schema parity but not
// interpreted further.
const reviewFields = 9

// monthByToken maps the month abbreviations observed in the source data
// to month numbers. The table is intentionally limited to these exact
// English tokens; anything else makes the date invalid.
var monthByToken = map[string]int{
	"Jan.":  1,
	"Feb.":  2,
	"Mar.":  3,
	"April": 4,
	"May":   5,
	"Jun.":  6,
	"July":  7,
	"Aug.":  8,
	"Sept.": 9,
	"Oct.":  10,
	"Nov.":  11,
	"Dec.":  12,
}

// Reviews explodes every product's reviews blob into individual review
// rows. Each blob is split on "|" into chunks; empty chunks yield no row
// (they are excluded before any note/date parsing). Each surviving chunk
// is split on "//" into its positional fields, the note is validated and
// the date reconstructed; both blank out to missing on failure while the
// row itself is kept.
func Reviews(raws []domain.RawProduct, audit Auditor) []domain.Review {
	if audit == nil {
		audit = nopAuditor{}
	}
	var out []domain.Review
	for _, r := range raws {
		if r.CustomerReviews == "" {
			continue
		}
		for i, chunk := range strings.Split(r.CustomerReviews, "|") {
			if chunk == "" {
				continue
			}
			parts := strings.SplitN(chunk, "//", reviewFields)
			for len(parts) < reviewFields {
				parts = append(parts, "")
			}

			rawNote := strings.TrimSpace(parts[1])
			note := Note(rawNote)
			if note == nil && rawNote != "" {
				audit.Invalid("reviews", "note", r.UniqID, rawNote)
			}

			date, ok := parseReviewDate(parts[2])
			if !ok && strings.TrimSpace(parts[2]) != "" {
				audit.Invalid("reviews", "date", r.UniqID, parts[2])
			}

			out = append(out, domain.Review{
				UniqID:      r.UniqID,
				NumReview:   i,
				Resume:      parts[0],
				Note:        note,
				Qui:         parts[3],
				Commentaire: parts[4],
				Autre1:      parts[5],
				Autre2:      parts[6],
				Autre3:      parts[7],
				Autre4:      parts[8],
				DateClean:   date,
			})
		}
	}
	return out
}

// parseReviewDate reconstructs a calendar date from a "<day> <month>
// <year>" string such as "5 Feb. 2015". Any failure (missing tokens,
// non-numeric day or year, unmapped month token, impossible date) yields
// (nil, false).
func parseReviewDate(raw string) (*domain.Date, bool) {
	toks := strings.Fields(raw)
	if len(toks) < 3 {
		return nil, false
	}
	day, err := strconv.ParseFloat(toks[0], 64)
	if err != nil {
		return nil, false
	}
	month, ok := monthByToken[toks[1]]
	if !ok {
		return nil, false
	}
	year, err := strconv.ParseFloat(toks[2], 64)
	if err != nil {
		return nil, false
	}
	d, ok := domain.NewDate(int(year), month, int(day))
	if !ok {
		return nil, false
	}
	return &d, true
}
