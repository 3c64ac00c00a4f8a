package clean

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// The sellers column uses a map-like textual notation:
//
//	{"seller"=>[{"Seller_name_1"=>"ShopA", "Seller_price_1"=>"£10.50"}, ...]}
//
// Parsing follows the notation's few fixed landmarks: the leading literal
// prefix is stripped, entries split on "},", and each entry splits on the
// `",` boundary into a name sub-field and a price sub-field. Values sit
// after a "=>" marker, wrapped in a mix of braces, brackets, quotes and
// spaces that are trimmed off wholesale. The trim sets are deliberately
// broad; narrowing them would change which malformed entries become
// missing values versus parse wrong.
const sellerPrefix = `{"seller"=>`

const (
	nameTrimSet  = `}{][" `
	priceTrimSet = `}{]["£ `
)

// SellerQuotes explodes every product's sellers structure into one row
// per (seller, price) pair. Products without seller data contribute
// nothing. A price sub-field that does not match the expected pattern
// parses to a missing price rather than failing; an entry with no "=>"
// separator at all fails the run, since the notation assumption itself is
// broken at that point.
func SellerQuotes(raws []domain.RawProduct, audit Auditor) ([]domain.SellerQuote, error) {
	if audit == nil {
		audit = nopAuditor{}
	}
	var out []domain.SellerQuote
	for _, r := range raws {
		if r.Sellers == "" {
			continue
		}
		s := strings.ReplaceAll(r.Sellers, sellerPrefix, "")
		for _, entry := range strings.Split(s, "},") {
			if !strings.Contains(entry, "=>") {
				return nil, fmt.Errorf("sellers entry for %s has no => separator: %q", r.UniqID, entry)
			}
			nameSub, priceSub, hasPrice := strings.Cut(entry, `",`)

			name := strings.Trim(afterMarker(nameSub), nameTrimSet)

			var prix *float64
			if hasPrice {
				p := strings.Trim(afterMarker(priceSub), priceTrimSet)
				p = strings.ReplaceAll(p, ",", "")
				if v, err := strconv.ParseFloat(p, 64); err == nil {
					prix = &v
				} else {
					audit.Invalid("vendeurs", "prix", r.UniqID, priceSub)
				}
			} else {
				audit.Invalid("vendeurs", "prix", r.UniqID, entry)
			}

			out = append(out, domain.SellerQuote{
				Revendeur: name,
				Prix:      prix,
				UniqID:    r.UniqID,
			})
		}
	}
	return out, nil
}

// afterMarker returns the text between the first "=>" marker and the next
// one (or the end). When the sub-field carries no marker, the sub-field
// itself is the value.
func afterMarker(s string) string {
	parts := strings.Split(s, "=>")
	if len(parts) < 2 {
		return s
	}
	return parts[1]
}
