package clean

import (
	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// Auditor receives a notification for every field that failed validation
// and was replaced with a missing value. Implementations must tolerate
// high call volume; the pipeline never inspects their state.
type Auditor interface {
	Invalid(table, field, uniqID, raw string)
}

// nopAuditor is used when the caller passes a nil Auditor.
type nopAuditor struct{}

func (nopAuditor) Invalid(table, field, uniqID, raw string) {}

// Tables holds the four assembled record sets of one pipeline run, in
// source order.
type Tables struct {
	Products      []domain.Product
	Reviews       []domain.Review
	Conversations []domain.Conversation
	Sellers       []domain.SellerQuote
}

// Run executes the full cleaning pipeline over the raw rows and returns
// the four tables. The error is non-nil only for the structural seller
// notation violation described in the package comment; all value-level
// problems are reported through audit and degrade to missing values.
func Run(raws []domain.RawProduct, audit Auditor) (Tables, error) {
	if audit == nil {
		audit = nopAuditor{}
	}
	sellers, err := SellerQuotes(raws, audit)
	if err != nil {
		return Tables{}, err
	}
	return Tables{
		Products:      Products(raws, audit),
		Reviews:       Reviews(raws, audit),
		Conversations: Conversations(raws),
		Sellers:       sellers,
	}, nil
}

// Products assembles the products table: every raw row, with the price,
// stock, rating and review-count fields converted to typed values and the
// taxonomy expanded into five category levels. The intermediate source
// columns (raw taxonomy, raw stock, sellers structure, Q&A blob) do not
// appear in the output.
func Products(raws []domain.RawProduct, audit Auditor) []domain.Product {
	if audit == nil {
		audit = nopAuditor{}
	}
	out := make([]domain.Product, 0, len(raws))
	for _, r := range raws {
		price := Price(r.Price)
		if price == nil && r.Price != "" {
			audit.Invalid("produits", "price", r.UniqID, r.Price)
		}
		rating := AverageRating(r.AverageReviewRating)
		if rating == nil && r.AverageReviewRating != "" {
			audit.Invalid("produits", "average_review_rating", r.UniqID, r.AverageReviewRating)
		}
		nrev := ReviewCount(r.NumberOfReviews)
		if nrev == nil && r.NumberOfReviews != "" {
			audit.Invalid("produits", "number_of_reviews", r.UniqID, r.NumberOfReviews)
		}
		stock, typeStock := Stock(r.NumberAvailableInStock)
		cats := Categories(r.Category)

		out = append(out, domain.Product{
			UniqID:                    r.UniqID,
			ProductName:               r.ProductName,
			Manufacturer:              r.Manufacturer,
			Price:                     price,
			NumberOfReviews:           nrev,
			NumberOfAnsweredQuestions: ReviewCount(r.NumberOfAnsweredQuestions),
			AverageReviewRating:       rating,
			AlsoBought:                r.AlsoBought,
			Description:               r.Description,
			ProductInformation:        r.ProductInformation,
			ProductDescription:        r.ProductDescription,
			BuyAfterViewing:           r.BuyAfterViewing,
			CustomerReviews:           r.CustomerReviews,
			Stock:                     stock,
			TypeStock:                 typeStock,
			Categorie1:                cats[0],
			Categorie2:                cats[1],
			Categorie3:                cats[2],
			Categorie4:                cats[3],
			Categorie5:                cats[4],
		})
	}
	return out
}
