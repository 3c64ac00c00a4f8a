// Package domain defines the business records for the product catalog:
// the raw CSV row shape and the four cleaned tables (products, reviews,
// conversations, seller quotes) that are bulk-loaded into the search store.
//
// Missing or invalid values are represented as nil pointers, never as
// sentinel numbers. Every store-facing field carries an `omitempty` JSON
// tag so that missing fields are omitted from bulk payloads.
package domain

// RawProduct is one row of the source CSV, untyped. Empty strings mean
// the cell was empty in the file (a missing value). A RawProduct is read
// once and never mutated; the cleaning pipeline derives typed records
// from it.
type RawProduct struct {
	UniqID                    string
	ProductName               string
	Manufacturer              string
	Price                     string
	NumberAvailableInStock    string
	NumberOfReviews           string
	NumberOfAnsweredQuestions string
	AverageReviewRating       string
	Category                  string // raw ">"-delimited taxonomy string
	AlsoBought                string
	Description               string
	ProductInformation        string
	ProductDescription        string
	BuyAfterViewing           string
	CustomerReviews           string // "|"-delimited reviews blob
	CustomerQA                string // "|"-delimited question/answer blob
	Sellers                   string // serialized seller entries
}

// Product is one row of the cleaned products table. Field names follow
// the store schema the query layer depends on.
type Product struct {
	UniqID                    string   `json:"uniq_id"`
	ProductName               string   `json:"product_name,omitempty"`
	Manufacturer              string   `json:"manufacturer,omitempty"`
	Price                     *float64 `json:"price,omitempty"`
	NumberOfReviews           *float64 `json:"number_of_reviews,omitempty"`
	NumberOfAnsweredQuestions *float64 `json:"number_of_answered_questions,omitempty"`
	AverageReviewRating       *float64 `json:"average_review_rating,omitempty"`
	AlsoBought                string   `json:"customers_who_bought_this_item_also_bought,omitempty"`
	Description               string   `json:"description,omitempty"`
	ProductInformation        string   `json:"product_information,omitempty"`
	ProductDescription        string   `json:"product_description,omitempty"`
	BuyAfterViewing           string   `json:"items_customers_buy_after_viewing_this_item,omitempty"`
	CustomerReviews           string   `json:"customer_reviews,omitempty"`

	// Stock quantity defaults to 0 and the stock label to "no" when the
	// source field is absent; both are always present in the payload.
	Stock     float64 `json:"stock"`
	TypeStock string  `json:"type_stock"`

	Categorie1 *string `json:"categorie_1,omitempty"`
	Categorie2 *string `json:"categorie_2,omitempty"`
	Categorie3 *string `json:"categorie_3,omitempty"`
	Categorie4 *string `json:"categorie_4,omitempty"`
	Categorie5 *string `json:"categorie_5,omitempty"`
}

// Review is one customer review exploded out of a product's reviews blob.
// NumReview is the chunk position within the product's blob, counted
// before empty chunks are dropped.
type Review struct {
	UniqID      string   `json:"uniq_id"`
	NumReview   int      `json:"num_review"`
	Resume      string   `json:"resume,omitempty"`
	Note        *float64 `json:"note,omitempty"`
	Qui         string   `json:"qui,omitempty"`
	Commentaire string   `json:"commentaire,omitempty"`
	Autre1      string   `json:"autre_1,omitempty"`
	Autre2      string   `json:"autre_2,omitempty"`
	Autre3      string   `json:"autre_3,omitempty"`
	Autre4      string   `json:"autre_4,omitempty"`
	DateClean   *Date    `json:"date_clean,omitempty"`
}

// Conversation is one question/answer turn exploded out of a product's
// Q&A blob.
type Conversation struct {
	UniqID       string `json:"uniq_id"`
	NumEchange   int    `json:"num_echange"`
	Conversation string `json:"conversation"`
}

// SellerQuote is one (seller, price) pair for a product. Prix is nil when
// the price sub-field did not parse.
type SellerQuote struct {
	Revendeur string   `json:"revendeur"`
	Prix      *float64 `json:"prix,omitempty"`
	UniqID    string   `json:"uniq_id"`
}
