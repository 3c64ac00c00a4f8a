// Package catalog reads the source product CSV into raw records. The
// reader is header-driven: columns are located by name, extra columns are
// passed over, and short rows are padded so that one ragged line never
// aborts a run. Empty cells are missing values; downstream code treats
// the empty string accordingly.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// Column names of the source file. uniq_id is the only hard requirement;
// every other column degrades to missing when absent.
const (
	colUniqID            = "uniq_id"
	colProductName       = "product_name"
	colManufacturer      = "manufacturer"
	colPrice             = "price"
	colStock             = "number_available_in_stock"
	colNumberOfReviews   = "number_of_reviews"
	colAnsweredQuestions = "number_of_answered_questions"
	colAverageRating     = "average_review_rating"
	colCategory          = "amazon_category_and_sub_category"
	colAlsoBought        = "customers_who_bought_this_item_also_bought"
	colDescription       = "description"
	colProductInfo       = "product_information"
	colProductDesc       = "product_description"
	colBuyAfterViewing   = "items_customers_buy_after_viewing_this_item"
	colCustomerReviews   = "customer_reviews"
	colCustomerQA        = "customer_questions_and_answers"
	colSellers           = "sellers"
)

const utf8BOM = "\ufeff"

// ReadFile reads the product CSV at path. See Read.
func ReadFile(path string) ([]domain.RawProduct, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses the product CSV from r. The reader runs in lenient mode
// (lazy quotes, variable field count) because real exports of this
// dataset contain multi-line quoted fields and the occasional unbalanced
// quote. A missing header row or a header without uniq_id is an error;
// individual data rows are padded or truncated to the header width.
func Read(r io.Reader) ([]domain.RawProduct, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	if _, ok := idx[colUniqID]; !ok {
		return nil, fmt.Errorf("header has no %s column", colUniqID)
	}

	cell := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var out []domain.RawProduct
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(out)+2, err)
		}
		out = append(out, domain.RawProduct{
			UniqID:                    cell(rec, colUniqID),
			ProductName:               cell(rec, colProductName),
			Manufacturer:              cell(rec, colManufacturer),
			Price:                     cell(rec, colPrice),
			NumberAvailableInStock:    cell(rec, colStock),
			NumberOfReviews:           cell(rec, colNumberOfReviews),
			NumberOfAnsweredQuestions: cell(rec, colAnsweredQuestions),
			AverageReviewRating:       cell(rec, colAverageRating),
			Category:                  cell(rec, colCategory),
			AlsoBought:                cell(rec, colAlsoBought),
			Description:               cell(rec, colDescription),
			ProductInformation:        cell(rec, colProductInfo),
			ProductDescription:        cell(rec, colProductDesc),
			BuyAfterViewing:           cell(rec, colBuyAfterViewing),
			CustomerReviews:           cell(rec, colCustomerReviews),
			CustomerQA:                cell(rec, colCustomerQA),
			Sellers:                   cell(rec, colSellers),
		})
	}
	return out, nil
}
