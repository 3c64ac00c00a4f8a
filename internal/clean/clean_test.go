package clean

import (
	"testing"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// TestRun_AssemblesAllTables exercises the full pipeline on a small
// catalog and checks that every source row lands in the right table.
func TestRun_AssemblesAllTables(t *testing.T) {
	raws := []domain.RawProduct{
		{
			UniqID:                 "p1",
			ProductName:            "Dice Set",
			Manufacturer:           "Acme",
			Price:                  "£4.99",
			NumberAvailableInStock: "5 new",
			NumberOfReviews:        "12",
			AverageReviewRating:    "4.5 out of 5 stars",
			Category:               "Toys > Games",
			CustomerReviews:        "Nice // 5.0 // 5 Feb. 2015 // alice // great",
			CustomerQA:             "loaded? | no",
			Sellers:                `{"seller"=>[{"Seller_name_1"=>"ShopA", "Seller_price_1"=>"£10.50"}]}`,
		},
		{
			UniqID: "p2",
			Price:  "N/A",
		},
	}
	audit := &captureAuditor{}

	tables, err := Run(raws, audit)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(tables.Products) != 2 {
		t.Fatalf("products: want every raw row, got %d", len(tables.Products))
	}
	p1 := tables.Products[0]
	if p1.Price == nil || *p1.Price != 4.99 || p1.Stock != 5 || p1.TypeStock != "new" {
		t.Fatalf("p1: %+v", p1)
	}
	if p1.Categorie1 == nil || *p1.Categorie1 != "Toys " || p1.Categorie3 != nil {
		t.Fatalf("p1 categories: %+v", p1)
	}
	p2 := tables.Products[1]
	if p2.Price != nil || p2.Stock != 0 || p2.TypeStock != "no" {
		t.Fatalf("p2 must use missing/default values: %+v", p2)
	}

	if len(tables.Reviews) != 1 || tables.Reviews[0].UniqID != "p1" {
		t.Fatalf("reviews: %#v", tables.Reviews)
	}
	if len(tables.Conversations) != 2 {
		t.Fatalf("conversations: %#v", tables.Conversations)
	}
	if len(tables.Sellers) != 1 || tables.Sellers[0].Revendeur != "ShopA" {
		t.Fatalf("sellers: %#v", tables.Sellers)
	}

	// p2's "N/A" price is the only invalid value in the fixture.
	if len(audit.calls) != 1 {
		t.Fatalf("audit calls: %#v", audit.calls)
	}
	c := audit.calls[0]
	if c.table != "produits" || c.field != "price" || c.uniqID != "p2" || c.raw != "N/A" {
		t.Fatalf("audit call: %#v", c)
	}
}

// TestRun_SellerErrorAbortsRun: the structural seller error surfaces from
// Run before any table is returned.
func TestRun_SellerErrorAbortsRun(t *testing.T) {
	raws := []domain.RawProduct{{UniqID: "p1", Sellers: "garbage"}}
	if _, err := Run(raws, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestProducts_KeepsSourceOrder(t *testing.T) {
	raws := []domain.RawProduct{{UniqID: "b"}, {UniqID: "a"}, {UniqID: "c"}}
	got := Products(raws, nil)
	for i, want := range []string{"b", "a", "c"} {
		if got[i].UniqID != want {
			t.Fatalf("row %d: got %q, want %q", i, got[i].UniqID, want)
		}
	}
}
