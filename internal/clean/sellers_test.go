package clean

import (
	"strings"
	"testing"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

func TestSellerQuotes_RealNotation(t *testing.T) {
	raws := []domain.RawProduct{{
		UniqID:  "p1",
		Sellers: `{"seller"=>[{"Seller_name_1"=>"ShopA", "Seller_price_1"=>"£10.50"}, {"Seller_name_2"=>"ShopB", "Seller_price_2"=>"£12.00"}]}`,
	}}
	got, err := SellerQuotes(raws, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 quotes, got %d: %#v", len(got), got)
	}
	if got[0].Revendeur != "ShopA" || got[0].Prix == nil || *got[0].Prix != 10.50 {
		t.Fatalf("first quote: %+v", got[0])
	}
	if got[1].Revendeur != "ShopB" || got[1].Prix == nil || *got[1].Prix != 12.00 {
		t.Fatalf("second quote: %+v", got[1])
	}
	if got[0].UniqID != "p1" || got[1].UniqID != "p1" {
		t.Fatalf("uniq_id lost: %+v", got)
	}
}

// TestSellerQuotes_SingleFlatEntry: a flat entry without numbered keys
// still yields a (name, price) pair.
func TestSellerQuotes_SingleFlatEntry(t *testing.T) {
	raws := []domain.RawProduct{{
		UniqID:  "p1",
		Sellers: `{"seller"=>"ShopA", "price"=>"£10.50"}`,
	}}
	got, err := SellerQuotes(raws, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 quote, got %#v", got)
	}
	if got[0].Revendeur != "ShopA" {
		t.Fatalf("name: got %q", got[0].Revendeur)
	}
	if got[0].Prix == nil || *got[0].Prix != 10.50 {
		t.Fatalf("price: got %v", got[0].Prix)
	}
}

func TestSellerQuotes_ThousandsSeparatorInPrice(t *testing.T) {
	raws := []domain.RawProduct{{
		UniqID:  "p1",
		Sellers: `{"seller"=>[{"Seller_name_1"=>"ShopA", "Seller_price_1"=>"£1,099.00"}]}`,
	}}
	got, err := SellerQuotes(raws, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Prix == nil || *got[0].Prix != 1099 {
		t.Fatalf("got %#v", got)
	}
}

// TestSellerQuotes_UnparsablePriceBecomesMissing: a garbled price field
// keeps the quote with a nil price and audits the raw sub-field.
func TestSellerQuotes_UnparsablePriceBecomesMissing(t *testing.T) {
	raws := []domain.RawProduct{{
		UniqID:  "p1",
		Sellers: `{"seller"=>[{"Seller_name_1"=>"ShopA", "Seller_price_1"=>"call us"}]}`,
	}}
	audit := &captureAuditor{}
	got, err := SellerQuotes(raws, audit)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Revendeur != "ShopA" || got[0].Prix != nil {
		t.Fatalf("got %#v", got)
	}
	if len(audit.calls) != 1 || audit.calls[0].table != "vendeurs" || audit.calls[0].field != "prix" {
		t.Fatalf("audit: %#v", audit.calls)
	}
}

// TestSellerQuotes_MissingPriceSubField: an entry with a name but no
// price boundary keeps the quote, price missing.
func TestSellerQuotes_MissingPriceSubField(t *testing.T) {
	raws := []domain.RawProduct{{
		UniqID:  "p1",
		Sellers: `{"seller"=>[{"Seller_name_1"=>"ShopA"}]}`,
	}}
	audit := &captureAuditor{}
	got, err := SellerQuotes(raws, audit)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Revendeur != "ShopA" || got[0].Prix != nil {
		t.Fatalf("got %#v", got)
	}
	if len(audit.calls) != 1 {
		t.Fatalf("audit: %#v", audit.calls)
	}
}

// TestSellerQuotes_NoSeparatorIsFatal: an entry with no "=>" at all means
// the notation assumption is broken, which fails the whole run.
func TestSellerQuotes_NoSeparatorIsFatal(t *testing.T) {
	raws := []domain.RawProduct{{
		UniqID:  "p1",
		Sellers: `just some text`,
	}}
	_, err := SellerQuotes(raws, nil)
	if err == nil {
		t.Fatalf("expected error for entry without separator")
	}
	if !strings.Contains(err.Error(), "p1") {
		t.Fatalf("error should name the product: %v", err)
	}
}

func TestSellerQuotes_SkipsProductsWithoutSellers(t *testing.T) {
	raws := []domain.RawProduct{{UniqID: "p1"}}
	got, err := SellerQuotes(raws, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want no quotes, got %#v", got)
	}
}
