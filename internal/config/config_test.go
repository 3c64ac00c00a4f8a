package config

import (
	"flag"
	"testing"
)

func noEnv(string) string { return "" }

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestLoadFromArgs_Defaults(t *testing.T) {
	cfg := LoadFromArgs(newFlagSet(), noEnv, nil)
	if cfg.CatalogCSV != "amazon_co-ecommerce_sample.csv" {
		t.Fatalf("catalog_csv: %q", cfg.CatalogCSV)
	}
	if cfg.StoreAddrs != "http://localhost:9200" {
		t.Fatalf("store_addrs: %q", cfg.StoreAddrs)
	}
	if cfg.ProductsIndex != "produits" || cfg.SellersIndex != "vendeurs" {
		t.Fatalf("indexes: %+v", cfg)
	}
	if cfg.ProductChunk != 5000 || cfg.ReviewChunk != 15000 || cfg.ConversationChunk != 0 || cfg.SellerChunk != 16000 {
		t.Fatalf("chunks: %+v", cfg)
	}
	if cfg.PushgatewayURL != "" {
		t.Fatalf("push must be off by default: %q", cfg.PushgatewayURL)
	}
	if cfg.APIAddr != ":8000" {
		t.Fatalf("api_addr: %q", cfg.APIAddr)
	}
}

// TestLoadFromArgs_EnvFallback: environment values seed the defaults when
// no flag is given.
func TestLoadFromArgs_EnvFallback(t *testing.T) {
	env := map[string]string{
		"CATALOG_CSV":   "/data/products.csv",
		"PRODUCT_CHUNK": "100",
	}
	getenv := func(k string) string { return env[k] }
	cfg := LoadFromArgs(newFlagSet(), getenv, nil)
	if cfg.CatalogCSV != "/data/products.csv" {
		t.Fatalf("catalog_csv: %q", cfg.CatalogCSV)
	}
	if cfg.ProductChunk != 100 {
		t.Fatalf("product_chunk: %d", cfg.ProductChunk)
	}
}

// TestLoadFromArgs_FlagBeatsEnv: an explicit flag overrides the
// environment value.
func TestLoadFromArgs_FlagBeatsEnv(t *testing.T) {
	env := map[string]string{"CATALOG_CSV": "/from/env.csv"}
	getenv := func(k string) string { return env[k] }
	cfg := LoadFromArgs(newFlagSet(), getenv, []string{"-catalog_csv=/from/flag.csv"})
	if cfg.CatalogCSV != "/from/flag.csv" {
		t.Fatalf("catalog_csv: %q", cfg.CatalogCSV)
	}
}

func TestLoadFromArgs_BadIntEnvIgnored(t *testing.T) {
	env := map[string]string{"REVIEW_CHUNK": "lots"}
	getenv := func(k string) string { return env[k] }
	cfg := LoadFromArgs(newFlagSet(), getenv, nil)
	if cfg.ReviewChunk != 15000 {
		t.Fatalf("review_chunk should keep its default: %d", cfg.ReviewChunk)
	}
}
