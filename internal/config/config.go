// Package config centralizes process configuration for the loader and
// the API. All tunables live outside the code: each is a command-line
// flag with an environment-variable fallback, so `-help` documents every
// knob. A .env file in the working directory is honored before the
// environment is read.
//
// For tests, prefer LoadFromArgs to keep them hermetic:
//
//	fs := flag.NewFlagSet("test", flag.ContinueOnError)
//	getenv := func(k string) string { return testEnv[k] }
//	cfg := config.LoadFromArgs(fs, getenv, []string{"-workers=4"})
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. All fields are plain values so
// the struct can be copied freely once constructed.
type Config struct {
	// IO
	CatalogCSV string // path to the source product CSV
	SkippedDir string // directory for invalid-value audit CSVs

	// Store
	StoreAddrs         string // comma-separated store addresses
	ProductsIndex      string
	ReviewsIndex       string
	ConversationsIndex string
	SellersIndex       string

	// Load tunables: rows per bulk call, per table. 0 means a single
	// call for the whole table.
	ProductChunk      int
	ReviewChunk       int
	ConversationChunk int
	SellerChunk       int

	// Observability
	PushgatewayURL string // empty disables the metrics push
	MetricsJob     string

	// API
	APIAddr string
}

// LoadFromArgs builds a Config by defining flags on fs, wiring each flag
// to an environment-variable fallback via getenv, and parsing args.
// Environment values seed the flag defaults; explicit flags override
// them.
func LoadFromArgs(fs *flag.FlagSet, getenv func(string) string, args []string) *Config {
	cfg := &Config{}

	envOrDefaultFn := func(k, d string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return d
	}
	intEnvOrDefaultFn := func(k string, d int) int {
		if v := getenv(k); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
		return d
	}

	fs.StringVar(&cfg.CatalogCSV, "catalog_csv",
		envOrDefaultFn("CATALOG_CSV", "amazon_co-ecommerce_sample.csv"),
		"Path to the source product CSV")
	fs.StringVar(&cfg.SkippedDir, "skipped_dir",
		envOrDefaultFn("SKIPPED_DIR", "./skipped"),
		"Directory for invalid-value audit CSVs")

	fs.StringVar(&cfg.StoreAddrs, "store_addrs",
		envOrDefaultFn("STORE_ADDRS", "http://localhost:9200"),
		"Comma-separated search store addresses")
	fs.StringVar(&cfg.ProductsIndex, "products_index",
		envOrDefaultFn("PRODUCTS_INDEX", "produits"), "Products table name")
	fs.StringVar(&cfg.ReviewsIndex, "reviews_index",
		envOrDefaultFn("REVIEWS_INDEX", "reviews"), "Reviews table name")
	fs.StringVar(&cfg.ConversationsIndex, "conversations_index",
		envOrDefaultFn("CONVERSATIONS_INDEX", "conversations"), "Conversations table name")
	fs.StringVar(&cfg.SellersIndex, "sellers_index",
		envOrDefaultFn("SELLERS_INDEX", "vendeurs"), "Seller quotes table name")

	fs.IntVar(&cfg.ProductChunk, "product_chunk",
		intEnvOrDefaultFn("PRODUCT_CHUNK", 5000), "Products per bulk call (0 = one call)")
	fs.IntVar(&cfg.ReviewChunk, "review_chunk",
		intEnvOrDefaultFn("REVIEW_CHUNK", 15000), "Reviews per bulk call (0 = one call)")
	fs.IntVar(&cfg.ConversationChunk, "conversation_chunk",
		intEnvOrDefaultFn("CONVERSATION_CHUNK", 0), "Conversations per bulk call (0 = one call)")
	fs.IntVar(&cfg.SellerChunk, "seller_chunk",
		intEnvOrDefaultFn("SELLER_CHUNK", 16000), "Seller quotes per bulk call (0 = one call)")

	fs.StringVar(&cfg.PushgatewayURL, "pushgateway_url",
		getenv("PUSHGATEWAY_URL"), "Prometheus Pushgateway base URL (empty disables push)")
	fs.StringVar(&cfg.MetricsJob, "metrics_job",
		envOrDefaultFn("METRICS_JOB", "catalog_loader"), "Pushgateway job name")

	fs.StringVar(&cfg.APIAddr, "api_addr",
		envOrDefaultFn("API_ADDR", ":8000"), "Listen address of the query API")

	if args == nil {
		args = []string{}
	}
	_ = fs.Parse(args)
	return cfg
}

// Load is the production entry point: it loads a .env file when present,
// then wires the loader to the process flag set and real environment.
func Load() *Config {
	_ = godotenv.Load()
	return LoadFromArgs(flag.CommandLine, os.Getenv, os.Args[1:])
}
