// The loader is the one-shot batch job: it reads the raw product CSV,
// runs the cleaning pipeline, and bulk-loads the four resulting tables
// into the search store in chunks. The run is strictly sequential; a
// failed bulk call aborts the run while chunks already loaded stay in
// place (at-least-once, non-transactional).
//
// Quick start:
//
//	go build -o loader ./cmd/loader
//	./loader --catalog_csv=amazon_co-ecommerce_sample.csv --store_addrs=http://localhost:9200
package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/Olivier132177/DS-projet-3/internal/catalog"
	"github.com/Olivier132177/DS-projet-3/internal/clean"
	"github.com/Olivier132177/DS-projet-3/internal/config"
	"github.com/Olivier132177/DS-projet-3/internal/metrics"
	"github.com/Olivier132177/DS-projet-3/internal/skiplog"
	"github.com/Olivier132177/DS-projet-3/internal/store"
)

func main() {
	cfg := config.Load()
	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("loader: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	raws, err := catalog.ReadFile(cfg.CatalogCSV)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	log.Printf("loader: read %d raw rows from %s", len(raws), cfg.CatalogCSV)

	audit, err := skiplog.New(filepath.Join(cfg.SkippedDir, "invalid_values.csv"))
	if err != nil {
		return fmt.Errorf("open skip log: %w", err)
	}
	defer audit.Close()
	rec := metrics.New()

	tables, err := clean.Run(raws, multiAudit{audit, rec})
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	log.Printf("loader: assembled produits=%d reviews=%d conversations=%d vendeurs=%d",
		len(tables.Products), len(tables.Reviews), len(tables.Conversations), len(tables.Sellers))
	for k, v := range audit.Counts() {
		log.Printf("loader: invalid %s=%d", k, v)
	}

	client, err := store.NewClient(splitAddrs(cfg.StoreAddrs))
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}

	if err := loadTable(ctx, client, cfg.ProductsIndex, asDocs(tables.Products), cfg.ProductChunk, rec); err != nil {
		return err
	}
	if err := loadTable(ctx, client, cfg.ReviewsIndex, asDocs(tables.Reviews), cfg.ReviewChunk, rec); err != nil {
		return err
	}
	if err := loadTable(ctx, client, cfg.ConversationsIndex, asDocs(tables.Conversations), cfg.ConversationChunk, rec); err != nil {
		return err
	}
	if err := loadTable(ctx, client, cfg.SellersIndex, asDocs(tables.Sellers), cfg.SellerChunk, rec); err != nil {
		return err
	}

	if cfg.PushgatewayURL != "" {
		if err := rec.Push(cfg.PushgatewayURL, cfg.MetricsJob); err != nil {
			// Metrics are best-effort; a dead gateway must not fail a
			// completed load.
			log.Printf("loader: metrics push: %v", err)
		}
	}
	log.Printf("loader: done")
	return nil
}

// loadTable writes one table in chunks, logging a completion marker per
// chunk. Document ids continue across chunks so each row keeps its
// position in the full table.
func loadTable(ctx context.Context, bw store.BulkWriter, index string, docs []any, chunk int, rec *metrics.Recorder) error {
	for _, b := range store.ChunkBounds(len(docs), chunk) {
		n, err := bw.Load(ctx, index, docs[b[0]:b[1]], b[0])
		rec.BulkCall(index, err)
		if err != nil {
			return fmt.Errorf("load %s rows %d-%d: %w", index, b[0], b[1], err)
		}
		log.Printf("ok %s rows %d-%d (%d loaded)", index, b[0], b[1], n)
	}
	rec.Rows(index, len(docs))
	return nil
}

// asDocs widens a typed record slice for the bulk writer.
func asDocs[T any](records []T) []any {
	out := make([]any, len(records))
	for i := range records {
		out[i] = records[i]
	}
	return out
}

func splitAddrs(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// multiAudit fans one invalid-value notification out to several sinks
// (the skip log CSV and the metrics counters).
type multiAudit []clean.Auditor

func (m multiAudit) Invalid(table, field, uniqID, raw string) {
	for _, a := range m {
		a.Invalid(table, field, uniqID, raw)
	}
}
