// The api binary serves the catalog query endpoints over HTTP, backed
// by the search store the loader fills.
//
// Quick start:
//
//	go build -o api ./cmd/api
//	./api --api_addr=:8000 --store_addrs=http://localhost:9200
package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Olivier132177/DS-projet-3/internal/api"
	"github.com/Olivier132177/DS-projet-3/internal/config"
	"github.com/Olivier132177/DS-projet-3/internal/metrics"
	"github.com/Olivier132177/DS-projet-3/internal/store"
)

func main() {
	cfg := config.Load()

	client, err := store.NewClient(splitAddrs(cfg.StoreAddrs))
	if err != nil {
		log.Fatalf("api: connect store: %v", err)
	}

	srv := api.NewServer(api.Config{
		Addr:               cfg.APIAddr,
		ProductsIndex:      cfg.ProductsIndex,
		ReviewsIndex:       cfg.ReviewsIndex,
		ConversationsIndex: cfg.ConversationsIndex,
		SellersIndex:       cfg.SellersIndex,
	}, client, metrics.New())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("api: listening on %s", cfg.APIAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Fatalf("api: %v", err)
	}
	log.Printf("api: stopped")
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
