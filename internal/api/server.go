// Package api exposes the catalog query endpoints over HTTP. Handlers
// are thin pass-throughs: they validate parameters, assemble one SQL
// statement against the store's tables, and return the resulting rows as
// JSON. All querying, aggregation and storage is the store's business.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
	"github.com/Olivier132177/DS-projet-3/internal/store"
)

// Store is the slice of the search-store client the API needs. It is an
// interface so handler tests can run against a fake.
type Store interface {
	Query(ctx context.Context, sql string) ([]store.Row, error)
	IndexProduct(ctx context.Context, index string, p domain.Product) error
	DeleteProduct(ctx context.Context, index, id string) error
}

// Recorder is the metrics surface the server reports into.
type Recorder interface {
	Request(route string, code int)
	Query(err error)
	Handler() http.Handler
}

// Config controls server startup and the table names queries run
// against.
type Config struct {
	Addr string

	ProductsIndex      string
	ReviewsIndex       string
	ConversationsIndex string
	SellersIndex       string
}

// Server wraps http.Server with the catalog routes.
type Server struct {
	cfg   Config
	st    Store
	rec   Recorder
	mux   *http.ServeMux
	httpd *http.Server
}

// NewServer constructs a Server with all routes registered. rec may be
// nil when metrics are not wanted.
func NewServer(cfg Config, st Store, rec Recorder) *Server {
	s := &Server{cfg: cfg, st: st, rec: rec, mux: http.NewServeMux()}
	s.routes()
	s.httpd = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.handle("GET /produits_categories", s.handleProductsByCategory)
	s.handle("GET /produits_manufacturer", s.handleProductsByManufacturer)
	s.handle("GET /produits_prix", s.handleProductsByPrice)
	s.handle("GET /ecart_prix_vendeur", s.handleSellerPriceSpread)
	s.handle("GET /mot_conversation", s.handleConversationSearch)
	s.handle("GET /vendeurs_produits", s.handleProductSellers)
	s.handle("GET /reviews_date", s.handleReviewsByDate)
	s.handle("PUT /ajout_produit", s.handleAddProduct)
	s.handle("DELETE /suppression_produit", s.handleDeleteProduct)
	if s.rec != nil {
		s.mux.Handle("GET /metrics", s.rec.Handler())
	}
}

// handle registers a route with request-id, logging and metrics
// wrapping.
func (s *Server) handle(route string, h http.HandlerFunc) {
	s.mux.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)
		rw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		h(rw, r)
		if s.rec != nil {
			s.rec.Request(route, rw.code)
		}
		log.Printf("api: %s %s status=%d req=%s in %s", r.Method, r.URL.Path, rw.code, reqID, time.Since(start))
	})
}

// statusWriter remembers the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	return s.httpd.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpd.Shutdown(ctx)
}

// query runs one SQL statement and writes the rows, translating store
// failures into a 502 (the store is an upstream dependency here).
func (s *Server) query(w http.ResponseWriter, r *http.Request, sql string) {
	rows, err := s.st.Query(r.Context(), sql)
	if s.rec != nil {
		s.rec.Query(err)
	}
	if err != nil {
		log.Printf("api: query failed: %v", err)
		http.Error(w, "store query failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
