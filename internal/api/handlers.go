package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// Numeric parameters are parsed with strconv and string parameters have
// their single quotes doubled before being placed in a SQL literal. The
// store's SQL endpoint has no server-side placeholder binding for these
// read paths, so validation happens here.

// handleProductsByCategory returns the number of products per first-level
// category.
func (s *Server) handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	sql := fmt.Sprintf(`SELECT count(*) as nombre, categorie_1
		FROM %s
		GROUP BY categorie_1 ORDER BY nombre DESC`, s.cfg.ProductsIndex)
	s.query(w, r, sql)
}

// handleProductsByManufacturer returns the top manufacturers with their
// product count and average price. Query param: nb (default 10).
func (s *Server) handleProductsByManufacturer(w http.ResponseWriter, r *http.Request) {
	nb, ok := intParam(w, r, "nb", 10)
	if !ok {
		return
	}
	sql := fmt.Sprintf(`SELECT manufacturer, count(*) as nb_produits, avg(price) as prix_moyen
		FROM %s
		GROUP BY manufacturer
		ORDER BY nb_produits DESC
		LIMIT %d`, s.cfg.ProductsIndex, nb)
	s.query(w, r, sql)
}

// handleProductsByPrice returns products inside a price range. Query
// params: mini, maxi (required), nb (default 10).
func (s *Server) handleProductsByPrice(w http.ResponseWriter, r *http.Request) {
	mini, ok := floatParam(w, r, "mini")
	if !ok {
		return
	}
	maxi, ok := floatParam(w, r, "maxi")
	if !ok {
		return
	}
	nb, ok := intParam(w, r, "nb", 10)
	if !ok {
		return
	}
	sql := fmt.Sprintf(`SELECT product_name, round(price,1) as prix, stock
		FROM %s
		WHERE price BETWEEN %g AND %g
		ORDER BY price DESC LIMIT %d`, s.cfg.ProductsIndex, mini, maxi, nb)
	s.query(w, r, sql)
}

// handleSellerPriceSpread returns, per product, the minimum and maximum
// seller prices and their spread, keeping products whose spread exceeds
// the ecart parameter. Query params: ecart (default 0), nb (default 10).
// The row cap is applied after the query, mirroring the grouped HAVING
// shape of the statement.
func (s *Server) handleSellerPriceSpread(w http.ResponseWriter, r *http.Request) {
	ecart, ok := floatParamDefault(w, r, "ecart", 0)
	if !ok {
		return
	}
	nb, ok := intParam(w, r, "nb", 10)
	if !ok {
		return
	}
	sql := fmt.Sprintf(`SELECT uniq_id, round(MIN(prix),1) as mini, round(MAX(prix),1) as maxi, round(MAX(prix) - MIN(prix),1) as ecart
		FROM %s
		GROUP BY uniq_id
		HAVING ecart > %g`, s.cfg.SellersIndex, ecart)
	rows, err := s.st.Query(r.Context(), sql)
	if s.rec != nil {
		s.rec.Query(err)
	}
	if err != nil {
		http.Error(w, "store query failed", http.StatusBadGateway)
		return
	}
	if len(rows) > nb {
		rows = rows[:nb]
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleConversationSearch returns conversations containing a search
// term. Query params: mot (required), nb (default 10).
func (s *Server) handleConversationSearch(w http.ResponseWriter, r *http.Request) {
	mot := r.URL.Query().Get("mot")
	if mot == "" {
		http.Error(w, "missing mot parameter", http.StatusBadRequest)
		return
	}
	nb, ok := intParam(w, r, "nb", 10)
	if !ok {
		return
	}
	sql := fmt.Sprintf(`SELECT uniq_id, conversation
		FROM %s
		WHERE conversation LIKE '%%%s%%'
		LIMIT %d`, s.cfg.ConversationsIndex, escapeLiteral(mot), nb)
	s.query(w, r, sql)
}

// handleProductSellers returns the sellers and prices for one product.
// Query param: id (required).
func (s *Server) handleProductSellers(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}
	sql := fmt.Sprintf(`SELECT *
		FROM %s
		WHERE uniq_id = '%s'
		ORDER BY prix DESC`, s.cfg.SellersIndex, escapeLiteral(id))
	s.query(w, r, sql)
}

// handleReviewsByDate returns the reviews written on a given day. Query
// param: date_comm (required, YYYY-MM-DD).
func (s *Server) handleReviewsByDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date_comm")
	var d domain.Date
	if err := d.UnmarshalJSON([]byte(`"` + raw + `"`)); err != nil {
		http.Error(w, "date_comm must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	sql := fmt.Sprintf(`SELECT resume, note, date_clean, commentaire
		FROM %s
		WHERE date_clean = '%s'`, s.cfg.ReviewsIndex, d.String())
	s.query(w, r, sql)
}

// handleAddProduct indexes one product document from the request body.
func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid product body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if p.UniqID == "" {
		http.Error(w, "uniq_id is required", http.StatusBadRequest)
		return
	}
	if err := s.st.IndexProduct(r.Context(), s.cfg.ProductsIndex, p); err != nil {
		http.Error(w, "store write failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"uniq_id": p.UniqID})
}

// handleDeleteProduct removes one product document. Query param: id_prod
// (required).
func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id_prod")
	if id == "" {
		http.Error(w, "missing id_prod parameter", http.StatusBadRequest)
		return
	}
	if err := s.st.DeleteProduct(r.Context(), s.cfg.ProductsIndex, id); err != nil {
		http.Error(w, "store delete failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// intParam reads an integer query parameter, writing a 400 and returning
// ok=false when the value is present but not a number.
func intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		http.Error(w, name+" must be a non-negative integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

// floatParam reads a required float query parameter.
func floatParam(w http.ResponseWriter, r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		http.Error(w, "missing "+name+" parameter", http.StatusBadRequest)
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		http.Error(w, name+" must be a number", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

// floatParamDefault reads an optional float query parameter.
func floatParamDefault(w http.ResponseWriter, r *http.Request, name string, def float64) (float64, bool) {
	if r.URL.Query().Get(name) == "" {
		return def, true
	}
	return floatParam(w, r, name)
}

// escapeLiteral doubles single quotes so user text is inert inside a SQL
// string literal.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
