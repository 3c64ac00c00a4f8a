// Package store talks to the search engine. It covers the two surfaces
// the rest of the repository needs: the bulk write call used by the batch
// loader and the SQL-over-REST query interface used by the API. The
// client is injected wherever it is consumed, so both surfaces can be
// faked in tests.
package store

import (
	"github.com/elastic/go-elasticsearch/v8"
)

// Client wraps the search engine connection.
type Client struct {
	es *elasticsearch.Client
}

// NewClient connects to the store at the given addresses. An empty slice
// falls back to the client library's default (localhost).
func NewClient(addresses []string) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
	})
	if err != nil {
		return nil, err
	}
	return &Client{es: es}, nil
}

// ChunkBounds splits n records into [start, end) intervals of at most
// size records. A size of 0 or less means one interval covering
// everything. Chunking exists because the store caps the bulk payload
// size; callers issue one Load per interval.
func ChunkBounds(n, size int) [][2]int {
	if n == 0 {
		return nil
	}
	if size <= 0 {
		return [][2]int{{0, n}}
	}
	var out [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}
