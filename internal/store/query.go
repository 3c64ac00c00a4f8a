package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Row is one row of a SQL result, keyed by column name.
type Row map[string]any

// Query sends a SQL statement to the store's SQL endpoint with the
// columnar result flag and reassembles the column-oriented response into
// row-oriented records, preserving row order.
func (c *Client) Query(ctx context.Context, sql string) ([]Row, error) {
	body, err := json.Marshal(map[string]any{
		"query":    sql,
		"columnar": true,
	})
	if err != nil {
		return nil, err
	}

	res, err := c.es.SQL.Query(bytes.NewReader(body),
		c.es.SQL.Query.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("sql query: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("sql query: %s", res.String())
	}

	var payload struct {
		Columns []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"columns"`
		Values [][]any `json:"values"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode sql response: %w", err)
	}
	if len(payload.Values) != len(payload.Columns) {
		return nil, fmt.Errorf("sql response has %d value columns for %d columns",
			len(payload.Values), len(payload.Columns))
	}

	var nrows int
	if len(payload.Values) > 0 {
		nrows = len(payload.Values[0])
	}
	rows := make([]Row, 0, nrows)
	for i := 0; i < nrows; i++ {
		row := make(Row, len(payload.Columns))
		for j, col := range payload.Columns {
			if i < len(payload.Values[j]) {
				row[col.Name] = payload.Values[j][i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
