package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// IndexProduct adds one product document to the given index, letting the
// store assign the document id.
func (c *Client) IndexProduct(ctx context.Context, index string, p domain.Product) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	res, err := c.es.Index(index, bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product: %s", res.String())
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

// DeleteProduct removes the product document with the given id.
func (c *Client) DeleteProduct(ctx context.Context, index, id string) error {
	res, err := c.es.Delete(index, id,
		c.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("delete product %s: %s", id, res.String())
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}
