package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// BulkWriter is what the batch loader depends on. Load writes docs into
// index as one bulk call, numbering documents offset, offset+1, ... so
// that identifiers stay unique across the chunks of one table.
type BulkWriter interface {
	Load(ctx context.Context, index string, docs []any, offset int) (int, error)
}

// Load performs one synchronous bulk write. Each document becomes a
// create directive carrying its position as the document id, followed by
// the document body; fields holding missing values are omitted by the
// records' omitempty tags. There is no retry: a failed call returns an
// error and the caller decides what happens to later chunks.
func (c *Client) Load(ctx context.Context, index string, docs []any, offset int) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	for i, doc := range docs {
		meta := fmt.Sprintf(`{"create":{"_index":%q,"_id":"%d"}}`, index, offset+i)
		buf.WriteString(meta)
		buf.WriteByte('\n')
		body, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("encode doc %d for %s: %w", offset+i, index, err)
		}
		buf.Write(body)
		buf.WriteByte('\n')
	}

	res, err := c.es.Bulk(bytes.NewReader(buf.Bytes()),
		c.es.Bulk.WithContext(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("bulk %s: %w", index, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, fmt.Errorf("bulk %s: %s", index, res.String())
	}
	// The per-row report is not inspected further; drain it so the
	// connection can be reused.
	_, _ = io.Copy(io.Discard, res.Body)
	return len(docs), nil
}
