package clean

import (
	"strings"

	"github.com/Olivier132177/DS-projet-3/internal/domain"
)

// Conversations explodes every product's Q&A blob into one row per turn.
// Products without Q&A data contribute nothing; turns with empty text are
// dropped while keeping their position as the ordinal of later turns.
func Conversations(raws []domain.RawProduct) []domain.Conversation {
	var out []domain.Conversation
	for _, r := range raws {
		if r.CustomerQA == "" {
			continue
		}
		for i, turn := range strings.Split(r.CustomerQA, "|") {
			if turn == "" {
				continue
			}
			out = append(out, domain.Conversation{
				UniqID:       r.UniqID,
				NumEchange:   i,
				Conversation: turn,
			})
		}
	}
	return out
}
