package dictionary

import (
	"context"

	"markdown-spellcheck/internal/contextutil"
)

// Source resolves custom words for one request.
type Source interface {
	CustomWords(ctx context.Context, authToken string) ([]string, error)
}

// Resolver merges the words of several sources into one deduplicated list.
// A failing source is logged and skipped so a dictionary outage never blocks
// a check.
type Resolver struct {
	sources []Source
}

// NewResolver creates a resolver over the given sources, queried in order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// CustomWords gathers words from all sources, first-seen order, no
// duplicates.
func (r *Resolver) CustomWords(ctx context.Context, authToken string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var words []string
	seen := make(map[string]struct{})
	for _, src := range r.sources {
		list, err := src.CustomWords(ctx, authToken)
		if err != nil {
			logger.WarnContext(ctx, "custom-word source failed, skipping", "error", err)
			continue
		}
		for _, w := range list {
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words, nil
}
