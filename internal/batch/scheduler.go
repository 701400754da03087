package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"markdown-spellcheck/internal/analyzer"
	"markdown-spellcheck/internal/chunk"
	"markdown-spellcheck/internal/contextutil"
)

// DefaultMaxConcurrency is the number of chunks processed concurrently
// within one batch.
const DefaultMaxConcurrency = 3

// ProcessFunc analyzes one chunk and returns its chunk-local result.
type ProcessFunc func(ctx context.Context, index int, c chunk.Chunk) (*analyzer.Result, error)

// RunBatched runs fn over all chunks in sequential batches of at most
// maxConcurrency. Within a batch every chunk is dispatched concurrently and
// the whole batch settles before the next one starts, so the number of
// in-flight analyzer calls never exceeds maxConcurrency.
//
// The returned slice is always index-aligned with chunks, regardless of
// which chunk in a batch finished first. A chunk whose processing fails is
// logged and degraded to an empty result; failures never abort the batch and
// never propagate.
func RunBatched(ctx context.Context, chunks []chunk.Chunk, maxConcurrency int, fn ProcessFunc) []*analyzer.Result {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	logger := contextutil.LoggerFromContext(ctx)
	results := make([]*analyzer.Result, len(chunks))

	for batchStart := 0; batchStart < len(chunks); batchStart += maxConcurrency {
		batchEnd := batchStart + maxConcurrency
		if batchEnd > len(chunks) {
			batchEnd = len(chunks)
		}

		var g errgroup.Group
		for i := batchStart; i < batchEnd; i++ {
			i := i
			g.Go(func() error {
				res, err := fn(ctx, i, chunks[i])
				if err != nil {
					logger.WarnContext(ctx, "chunk processing failed, substituting empty result",
						"chunk_index", i, "chunk_offset", chunks[i].Offset, "error", err)
					results[i] = analyzer.EmptyResult()
					return nil
				}
				if res == nil {
					res = analyzer.EmptyResult()
				}
				results[i] = res
				return nil
			})
		}
		// Batch boundary is a synchronization point. Group members never
		// return errors; failures were already degraded above.
		_ = g.Wait()
	}

	return results
}
