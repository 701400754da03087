package batch

import (
	"sort"

	"markdown-spellcheck/internal/analyzer"
	"markdown-spellcheck/internal/chunk"
)

// MergeResults converts per-chunk results into one document-global result
// set. Positions are rebased by the owning chunk's offset, line numbers by
// its starting line, and every finding gets ChunkInfo attached for
// diagnosis. Each category is then stably sorted ascending by global start
// position, so two findings at the same position keep their chunk order.
func MergeResults(chunkResults []*analyzer.Result, chunks []chunk.Chunk) *analyzer.Result {
	merged := analyzer.EmptyResult()

	for i, res := range chunkResults {
		if res == nil || i >= len(chunks) {
			continue
		}
		c := chunks[i]
		merged.Spelling = append(merged.Spelling, rebase(res.Spelling, i, c)...)
		merged.Grammar = append(merged.Grammar, rebase(res.Grammar, i, c)...)
		merged.Style = append(merged.Style, rebase(res.Style, i, c)...)
		merged.CodeSpelling = append(merged.CodeSpelling, rebase(res.CodeSpelling, i, c)...)
	}

	sortByPosition(merged.Spelling)
	sortByPosition(merged.Grammar)
	sortByPosition(merged.Style)
	sortByPosition(merged.CodeSpelling)

	return merged
}

// rebase maps chunk-local findings to document-global coordinates. Findings
// are copied; the chunk-local originals are never touched again.
func rebase(findings []analyzer.Finding, index int, c chunk.Chunk) []analyzer.Finding {
	if len(findings) == 0 {
		return nil
	}
	out := make([]analyzer.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Position != nil {
			pos := *f.Position
			pos.Start += c.Offset
			pos.End += c.Offset
			f.Position = &pos
		}
		// Chunk-local line 1 maps to the chunk's first global line.
		f.GlobalLineNumber = f.LineNumber + c.LineStart - 1
		f.ChunkInfo = &analyzer.ChunkInfo{
			ChunkIndex:         index,
			ChunkOffset:        c.Offset,
			OriginalLineNumber: f.LineNumber,
		}
		out = append(out, f)
	}
	return out
}

func sortByPosition(findings []analyzer.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return startOf(findings[i]) < startOf(findings[j])
	})
}

// startOf defaults a missing position to zero. A finding without a position
// is a contract violation by its analyzer, but it must not break the merge.
func startOf(f analyzer.Finding) int {
	if f.Position == nil {
		return 0
	}
	return f.Position.Start
}
