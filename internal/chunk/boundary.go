package chunk

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Boundary patterns in priority order. A paragraph boundary is a blank line
// or the newline that introduces a markdown header; a sentence boundary is
// sentence-ending punctuation followed by whitespace.
var (
	paragraphRe  = regexp.MustCompile(`\n\n|\n#{1,6}[ \t]`)
	sentenceRe   = regexp.MustCompile(`[.!?]+\s`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// FindBoundary returns the best index in (start, preferredEnd] at which to
// cut a chunk. It scans the last MaxBoundarySearch runes before preferredEnd
// and prefers, in order: a paragraph break or markdown header, a sentence
// end, a word break, a bare newline. In every tier the occurrence closest to
// preferredEnd wins, keeping chunks near the requested size. When the window
// holds no boundary at all, preferredEnd is returned unchanged: a hard cut
// mid-word is the accepted last resort so splitting always makes progress.
func FindBoundary(runes []rune, start, preferredEnd int, opts Options) int {
	if preferredEnd <= start {
		return preferredEnd
	}

	windowStart := preferredEnd - opts.MaxBoundarySearch
	if windowStart < start {
		windowStart = start
	}
	window := string(runes[windowStart:preferredEnd])

	// toPos converts a byte index within window back to a document rune index.
	toPos := func(byteIdx int) int {
		return windowStart + utf8.RuneCountInString(window[:byteIdx])
	}

	if opts.PreserveParagraphs {
		if locs := paragraphRe.FindAllStringIndex(window, -1); len(locs) > 0 {
			m := locs[len(locs)-1]
			cut := m[1]
			if window[m[0]+1] == '#' {
				// Header match: cut after the introducing newline so the
				// header opens the next chunk.
				cut = m[0] + 1
			}
			if pos := toPos(cut); pos > start {
				return pos
			}
		}
	}

	if opts.PreserveSentences {
		if locs := sentenceRe.FindAllStringIndex(window, -1); len(locs) > 0 {
			if pos := toPos(locs[len(locs)-1][1]); pos > start {
				return pos
			}
		}
	}

	if locs := whitespaceRe.FindAllStringIndex(window, -1); len(locs) > 0 {
		if pos := toPos(locs[len(locs)-1][1]); pos > start {
			return pos
		}
	}

	if i := strings.LastIndexByte(window, '\n'); i >= 0 {
		if pos := toPos(i + 1); pos > start {
			return pos
		}
	}

	return preferredEnd
}
