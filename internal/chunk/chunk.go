// Package chunk partitions a document into contiguous, offset-tagged slices
// along linguistically meaningful boundaries.
package chunk

// Defaults for splitting. ChunkSize is a target, not a hard limit: boundary
// search may end a chunk early and the minimum-size override may extend it.
const (
	DefaultChunkSize         = 10000
	DefaultMinChunkSize      = 1000
	DefaultMaxBoundarySearch = 200
)

// Chunk is a contiguous slice of a source document. Offsets and lengths are
// counted in runes so positions line up with what editors call "characters".
type Chunk struct {
	Text      string
	Offset    int // rune index of Text's first character in the document
	Length    int // rune count of Text
	LineStart int // 1-based line number of the first character
	LineEnd   int // 1-based line number of the last character
}

// Options controls boundary search and chunk sizing.
type Options struct {
	MinChunkSize       int
	MaxBoundarySearch  int
	PreserveParagraphs bool
	PreserveSentences  bool
}

// DefaultOptions returns the standard splitting options.
func DefaultOptions() Options {
	return Options{
		MinChunkSize:       DefaultMinChunkSize,
		MaxBoundarySearch:  DefaultMaxBoundarySearch,
		PreserveParagraphs: true,
		PreserveSentences:  true,
	}
}

// Split partitions text into an ordered slice of chunks of roughly chunkSize
// runes each. Chunks are contiguous and non-overlapping: concatenating their
// texts in order reproduces text exactly. An empty document yields an empty
// slice, and a document no longer than chunkSize yields a single chunk with
// no boundary search at all.
func Split(text string, chunkSize int, opts Options) []Chunk {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if opts.MinChunkSize <= 0 {
		opts.MinChunkSize = DefaultMinChunkSize
	}
	if opts.MaxBoundarySearch <= 0 {
		opts.MaxBoundarySearch = DefaultMaxBoundarySearch
	}

	chunks := []Chunk{}
	if text == "" {
		return chunks
	}

	runes := []rune(text)
	offset := 0
	line := 1 // line number of runes[offset]

	for offset < len(runes) {
		end := offset + chunkSize
		if end >= len(runes) {
			// Final chunk runs to end of text; no boundary search needed.
			end = len(runes)
		} else {
			preferredEnd := end
			end = FindBoundary(runes, offset, preferredEnd, opts)
			// Favor fewer, better-sized chunks over perfect boundary
			// adherence: a non-final chunk is never shorter than
			// MinChunkSize.
			if end-offset < opts.MinChunkSize {
				end = offset + opts.MinChunkSize
				if end > preferredEnd {
					end = preferredEnd
				}
			}
		}

		lineStart := line
		lineEnd := lineStart + countNewlines(runes[offset:end-1])
		line = lineStart + countNewlines(runes[offset:end])

		chunks = append(chunks, Chunk{
			Text:      string(runes[offset:end]),
			Offset:    offset,
			Length:    end - offset,
			LineStart: lineStart,
			LineEnd:   lineEnd,
		})
		offset = end
	}

	return chunks
}

func countNewlines(runes []rune) int {
	n := 0
	for _, r := range runes {
		if r == '\n' {
			n++
		}
	}
	return n
}
