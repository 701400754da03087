// Package analyzer defines the finding model shared across the spelling,
// grammar, style and code-spelling services, plus HTTP clients for them.
package analyzer

// Position is a character range within the checked text. Chunk-local when a
// finding is produced, document-global after merging.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ChunkInfo records which chunk a finding came from. Diagnostic only; nothing
// downstream consumes it.
type ChunkInfo struct {
	ChunkIndex         int `json:"chunkIndex"`
	ChunkOffset        int `json:"chunkOffset"`
	OriginalLineNumber int `json:"originalLineNumber"`
}

// Finding is a single issue reported by an analyzer.
type Finding struct {
	Word             string     `json:"word,omitempty"`
	Message          string     `json:"message,omitempty"`
	Rule             string     `json:"rule,omitempty"`
	Suggestions      []string   `json:"suggestions,omitempty"`
	Position         *Position  `json:"position,omitempty"`
	LineNumber       int        `json:"lineNumber,omitempty"`
	GlobalLineNumber int        `json:"globalLineNumber,omitempty"`
	ChunkInfo        *ChunkInfo `json:"chunkInfo,omitempty"`
}

// Result groups findings by category. Findings of different categories never
// intermix within one slice.
type Result struct {
	Spelling     []Finding `json:"spelling"`
	Grammar      []Finding `json:"grammar"`
	Style        []Finding `json:"style"`
	CodeSpelling []Finding `json:"codeSpelling"`
}

// EmptyResult returns a Result with all four category slices present and
// empty, so it always serializes as four arrays rather than nulls.
func EmptyResult() *Result {
	return &Result{
		Spelling:     []Finding{},
		Grammar:      []Finding{},
		Style:        []Finding{},
		CodeSpelling: []Finding{},
	}
}

// Total returns the combined finding count across all categories.
func (r *Result) Total() int {
	return len(r.Spelling) + len(r.Grammar) + len(r.Style) + len(r.CodeSpelling)
}

// CheckOptions carries the per-request knobs forwarded to every analyzer.
type CheckOptions struct {
	CustomWords           []string `json:"customWords,omitempty"`
	Language              string   `json:"language,omitempty"`
	AutoDetectLanguage    bool     `json:"autoDetectLanguage"`
	ContextualSuggestions bool     `json:"contextualSuggestions,omitempty"`
	StyleGuide            string   `json:"styleGuide,omitempty"`
}
