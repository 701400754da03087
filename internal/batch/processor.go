package batch

import (
	"context"
	"time"

	"markdown-spellcheck/internal/analyzer"
	"markdown-spellcheck/internal/markdown"
)

// SpellChecker is the spelling analyzer as consumed by the batch pipeline.
type SpellChecker interface {
	// CheckText spell-checks text and returns chunk-local findings.
	CheckText(ctx context.Context, text string, opts analyzer.CheckOptions) ([]analyzer.Finding, error)
	// DetectLanguage identifies the language of a text sample.
	DetectLanguage(ctx context.Context, sample string) (string, error)
}

// GrammarChecker is the grammar analyzer as consumed by the batch pipeline.
type GrammarChecker interface {
	Check(ctx context.Context, text string, opts analyzer.CheckOptions) ([]analyzer.Finding, error)
}

// StyleAnalyzer is the style analyzer as consumed by the batch pipeline.
type StyleAnalyzer interface {
	Analyze(ctx context.Context, text string, opts analyzer.CheckOptions) ([]analyzer.Finding, error)
}

// CodeSpellChecker is the code-spelling analyzer as consumed by the batch
// pipeline.
type CodeSpellChecker interface {
	CheckCode(ctx context.Context, text string, opts analyzer.CheckOptions) ([]analyzer.Finding, error)
}

// ProcessOptions selects which analyzers run for one chunk and what they are
// told. The custom-word list and language are resolved once per batch, never
// per chunk.
type ProcessOptions struct {
	CustomWords                 []string
	Language                    string
	StyleGuide                  string
	EnableGrammar               bool
	EnableStyle                 bool
	EnableContextualSuggestions bool
	EnableCodeSpellCheck        bool
}

// Processor runs the analyzers against a single chunk of text and collects
// chunk-local findings.
type Processor struct {
	speller   SpellChecker
	grammar   GrammarChecker
	style     StyleAnalyzer
	codeSpell CodeSpellChecker
	extractor *markdown.Extractor
	timeout   time.Duration
}

// NewProcessor creates a chunk processor. timeout bounds the processing of
// one chunk across all its analyzer calls; zero disables the bound, matching
// the historical behavior where a hung analyzer stalls its batch.
func NewProcessor(speller SpellChecker, grammar GrammarChecker, style StyleAnalyzer, codeSpell CodeSpellChecker, timeout time.Duration) *Processor {
	return &Processor{
		speller:   speller,
		grammar:   grammar,
		style:     style,
		codeSpell: codeSpell,
		extractor: markdown.NewExtractor(),
		timeout:   timeout,
	}
}

// Process analyzes one chunk's text and returns its chunk-local findings.
// Any analyzer failure fails the whole chunk; the scheduler degrades a
// failed chunk to an empty result.
func (p *Processor) Process(ctx context.Context, text string, opts ProcessOptions) (*analyzer.Result, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	copts := analyzer.CheckOptions{
		CustomWords: opts.CustomWords,
		Language:    opts.Language,
		// Per-chunk language detection is disabled on purpose: detection is
		// a one-time document-level step performed before chunking.
		AutoDetectLanguage:    false,
		ContextualSuggestions: opts.EnableContextualSuggestions,
	}

	result := analyzer.EmptyResult()

	spelling, err := p.speller.CheckText(ctx, text, copts)
	if err != nil {
		return nil, WrapError(err, "spell check failed")
	}
	result.Spelling = append(result.Spelling, spelling...)

	if opts.EnableGrammar && p.grammar != nil {
		grammar, err := p.grammar.Check(ctx, text, copts)
		if err != nil {
			return nil, WrapError(err, "grammar check failed")
		}
		result.Grammar = append(result.Grammar, grammar...)
	}

	if opts.EnableStyle && p.style != nil {
		sopts := copts
		sopts.StyleGuide = opts.StyleGuide
		style, err := p.style.Analyze(ctx, text, sopts)
		if err != nil {
			return nil, WrapError(err, "style analysis failed")
		}
		result.Style = append(result.Style, style...)
	}

	if opts.EnableCodeSpellCheck && p.codeSpell != nil {
		findings, err := p.checkCodeRegions(ctx, text, copts)
		if err != nil {
			return nil, WrapError(err, "code spell check failed")
		}
		result.CodeSpelling = append(result.CodeSpelling, findings...)
	}

	return result, nil
}

// checkCodeRegions runs the code-spelling analyzer on each code region of
// the chunk and rebases segment-local findings to chunk-local coordinates.
func (p *Processor) checkCodeRegions(ctx context.Context, text string, copts analyzer.CheckOptions) ([]analyzer.Finding, error) {
	var out []analyzer.Finding
	for _, seg := range p.extractor.CodeSegments(text) {
		findings, err := p.codeSpell.CheckCode(ctx, seg.Text, copts)
		if err != nil {
			return nil, err
		}
		for _, f := range findings {
			if f.Position != nil {
				pos := *f.Position
				pos.Start += seg.Offset
				pos.End += seg.Offset
				f.Position = &pos
			}
			if f.LineNumber > 0 {
				f.LineNumber += seg.Line - 1
			}
			out = append(out, f)
		}
	}
	return out, nil
}
