package batch

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_analyzers.go -package=mocks markdown-spellcheck/internal/batch SpellChecker,GrammarChecker,StyleAnalyzer,CodeSpellChecker,WordSource
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks -mock_names=Service=MockService markdown-spellcheck/internal/batch Service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"markdown-spellcheck/internal/analyzer"
	"markdown-spellcheck/internal/chunk"
	"markdown-spellcheck/internal/contextutil"
)

// detectSampleSize is how many runes of the document are sent for one-time
// language detection.
const detectSampleSize = 1000

// WordSource resolves the user's custom dictionary words. The auth token is
// forwarded so sources backed by the account service can scope the lookup.
type WordSource interface {
	CustomWords(ctx context.Context, authToken string) ([]string, error)
}

// Request is one batch check of a whole document.
type Request struct {
	Text                        string
	ChunkSize                   int
	CustomWords                 []string
	EnableGrammar               bool
	EnableStyle                 bool
	EnableContextualSuggestions bool
	EnableCodeSpellCheck        bool
	StyleGuide                  string
	AuthToken                   string
	Language                    string
}

// IssueCounts breaks down findings per category.
type IssueCounts struct {
	Spelling     int `json:"spelling"`
	Grammar      int `json:"grammar"`
	Style        int `json:"style"`
	CodeSpelling int `json:"codeSpelling"`
	Total        int `json:"total"`
}

// Statistics summarizes one processed batch.
type Statistics struct {
	Characters       int         `json:"characters"`
	Chunks           int         `json:"chunks"`
	ProcessingTimeMs int64       `json:"processingTimeMs"`
	CustomWordsUsed  int         `json:"customWordsUsed"`
	IssuesFound      IssueCounts `json:"issuesFound"`
}

// BatchInfo describes how the document was partitioned and scheduled.
type BatchInfo struct {
	ChunkCount       int `json:"chunkCount"`
	AverageChunkSize int `json:"averageChunkSize"`
	MaxConcurrency   int `json:"maxConcurrency"`
}

// Response is the full result of one batch check.
type Response struct {
	Results        *analyzer.Result `json:"results"`
	ProcessingTime int64            `json:"processingTime"`
	Statistics     Statistics       `json:"statistics"`
	BatchInfo      BatchInfo        `json:"batchInfo"`
}

// Config carries the operator-tuned limits for the batch service.
type Config struct {
	ChunkSize      int
	ChunkOptions   chunk.Options
	MaxConcurrency int
	MaxTextLen     int // runes; zero disables the bound
}

// Service runs the chunk/dispatch/merge pipeline for one document.
type Service interface {
	// ProcessBatch checks a whole document and returns globally-ordered
	// findings with statistics.
	ProcessBatch(ctx context.Context, req Request) (*Response, error)
}

// service implements Service.
type service struct {
	processor *Processor
	words     WordSource
	cfg       Config
}

// NewService creates the batch orchestrator.
func NewService(processor *Processor, words WordSource, cfg Config) Service {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = chunk.DefaultChunkSize
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	zero := chunk.Options{}
	if cfg.ChunkOptions == zero {
		cfg.ChunkOptions = chunk.DefaultOptions()
	}
	return &service{
		processor: processor,
		words:     words,
		cfg:       cfg,
	}
}

// ProcessBatch validates the request, resolves custom words and language
// once, partitions the document, fans the chunks out under bounded
// concurrency and merges the findings back into document order.
//
// Chunking-level failures (invalid input) surface to the caller; per-chunk
// analyzer failures are absorbed by the scheduler and show up only as fewer
// findings.
func (s *service) ProcessBatch(ctx context.Context, req Request) (*Response, error) {
	logger := contextutil.LoggerFromContext(ctx)
	start := time.Now()

	characters := utf8.RuneCountInString(req.Text)
	if s.cfg.MaxTextLen > 0 && characters > s.cfg.MaxTextLen {
		return nil, &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("exceeds maximum length of %d characters", s.cfg.MaxTextLen),
		}
	}

	chunkSize := req.ChunkSize
	if chunkSize <= 0 {
		chunkSize = s.cfg.ChunkSize
	}

	// Custom words are resolved once for the whole batch, not per chunk.
	customWords := s.resolveCustomWords(ctx, req)

	// Language detection, if needed, is a single document-level call before
	// chunking; chunks never re-detect.
	language := req.Language
	if language == "" && req.Text != "" {
		if detected, err := s.processor.speller.DetectLanguage(ctx, sample(req.Text)); err != nil {
			logger.DebugContext(ctx, "language detection failed, proceeding without", "error", err)
		} else {
			language = detected
		}
	}

	chunks := chunk.Split(req.Text, chunkSize, s.cfg.ChunkOptions)
	logger.InfoContext(ctx, "processing batch",
		"characters", characters, "chunks", len(chunks), "max_concurrency", s.cfg.MaxConcurrency)

	popts := ProcessOptions{
		CustomWords:                 customWords,
		Language:                    language,
		StyleGuide:                  req.StyleGuide,
		EnableGrammar:               req.EnableGrammar,
		EnableStyle:                 req.EnableStyle,
		EnableContextualSuggestions: req.EnableContextualSuggestions,
		EnableCodeSpellCheck:        req.EnableCodeSpellCheck,
	}

	results := RunBatched(ctx, chunks, s.cfg.MaxConcurrency, func(ctx context.Context, _ int, c chunk.Chunk) (*analyzer.Result, error) {
		return s.processor.Process(ctx, c.Text, popts)
	})

	merged := MergeResults(results, chunks)
	elapsed := time.Since(start).Milliseconds()

	averageChunkSize := 0
	if len(chunks) > 0 {
		averageChunkSize = characters / len(chunks)
	}

	resp := &Response{
		Results:        merged,
		ProcessingTime: elapsed,
		Statistics: Statistics{
			Characters:       characters,
			Chunks:           len(chunks),
			ProcessingTimeMs: elapsed,
			CustomWordsUsed:  len(customWords),
			IssuesFound: IssueCounts{
				Spelling:     len(merged.Spelling),
				Grammar:      len(merged.Grammar),
				Style:        len(merged.Style),
				CodeSpelling: len(merged.CodeSpelling),
				Total:        merged.Total(),
			},
		},
		BatchInfo: BatchInfo{
			ChunkCount:       len(chunks),
			AverageChunkSize: averageChunkSize,
			MaxConcurrency:   s.cfg.MaxConcurrency,
		},
	}

	logger.InfoContext(ctx, "batch processed",
		"chunks", len(chunks), "issues", merged.Total(), "elapsed_ms", elapsed)
	return resp, nil
}

// resolveCustomWords merges request-supplied words with externally-sourced
// ones, deduplicated in first-seen order. A word-source outage degrades to
// the request words alone; it never blocks the batch.
func (s *service) resolveCustomWords(ctx context.Context, req Request) []string {
	logger := contextutil.LoggerFromContext(ctx)

	words := make([]string, 0, len(req.CustomWords))
	seen := make(map[string]struct{}, len(req.CustomWords))
	add := func(list []string) {
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

	add(req.CustomWords)
	if s.words != nil {
		external, err := s.words.CustomWords(ctx, req.AuthToken)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch custom words, using request words only", "error", err)
		} else {
			add(external)
		}
	}
	return words
}

func sample(text string) string {
	runes := []rune(text)
	if len(runes) <= detectSampleSize {
		return text
	}
	return string(runes[:detectSampleSize])
}
