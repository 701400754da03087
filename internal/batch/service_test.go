package batch_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"markdown-spellcheck/internal/analyzer"
	"markdown-spellcheck/internal/batch"
	"markdown-spellcheck/internal/batch/mocks"
	"markdown-spellcheck/internal/chunk"
)

func newTestService(t *testing.T, ctrl *gomock.Controller, cfg batch.Config) (batch.Service, *mocks.MockSpellChecker, *mocks.MockWordSource) {
	t.Helper()
	speller := mocks.NewMockSpellChecker(ctrl)
	words := mocks.NewMockWordSource(ctrl)
	processor := batch.NewProcessor(speller, nil, nil, nil, 0)
	return batch.NewService(processor, words, cfg), speller, words
}

func TestService_ProcessBatch_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, words := newTestService(t, ctrl, batch.Config{})
	words.EXPECT().CustomWords(gomock.Any(), "").Return(nil, nil)

	resp, err := svc.ProcessBatch(context.Background(), batch.Request{Text: ""})
	if err != nil {
		t.Fatalf("ProcessBatch() error = %v", err)
	}

	if resp.Statistics.Chunks != 0 || resp.Statistics.Characters != 0 {
		t.Errorf("statistics = %+v, want zero chunks and characters", resp.Statistics)
	}
	if resp.Results.Total() != 0 {
		t.Errorf("results = %+v, want no findings", resp.Results)
	}
	if resp.Results.Spelling == nil || resp.Results.Grammar == nil || resp.Results.Style == nil || resp.Results.CodeSpelling == nil {
		t.Error("all four category arrays must be present for empty input")
	}
}

func TestService_ProcessBatch_MultiChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speller, words := newTestService(t, ctrl, batch.Config{
		ChunkSize: 100,
		ChunkOptions: chunk.Options{
			MinChunkSize:       20,
			MaxBoundarySearch:  50,
			PreserveParagraphs: true,
			PreserveSentences:  true,
		},
		MaxConcurrency: 2,
	})

	// Custom words are resolved exactly once for the whole batch.
	words.EXPECT().
		CustomWords(gomock.Any(), "token-123").
		Return([]string{"gamma", "epsilon"}, nil).
		Times(1)

	// Every chunk reports one finding at its local start.
	speller.EXPECT().
		CheckText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, text string, opts analyzer.CheckOptions) ([]analyzer.Finding, error) {
			if opts.AutoDetectLanguage {
				t.Error("per-chunk auto-detection must be off")
			}
			if len(opts.CustomWords) != 3 {
				t.Errorf("custom words = %v, want merged 3", opts.CustomWords)
			}
			return []analyzer.Finding{{Word: "x", Position: &analyzer.Position{Start: 0, End: 1}, LineNumber: 1}}, nil
		}).
		AnyTimes()

	text := strings.Repeat("alpha beta gamma delta words here. ", 12)
	resp, err := svc.ProcessBatch(context.Background(), batch.Request{
		Text:        text,
		CustomWords: []string{"alpha", "gamma"},
		AuthToken:   "token-123",
		Language:    "en",
	})
	if err != nil {
		t.Fatalf("ProcessBatch() error = %v", err)
	}

	if resp.Statistics.Chunks < 2 {
		t.Fatalf("chunks = %d, want several for %d characters", resp.Statistics.Chunks, len(text))
	}
	if resp.Statistics.Characters != len(text) {
		t.Errorf("characters = %d, want %d", resp.Statistics.Characters, len(text))
	}
	if resp.Statistics.CustomWordsUsed != 3 {
		t.Errorf("customWordsUsed = %d, want 3 (alpha, gamma, epsilon)", resp.Statistics.CustomWordsUsed)
	}

	// One finding per chunk, rebased to each chunk's offset, ascending.
	if len(resp.Results.Spelling) != resp.Statistics.Chunks {
		t.Fatalf("spelling findings = %d, want %d", len(resp.Results.Spelling), resp.Statistics.Chunks)
	}
	for i, f := range resp.Results.Spelling {
		if i > 0 && f.Position.Start <= resp.Results.Spelling[i-1].Position.Start {
			t.Errorf("findings not globally ordered at %d", i)
		}
		if f.ChunkInfo == nil || f.ChunkInfo.ChunkIndex != i {
			t.Errorf("finding %d chunkInfo = %+v", i, f.ChunkInfo)
		}
	}

	if resp.Statistics.IssuesFound.Total != resp.Results.Total() {
		t.Errorf("issue total = %d, want %d", resp.Statistics.IssuesFound.Total, resp.Results.Total())
	}
	if resp.BatchInfo.ChunkCount != resp.Statistics.Chunks || resp.BatchInfo.MaxConcurrency != 2 {
		t.Errorf("batchInfo = %+v", resp.BatchInfo)
	}
	if want := resp.Statistics.Characters / resp.Statistics.Chunks; resp.BatchInfo.AverageChunkSize != want {
		t.Errorf("averageChunkSize = %d, want %d", resp.BatchInfo.AverageChunkSize, want)
	}
}

func TestService_ProcessBatch_DetectsLanguageOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speller, words := newTestService(t, ctrl, batch.Config{})
	words.EXPECT().CustomWords(gomock.Any(), gomock.Any()).Return(nil, nil)

	speller.EXPECT().
		DetectLanguage(gomock.Any(), gomock.Any()).
		Return("fr", nil).
		Times(1)
	speller.EXPECT().
		CheckText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts analyzer.CheckOptions) ([]analyzer.Finding, error) {
			if opts.Language != "fr" {
				t.Errorf("language = %q, want detected fr", opts.Language)
			}
			return nil, nil
		})

	_, err := svc.ProcessBatch(context.Background(), batch.Request{Text: "un petit document"})
	if err != nil {
		t.Fatalf("ProcessBatch() error = %v", err)
	}
}

func TestService_ProcessBatch_SkipsDetectionWhenLanguageGiven(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speller, words := newTestService(t, ctrl, batch.Config{})
	words.EXPECT().CustomWords(gomock.Any(), gomock.Any()).Return(nil, nil)
	// No DetectLanguage expectation: calling it would fail the test.
	speller.EXPECT().CheckText(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.ProcessBatch(context.Background(), batch.Request{Text: "short doc", Language: "en"})
	if err != nil {
		t.Fatalf("ProcessBatch() error = %v", err)
	}
}

func TestService_ProcessBatch_WordSourceFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speller, words := newTestService(t, ctrl, batch.Config{})
	words.EXPECT().CustomWords(gomock.Any(), gomock.Any()).Return(nil, errors.New("dictionary down"))
	speller.EXPECT().
		CheckText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts analyzer.CheckOptions) ([]analyzer.Finding, error) {
			if len(opts.CustomWords) != 1 || opts.CustomWords[0] != "mermaid" {
				t.Errorf("custom words = %v, want request words only", opts.CustomWords)
			}
			return nil, nil
		})

	resp, err := svc.ProcessBatch(context.Background(), batch.Request{
		Text:        "short doc",
		CustomWords: []string{"mermaid"},
		Language:    "en",
	})
	if err != nil {
		t.Fatalf("ProcessBatch() error = %v", err)
	}
	if resp.Statistics.CustomWordsUsed != 1 {
		t.Errorf("customWordsUsed = %d, want 1", resp.Statistics.CustomWordsUsed)
	}
}

func TestService_ProcessBatch_TextTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestService(t, ctrl, batch.Config{MaxTextLen: 10})

	_, err := svc.ProcessBatch(context.Background(), batch.Request{Text: strings.Repeat("a", 11)})
	if err == nil {
		t.Fatal("ProcessBatch() expected error for oversized text")
	}
	var verr *batch.ValidationError
	if !errors.As(err, &verr) || verr.Field != "text" {
		t.Errorf("error = %v, want ValidationError on text", err)
	}
}

func TestService_ProcessBatch_ChunkFailureContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, speller, words := newTestService(t, ctrl, batch.Config{
		ChunkSize:      40,
		ChunkOptions:   chunk.Options{MinChunkSize: 10, MaxBoundarySearch: 20, PreserveSentences: true},
		MaxConcurrency: 1,
	})
	words.EXPECT().CustomWords(gomock.Any(), gomock.Any()).Return(nil, nil)

	call := 0
	speller.EXPECT().
		CheckText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ analyzer.CheckOptions) ([]analyzer.Finding, error) {
			call++
			if call == 1 {
				return nil, errors.New("transient analyzer failure")
			}
			return []analyzer.Finding{{Word: "x", Position: &analyzer.Position{Start: 0, End: 1}}}, nil
		}).
		AnyTimes()

	text := strings.Repeat("some words to check here. ", 8)
	resp, err := svc.ProcessBatch(context.Background(), batch.Request{Text: text, Language: "en"})
	if err != nil {
		t.Fatalf("ProcessBatch() error = %v, per-chunk failures must not abort the batch", err)
	}
	if resp.Statistics.Chunks < 2 {
		t.Fatalf("chunks = %d, want several", resp.Statistics.Chunks)
	}
	// The failed first chunk contributes nothing; the rest still report.
	if len(resp.Results.Spelling) != resp.Statistics.Chunks-1 {
		t.Errorf("spelling findings = %d, want %d", len(resp.Results.Spelling), resp.Statistics.Chunks-1)
	}
}
