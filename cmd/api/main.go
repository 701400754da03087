package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"markdown-spellcheck/internal/analyzer"
	"markdown-spellcheck/internal/batch"
	"markdown-spellcheck/internal/chunk"
	"markdown-spellcheck/internal/config"
	"markdown-spellcheck/internal/dictionary"
	"markdown-spellcheck/internal/handlers"
	"markdown-spellcheck/internal/http"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize the local custom-word database
	db, err := dictionary.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := dictionary.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Custom words come from the local store plus, when configured, the
	// remote account service.
	sources := []dictionary.Source{dictionary.NewStore(db)}
	if cfg.DictionaryBaseURL != "" {
		sources = append(sources, dictionary.NewRemoteSource(cfg.DictionaryBaseURL))
		slog.Info("Remote dictionary enabled", "base_url", cfg.DictionaryBaseURL)
	}
	words := dictionary.NewResolver(sources...)

	// Create analyzer clients (external service layer)
	speller := analyzer.NewSpellClient(cfg.SpellBaseURL, cfg.AnalyzerAPIKey)
	grammar := analyzer.NewGrammarClient(cfg.GrammarBaseURL, cfg.AnalyzerAPIKey)
	style := analyzer.NewStyleClient(cfg.StyleBaseURL, cfg.AnalyzerAPIKey)
	codeSpell := analyzer.NewCodeSpellClient(cfg.CodeSpellBaseURL, cfg.AnalyzerAPIKey)

	processor := batch.NewProcessor(speller, grammar, style, codeSpell, cfg.ChunkTimeout)

	chunkOpts := chunk.DefaultOptions()
	chunkOpts.MinChunkSize = cfg.MinChunkSize

	batchService := batch.NewService(processor, words, batch.Config{
		ChunkSize:      cfg.ChunkSize,
		ChunkOptions:   chunkOpts,
		MaxConcurrency: cfg.MaxConcurrency,
		MaxTextLen:     cfg.MaxTextLen,
	})
	slog.Info("Batch service initialized",
		"chunk_size", cfg.ChunkSize, "max_concurrency", cfg.MaxConcurrency)

	// Create router with dependencies
	deps := &http.Deps{
		BatchService: batchService,
		HealthCheckers: map[string]handlers.HealthChecker{
			"spell_service": speller,
		},
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Analyzer configuration",
		"spell", cfg.SpellBaseURL, "grammar", cfg.GrammarBaseURL,
		"style", cfg.StyleBaseURL, "code_spell", cfg.CodeSpellBaseURL)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
