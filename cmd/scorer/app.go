package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coltonk1/trackify-jobs/internal/config"
	"github.com/coltonk1/trackify-jobs/internal/embedding"
	"github.com/coltonk1/trackify-jobs/internal/extraction"
	"github.com/coltonk1/trackify-jobs/internal/inference"
	"github.com/coltonk1/trackify-jobs/internal/llm"
	"github.com/coltonk1/trackify-jobs/internal/scoring"
	"github.com/coltonk1/trackify-jobs/internal/similarity"
	"github.com/coltonk1/trackify-jobs/internal/skilldb"
	"github.com/coltonk1/trackify-jobs/internal/textproc"
)

// app holds the assembled scoring pipeline and the clients that back it.
type app struct {
	scorer    *scoring.Scorer
	provider  *embedding.GeminiProvider
	llmClient *llm.GeminiClient
}

// buildApp assembles the full pipeline from configuration: embedding
// provider, skill dictionary and index, extraction strategies, similarity
// engine, fusion preset, and the optional NER and regression backends.
func buildApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	provider, err := embedding.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	a := &app{provider: provider}

	db, err := skilldb.Load()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load skill dictionary: %w", err)
	}

	index, err := extraction.BuildDictIndex(ctx, provider, db)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build dictionary index: %w", err)
	}

	strategies := []extraction.Strategy{
		extraction.NewDictionaryStrategy(db),
		extraction.NewClusterStrategy(provider, index),
	}
	if cfg.NERURL != "" {
		strategies = append(strategies, extraction.NewNERStrategy(inference.NewNERClient(cfg.NERURL), db))
	} else {
		log.Warn().Msg("NER_URL not set; entity extraction strategy disabled")
	}

	llmClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	a.llmClient = llmClient
	strategies = append(strategies, extraction.NewLLMStrategy(llmClient, llm.TierLite, provider, index))

	fusionCfg, err := config.FusionPreset(cfg.Preset)
	if err != nil {
		a.Close()
		return nil, err
	}

	opts := []scoring.Option{
		scoring.WithFusionConfig(fusionCfg),
		scoring.WithLogger(log),
	}
	if cfg.RegressionURL != "" {
		opts = append(opts, scoring.WithRegressor(inference.NewRegressionClient(cfg.RegressionURL)))
	} else {
		log.Warn().Msg("REGRESSION_URL not set; ai_score will stay zero")
	}

	a.scorer = scoring.New(
		textproc.NewSegmenter(""),
		extraction.NewPipeline(log, strategies...),
		similarity.New(provider),
		opts...,
	)
	return a, nil
}

// Close releases the backing API clients.
func (a *app) Close() {
	if a.llmClient != nil {
		_ = a.llmClient.Close()
	}
	if a.provider != nil {
		_ = a.provider.Close()
	}
}
