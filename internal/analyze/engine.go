package analyze

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sdutta9/mealscan/internal/cache"
	"github.com/sdutta9/mealscan/internal/fingerprint"
	"github.com/sdutta9/mealscan/internal/nutrition"
	"github.com/sdutta9/mealscan/internal/providers"
)

// analysisTemperature keeps repeat analyses of the same image near
// deterministic, which makes the concurrent-miss race benign.
const analysisTemperature = 0.1

// Engine is the single entry point for meal analysis.
type Engine struct {
	client providers.Analyzer
	cache  *cache.Cache
	log    *zap.Logger
}

// New creates an Engine. cache may be nil to disable caching; log may be
// nil to discard logs.
func New(client providers.Analyzer, c *cache.Cache, log *zap.Logger) *Engine {
	if c == nil {
		c = cache.Disabled()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{client: client, cache: c, log: log}
}

// Analyze estimates nutrition for one meal photo. lang selects the display
// language for the caller and must be a supported code; results always
// carry every supported language, so lang never affects the cache key.
//
// Failures carry a taxonomy kind retrievable via KindOf. Cache failures are
// never surfaced: a broken cache costs a remote call, not correctness.
func (e *Engine) Analyze(ctx context.Context, image []byte, lang nutrition.Lang) (*nutrition.AnalysisResult, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	if _, ok := nutrition.ParseLang(string(lang)); !ok {
		return nil, fmt.Errorf("unsupported language: %q", lang)
	}

	fp := fingerprint.Image(image)
	if result, ok := e.cache.Get(fp); ok {
		e.log.Debug("cache hit",
			zap.String("fingerprint", fp[:12]),
			zap.Int("items", len(result.Items)))
		return result, nil
	}

	start := time.Now()
	resp, err := e.client.AnalyzeImage(ctx, providers.AnalyzeRequest{
		Image:       image,
		MimeType:    http.DetectContentType(image),
		Instruction: Instruction(),
		Schema:      ResponseSchema(),
		Temperature: analysisTemperature,
	})
	if err != nil {
		kerr := classify(err)
		e.log.Warn("inference failed",
			zap.String("provider", e.client.Name()),
			zap.String("kind", string(kerr.Kind)),
			zap.Error(err))
		return nil, kerr
	}

	result, err := nutrition.Normalize([]byte(resp.Content))
	if err != nil {
		return nil, classify(err)
	}

	e.cache.Put(fp, result)
	e.log.Info("analysis complete",
		zap.String("provider", e.client.Name()),
		zap.String("fingerprint", fp[:12]),
		zap.Int("items", len(result.Items)),
		zap.Int("tokens", resp.TokensUsed),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}
