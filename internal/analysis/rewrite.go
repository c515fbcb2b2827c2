package analysis

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nexthire/next-hire/internal/llm"
	"github.com/nexthire/next-hire/internal/prompts"
	"github.com/nexthire/next-hire/internal/types"
)

const (
	maxBulletPool = 7
	maxRewrites   = 3
)

// RewritePipeline produces rewrite suggestions in two stages: a cheap call
// identifies a pool of weak bullets, then each selected bullet is refined by
// its own concurrent call. The pipeline never fails the surrounding analysis;
// any stage that breaks degrades to fewer or unchanged suggestions.
type RewritePipeline struct {
	client llm.Client
	logger *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRewritePipeline creates a rewrite pipeline. A nil rng gets a time-seeded
// source; tests inject a fixed seed for deterministic selection.
func NewRewritePipeline(client llm.Client, rng *rand.Rand, logger *zap.Logger) *RewritePipeline {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RewritePipeline{client: client, logger: logger, rng: rng}
}

// Run executes both stages and returns the resulting suggestion pairs.
// An empty slice means the pipeline had nothing to offer, not an error.
func (p *RewritePipeline) Run(ctx context.Context, resumeText, contextDoc string) []types.RewriteSuggestion {
	pool := p.identifyPool(ctx, resumeText, contextDoc)
	if len(pool) == 0 {
		return nil
	}

	selected := p.sample(pool, maxRewrites)
	improved := make([]string, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	for i, bullet := range selected {
		g.Go(func() error {
			improved[i] = p.refine(gctx, bullet)
			return nil
		})
	}
	// Workers never return errors; each failure falls back to its original
	// bullet instead.
	_ = g.Wait()

	suggestions := make([]types.RewriteSuggestion, 0, len(selected))
	for i, bullet := range selected {
		suggestions = append(suggestions, types.RewriteSuggestion{
			OriginalBullet:       bullet,
			SuggestedImprovement: improved[i],
		})
	}
	return suggestions
}

// identifyPool asks for up to maxBulletPool weak bullets. Best effort: any
// failure logs and returns an empty pool.
func (p *RewritePipeline) identifyPool(ctx context.Context, resumeText, contextDoc string) []string {
	prompt := prompts.Format(prompts.MustGet("rewriting.json", "identify-pool"), map[string]string{
		"MaxPool":    strconv.Itoa(maxBulletPool),
		"Context":    contextDoc,
		"ResumeText": resumeText,
	})

	reply, err := p.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		p.logger.Warn("bullet pool identification failed", zap.Error(err))
		return nil
	}

	payload, err := llm.ExtractPayload(reply)
	if err != nil {
		p.logger.Warn("bullet pool reply had no usable payload", zap.Error(err))
		return nil
	}

	var parsed struct {
		Bullets []string `json:"bullets"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		p.logger.Warn("bullet pool payload did not match expected shape", zap.Error(err))
		return nil
	}

	pool := make([]string, 0, maxBulletPool)
	for _, bullet := range parsed.Bullets {
		bullet = strings.TrimSpace(bullet)
		if bullet == "" {
			continue
		}
		pool = append(pool, bullet)
		if len(pool) == maxBulletPool {
			break
		}
	}
	return pool
}

// sample picks min(len(pool), n) bullets uniformly without replacement.
func (p *RewritePipeline) sample(pool []string, n int) []string {
	if len(pool) <= n {
		return pool
	}

	p.mu.Lock()
	perm := p.rng.Perm(len(pool))
	p.mu.Unlock()

	selected := make([]string, 0, n)
	for _, idx := range perm[:n] {
		selected = append(selected, pool[idx])
	}
	return selected
}

// refine rewrites one bullet. On any failure the original bullet is returned
// unchanged.
func (p *RewritePipeline) refine(ctx context.Context, bullet string) string {
	prompt := prompts.Format(prompts.MustGet("rewriting.json", "refine-bullet"), map[string]string{
		"Bullet": bullet,
	})

	reply, err := p.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		p.logger.Warn("bullet refinement failed", zap.Error(err))
		return bullet
	}

	payload, err := llm.ExtractPayload(reply)
	if err != nil {
		p.logger.Warn("bullet refinement reply had no usable payload", zap.Error(err))
		return bullet
	}

	var parsed struct {
		Improved string `json:"improved"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		p.logger.Warn("bullet refinement payload did not match expected shape", zap.Error(err))
		return bullet
	}

	improved := strings.TrimSpace(parsed.Improved)
	if improved == "" {
		return bullet
	}
	return improved
}
