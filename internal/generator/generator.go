// Package generator produces source-language marketing copy for scraped
// models via the text-generation API.
package generator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/llm"
	"github.com/brightsign-store/product-agent/internal/model"
	"github.com/brightsign-store/product-agent/internal/observability"
	"github.com/brightsign-store/product-agent/internal/specs"
	"github.com/brightsign-store/product-agent/internal/store"
)

// Options narrow the run to one series, family or model. Overwrite
// regenerates models that already have content.
type Options struct {
	Series    int
	Family    string
	Model     string
	Overwrite bool
}

type Generator struct {
	Store *store.Store
	LLM   llm.Client
	Delay time.Duration
	Log   *zap.SugaredLogger
}

// completion is the JSON object the API must return.
type completion struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Description    string `json:"description"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// Run generates copy for every selected model not yet in the store. A
// malformed response fails that model only; the batch continues. Successes
// are upserted by model number at the end of the run.
func (g *Generator) Run(ctx context.Context, opts Options) (int, int, error) {
	families, err := g.Store.LoadFamilies()
	if err != nil {
		return 0, 0, err
	}

	existing := map[string]bool{}
	if generated, err := g.Store.LoadGenerated(); err == nil {
		for _, e := range generated {
			existing[e.ModelNumber] = true
		}
	}

	var results []model.GeneratedContent
	failed := 0
	first := true
	for _, family := range families {
		if opts.Family != "" && family.Code != opts.Family {
			continue
		}
		if opts.Series != 0 && family.Series != opts.Series {
			continue
		}
		for _, m := range family.Models {
			if opts.Model != "" && m.Number != opts.Model {
				continue
			}
			if existing[m.Number] && !opts.Overwrite {
				continue
			}

			if !first {
				time.Sleep(g.Delay)
			}
			first = false

			content, err := g.generateOne(ctx, family, m)
			if err != nil {
				g.Log.Errorw("generation failed", "model", m.Number, "err", err)
				observability.GenerationFailures.Inc()
				failed++
				continue
			}
			results = append(results, content)
			observability.ModelsGenerated.Inc()
			g.Log.Infow("generated", "model", m.Number, "family", family.Code)
		}
	}

	if len(results) > 0 {
		if err := g.Store.UpsertGenerated(results); err != nil {
			return len(results), failed, err
		}
	}
	return len(results), failed, nil
}

func (g *Generator) generateOne(ctx context.Context, f model.Family, m model.Model) (model.GeneratedContent, error) {
	raw, err := g.LLM.Complete(ctx, SystemPrompt(), UserPrompt(f, m))
	if err != nil {
		return model.GeneratedContent{}, err
	}

	var c completion
	if err := llm.ExtractJSON(raw, &c); err != nil {
		return model.GeneratedContent{}, err
	}

	return model.GeneratedContent{
		ModelNumber:    m.Number,
		FamilyCode:     f.Code,
		Series:         f.Series,
		Title:          c.Title,
		Subtitle:       c.Subtitle,
		Description:    c.Description,
		SEOTitle:       c.SEOTitle,
		SEODescription: c.SEODescription,
		Specs:          specs.Parse(m, f.Series),
		GeneratedAt:    time.Now().UTC(),
	}, nil
}
