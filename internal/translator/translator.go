// Package translator localizes generated product copy into the storefront
// locales through the same text-generation API as the generator.
package translator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/llm"
	"github.com/brightsign-store/product-agent/internal/model"
	"github.com/brightsign-store/product-agent/internal/observability"
	"github.com/brightsign-store/product-agent/internal/store"
)

// Options narrow a run to one locale and/or one model.
type Options struct {
	Locale string
	Model  string
}

type Translator struct {
	Store *store.Store
	LLM   llm.Client
	Delay time.Duration
	Log   *zap.SugaredLogger
}

// Run translates every selected (model, locale) pair. Failures are per
// pair; results are merged additively into the translations file so runs
// for different locales never clobber each other.
func (t *Translator) Run(ctx context.Context, opts Options) (int, int, error) {
	generated, err := t.Store.LoadGenerated()
	if err != nil {
		return 0, 0, err
	}

	locales := DefaultLocales
	if opts.Locale != "" {
		locales = []string{opts.Locale}
	}

	results := model.Translations{}
	done, failed := 0, 0
	first := true
	for _, content := range generated {
		if opts.Model != "" && content.ModelNumber != opts.Model {
			continue
		}
		for _, locale := range locales {
			if !first {
				time.Sleep(t.Delay)
			}
			first = false

			translated, err := t.translateOne(ctx, content, locale)
			if err != nil {
				t.Log.Errorw("translation failed", "model", content.ModelNumber, "locale", locale, "err", err)
				observability.TranslationFailures.Inc()
				failed++
				continue
			}
			if results[content.ModelNumber] == nil {
				results[content.ModelNumber] = map[string]model.TranslatedContent{}
			}
			results[content.ModelNumber][locale] = translated
			observability.TranslationsDone.Inc()
			done++
			t.Log.Infow("translated", "model", content.ModelNumber, "locale", locale)
		}
	}

	if len(results) > 0 {
		if err := t.Store.MergeTranslations(results); err != nil {
			return done, failed, err
		}
	}
	return done, failed, nil
}

func (t *Translator) translateOne(ctx context.Context, c model.GeneratedContent, locale string) (model.TranslatedContent, error) {
	raw, err := t.LLM.Complete(ctx, SystemPrompt(locale), UserPrompt(c))
	if err != nil {
		return model.TranslatedContent{}, err
	}
	var translated model.TranslatedContent
	if err := llm.ExtractJSON(raw, &translated); err != nil {
		return model.TranslatedContent{}, err
	}
	return translated, nil
}
