package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/catalog"
	"github.com/brightsign-store/product-agent/internal/config"
	"github.com/brightsign-store/product-agent/internal/generator"
	"github.com/brightsign-store/product-agent/internal/images"
	"github.com/brightsign-store/product-agent/internal/llm"
	"github.com/brightsign-store/product-agent/internal/model"
	"github.com/brightsign-store/product-agent/internal/observability"
	"github.com/brightsign-store/product-agent/internal/pricelist"
	"github.com/brightsign-store/product-agent/internal/scraper"
	"github.com/brightsign-store/product-agent/internal/store"
	syncer "github.com/brightsign-store/product-agent/internal/sync"
	"github.com/brightsign-store/product-agent/internal/translator"
)

const usage = `usage: productagent <command> [flags]

commands:
  scrape      fetch manufacturer family pages into scraped-products.json
  images      download family images into the local cache
  process     produce gallery and thumbnail derivatives from cached images
  generate    generate source-language product copy via the LLM
  translate   translate generated copy into storefront locales
  sync        reconcile generated content against the catalog
  pricelists  regenerate the three B2B price-list tiers
  status      print pipeline state counts
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if cfg.MetricsPort != "" {
		observability.Start(cfg.MetricsPort)
	}

	st := store.New(cfg.DataDir)
	ctx := context.Background()

	switch os.Args[1] {
	case "scrape":
		runScrape(cfg, st, log, os.Args[2:])
	case "images":
		runImages(cfg, st, log, os.Args[2:])
	case "process":
		runProcess(cfg, log, os.Args[2:])
	case "generate":
		runGenerate(ctx, cfg, st, log, os.Args[2:])
	case "translate":
		runTranslate(ctx, cfg, st, log, os.Args[2:])
	case "sync":
		runSync(ctx, cfg, st, log, os.Args[2:])
	case "pricelists":
		runPriceLists(ctx, cfg, log)
	case "status":
		runStatus(cfg, st)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runScrape(cfg *config.Config, st *store.Store, log *zap.SugaredLogger, args []string) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	series := fs.Int("series", 0, "scrape only one hardware series")
	family := fs.String("family", "", "scrape only one family code")
	fs.Bool("all", false, "scrape every known family (default)")
	fs.Parse(args)

	descs := selectFamilies(*series, *family, log)
	s := scraper.New(cfg.SiteBaseURL, cfg.RequestDelay, log)
	s.ScrapeAll(descs, func(f model.Family) error {
		observability.FamiliesScraped.Inc()
		return st.SaveFamily(f)
	})
}

func runImages(cfg *config.Config, st *store.Store, log *zap.SugaredLogger, args []string) {
	fs := flag.NewFlagSet("images", flag.ExitOnError)
	series := fs.Int("series", 0, "download only one hardware series")
	family := fs.String("family", "", "download only one family code")
	fs.Parse(args)

	families, err := st.LoadFamilies()
	fatalOnMissing(err, "scrape")

	d := images.NewDownloader(cfg.ImagesDir, cfg.RequestDelay, log)
	for _, f := range families {
		if *family != "" && f.Code != *family {
			continue
		}
		if *series != 0 && f.Series != *series {
			continue
		}
		counts := d.DownloadFamily(f)
		observability.ImagesDownloaded.Add(float64(counts.Done))
		log.Infow("family images", "family", f.Code, "result", counts.String())
	}
}

func runProcess(cfg *config.Config, log *zap.SugaredLogger, args []string) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	family := fs.String("family", "", "process only one family code")
	overwrite := fs.Bool("overwrite", false, "regenerate existing outputs")
	includeHero := fs.Bool("include-hero", false, "also process hero banners")
	fs.Parse(args)

	opts := images.DefaultProcessOptions()
	opts.Overwrite = *overwrite
	opts.SkipHero = !*includeHero

	p := images.NewProcessor(cfg.ImagesDir, log)
	stats, err := p.ProcessAll(*family, opts)
	if err != nil {
		log.Fatalw("image processing failed", "err", err)
	}
	observability.ImagesProcessed.Add(float64(stats.Done))
	log.Infow("image processing finished",
		"done", stats.Done, "skipped", stats.Skipped, "failed", stats.Failed,
		"bytesSaved", stats.BytesSaved)
}

func runGenerate(ctx context.Context, cfg *config.Config, st *store.Store, log *zap.SugaredLogger, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	series := fs.Int("series", 0, "generate only one hardware series")
	family := fs.String("family", "", "generate only one family code")
	modelNum := fs.String("model", "", "generate only one model number")
	overwrite := fs.Bool("overwrite", false, "regenerate models that already have content")
	fs.Parse(args)

	g := &generator.Generator{
		Store: st,
		LLM:   llm.New(cfg.OpenAIKey, cfg.OpenAIModel, log),
		Delay: cfg.RequestDelay,
		Log:   log,
	}
	done, failed, err := g.Run(ctx, generator.Options{
		Series:    *series,
		Family:    *family,
		Model:     *modelNum,
		Overwrite: *overwrite,
	})
	fatalOnMissing(err, "scrape")
	log.Infow("generation finished", "generated", done, "failed", failed)
}

func runTranslate(ctx context.Context, cfg *config.Config, st *store.Store, log *zap.SugaredLogger, args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	locale := fs.String("locale", "", "translate only one locale (default: "+strings.Join(translator.DefaultLocales, ", ")+")")
	modelNum := fs.String("model", "", "translate only one model number")
	fs.Parse(args)

	t := &translator.Translator{
		Store: st,
		LLM:   llm.New(cfg.OpenAIKey, cfg.OpenAIModel, log),
		Delay: cfg.RequestDelay,
		Log:   log,
	}
	done, failed, err := t.Run(ctx, translator.Options{Locale: *locale, Model: *modelNum})
	fatalOnMissing(err, "generate")
	log.Infow("translation finished", "translated", done, "failed", failed)
}

func runSync(ctx context.Context, cfg *config.Config, st *store.Store, log *zap.SugaredLogger, args []string) {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	modelNum := fs.String("model", "", "sync only one model number")
	fs.Parse(args)

	s := &syncer.Syncer{
		Store:         st,
		Catalog:       catalog.New(cfg.CatalogAPIURL, cfg.CatalogAPIToken, log),
		Log:           log,
		ForceRecreate: cfg.ForceRecreate,
	}
	result, err := s.Run(ctx, *modelNum)
	fatalOnMissing(err, "generate")
	log.Infow("sync finished",
		"created", result.Created, "updated", result.Updated,
		"recreated", result.Recreated, "failed", result.Failed)
}

func runPriceLists(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) {
	g := &pricelist.Generator{
		Catalog: catalog.New(cfg.CatalogAPIURL, cfg.CatalogAPIToken, log),
		Log:     log,
	}
	if err := g.Run(ctx); err != nil {
		log.Fatalw("price list generation failed", "err", err)
	}
}

func runStatus(cfg *config.Config, st *store.Store) {
	families, _ := st.LoadFamilies()
	models := 0
	for _, f := range families {
		models += len(f.Models)
	}
	generated, _ := st.LoadGenerated()
	translations, _ := st.LoadTranslations()

	downloaded := 0
	if entries, err := os.ReadDir(filepath.Join(cfg.ImagesDir, "raw")); err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			if files, err := os.ReadDir(filepath.Join(cfg.ImagesDir, "raw", e.Name())); err == nil {
				downloaded += len(files)
			}
		}
	}

	fmt.Printf("scraped families:   %d\n", len(families))
	fmt.Printf("scraped models:     %d\n", models)
	fmt.Printf("generated:          %d\n", len(generated))
	fmt.Printf("translated models:  %d\n", len(translations))
	fmt.Printf("downloaded images:  %d\n", downloaded)
}

func selectFamilies(series int, family string, log *zap.SugaredLogger) []scraper.FamilyDescriptor {
	if family != "" {
		desc, ok := scraper.ByCode(family)
		if !ok {
			log.Fatalw("unknown family code", "family", family)
		}
		return []scraper.FamilyDescriptor{desc}
	}
	if series != 0 {
		descs := scraper.BySeries(series)
		if len(descs) == 0 {
			log.Fatalw("no families in series", "series", series)
		}
		return descs
	}
	return scraper.Families
}

// fatalOnMissing turns a missing-upstream-file error into an actionable
// message instead of a stack of JSON errors.
func fatalOnMissing(err error, runFirst string) {
	if err == nil {
		return
	}
	if errors.Is(err, store.ErrMissing) {
		fmt.Fprintf(os.Stderr, "%v\nrun `productagent %s` first\n", err, runFirst)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
