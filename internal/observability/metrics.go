package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FamiliesScraped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "families_scraped_total",
		Help: "Families scraped from the manufacturer site",
	})
	ModelsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "models_generated_total",
		Help: "Models with generated marketing copy",
	})
	GenerationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "generation_failures_total",
		Help: "Per-model generation failures (API or parse)",
	})
	TranslationsDone = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "translations_total",
		Help: "Completed (model, locale) translations",
	})
	TranslationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "translation_failures_total",
		Help: "Per-(model, locale) translation failures",
	})
	ImagesDownloaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "images_downloaded_total",
		Help: "Family images fetched into the local cache",
	})
	ImagesProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "images_processed_total",
		Help: "Source images turned into gallery and thumbnail outputs",
	})
	CatalogCreates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_creates_total",
		Help: "Products created in the catalog",
	})
	CatalogUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_updates_total",
		Help: "Metadata-only product updates in the catalog",
	})
)

// Start registers the pipeline counters and serves /metrics. Only called
// when METRICS_PORT is configured; a one-shot run usually does not bother.
func Start(port string) {
	prometheus.MustRegister(
		FamiliesScraped, ModelsGenerated, GenerationFailures,
		TranslationsDone, TranslationFailures,
		ImagesDownloaded, ImagesProcessed,
		CatalogCreates, CatalogUpdates,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
