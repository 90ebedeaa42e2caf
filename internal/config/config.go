package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIKey       string
	OpenAIModel     string
	CatalogAPIURL   string
	CatalogAPIToken string
	SiteBaseURL     string
	DataDir         string
	ImagesDir       string
	MetricsPort     string
	RequestDelay    time.Duration
	ForceRecreate   bool
}

func Load() *Config {
	// .env next to the binary, then whatever is already in the environment
	_ = godotenv.Load()
	return &Config{
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o"),
		CatalogAPIURL:   getEnv("CATALOG_API_URL", "http://localhost:9000"),
		CatalogAPIToken: os.Getenv("CATALOG_API_TOKEN"),
		SiteBaseURL:     getEnv("SITE_BASE_URL", "https://www.brightsign.biz"),
		DataDir:         getEnv("DATA_DIR", "data"),
		ImagesDir:       getEnv("IMAGES_DIR", "images"),
		MetricsPort:     os.Getenv("METRICS_PORT"),
		RequestDelay:    getEnvMillis("REQUEST_DELAY_MS", 1500),
		ForceRecreate:   os.Getenv("FORCE_RECREATE") == "true",
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvMillis(k string, d int) time.Duration {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Millisecond
		}
	}
	return time.Duration(d) * time.Millisecond
}
