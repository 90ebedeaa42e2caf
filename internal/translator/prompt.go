package translator

import (
	"fmt"
	"strings"

	"github.com/brightsign-store/product-agent/internal/model"
)

// DefaultLocales are the storefront locales translated when none is given.
var DefaultLocales = []string{"sk", "pl", "de", "en"}

var localeNames = map[string]string{
	"sk": "Slovak",
	"pl": "Polish",
	"de": "German",
	"en": "English",
}

var localeTone = map[string]string{
	"sk": "Keep the tone close to the Czech original; Slovak B2B customers expect the same register.",
	"pl": "Use natural Polish e-commerce phrasing, formal but approachable (forma 'Państwo' unnecessary in product copy).",
	"de": "Use formal German (Sie-Form) and precise technical vocabulary.",
	"en": "Use concise international business English, no regionalisms.",
}

// SystemPrompt is the fixed translation contract: brand names, model
// numbers and technical figures must come through unchanged.
func SystemPrompt(locale string) string {
	name := localeNames[locale]
	if name == "" {
		name = locale
	}
	return fmt.Sprintf(`You are a professional e-commerce translator. Translate product copy from Czech to %s.

RULES:
1. Never translate or alter: the brand "BrightSign", model numbers, technical figures and units (4K, HDMI 2.0, PoE+, GB...).
2. Preserve all HTML tags and their structure exactly.
3. %s
4. Respond with ONLY one JSON object, no markdown, no commentary:
{
  "title": "...",
  "subtitle": "...",
  "description": "...",
  "seoTitle": "...",
  "seoDescription": "..."
}`, name, localeTone[locale])
}

// UserPrompt embeds the source-language copy for one model.
func UserPrompt(c model.GeneratedContent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Model: %s\n\n", c.ModelNumber)
	fmt.Fprintf(&sb, "title: %s\n", c.Title)
	fmt.Fprintf(&sb, "subtitle: %s\n", c.Subtitle)
	fmt.Fprintf(&sb, "seoTitle: %s\n", c.SEOTitle)
	fmt.Fprintf(&sb, "seoDescription: %s\n", c.SEODescription)
	fmt.Fprintf(&sb, "description:\n%s\n", c.Description)
	return sb.String()
}
