package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brightsign-store/product-agent/internal/model"
)

// SystemPrompt is the fixed persona and style guide for product copy.
func SystemPrompt() string {
	return `Jsi zkušený copywriter českého e-shopu specializovaného na digital signage přehrávače BrightSign.

PRAVIDLA:
1. Piš česky, odborně ale srozumitelně, pro AV integrátory i koncové firmy.
2. Nikdy si nevymýšlej technické parametry, používej jen dodané specifikace.
3. Popis produktu piš jako HTML (odstavce <p>, odrážky <ul><li>, mezititulky <h3>).
4. SEO titulek max 60 znaků, SEO popis max 155 znaků.
5. Odpověz POUZE jedním JSON objektem, bez markdownu a bez komentářů:
{
  "title": "...",
  "subtitle": "...",
  "description": "<p>...</p>",
  "seoTitle": "...",
  "seoDescription": "..."
}`
}

// UserPrompt embeds the family marketing copy and one model's raw specs.
func UserPrompt(f model.Family, m model.Model) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Produktová řada: %s (%s)\n", f.Name, strings.ToUpper(f.Code))
	if f.Tagline != "" {
		fmt.Fprintf(&sb, "Tagline výrobce: %s\n", f.Tagline)
	}
	if len(f.Overview) > 0 {
		sb.WriteString("\nPopis řady od výrobce:\n")
		for _, p := range f.Overview {
			sb.WriteString(p + "\n")
		}
	}
	if len(f.Features) > 0 {
		sb.WriteString("\nKlíčové vlastnosti řady:\n")
		for _, feat := range f.Features {
			sb.WriteString("- " + feat + "\n")
		}
	}

	fmt.Fprintf(&sb, "\nModel: %s\n", m.Number)
	sb.WriteString("Specifikace modelu:\n")
	keys := make([]string, 0, len(m.Specs))
	for k := range m.Specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "- %s: %s\n", k, m.Specs[k])
	}

	fmt.Fprintf(&sb, "\nVygeneruj prodejní texty pro model %s.\n", m.Number)
	return sb.String()
}
