// Package specs normalizes the raw key/value strings scraped from a
// comparison table into the typed view embedded in generated content.
package specs

import (
	"strings"

	"github.com/brightsign-store/product-agent/internal/model"
)

var trueTokens = map[string]bool{
	"✓": true, "✔": true, "✅": true,
	"yes": true, "true": true, "ano": true,
}

// IsTrue reports whether a raw spec value is a checkmark-style boolean.
func IsTrue(v string) bool {
	return trueTokens[strings.ToLower(strings.TrimSpace(v))]
}

// SplitList breaks a raw value on commas and semicolons, trimming each item.
func SplitList(v string) []string {
	var items []string
	for _, part := range strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// DefaultWarranty is the series-based warranty fallback used when the
// comparison table carries no warranty row.
func DefaultWarranty(series int) string {
	if series >= 5 {
		return "5 let záruky (po registraci produktu)"
	}
	return "3 roky záruky"
}

// Parse derives the typed spec fields for one model. Unrecognized keys are
// passed through in Other so nothing scraped is silently dropped.
func Parse(m model.Model, series int) model.ParsedSpecs {
	parsed := model.ParsedSpecs{
		Warranty: DefaultWarranty(series),
	}
	for key, value := range m.Specs {
		k := strings.ToLower(strings.TrimSpace(key))
		switch {
		case strings.Contains(k, "video"):
			parsed.Video = SplitList(value)
		case strings.Contains(k, "audio"):
			parsed.Audio = SplitList(value)
		case strings.Contains(k, "i/o") || strings.Contains(k, "interface") || strings.Contains(k, "gpio"):
			parsed.Interfaces = SplitList(value)
		case strings.Contains(k, "storage") || strings.Contains(k, "sd"):
			parsed.Storage = strings.TrimSpace(value)
		case strings.Contains(k, "ethernet") || strings.Contains(k, "network") || strings.Contains(k, "wifi") || strings.Contains(k, "wi-fi"):
			parsed.Network = strings.TrimSpace(value)
		case strings.Contains(k, "poe"):
			parsed.PoE = IsTrue(value)
		case strings.Contains(k, "html"):
			parsed.HTMLEngine = IsTrue(value)
		case strings.Contains(k, "warranty") || strings.Contains(k, "záruka"):
			if v := strings.TrimSpace(value); v != "" {
				parsed.Warranty = v
			}
		default:
			if parsed.Other == nil {
				parsed.Other = map[string]string{}
			}
			parsed.Other[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return parsed
}
