package sync

import (
	"github.com/shopspring/decimal"

	"github.com/brightsign-store/product-agent/internal/model"
)

// Fixed conversion rates used when a currency has no override. Rates are
// reviewed manually together with the overrides file.
var (
	rateEUR = decimal.RequireFromString("25.5")
	ratePLN = decimal.RequireFromString("5.8")
)

// Prices holds one model's amounts in minor units per currency. Zero means
// "no price known", and the currency is omitted from catalog payloads.
type Prices struct {
	CZK int64
	EUR int64
	PLN int64
}

// ComputePrices resolves the three storefront currencies. An override value
// wins verbatim; otherwise EUR and PLN are derived from CZK by the fixed
// rates, rounded to whole minor units.
func ComputePrices(czkSource int64, override *model.PriceOverride) Prices {
	p := Prices{CZK: czkSource}
	if override != nil && override.PriceCZK > 0 {
		p.CZK = override.PriceCZK
	}

	if override != nil && override.PriceEUR > 0 {
		p.EUR = override.PriceEUR
	} else if p.CZK > 0 {
		p.EUR = convert(p.CZK, rateEUR)
	}

	if override != nil && override.PricePLN > 0 {
		p.PLN = override.PricePLN
	} else if p.CZK > 0 {
		p.PLN = convert(p.CZK, ratePLN)
	}
	return p
}

func convert(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Div(rate).Round(0).IntPart()
}

func (p Prices) catalogPrices() []price {
	var out []price
	if p.CZK > 0 {
		out = append(out, price{"czk", p.CZK})
	}
	if p.EUR > 0 {
		out = append(out, price{"eur", p.EUR})
	}
	if p.PLN > 0 {
		out = append(out, price{"pln", p.PLN})
	}
	return out
}

type price struct {
	currency string
	amount   int64
}
