// Package pricelist regenerates the three fixed B2B discount tiers as
// customer-group-scoped price lists. The whole transform is deterministic
// and re-runnable: each run deletes and recreates its own lists.
package pricelist

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brightsign-store/product-agent/internal/catalog"
	"github.com/brightsign-store/product-agent/internal/model"
)

// Tier is one B2B discount level bound to a customer group.
type Tier struct {
	Title      string
	GroupName  string
	Multiplier decimal.Decimal
}

// Tiers are the three fixed discount levels.
var Tiers = []Tier{
	{Title: "B2B Partner", GroupName: "Partner", Multiplier: decimal.RequireFromString("0.90")},
	{Title: "B2B Partner Plus", GroupName: "Partner Plus", Multiplier: decimal.RequireFromString("0.85")},
	{Title: "B2B Distributor", GroupName: "Distributor", Multiplier: decimal.RequireFromString("0.80")},
}

// DiscountedAmount applies a tier multiplier to an amount in minor units,
// rounded to the nearest whole unit.
func DiscountedAmount(amount int64, multiplier decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(multiplier).Round(0).IntPart()
}

type Generator struct {
	Catalog catalog.API
	Log     *zap.SugaredLogger
}

// Run regenerates every tier. A tier whose customer group does not exist is
// skipped; there is no other partial-failure recovery.
func (g *Generator) Run(ctx context.Context) error {
	groups, err := g.Catalog.ListCustomerGroups(ctx)
	if err != nil {
		return err
	}
	groupByName := make(map[string]catalog.CustomerGroup, len(groups))
	for _, grp := range groups {
		groupByName[grp.Name] = grp
	}

	lists, err := g.Catalog.ListPriceLists(ctx)
	if err != nil {
		return err
	}

	products, err := g.Catalog.ListProducts(ctx, model.HandlePrefix)
	if err != nil {
		return err
	}

	for _, tier := range Tiers {
		group, ok := groupByName[tier.GroupName]
		if !ok {
			g.Log.Warnw("customer group missing, skipping tier", "group", tier.GroupName)
			continue
		}

		for _, list := range lists {
			if list.Title == tier.Title {
				if err := g.Catalog.DeletePriceList(ctx, list.ID); err != nil {
					g.Log.Errorw("delete old price list failed", "title", tier.Title, "err", err)
				}
			}
		}

		var prices []catalog.PriceListPrice
		for _, p := range products {
			for _, v := range p.Variants {
				for _, price := range v.Prices {
					prices = append(prices, catalog.PriceListPrice{
						VariantID:    v.ID,
						CurrencyCode: price.CurrencyCode,
						Amount:       DiscountedAmount(price.Amount, tier.Multiplier),
					})
				}
			}
		}

		if err := g.Catalog.CreatePriceList(ctx, catalog.CreatePriceListRequest{
			Title:            tier.Title,
			Description:      "Generated B2B tier, do not edit by hand",
			Status:           "active",
			Type:             "override",
			CustomerGroupIDs: []string{group.ID},
			Prices:           prices,
		}); err != nil {
			g.Log.Errorw("create price list failed", "title", tier.Title, "err", err)
			continue
		}
		g.Log.Infow("price list regenerated", "title", tier.Title, "prices", len(prices))
	}
	return nil
}
