package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightsign-store/product-agent/internal/model"
)

func TestComputePrices(t *testing.T) {
	t.Run("override values win verbatim", func(t *testing.T) {
		p := ComputePrices(0, &model.PriceOverride{
			ModelNumber: "HD226",
			PriceCZK:    9000,
			PriceEUR:    360,
		})
		assert.Equal(t, int64(9000), p.CZK)
		assert.Equal(t, int64(360), p.EUR)
		// PLN has no override, falls back to conversion
		assert.Equal(t, int64(1552), p.PLN) // round(9000 / 5.8)
	})

	t.Run("fallback conversion from CZK", func(t *testing.T) {
		p := ComputePrices(9000, nil)
		assert.Equal(t, int64(9000), p.CZK)
		assert.Equal(t, int64(353), p.EUR)  // round(9000 / 25.5)
		assert.Equal(t, int64(1552), p.PLN) // round(9000 / 5.8)
	})

	t.Run("no source price means no prices at all", func(t *testing.T) {
		p := ComputePrices(0, nil)
		assert.Zero(t, p.CZK)
		assert.Zero(t, p.EUR)
		assert.Zero(t, p.PLN)
		assert.Empty(t, p.catalogPrices())
	})

	t.Run("override CZK replaces the source amount", func(t *testing.T) {
		p := ComputePrices(12000, &model.PriceOverride{ModelNumber: "XT245", PriceCZK: 9000})
		assert.Equal(t, int64(9000), p.CZK)
		assert.Equal(t, int64(353), p.EUR)
	})
}
