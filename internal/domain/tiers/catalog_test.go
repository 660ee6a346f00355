package tiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidates(t *testing.T) {
	require.NoError(t, Validate())
}

func TestCatalogInvariants(t *testing.T) {
	for _, tier := range All() {
		t.Run(tier.ID, func(t *testing.T) {
			assert.NotEmpty(t, tier.Name)
			assert.GreaterOrEqual(t, tier.PriceGBP, 0.0)

			// quota is -1 (unlimited) or a non-negative integer
			assert.True(t, tier.ReportsPerMonth == UnlimitedReports || tier.ReportsPerMonth >= 0)

			// interval present iff the tier is a subscription
			if tier.Type == TypeSubscription {
				assert.Contains(t, []string{IntervalMonth, IntervalYear}, tier.Interval)
			} else {
				assert.Empty(t, tier.Interval)
			}

			// stripe refs may be absent only on the free tier
			if tier.Type == TypeFree {
				assert.Empty(t, tier.StripeProductID)
				assert.Empty(t, tier.StripePriceID)
				assert.Zero(t, tier.PriceGBP)
			} else {
				assert.NotEmpty(t, tier.StripeProductID)
				assert.NotEmpty(t, tier.StripePriceID)
			}
		})
	}
}

func TestCatalogStableIDs(t *testing.T) {
	// External billing config is keyed by these ids; renaming one is a
	// breaking change, so the test pins them.
	var ids []string
	for _, tier := range All() {
		ids = append(ids, tier.ID)
	}
	assert.Equal(t, []string{"free", "single_report", "landlord", "portfolio", "agency"}, ids)
}

func TestCatalogQuotaSentinels(t *testing.T) {
	free, ok := ByID("free")
	require.True(t, ok)
	assert.Equal(t, 0, free.ReportsPerMonth)
	assert.False(t, free.Unlimited())

	agency, ok := ByID("agency")
	require.True(t, ok)
	assert.Equal(t, UnlimitedReports, agency.ReportsPerMonth)
	assert.True(t, agency.Unlimited())
}

func TestCatalogAtMostOnePopular(t *testing.T) {
	popular := 0
	for _, tier := range All() {
		if tier.Popular {
			popular++
		}
	}
	assert.LessOrEqual(t, popular, 1)
}

func TestByID(t *testing.T) {
	tier, ok := ByID("landlord")
	require.True(t, ok)
	assert.Equal(t, "Landlord", tier.Name)
	assert.Equal(t, TypeSubscription, tier.Type)
	assert.Equal(t, IntervalMonth, tier.Interval)

	_, ok = ByID("enterprise")
	assert.False(t, ok)
}

func TestByStripePriceID(t *testing.T) {
	tier, ok := ByStripePriceID("price_portfolio_monthly")
	require.True(t, ok)
	assert.Equal(t, "portfolio", tier.ID)

	_, ok = ByStripePriceID("")
	assert.False(t, ok)

	_, ok = ByStripePriceID("price_unknown")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"

	again := All()
	assert.Equal(t, "Free", again[0].Name)
}
