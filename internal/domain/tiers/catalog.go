package tiers

import "fmt"

// The catalog is compiled in and never mutated at runtime. Tier ids are
// stable keys: Stripe products/prices and stored user profiles reference
// them, so renaming an id is a breaking change.
var catalog = []Tier{
	{
		ID:              "free",
		Name:            "Free",
		PriceGBP:        0,
		Type:            TypeFree,
		ReportsPerMonth: 0,
		Features: []string{
			"Property dashboard",
			"Compliance to-do checklists",
			"Deadline reminders",
		},
	},
	{
		ID:              "single_report",
		Name:            "Single Report",
		PriceGBP:        29,
		Type:            TypeOneTime,
		ReportsPerMonth: 1,
		Features: []string{
			"One full compliance report",
			"Certificate expiry audit",
			"PDF export",
		},
		StripeProductID: "prod_single_report",
		StripePriceID:   "price_single_report",
	},
	{
		ID:              "landlord",
		Name:            "Landlord",
		PriceGBP:        9.99,
		Type:            TypeSubscription,
		Interval:        IntervalMonth,
		ReportsPerMonth: 3,
		Features: []string{
			"3 compliance reports per month",
			"Certificate expiry audit",
			"PDF export",
			"Email support",
		},
		StripeProductID: "prod_landlord",
		StripePriceID:   "price_landlord_monthly",
		Popular:         true,
	},
	{
		ID:              "portfolio",
		Name:            "Portfolio",
		PriceGBP:        24.99,
		Type:            TypeSubscription,
		Interval:        IntervalMonth,
		ReportsPerMonth: 10,
		Features: []string{
			"10 compliance reports per month",
			"Certificate expiry audit",
			"PDF export",
			"Bulk checklist generation",
			"Priority email support",
		},
		StripeProductID: "prod_portfolio",
		StripePriceID:   "price_portfolio_monthly",
	},
	{
		ID:              "agency",
		Name:            "Agency",
		PriceGBP:        199,
		Type:            TypeSubscription,
		Interval:        IntervalYear,
		ReportsPerMonth: UnlimitedReports,
		Features: []string{
			"Unlimited compliance reports",
			"Certificate expiry audit",
			"PDF export",
			"Bulk checklist generation",
			"Dedicated account manager",
		},
		StripeProductID: "prod_agency",
		StripePriceID:   "price_agency_yearly",
	},
}

var byID = func() map[string]Tier {
	m := make(map[string]Tier, len(catalog))
	for _, t := range catalog {
		m[t.ID] = t
	}
	return m
}()

// All returns the catalog in display order.
func All() []Tier {
	out := make([]Tier, len(catalog))
	copy(out, catalog)
	return out
}

func ByID(id string) (Tier, bool) {
	t, ok := byID[id]
	return t, ok
}

// ByStripePriceID maps a Stripe price back to its tier. Webhooks use this
// when metadata is missing.
func ByStripePriceID(priceID string) (Tier, bool) {
	if priceID == "" {
		return Tier{}, false
	}
	for _, t := range catalog {
		if t.StripePriceID == priceID {
			return t, true
		}
	}
	return Tier{}, false
}

// Validate checks the catalog invariants. Called once at startup; a broken
// catalog is a build mistake, so the caller should refuse to boot.
func Validate() error {
	seen := make(map[string]bool, len(catalog))
	for _, t := range catalog {
		if t.ID == "" || seen[t.ID] {
			return fmt.Errorf("tier %q: missing or duplicate id", t.ID)
		}
		seen[t.ID] = true

		if t.Name == "" {
			return fmt.Errorf("tier %q: empty name", t.ID)
		}
		if t.PriceGBP < 0 {
			return fmt.Errorf("tier %q: negative price", t.ID)
		}
		if t.ReportsPerMonth < UnlimitedReports {
			return fmt.Errorf("tier %q: invalid reports quota %d", t.ID, t.ReportsPerMonth)
		}

		switch t.Type {
		case TypeSubscription:
			if t.Interval != IntervalMonth && t.Interval != IntervalYear {
				return fmt.Errorf("tier %q: subscription requires month/year interval", t.ID)
			}
		case TypeFree, TypeOneTime:
			if t.Interval != "" {
				return fmt.Errorf("tier %q: interval only valid for subscriptions", t.ID)
			}
		default:
			return fmt.Errorf("tier %q: unknown type %q", t.ID, t.Type)
		}

		// Stripe refs may be empty only on the free tier
		if t.Type != TypeFree && (t.StripeProductID == "" || t.StripePriceID == "") {
			return fmt.Errorf("tier %q: missing stripe product/price id", t.ID)
		}
		if t.Type == TypeFree && (t.StripeProductID != "" || t.StripePriceID != "") {
			return fmt.Errorf("tier %q: free tier must not carry stripe ids", t.ID)
		}

		featSeen := make(map[string]bool, len(t.Features))
		for _, f := range t.Features {
			if featSeen[f] {
				return fmt.Errorf("tier %q: duplicate feature %q", t.ID, f)
			}
			featSeen[f] = true
		}
	}
	return nil
}
