package tiers

// Billing type for a tier (decides which payment flow applies)
const (
	TypeFree         = "free"
	TypeOneTime      = "one_time"
	TypeSubscription = "subscription"
)

// Billing interval, only meaningful when Type == subscription
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// UnlimitedReports is the quota sentinel: -1 means no monthly cap.
const UnlimitedReports = -1

type Tier struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	PriceGBP        float64  `json:"price_gbp"`
	Type            string   `json:"type"`
	Interval        string   `json:"interval,omitempty"`
	ReportsPerMonth int      `json:"reports_per_month"`
	Features        []string `json:"features"`
	StripeProductID string   `json:"stripe_product_id,omitempty"`
	StripePriceID   string   `json:"stripe_price_id,omitempty"`
	Popular         bool     `json:"popular"`
}

// Unlimited reports?
func (t Tier) Unlimited() bool {
	return t.ReportsPerMonth == UnlimitedReports
}
