package access

import (
	"testing"
	"time"

	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestQuotaFor(t *testing.T) {
	u := users.User{TierID: "landlord", ReportsUsed: 2, ReportsQuota: 99}

	q := QuotaFor(u)

	// the catalog value wins over whatever quota was stored
	assert.Equal(t, 3, q.Limit)
	assert.Equal(t, 2, q.Used)
	assert.False(t, q.Unlimited)
	assert.Equal(t, 1, q.Remaining())
}

func TestQuotaForUnlimited(t *testing.T) {
	u := users.User{TierID: "agency", ReportsUsed: 500}

	q := QuotaFor(u)

	assert.True(t, q.Unlimited)
	assert.Equal(t, tiers.UnlimitedReports, q.Limit)
}

func TestRemainingNeverNegative(t *testing.T) {
	q := QuotaUsage{Used: 5, Limit: 3}
	assert.Equal(t, 0, q.Remaining())
}

func TestCanGenerateReport(t *testing.T) {
	tests := []struct {
		name  string
		state AccessState
		quota QuotaUsage
		want  bool
	}{
		{name: "free tier with zero quota is denied", state: AccessFree, quota: QuotaUsage{Used: 0, Limit: 0}, want: false},
		{name: "active with headroom", state: AccessActive, quota: QuotaUsage{Used: 2, Limit: 3}, want: true},
		{name: "active at the cap", state: AccessActive, quota: QuotaUsage{Used: 3, Limit: 3}, want: false},
		{name: "unlimited ignores usage", state: AccessActive, quota: QuotaUsage{Used: 1000, Limit: -1, Unlimited: true}, want: true},
		{name: "past due is denied", state: AccessPastDue, quota: QuotaUsage{Used: 0, Limit: 3}, want: false},
		{name: "expired is denied", state: AccessExpired, quota: QuotaUsage{Used: 0, Limit: 3}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanGenerateReport(tt.state, tt.quota))
		})
	}
}

func TestComputeAccessState(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	tests := []struct {
		name string
		user users.User
		want AccessState
	}{
		{name: "free tier", user: users.User{TierID: "free"}, want: AccessFree},
		{name: "unknown tier treated as free", user: users.User{TierID: "legacy_gold"}, want: AccessFree},
		{name: "one-time purchase stays active", user: users.User{TierID: "single_report"}, want: AccessActive},
		{name: "active subscription", user: users.User{TierID: "landlord", SubscriptionStatus: strPtr("active")}, want: AccessActive},
		{name: "past due subscription", user: users.User{TierID: "landlord", SubscriptionStatus: strPtr("past_due")}, want: AccessPastDue},
		{name: "canceled but paid through", user: users.User{TierID: "landlord", SubscriptionStatus: strPtr("canceled"), CurrentPeriodEnd: &future}, want: AccessActive},
		{name: "canceled and lapsed", user: users.User{TierID: "landlord", SubscriptionStatus: strPtr("canceled"), CurrentPeriodEnd: &past}, want: AccessExpired},
		{name: "no status on a subscription tier", user: users.User{TierID: "landlord"}, want: AccessExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeAccessState(now, tt.user))
		})
	}
}

func TestComputePolicy(t *testing.T) {
	now := time.Now()
	u := users.User{TierID: "portfolio", SubscriptionStatus: strPtr("active"), ReportsUsed: 4}

	p := ComputePolicy(now, u)

	assert.Equal(t, AccessActive, p.State)
	assert.Equal(t, "portfolio", p.TierID)
	assert.Contains(t, p.Capabilities, "reports")
	assert.Contains(t, p.Capabilities, "bulk_checklists")
	assert.Equal(t, 10, p.Quota.Limit)
	assert.Equal(t, 4, p.Quota.Used)
}
