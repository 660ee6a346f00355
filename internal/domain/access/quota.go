package access

import (
	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"
)

type QuotaUsage struct {
	Used      int  `json:"used"`
	Limit     int  `json:"limit"` // -1 when unlimited
	Unlimited bool `json:"unlimited"`
}

func QuotaFor(u users.User) QuotaUsage {
	limit := u.ReportsQuota
	if tier, ok := tiers.ByID(u.TierID); ok {
		// catalog wins over a stale stored quota
		limit = tier.ReportsPerMonth
	}
	return QuotaUsage{
		Used:      u.ReportsUsed,
		Limit:     limit,
		Unlimited: limit == tiers.UnlimitedReports,
	}
}

// Remaining is meaningless for unlimited tiers; callers should check
// Unlimited first.
func (q QuotaUsage) Remaining() int {
	if q.Unlimited {
		return 0
	}
	r := q.Limit - q.Used
	if r < 0 {
		return 0
	}
	return r
}

// CanGenerateReport decides whether one more report fits inside the user's
// current entitlement.
func CanGenerateReport(state AccessState, q QuotaUsage) bool {
	if state == AccessExpired || state == AccessPastDue {
		return false
	}
	if q.Unlimited {
		return true
	}
	return q.Used < q.Limit
}
