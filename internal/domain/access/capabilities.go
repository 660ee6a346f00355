package access

func CapabilitiesFor(state AccessState, tierID string) []string {
	if state == AccessExpired {
		return []string{"todos"}
	}

	switch tierID {
	case "single_report":
		return []string{"todos", "reports"}
	case "landlord":
		return []string{"todos", "reports", "expiry_audit"}
	case "portfolio":
		return []string{"todos", "reports", "expiry_audit", "bulk_checklists"}
	case "agency":
		return []string{"todos", "reports", "expiry_audit", "bulk_checklists", "account_manager"}
	default:
		return []string{"todos"}
	}
}

// Policy is the /me view of what the signed-in user can do right now.
type Policy struct {
	State        AccessState `json:"state"`
	TierID       string      `json:"tier_id"`
	Capabilities []string    `json:"capabilities"`
	Quota        QuotaUsage  `json:"quota"`
}
