package access

import (
	"time"

	"compliance-app/internal/domain/users"
)

func ComputePolicy(now time.Time, u users.User) Policy {
	state := ComputeAccessState(now, u)

	return Policy{
		State:        state,
		TierID:       u.TierID,
		Capabilities: CapabilitiesFor(state, u.TierID),
		Quota:        QuotaFor(u),
	}
}
