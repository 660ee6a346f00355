package access

type AccessState string

const (
	AccessFree    AccessState = "free"
	AccessActive  AccessState = "active"
	AccessPastDue AccessState = "past_due"
	AccessExpired AccessState = "expired"
)
