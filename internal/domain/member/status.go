package member

// Status is a member's subscription state in the marketing API.
type Status string

const (
	StatusSubscribed   Status = "subscribed"
	StatusUnsubscribed Status = "unsubscribed"
	StatusCleaned      Status = "cleaned"
	StatusPending      Status = "pending"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusSubscribed, StatusUnsubscribed, StatusCleaned, StatusPending:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Statuses returns every valid status in declaration order.
func Statuses() []string {
	return []string{
		StatusSubscribed.String(),
		StatusUnsubscribed.String(),
		StatusCleaned.String(),
		StatusPending.String(),
	}
}
