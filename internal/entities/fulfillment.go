package entities

// Provider identifies which reseller delivers an item. Set once when the
// order is queued, immutable afterward.
type Provider string

const (
	ProviderHubnet     Provider = "hubnet"
	ProviderDatahubnet Provider = "datahubnet"
)

// FulfillmentStatus is the per-item delivery state. The zero value means the
// item has not been queued yet (stored as NULL).
type FulfillmentStatus string

const (
	StatusUnset     FulfillmentStatus = ""
	StatusPending   FulfillmentStatus = "PENDING"
	StatusSending   FulfillmentStatus = "SENDING"
	StatusSubmitted FulfillmentStatus = "SUBMITTED"
	StatusDelivered FulfillmentStatus = "DELIVERED"
	StatusFailed    FulfillmentStatus = "FAILED"
)

// MaxAttempts is the hard ceiling on submission attempts. An item that
// reaches it is never claimed again.
const MaxAttempts = 6

// Claimable reports whether the status allows the dispatcher to take the
// item. FAILED is deliberately claimable: a failed item keeps retrying until
// the attempt ceiling exhausts it.
func (s FulfillmentStatus) Claimable() bool {
	switch s {
	case StatusUnset, StatusPending, StatusFailed:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further dispatch work can change the status.
// Note FAILED is not terminal until attempts run out.
func (s FulfillmentStatus) Terminal() bool {
	return s == StatusDelivered
}
