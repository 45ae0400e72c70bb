package booking

// PaymentStatus tracks a reservation through the payment provider
// callbacks. Transitions are monotonic except the refund step; an unpaid
// hold can also expire into canceled.
type PaymentStatus string

const (
	StatusUnpaid   PaymentStatus = "unpaid"
	StatusPending  PaymentStatus = "pending"
	StatusPaid     PaymentStatus = "paid"
	StatusRefunded PaymentStatus = "refunded"
	StatusCanceled PaymentStatus = "canceled"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPending, StatusPaid, StatusRefunded, StatusCanceled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the status machine:
// unpaid -> pending -> paid -> refunded, with unpaid -> paid permitted
// (provider callbacks may skip pending) and unpaid -> canceled for
// expired holds. Nothing leaves refunded or canceled.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case StatusUnpaid:
		return next == StatusPending || next == StatusPaid || next == StatusCanceled
	case StatusPending:
		return next == StatusPaid
	case StatusPaid:
		return next == StatusRefunded
	default:
		return false
	}
}

// HoldingStatuses are the statuses that keep a pitch exclusively held by
// the reservation: a guest mid-checkout must not be double-sold.
func HoldingStatuses() []PaymentStatus {
	return []PaymentStatus{StatusUnpaid, StatusPending, StatusPaid}
}
