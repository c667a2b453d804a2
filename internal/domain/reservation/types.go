package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

const (
	CancelReasonExpired       = "expired"
	CancelReasonPaymentFailed = "payment_failed"
	CancelReasonUser          = "cancelled_by_user"
)
