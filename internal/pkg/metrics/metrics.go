package metrics

// Metrics decouples the booking core from the Prometheus client.
type Metrics interface {
	IncHoldCreated()
	IncHoldConflict()
	IncReservationPaid()
	IncReservationCancelled(reason string)
	ObserveSweep(expired, skipped, failed int, seconds float64)
	IncWebhook(outcome string)
	IncMatchEventAppended()
	IncMatchEventOutOfOrder()
	IncOutboxPublished()
	IncOutboxFailed()
}
