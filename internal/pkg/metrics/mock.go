package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	holdsCreated      int
	holdConflicts     int
	reservationsPaid  int
	cancelledByReason map[string]int
	sweeps            int
	expired           int
	skipped           int
	failed            int
	webhooksByOutcome map[string]int
	matchEvents       int
	matchOutOfOrder   int
	outboxPublished   int
	outboxFailed      int
}

func NewMock() *Mock {
	return &Mock{
		cancelledByReason: make(map[string]int),
		webhooksByOutcome: make(map[string]int),
	}
}

func (m *Mock) IncHoldCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holdsCreated++
}

func (m *Mock) IncHoldConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holdConflicts++
}

func (m *Mock) IncReservationPaid() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservationsPaid++
}

func (m *Mock) IncReservationCancelled(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelledByReason[reason]++
}

func (m *Mock) ObserveSweep(expired, skipped, failed int, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweeps++
	m.expired += expired
	m.skipped += skipped
	m.failed += failed
}

func (m *Mock) IncWebhook(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.webhooksByOutcome[outcome]++
}

func (m *Mock) IncMatchEventAppended() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchEvents++
}

func (m *Mock) IncMatchEventOutOfOrder() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchOutOfOrder++
}

func (m *Mock) IncOutboxPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outboxPublished++
}

func (m *Mock) IncOutboxFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outboxFailed++
}

func (m *Mock) HoldsCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holdsCreated
}

func (m *Mock) HoldConflicts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.holdConflicts
}

func (m *Mock) ReservationsPaid() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reservationsPaid
}

func (m *Mock) Cancelled(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelledByReason[reason]
}

// Sweep returns the number of sweeps and the summed expired, skipped and failed counts.
func (m *Mock) Sweep() (sweeps, expired, skipped, failed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweeps, m.expired, m.skipped, m.failed
}

func (m *Mock) Webhooks(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.webhooksByOutcome[outcome]
}

func (m *Mock) MatchEvents() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchEvents
}

func (m *Mock) MatchOutOfOrder() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchOutOfOrder
}

func (m *Mock) OutboxPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outboxPublished
}

func (m *Mock) OutboxFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outboxFailed
}
