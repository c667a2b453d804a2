package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

type Service struct {
	HoldsCreated          prometheus.Counter
	HoldConflicts         prometheus.Counter
	ReservationsPaid      prometheus.Counter
	ReservationsCancelled *prometheus.CounterVec
	ReaperExpired         prometheus.Counter
	ReaperSkipped         prometheus.Counter
	ReaperFailed          prometheus.Counter
	ReaperSweepDuration   prometheus.Histogram
	WebhookEvents         *prometheus.CounterVec
	MatchEventsAppended   prometheus.Counter
	MatchEventsOutOfOrder prometheus.Counter
	OutboxPublished       prometheus.Counter
	OutboxFailed          prometheus.Counter
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		HoldsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_holds_created_total",
			Help: "Slot holds successfully placed.",
		}),
		HoldConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_hold_conflicts_total",
			Help: "Hold attempts that lost the race for a slot.",
		}),
		ReservationsPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_reservations_paid_total",
			Help: "Reservations moved to paid.",
		}),
		ReservationsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_reservations_cancelled_total",
			Help: "Reservations cancelled, by reason.",
		}, []string{"reason"}),
		ReaperExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_reaper_expired_total",
			Help: "Holds released by the expiry reaper.",
		}),
		ReaperSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_reaper_skipped_total",
			Help: "Expired holds another actor resolved first.",
		}),
		ReaperFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_reaper_failed_total",
			Help: "Expired holds the reaper could not release.",
		}),
		ReaperSweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtside_reaper_sweep_duration_seconds",
			Help:    "Duration of one reaper sweep.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_webhook_events_total",
			Help: "Payment webhook deliveries, by outcome.",
		}, []string{"outcome"}),
		MatchEventsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_match_events_appended_total",
			Help: "Match events written to the log.",
		}),
		MatchEventsOutOfOrder: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_match_events_out_of_order_total",
			Help: "Match event appends refused for a wrong sequence number.",
		}),
		OutboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_outbox_published_total",
			Help: "Outbox jobs published to the broker.",
		}),
		OutboxFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_outbox_failed_total",
			Help: "Outbox publish attempts that failed.",
		}),
	}

	reg.MustRegister(
		s.HoldsCreated,
		s.HoldConflicts,
		s.ReservationsPaid,
		s.ReservationsCancelled,
		s.ReaperExpired,
		s.ReaperSkipped,
		s.ReaperFailed,
		s.ReaperSweepDuration,
		s.WebhookEvents,
		s.MatchEventsAppended,
		s.MatchEventsOutOfOrder,
		s.OutboxPublished,
		s.OutboxFailed,
	)

	return s
}

func (s *Service) IncHoldCreated() {
	s.HoldsCreated.Inc()
}

func (s *Service) IncHoldConflict() {
	s.HoldConflicts.Inc()
}

func (s *Service) IncReservationPaid() {
	s.ReservationsPaid.Inc()
}

func (s *Service) IncReservationCancelled(reason string) {
	s.ReservationsCancelled.WithLabelValues(reason).Inc()
}

func (s *Service) ObserveSweep(expired, skipped, failed int, seconds float64) {
	s.ReaperExpired.Add(float64(expired))
	s.ReaperSkipped.Add(float64(skipped))
	s.ReaperFailed.Add(float64(failed))
	s.ReaperSweepDuration.Observe(seconds)
}

func (s *Service) IncWebhook(outcome string) {
	s.WebhookEvents.WithLabelValues(outcome).Inc()
}

func (s *Service) IncMatchEventAppended() {
	s.MatchEventsAppended.Inc()
}

func (s *Service) IncMatchEventOutOfOrder() {
	s.MatchEventsOutOfOrder.Inc()
}

func (s *Service) IncOutboxPublished() {
	s.OutboxPublished.Inc()
}

func (s *Service) IncOutboxFailed() {
	s.OutboxFailed.Inc()
}
