package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const metricNamespace = "github.com/jcmexdev/topup-storefront/internal/store"

// WithMeter records store metrics on meter instead of the global provider.
func WithMeter(meter metric.Meter) Option {
	return func(s *Store) {
		if meter != nil {
			s.meter = meter
		}
	}
}

type storeMetrics struct {
	actions          metric.Int64Counter
	actionsEnabled   bool
	checkouts        metric.Int64Counter
	checkoutsEnabled bool
}

func (s *Store) initMetrics() {
	meter := s.meter
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(metricNamespace)
	}

	actions, actionsErr := meter.Int64Counter(
		"storefront.store.actions",
		metric.WithDescription("Count of actions applied to the store state"),
	)
	if actionsErr != nil {
		s.logger.Warn("store: unable to register action metric", "error", actionsErr)
	}

	checkouts, checkoutsErr := meter.Int64Counter(
		"storefront.store.checkouts",
		metric.WithDescription("Count of checkout attempts by outcome"),
	)
	if checkoutsErr != nil {
		s.logger.Warn("store: unable to register checkout metric", "error", checkoutsErr)
	}

	s.metrics = storeMetrics{
		actions:          actions,
		actionsEnabled:   actionsErr == nil,
		checkouts:        checkouts,
		checkoutsEnabled: checkoutsErr == nil,
	}
}

func (m storeMetrics) actionApplied(actionType string) {
	if !m.actionsEnabled {
		return
	}
	m.actions.Add(context.Background(), 1, metric.WithAttributes(attribute.String("action", actionType)))
}

func (m storeMetrics) checkoutAttempted(outcome string) {
	if !m.checkoutsEnabled {
		return
	}
	m.checkouts.Add(context.Background(), 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
