package postgres

import (
	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/feature"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"

	"github.com/prometheus/client_golang/prometheus"
)

// CommittedAggregatesCounter counts committed aggregate writes by aggregate kind.
type CommittedAggregatesCounter struct {
	counter *prometheus.CounterVec
}

func NewCommittedAggregatesCounter(reg prometheus.Registerer) *CommittedAggregatesCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bakery",
		Name:      "committed_aggregates_total",
		Help:      "Number of aggregates written by committed transactions.",
	}, []string{"aggregate"})
	reg.MustRegister(counter)

	return &CommittedAggregatesCounter{counter: counter}
}

func (c *CommittedAggregatesCounter) AggregatesCommitted(aggregates []any) {
	for _, aggregate := range aggregates {
		c.counter.WithLabelValues(aggregateKind(aggregate)).Inc()
	}
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *product.Product:
		return "product"
	case *closingperiod.ClosingPeriod:
		return "closing_period"
	case *order.Order:
		return "order"
	case *feature.Feature:
		return "feature"
	default:
		return "unknown"
	}
}
