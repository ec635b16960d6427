package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bakery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
)

// Metrics holds the HTTP and order validation collectors.
type Metrics struct {
	requests         *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	orderValidations *prometheus.CounterVec
}

// NewMetrics registers the collectors. Registering twice on the same registerer reuses
// the existing collectors.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		requests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "bakery_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		duration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "bakery_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		orderValidations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "bakery_order_validations_total",
			Help: "Orders accepted or rejected by validation",
		}, []string{"operation", "result"}),
	}
}

// Middleware records every request once its status is known.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.requests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveOrderValidation counts the outcome of a create or update order call. Failures
// other than validation are not counted.
func (m *Metrics) ObserveOrderValidation(operation string, err error) {
	if m == nil {
		return
	}

	switch {
	case err == nil:
		m.orderValidations.WithLabelValues(operation, "accepted").Inc()
	case errors.Is(err, order.ErrInvalidOrder):
		m.orderValidations.WithLabelValues(operation, "rejected").Inc()
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(
	registerer prometheus.Registerer,
	opts prometheus.HistogramOpts,
	labels []string,
) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
