package sales

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SalesRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_recorded_total",
			Help: "Count of confirmed sales.",
		},
	)
)

func init() {
	prometheus.MustRegister(SalesRecordedTotal)
}
