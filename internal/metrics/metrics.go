package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendorlink_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	VendorsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vendorlink_vendors_created_total",
			Help: "Total number of vendors invited into the system.",
		},
	)
	VerificationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendorlink_vendor_verifications_total",
			Help: "Total number of finalized vendor verifications by outcome.",
		},
		[]string{"outcome"},
	)
	JobsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vendorlink_jobs_created_total",
			Help: "Total number of jobs created with assignments.",
		},
	)
	AssignmentsPerJob = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vendorlink_assignments_per_job",
			Help:    "Number of vendors assigned to each created job.",
			Buckets: []float64{1, 2, 5, 10, 20, 50},
		},
	)
	IntakeDenialsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendorlink_intake_denials_total",
			Help: "Total number of rejected employee submissions by reason.",
		},
		[]string{"reason"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(VendorsCreatedCounter)
	prometheus.MustRegister(VerificationsCounter)
	prometheus.MustRegister(JobsCreatedCounter)
	prometheus.MustRegister(AssignmentsPerJob)
	prometheus.MustRegister(IntakeDenialsCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
