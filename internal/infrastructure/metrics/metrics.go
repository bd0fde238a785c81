// Package metrics exposes Prometheus instruments for the entity store and
// its integrations. Recording helpers are safe to call from any goroutine.
package metrics

import (
	"net/http"
	"time"

	"marcenaria_gestao/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marcenaria"

var (
	Registry = prometheus.NewRegistry()

	storeOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Successful entity store mutations by collection and operation.",
	}, []string{"collection", "operation"})

	storeMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_misses_total",
		Help:      "Store operations that targeted an unknown id.",
	}, []string{"collection", "operation"})

	storeRecords = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_records",
		Help:      "Current number of records per collection.",
	}, []string{"collection"})

	snapshotDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_duration_seconds",
		Help:      "Time spent saving or loading store snapshots.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"direction", "result"})

	eventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_events_total",
		Help:      "Change events handed to publishers, by publisher and result.",
	}, []string{"publisher", "result"})
)

func init() {
	Registry.MustRegister(
		storeOperations,
		storeMisses,
		storeRecords,
		snapshotDuration,
		eventsPublished,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func RecordStoreOp(collection entities.Collection, op entities.Operation) {
	storeOperations.WithLabelValues(string(collection), string(op)).Inc()
}

func RecordStoreMiss(collection entities.Collection, op entities.Operation) {
	storeMisses.WithLabelValues(string(collection), string(op)).Inc()
}

// SetRecordCounts refreshes the per-collection gauges from a snapshot.
func SetRecordCounts(snap entities.Snapshot) {
	storeRecords.WithLabelValues(string(entities.CollectionRequests)).Set(float64(len(snap.Requests)))
	storeRecords.WithLabelValues(string(entities.CollectionProjects)).Set(float64(len(snap.Projects)))
	storeRecords.WithLabelValues(string(entities.CollectionTeams)).Set(float64(len(snap.Teams)))
	storeRecords.WithLabelValues(string(entities.CollectionVehicles)).Set(float64(len(snap.Vehicles)))
	storeRecords.WithLabelValues(string(entities.CollectionSupplyOrders)).Set(float64(len(snap.SupplyOrders)))
	storeRecords.WithLabelValues(string(entities.CollectionLogisticsEvents)).Set(float64(len(snap.LogisticsEvents)))
}

// ObserveSnapshot records a snapshot save ("save") or load ("load").
func ObserveSnapshot(direction string, started time.Time, err error) {
	snapshotDuration.WithLabelValues(direction, result(err)).Observe(time.Since(started).Seconds())
}

func RecordEventPublished(publisher string, err error) {
	eventsPublished.WithLabelValues(publisher, result(err)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
