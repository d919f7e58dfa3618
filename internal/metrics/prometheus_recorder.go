package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	blocksRendered     *prom.CounterVec
	renderDuration     *prom.HistogramVec
	documentsProcessed prom.Counter
	buildOutcome       *prom.CounterVec
	buildDuration      prom.Histogram
	buildWorkers       prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.blocksRendered = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docfence",
			Name:      "blocks_rendered_total",
			Help:      "Fenced blocks rendered, by fence name and result",
		}, []string{"fence", "result"})
		pr.renderDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "docfence",
			Name:      "render_duration_seconds",
			Help:      "Duration of individual block renders",
			Buckets:   prom.DefBuckets,
		}, []string{"fence"})
		pr.documentsProcessed = prom.NewCounter(prom.CounterOpts{
			Namespace: "docfence",
			Name:      "documents_processed_total",
			Help:      "Markdown documents processed across all builds",
		})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docfence",
			Name:      "builds_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docfence",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		})
		pr.buildWorkers = prom.NewGauge(prom.GaugeOpts{
			Namespace: "docfence",
			Name:      "build_workers",
			Help:      "Configured document worker concurrency for the last build",
		})
		reg.MustRegister(pr.blocksRendered, pr.renderDuration, pr.documentsProcessed,
			pr.buildOutcome, pr.buildDuration, pr.buildWorkers)
	})
	return pr
}

func (p *PrometheusRecorder) IncBlockRendered(fence, result string) {
	if p == nil || p.blocksRendered == nil {
		return
	}
	p.blocksRendered.WithLabelValues(fence, result).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(fence string, d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.WithLabelValues(fence).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncDocumentProcessed() {
	if p == nil || p.documentsProcessed == nil {
		return
	}
	p.documentsProcessed.Inc()
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetBuildWorkers(n int) {
	if p == nil || p.buildWorkers == nil {
		return
	}
	p.buildWorkers.Set(float64(n))
}
