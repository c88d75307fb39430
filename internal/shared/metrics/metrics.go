package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Registry collects process-local counters for resume generation and
// HTTP traffic. Values reset on restart.
type Registry struct {
	generationsStarted   atomic.Int64
	generationsCompleted atomic.Int64
	generationsFailed    atomic.Int64
	downloadsServed      atomic.Int64
	sweepsRun            atomic.Int64
	recordsSwept         atomic.Int64

	mu              sync.Mutex
	renderDurations durationHistogram
}

var defaultRegistry = &Registry{
	renderDurations: newDurationHistogram(),
}

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

func (r *Registry) IncGenerationStarted()   { r.generationsStarted.Add(1) }
func (r *Registry) IncGenerationCompleted() { r.generationsCompleted.Add(1) }
func (r *Registry) IncGenerationFailed()    { r.generationsFailed.Add(1) }
func (r *Registry) IncDownloadServed()      { r.downloadsServed.Add(1) }

func (r *Registry) IncSweep(records int) {
	r.sweepsRun.Add(1)
	r.recordsSwept.Add(int64(records))
}

// ObserveRenderDuration records how long a full render+print pass took.
func (r *Registry) ObserveRenderDuration(d time.Duration) {
	r.mu.Lock()
	r.renderDurations.observe(d)
	r.mu.Unlock()
}

// Handler serves the registry in Prometheus text exposition format.
func (r *Registry) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

		fmt.Fprintf(w, "# TYPE resume_generations_started_total counter\n")
		fmt.Fprintf(w, "resume_generations_started_total %d\n", r.generationsStarted.Load())
		fmt.Fprintf(w, "# TYPE resume_generations_completed_total counter\n")
		fmt.Fprintf(w, "resume_generations_completed_total %d\n", r.generationsCompleted.Load())
		fmt.Fprintf(w, "# TYPE resume_generations_failed_total counter\n")
		fmt.Fprintf(w, "resume_generations_failed_total %d\n", r.generationsFailed.Load())
		fmt.Fprintf(w, "# TYPE resume_downloads_served_total counter\n")
		fmt.Fprintf(w, "resume_downloads_served_total %d\n", r.downloadsServed.Load())
		fmt.Fprintf(w, "# TYPE resume_sweeps_run_total counter\n")
		fmt.Fprintf(w, "resume_sweeps_run_total %d\n", r.sweepsRun.Load())
		fmt.Fprintf(w, "# TYPE resume_records_swept_total counter\n")
		fmt.Fprintf(w, "resume_records_swept_total %d\n", r.recordsSwept.Load())

		r.mu.Lock()
		hist := r.renderDurations.snapshot()
		r.mu.Unlock()

		fmt.Fprintf(w, "# TYPE resume_render_duration_seconds histogram\n")
		cumulative := int64(0)
		for _, b := range hist.buckets {
			cumulative += b.count
			fmt.Fprintf(w, "resume_render_duration_seconds_bucket{le=%q} %d\n", formatBound(b.upperBound), cumulative)
		}
		fmt.Fprintf(w, "resume_render_duration_seconds_bucket{le=\"+Inf\"} %d\n", hist.count)
		fmt.Fprintf(w, "resume_render_duration_seconds_sum %f\n", hist.sum)
		fmt.Fprintf(w, "resume_render_duration_seconds_count %d\n", hist.count)
	}
}

type histBucket struct {
	upperBound float64
	count      int64
}

type durationHistogram struct {
	buckets  []histBucket
	overflow int64
	sum      float64
	count    int64
}

func newDurationHistogram() durationHistogram {
	bounds := []float64{0.5, 1, 2.5, 5, 10, 30, 60}
	buckets := make([]histBucket, len(bounds))
	for i, b := range bounds {
		buckets[i] = histBucket{upperBound: b}
	}
	return durationHistogram{buckets: buckets}
}

func (h *durationHistogram) observe(d time.Duration) {
	secs := d.Seconds()
	h.sum += secs
	h.count++
	idx := sort.Search(len(h.buckets), func(i int) bool {
		return secs <= h.buckets[i].upperBound
	})
	if idx < len(h.buckets) {
		h.buckets[idx].count++
	} else {
		h.overflow++
	}
}

func (h *durationHistogram) snapshot() durationHistogram {
	cp := *h
	cp.buckets = make([]histBucket, len(h.buckets))
	copy(cp.buckets, h.buckets)
	return cp
}

func formatBound(b float64) string {
	if b == float64(int64(b)) {
		return fmt.Sprintf("%d", int64(b))
	}
	return fmt.Sprintf("%g", b)
}
