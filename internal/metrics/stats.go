// Package metrics keeps rolling-window latency statistics per conversion.
package metrics

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
}

// Snapshot is a point-in-time aggregate of one operation's latencies.
type Snapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// Recorder tracks recent latencies for named operations within a rolling
// window. The zero value is not usable; call NewRecorder.
type Recorder struct {
	mu      sync.Mutex
	samples map[string][]sample
	maxAge  time.Duration
	now     func() time.Time
}

// NewRecorder returns a Recorder that forgets samples older than maxAge.
// A non-positive maxAge selects one hour.
func NewRecorder(maxAge time.Duration) *Recorder {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Recorder{
		samples: make(map[string][]sample),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Record adds one latency sample for op. Negative durations count as zero.
func (r *Recorder) Record(op string, d time.Duration) {
	durationMs := d.Milliseconds()
	if durationMs < 0 {
		durationMs = 0
	}
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples[op] = append(prune(r.samples[op], now.Add(-r.maxAge)), sample{
		timestamp:  now,
		durationMs: durationMs,
	})
}

// Time runs fn and records its duration under op.
func (r *Recorder) Time(op string, fn func()) {
	start := r.now()
	fn()
	r.Record(op, r.now().Sub(start))
}

// Snapshot aggregates every operation that still has samples in the window.
func (r *Recorder) Snapshot() map[string]Snapshot {
	cutoff := r.now().Add(-r.maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Snapshot, len(r.samples))
	for op, samples := range r.samples {
		samples = prune(samples, cutoff)
		if len(samples) == 0 {
			delete(r.samples, op)
			continue
		}
		r.samples[op] = samples
		out[op] = aggregate(samples)
	}
	return out
}

func aggregate(samples []sample) Snapshot {
	values := make([]int64, 0, len(samples))
	var sum int64
	for _, sm := range samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return Snapshot{
		Count: len(values),
		MinMs: values[0],
		MaxMs: values[len(values)-1],
		AvgMs: float64(sum) / float64(len(values)),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}
}

// prune drops samples older than cutoff in place.
func prune(samples []sample, cutoff time.Time) []sample {
	writeIdx := 0
	for _, sm := range samples {
		if !sm.timestamp.Before(cutoff) {
			samples[writeIdx] = sm
			writeIdx++
		}
	}
	return samples[:writeIdx]
}

// percentile interpolates linearly between the two nearest ranks.
func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
