// Package profiler tracks how long named grid operations take.
package profiler

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultMaxSamples bounds the samples kept per operation.
const DefaultMaxSamples = 256

// OperationStats is a snapshot of one operation's timings.
type OperationStats struct {
	Name    string
	Count   int64
	Total   time.Duration
	Min     time.Duration
	Max     time.Duration
	Average time.Duration
}

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	name      string
	durations []time.Duration
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// Profiler records operation durations. It is safe for concurrent use.
type Profiler struct {
	mu             sync.Mutex
	maxSamples     int
	operationTimes map[string]*TimeTracker
}

// New returns a profiler keeping at most maxSamples durations per operation
// for the rolling average. maxSamples <= 0 selects DefaultMaxSamples.
func New(maxSamples int) *Profiler {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	return &Profiler{
		maxSamples:     maxSamples,
		operationTimes: make(map[string]*TimeTracker),
	}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.Record(name, time.Since(start))
	}
}

// Record adds one completed operation of the given duration.
func (p *Profiler) Record(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.operationTimes[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		p.operationTimes[name] = tracker
	}

	tracker.durations = append(tracker.durations, duration)
	tracker.totalTime += duration
	if len(tracker.durations) > p.maxSamples {
		// Remove oldest sample
		tracker.totalTime -= tracker.durations[0]
		tracker.durations = tracker.durations[1:]
	}
	tracker.count++

	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// Stats returns a snapshot of every operation, sorted by name. Total and
// Average cover the retained samples; Count, Min and Max cover all of them.
func (p *Profiler) Stats() []OperationStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]OperationStats, 0, len(p.operationTimes))
	for _, t := range p.operationTimes {
		s := OperationStats{
			Name:  t.name,
			Count: t.count,
			Total: t.totalTime,
			Min:   t.minTime,
			Max:   t.maxTime,
		}
		if n := len(t.durations); n > 0 {
			s.Average = t.totalTime / time.Duration(n)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Report formats Stats as one line per operation.
func (p *Profiler) Report() string {
	var sb strings.Builder
	for _, s := range p.Stats() {
		fmt.Fprintf(&sb, "%-14s n=%-4d avg=%-12v min=%-12v max=%v\n", s.Name, s.Count, s.Average, s.Min, s.Max)
	}
	return sb.String()
}
