// Package timing records how long record store operations take.
package timing

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stat summarises the recorded durations of one operation.
type Stat struct {
	Operation string
	Count     int
	Total     time.Duration
	Max       time.Duration
}

// Mean returns the average duration, or zero when nothing was recorded.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Tracker collects durations per operation name. It is safe for concurrent use.
type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		now:     time.Now,
	}
}

// Start begins timing operation and returns the function that stops it.
func (tt *Tracker) Start(operation string) func() {
	start := tt.now()
	return func() {
		tt.Record(operation, tt.now().Sub(start))
	}
}

// Record adds one duration for operation.
func (tt *Tracker) Record(operation string, d time.Duration) {
	tt.mu.Lock()
	tt.timings[operation] = append(tt.timings[operation], d)
	tt.mu.Unlock()
}

// Timings returns a copy of the durations recorded for operation.
func (tt *Tracker) Timings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}
	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Stats returns one summary per operation, sorted by name.
func (tt *Tracker) Stats() []Stat {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	stats := make([]Stat, 0, len(tt.timings))
	for op, timings := range tt.timings {
		stat := Stat{Operation: op, Count: len(timings)}
		for _, d := range timings {
			stat.Total += d
			if d > stat.Max {
				stat.Max = d
			}
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Operation < stats[j].Operation })
	return stats
}

// Reset drops everything recorded so far.
func (tt *Tracker) Reset() {
	tt.mu.Lock()
	tt.timings = make(map[string][]time.Duration)
	tt.mu.Unlock()
}

// Report renders Stats as text for the operation timings dialog.
func (tt *Tracker) Report() string {
	stats := tt.Stats()
	if len(stats) == 0 {
		return "No store operations recorded yet."
	}

	var b strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&b, "%-8s %4d calls  mean %-10v max %v\n",
			s.Operation, s.Count, s.Mean().Round(time.Microsecond), s.Max.Round(time.Microsecond))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
