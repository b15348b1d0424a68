// Package quota implements the reverse proxy's per-identity daily request counter.
//
// Counters live in memory only. They reset when the UTC calendar day changes
// and are lost on restart; several instances each keep their own counts.
package quota

import (
	"sort"
	"sync"
	"time"
)

// DefaultDailyLimit is the number of proxied requests one identity may make per UTC day.
const DefaultDailyLimit = 25

const dayLayout = "2006-01-02"

type usage struct {
	day   string
	count int
}

// Result is the outcome of a Take call.
type Result struct {
	Allowed   bool
	Remaining int
	Limit     int
}

// Usage is a snapshot row for one identity.
type Usage struct {
	Identity  string `json:"identity"`
	Day       string `json:"day"`
	Count     int    `json:"count"`
	Remaining int    `json:"remaining"`
}

// Daily counts requests per identity per UTC day.
type Daily struct {
	mu    sync.Mutex
	limit int
	now   func() time.Time
	usage map[string]*usage
}

// NewDaily returns a counter allowing limit requests per identity per day.
// A non-positive limit falls back to DefaultDailyLimit.
func NewDaily(limit int) *Daily {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Daily{
		limit: limit,
		now:   time.Now,
		usage: make(map[string]*usage),
	}
}

// Limit returns the configured daily ceiling.
func (d *Daily) Limit() int {
	return d.limit
}

// Take charges one request to identity if it still has quota today.
func (d *Daily) Take(identity string) Result {
	day := d.today()

	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.usage[identity]
	if !ok || u.day != day {
		u = &usage{day: day}
		d.usage[identity] = u
	}
	if u.count >= d.limit {
		return Result{Allowed: false, Remaining: 0, Limit: d.limit}
	}
	u.count++
	return Result{Allowed: true, Remaining: d.limit - u.count, Limit: d.limit}
}

// Remaining reports how many requests identity has left today without charging.
func (d *Daily) Remaining(identity string) int {
	day := d.today()

	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.usage[identity]
	if !ok || u.day != day {
		return d.limit
	}
	return max(0, d.limit-u.count)
}

// Prune drops counters from previous days and returns how many were removed.
func (d *Daily) Prune() int {
	day := d.today()

	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for id, u := range d.usage {
		if u.day != day {
			delete(d.usage, id)
			removed++
		}
	}
	return removed
}

// Snapshot lists today's counters ordered by count (desc), then identity.
func (d *Daily) Snapshot() []Usage {
	day := d.today()

	d.mu.Lock()
	out := make([]Usage, 0, len(d.usage))
	for id, u := range d.usage {
		if u.day != day {
			continue
		}
		out = append(out, Usage{
			Identity:  id,
			Day:       u.day,
			Count:     u.count,
			Remaining: max(0, d.limit-u.count),
		})
	}
	d.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Identity < out[j].Identity
	})
	return out
}

func (d *Daily) today() string {
	return d.now().UTC().Format(dayLayout)
}
