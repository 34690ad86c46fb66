package status

import "sync/atomic"

// Registry is the central metrics facade
// Components cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot renders every metric as a sorted key=value list for the status line
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		if ptr.Load() {
			out = append(out, key+"=on")
		} else {
			out = append(out, key+"=off")
		}
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out = append(out, key+"="+itoa(ptr.Load()))
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		out = append(out, key+"="+ptr.Load())
	})
	return out
}
