package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// MaxStringLen is the maximum rune length kept by AtomicString
const MaxStringLen = 64

// AtomicString is a string metric, the zero value holds ""
type AtomicString struct {
	v atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen runes
func (s *AtomicString) Store(val string) {
	if r := []rune(val); len(r) > MaxStringLen {
		val = string(r[:MaxStringLen])
	}
	s.v.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.v.Load(); p != nil {
		return *p
	}
	return ""
}

// Registry holds the draw's debug metrics
// Writers cache pointers once and store into the atomics on every frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Line renders int and bool metrics as space separated key=value pairs, ints first
// String metrics are left out, the status bar already shows them
func (r *Registry) Line() string {
	var fields []string
	for key, v := range r.Ints.Sorted() {
		fields = append(fields, fmt.Sprintf("%s=%d", key, v.Load()))
	}
	for key, v := range r.Bools.Sorted() {
		fields = append(fields, fmt.Sprintf("%s=%t", key, v.Load()))
	}
	return strings.Join(fields, " ")
}
