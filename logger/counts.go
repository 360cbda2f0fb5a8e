package logger

import (
	"sort"
	"sync"
	"sync/atomic"
)

type levelCounts struct {
	warns  int64
	errors int64
}

var counts sync.Map // component -> *levelCounts

func countsFor(component string) *levelCounts {
	v, _ := counts.LoadOrStore(component, &levelCounts{})
	return v.(*levelCounts)
}

func recordWarn(component string) {
	atomic.AddInt64(&countsFor(component).warns, 1)
}

func recordError(component string) {
	atomic.AddInt64(&countsFor(component).errors, 1)
}

// ComponentCount is the number of warnings and errors a component logged.
type ComponentCount struct {
	Component string
	Warns     int64
	Errors    int64
}

// Counts returns per component warning and error totals, sorted by
// component name.
func Counts() []ComponentCount {
	var out []ComponentCount
	counts.Range(func(k, v any) bool {
		c := v.(*levelCounts)
		out = append(out, ComponentCount{
			Component: k.(string),
			Warns:     atomic.LoadInt64(&c.warns),
			Errors:    atomic.LoadInt64(&c.errors),
		})
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Component < out[j].Component })
	return out
}
