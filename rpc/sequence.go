package rpc

import "sync/atomic"

// Sequence hands out request ids. The zero value starts at 1 and is safe
// for concurrent use.
type Sequence struct {
	last atomic.Int64
}

// Next returns the next id.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
