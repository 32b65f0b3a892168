package application

import (
	"sync/atomic"
	"time"
)

// TimeIDSource issues record ids from the wall clock in milliseconds, bumping
// past the previous id when two calls land in the same millisecond.
type TimeIDSource struct {
	last atomic.Int64
}

func NewTimeIDSource() *TimeIDSource {
	return &TimeIDSource{}
}

func (s *TimeIDSource) NextID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := s.last.Load()
		if id <= last {
			id = last + 1
		}
		if s.last.CompareAndSwap(last, id) {
			return id
		}
	}
}
