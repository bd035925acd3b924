package plan

import (
	"fmt"
	"math/rand"
	"time"
)

// Source yields per-step write sizes one at a time. The scheduler pulls
// from a Source and never looks ahead; bounded plans exhaust, the uniform
// source never does.
type Source interface {
	// Next returns the next step size in whole megabytes. ok is false once
	// the source is exhausted.
	Next() (sizeMB int64, ok bool)
}

// Source adapts a bounded plan into a pull-based size source.
func (p Plan) Source() Source {
	return &planSource{plan: p}
}

type planSource struct {
	plan Plan
	next int
}

func (s *planSource) Next() (int64, bool) {
	if s.next >= len(s.plan) {
		return 0, false
	}
	size := s.plan[s.next]
	s.next++
	return size, true
}

// UniformSource draws each step size independently and uniformly from a
// closed integer range. It never exhausts.
type UniformSource struct {
	min, max int64
	rnd      *rand.Rand
}

// Uniform returns an unbounded source drawing from [minMB, maxMB]
// inclusive. rnd may be nil, in which case a time-seeded generator is used;
// tests pass a seeded one for determinism.
func Uniform(minMB, maxMB int64, rnd *rand.Rand) (*UniformSource, error) {
	if minMB < 1 {
		return nil, fmt.Errorf("minimum size must be at least 1 MB, got %d", minMB)
	}
	if maxMB < minMB {
		return nil, fmt.Errorf("maximum size %d MB is below minimum %d MB", maxMB, minMB)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &UniformSource{min: minMB, max: maxMB, rnd: rnd}, nil
}

func (u *UniformSource) Next() (int64, bool) {
	return u.min + u.rnd.Int63n(u.max-u.min+1), true
}
