package core

import "github.com/chewxy/math32"

// Stats accumulates the cycle averages seen since boot. Updated from the
// sampling loop only, so no locking.
type Stats struct {
	count uint32
	min   float32
	max   float32
	last  float32
	sum   float32
}

// Update folds one cycle average into the running figures.
func (s *Stats) Update(celsius float32) {
	if s.count == 0 {
		s.min = celsius
		s.max = celsius
	} else {
		s.min = math32.Min(s.min, celsius)
		s.max = math32.Max(s.max, celsius)
	}
	s.last = celsius
	s.sum += celsius
	s.count++
}

// Count returns how many cycles have completed.
func (s *Stats) Count() uint32 { return s.count }

// Last returns the most recent cycle average, 0 before the first cycle.
func (s *Stats) Last() float32 { return s.last }

// Min returns the lowest cycle average seen, 0 before the first cycle.
func (s *Stats) Min() float32 { return s.min }

// Max returns the highest cycle average seen, 0 before the first cycle.
func (s *Stats) Max() float32 { return s.max }

// Mean returns the mean of all cycle averages, 0 before the first cycle.
func (s *Stats) Mean() float32 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float32(s.count)
}
