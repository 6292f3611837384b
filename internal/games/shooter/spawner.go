package shooter

// Spawner emits one enemy each time its frame counter exceeds the interval.
// The cadence is counted in frames, so it follows the frame rate rather than
// wall-clock time.
type Spawner struct {
	interval int
	counter  int
}

// NewSpawner creates a spawner with the given interval in frames.
func NewSpawner(interval int) *Spawner {
	return &Spawner{interval: interval}
}

// Advance counts one frame and reports whether an enemy should spawn.
// The counter resets to zero when it fires.
func (s *Spawner) Advance() bool {
	s.counter++
	if s.counter > s.interval {
		s.counter = 0
		return true
	}
	return false
}

// Counter returns the frames counted since the last spawn.
func (s *Spawner) Counter() int {
	return s.counter
}

// Reset zeroes the counter.
func (s *Spawner) Reset() {
	s.counter = 0
}
