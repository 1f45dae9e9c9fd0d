package minimax

import (
	"time"
)

type _Timer struct {
	start time.Time
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now()}
}

func (t *_Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Elapsed time in milliseconds, at least 1
func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}
