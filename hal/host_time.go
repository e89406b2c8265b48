package hal

import "time"

const tickDur = time.Millisecond

type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// sync emits one tick per millisecond of wall time since the previous call.
// The first call emits a single tick.
func (t *hostTime) sync() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.emit(1)
		return
	}
	t.advance(now.Sub(t.last))
	t.last = now
}

// advance emits ticks for d of virtual time. Headless runs use it so that
// the tick count depends only on the frame count.
func (t *hostTime) advance(d time.Duration) {
	t.acc += d
	n := uint64(t.acc / tickDur)
	if n == 0 {
		return
	}
	t.acc %= tickDur
	t.emit(n)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

// LatestTick drains ch without blocking and returns the newest tick seen, or
// last when none are pending.
func LatestTick(ch <-chan uint64, last uint64) uint64 {
	for {
		select {
		case v := <-ch:
			last = v
		default:
			return last
		}
	}
}
