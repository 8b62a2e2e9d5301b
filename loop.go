package turtle

import (
	"container/heap"
	"context"
	"time"
)

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }
func (q timerQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}
func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x any)   { *q = append(*q, x.(*timer)) }
func (q *timerQueue) Pop() any {
	old := *q
	t := old[len(old)-1]
	*q = old[:len(old)-1]
	return t
}

// Loop is a cooperative event loop. Timers and bound callbacks all run on
// the goroutine that calls Run; other goroutines deliver input with Click
// and KeyRelease.
type Loop struct {
	timers timerQueue
	seq    uint64
	clicks map[int]func(x, y float64)
	keys   map[string]func()
	events chan func()
	quit   chan struct{}
	now    func() time.Time
}

// NewLoop returns an idle loop.
func NewLoop() *Loop {
	return &Loop{
		clicks: make(map[int]func(x, y float64)),
		keys:   make(map[string]func()),
		events: make(chan func(), 256),
		quit:   make(chan struct{}, 1),
		now:    time.Now,
	}
}

// Bindings returns host bindings backed by l.
func (l *Loop) Bindings() HostBindings {
	return HostBindings{
		Sleep:     time.Sleep,
		After:     l.After,
		BindClick: l.BindClick,
		BindKey:   l.BindKey,
		Mainloop:  func() error { return l.Run(context.Background()) },
		Quit:      l.Stop,
	}
}

// After schedules fn to run d from now. Timers with the same due time run
// in the order they were added.
func (l *Loop) After(d time.Duration, fn func()) {
	l.seq++
	heap.Push(&l.timers, &timer{due: l.now().Add(d), seq: l.seq, fn: fn})
}

// BindClick installs fn for button btn. A nil fn removes the binding.
func (l *Loop) BindClick(btn int, fn func(x, y float64)) {
	if fn == nil {
		delete(l.clicks, btn)
		return
	}
	l.clicks[btn] = fn
}

// BindKey installs fn for key. A nil fn removes the binding.
func (l *Loop) BindKey(key string, fn func()) {
	if fn == nil {
		delete(l.keys, key)
		return
	}
	l.keys[key] = fn
}

// Click delivers a click at surface coordinates. Safe for concurrent use.
func (l *Loop) Click(btn int, x, y float64) {
	l.Post(func() {
		if fn := l.clicks[btn]; fn != nil {
			fn(x, y)
		}
	})
}

// KeyRelease delivers a key release. Safe for concurrent use.
func (l *Loop) KeyRelease(key string) {
	l.Post(func() {
		if fn := l.keys[key]; fn != nil {
			fn()
		}
	})
}

// Post runs fn on the goroutine that calls Run. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	select {
	case l.events <- fn:
	default:
		Logger().Warn("event queue full, input dropped")
	}
}

// Stop makes a running Run return. Safe for concurrent use.
func (l *Loop) Stop() {
	select {
	case l.quit <- struct{}{}:
	default:
	}
}

// RunPending runs every queued event and every timer that is due, without
// waiting, and returns how many callbacks ran.
func (l *Loop) RunPending() int {
	n := 0
	for {
		select {
		case fn := <-l.events:
			fn()
			n++
			continue
		default:
		}
		if len(l.timers) == 0 || l.timers[0].due.After(l.now()) {
			return n
		}
		t := heap.Pop(&l.timers).(*timer)
		t.fn()
		n++
	}
}

func (l *Loop) idle() bool {
	return len(l.timers) == 0 && len(l.clicks) == 0 && len(l.keys) == 0 && len(l.events) == 0
}

// Run processes events and timers until ctx is done, Stop is called, or
// nothing is left that could ever run.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunPending()
		if l.idle() {
			return nil
		}
		var wake *time.Timer
		var wakeC <-chan time.Time
		if len(l.timers) > 0 {
			wake = time.NewTimer(l.timers[0].due.Sub(l.now()))
			wakeC = wake.C
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.quit:
			return nil
		case fn := <-l.events:
			fn()
		case <-wakeC:
		}
		if wake != nil {
			wake.Stop()
		}
	}
}
