package dragselect

import (
	"sync"
	"time"
)

// frameLoop calls tick on every frame while a drag is active. Ticks are handed
// to schedule, so a tick may still be queued after stop; the generation
// counter turns those into no-ops.
type frameLoop struct {
	lock       sync.Mutex
	ticker     *time.Ticker
	stopCh     chan struct{}
	generation uint64

	interval time.Duration
	schedule func(func())
	tick     func()
}

func newFrameLoop(interval time.Duration, schedule func(func()), tick func()) *frameLoop {
	return &frameLoop{
		interval: interval,
		schedule: schedule,
		tick:     tick,
	}
}

func (l *frameLoop) start() {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.ticker != nil {
		return
	}

	l.generation++
	l.ticker = time.NewTicker(l.interval)
	l.stopCh = make(chan struct{})

	gen := l.generation
	ticker := l.ticker
	stop := l.stopCh
	go func() {
		for {
			select {
			case <-ticker.C:
				l.schedule(func() {
					if l.current(gen) {
						l.tick()
					}
				})
			case <-stop:
				return
			}
		}
	}()
}

func (l *frameLoop) stop() {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.ticker == nil {
		return
	}
	l.ticker.Stop()
	l.ticker = nil
	close(l.stopCh)
	l.stopCh = nil
	l.generation++
}

func (l *frameLoop) running() bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.ticker != nil
}

func (l *frameLoop) current(gen uint64) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.ticker != nil && l.generation == gen
}
