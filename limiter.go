package folio

import (
	"sync"
	"time"
)

// RenderLimiter caps page renders per IP address within a sliding window.
// A max of zero or less disables the limit; SiteConfig maps a negative
// render_limit here (zero there means the default).
type RenderLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRenderLimiter creates a RenderLimiter that allows max renders per window.
func NewRenderLimiter(max int, window time.Duration) *RenderLimiter {
	if window <= 0 {
		window = time.Minute
	}
	l := &RenderLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		stop:   make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *RenderLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.prune(time.Now().Add(-l.window))
		}
	}
}

func (l *RenderLimiter) prune(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, hits := range l.hits {
		kept := recent(hits, cutoff)
		if len(kept) == 0 {
			delete(l.hits, ip)
		} else {
			l.hits[ip] = kept
		}
	}
}

// recent drops timestamps at or before cutoff, reusing the backing array.
func recent(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Allow reports whether ip is still under the limit and, if so, records the render.
func (l *RenderLimiter) Allow(ip string) bool {
	if l.max <= 0 {
		return true
	}
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := recent(l.hits[ip], now.Add(-l.window))
	if len(kept) >= l.max {
		l.hits[ip] = kept
		return false
	}
	l.hits[ip] = append(kept, now)
	return true
}

// Stop ends the background cleanup. It is safe to call more than once.
func (l *RenderLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
