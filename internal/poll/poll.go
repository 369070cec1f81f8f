// Package poll implements a periodic content-size watch used when the
// host cannot deliver resize notifications for an element directly.
//
// The poller compares the watched dimensions on a fixed interval and
// reports changes through a callback. It can be suspended while the
// environment is in the background and resumed later; suspension keeps
// the "was active" flag so a resume restores exactly the prior state.
package poll

import (
	"sync"
	"time"
)

// Config controls what the poller watches and how often.
type Config struct {
	// Interval between size samples. Non-positive disables polling.
	Interval time.Duration

	// WatchWidth and WatchHeight select the dimensions that count as
	// a change.
	WatchWidth  bool
	WatchHeight bool
}

// Enabled reports whether the configuration describes an active poller.
func (c Config) Enabled() bool {
	return c.Interval > 0 && (c.WatchWidth || c.WatchHeight)
}

// Poller samples a size function on an interval.
type Poller struct {
	cfg      Config
	size     func() (width, height float64)
	onChange func()

	mu        sync.Mutex
	active    bool
	suspended bool
	stopCh    chan struct{}
	lastW     float64
	lastH     float64
}

// New creates a poller. size supplies the current content dimensions;
// onChange fires once per detected change.
func New(cfg Config, size func() (width, height float64), onChange func()) *Poller {
	return &Poller{cfg: cfg, size: size, onChange: onChange}
}

// Start begins polling. No-op if the configuration is disabled or the
// poller is already active.
func (p *Poller) Start() {
	if !p.cfg.Enabled() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active {
		return
	}
	p.active = true
	p.suspended = false
	p.lastW, p.lastH = p.size()
	p.launchLocked()
}

// Stop terminates polling and clears the active flag.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = false
	p.haltLocked()
}

// Suspend pauses sampling without clearing the active flag.
func (p *Poller) Suspend() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active || p.suspended {
		return
	}
	p.suspended = true
	p.haltLocked()
}

// Resume restarts sampling if the poller was active when suspended.
// The pre-suspension baseline is kept, so a size change made while
// suspended is reported on the first tick after resume.
func (p *Poller) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active || !p.suspended {
		return
	}
	p.suspended = false
	p.launchLocked()
}

// Active reports whether the poller is started, suspended or not.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Suspended reports whether sampling is currently paused.
func (p *Poller) Suspended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.suspended
}

// launchLocked starts the sampling goroutine. Caller holds the lock.
func (p *Poller) launchLocked() {
	stop := make(chan struct{})
	p.stopCh = stop
	go p.loop(stop)
}

// haltLocked stops the sampling goroutine. Caller holds the lock.
func (p *Poller) haltLocked() {
	if p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
}

func (p *Poller) loop(stop chan struct{}) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if p.sample() {
				p.onChange()
			}
		}
	}
}

// sample compares the watched dimensions against the last observation.
func (p *Poller) sample() bool {
	w, h := p.size()

	p.mu.Lock()
	defer p.mu.Unlock()
	changed := (p.cfg.WatchWidth && w != p.lastW) ||
		(p.cfg.WatchHeight && h != p.lastH)
	p.lastW, p.lastH = w, h
	return changed
}
