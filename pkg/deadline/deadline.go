package deadline

import (
	"errors"
	"sync"
	"time"

	"github.com/tickbase/tickbase-go/pkg/scale"
	"github.com/tickbase/tickbase-go/pkg/tick"
)

// Deadline manager errors.
var (
	ErrTimerNotFound  = errors.New("timer not found")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// Timeout limits.
const (
	// MinTimeout is the minimum allowed timeout.
	MinTimeout = 1 * time.Millisecond

	// MaxTimeout is the maximum allowed timeout (24 hours).
	MaxTimeout = 24 * time.Hour
)

// Timer represents an armed deadline.
type Timer struct {
	// Name identifies this timer
	Name string

	// StartTime is when the timer was armed (monotonic-like)
	StartTime time.Time

	// Timeout is the armed wall-clock timeout
	Timeout time.Duration

	// Value is handed to the expiry callback when the timer fires
	Value any

	// timer is the Go timer for automatic expiry
	timer *time.Timer
}

// ExpiresAt returns when the timer will fire.
func (t *Timer) ExpiresAt() time.Time {
	return t.StartTime.Add(t.Timeout)
}

// Remaining returns time until expiry.
func (t *Timer) Remaining() time.Duration {
	remaining := t.Timeout - time.Since(t.StartTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsExpired returns true if the timer has elapsed.
func (t *Timer) IsExpired() bool {
	return time.Since(t.StartTime) >= t.Timeout
}

// Manager manages named deadlines.
type Manager struct {
	mu sync.RWMutex

	// Active timers by name
	timers map[string]*Timer

	// Callback when a timer expires
	onExpiry func(name string, value any)
}

// NewManager creates a new deadline manager.
func NewManager() *Manager {
	return &Manager{
		timers: make(map[string]*Timer),
	}
}

// Arm creates or replaces a deadline from a tick-quantified timeout.
// The timer starts immediately. It returns ErrInvalidTimeout when the
// timeout converts out of the time.Duration range or falls outside the
// allowed limits.
func Arm[R tick.Rep, S scale.Scale](m *Manager, name string, timeout tick.Duration[R, S], value any) error {
	std, ok := tick.Std(timeout)
	if !ok {
		return ErrInvalidTimeout
	}
	return m.arm(name, std, value)
}

// arm installs a wall-clock timer under the name.
func (m *Manager) arm(name string, timeout time.Duration, value any) error {
	if timeout < MinTimeout || timeout > MaxTimeout {
		return ErrInvalidTimeout
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Cancel existing timer if any
	if existing, exists := m.timers[name]; exists {
		if existing.timer != nil {
			existing.timer.Stop()
		}
	}

	timer := &Timer{
		Name:      name,
		StartTime: time.Now(),
		Timeout:   timeout,
		Value:     value,
	}

	timer.timer = time.AfterFunc(timeout, func() {
		m.expire(name)
	})

	m.timers[name] = timer
	return nil
}

// Cancel cancels a timer without triggering the expiry callback.
func (m *Manager) Cancel(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	timer, exists := m.timers[name]
	if !exists {
		return ErrTimerNotFound
	}

	if timer.timer != nil {
		timer.timer.Stop()
	}
	delete(m.timers, name)
	return nil
}

// CancelAll cancels every pending timer.
func (m *Manager) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, timer := range m.timers {
		if timer.timer != nil {
			timer.timer.Stop()
		}
		delete(m.timers, name)
	}
}

// Get returns timer info for a name, or nil if not armed.
func (m *Manager) Get(name string) *Timer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if timer, exists := m.timers[name]; exists {
		// Return a copy to avoid race conditions
		return &Timer{
			Name:      timer.Name,
			StartTime: timer.StartTime,
			Timeout:   timer.Timeout,
			Value:     timer.Value,
		}
	}
	return nil
}

// Count returns the number of pending timers.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.timers)
}

// OnExpiry sets the callback for timer expiry.
// The callback receives the timer name and the value it was armed with.
func (m *Manager) OnExpiry(fn func(name string, value any)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpiry = fn
}

// expire handles timer expiry.
func (m *Manager) expire(name string) {
	m.mu.Lock()

	timer, exists := m.timers[name]
	if !exists {
		m.mu.Unlock()
		return
	}

	value := timer.Value
	delete(m.timers, name)

	callback := m.onExpiry

	m.mu.Unlock()

	// Call callback outside lock
	if callback != nil {
		callback(name, value)
	}
}
