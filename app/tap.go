package app

import (
	"sync"
	"time"
)

const DefaultDoubleTapWindow = 300 * time.Millisecond

// Clock returns a monotonic reading. time.Now carries one, so comparisons
// between its results are unaffected by wall clock changes.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Action is what a tap on a group resolves to.
type Action int

const (
	ActionSelect Action = iota
	ActionToggleExpand
)

func (a Action) String() string {
	switch a {
	case ActionSelect:
		return "select"
	case ActionToggleExpand:
		return "toggle-expand"
	default:
		return "unknown"
	}
}

type tapState int

const (
	tapIdle tapState = iota
	tapAwaitingSecond
)

// TapDetector tells single taps from double taps. It is either idle or
// waiting for a second tap on one group until a deadline.
type TapDetector struct {
	mu       sync.Mutex
	clock    Clock
	window   time.Duration
	state    tapState
	id       string
	deadline time.Time
}

func NewTapDetector(clock Clock, window time.Duration) *TapDetector {
	if clock == nil {
		clock = systemClock{}
	}
	if window <= 0 {
		window = DefaultDoubleTapWindow
	}
	return &TapDetector{clock: clock, window: window}
}

// Tap records a tap on the group and returns what it means.
func (d *TapDetector) Tap(id string) Action {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	if d.state == tapAwaitingSecond && d.id == id && now.Before(d.deadline) {
		d.state = tapIdle
		d.id = ""
		return ActionToggleExpand
	}

	d.state = tapAwaitingSecond
	d.id = id
	d.deadline = now.Add(d.window)
	return ActionSelect
}

// Reset drops any pending first tap.
func (d *TapDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = tapIdle
	d.id = ""
}
