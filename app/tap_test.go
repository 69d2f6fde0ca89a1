package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTapDetector(t *testing.T) {
	start := time.Unix(0, 0)
	tests := []struct {
		name string
		taps []struct {
			id string
			at time.Duration
		}
		want []Action
	}{
		{
			name: "double tap inside window",
			taps: []struct {
				id string
				at time.Duration
			}{{"a", 0}, {"a", 299 * time.Millisecond}},
			want: []Action{ActionSelect, ActionToggleExpand},
		},
		{
			name: "second tap at deadline selects",
			taps: []struct {
				id string
				at time.Duration
			}{{"a", 0}, {"a", 300 * time.Millisecond}},
			want: []Action{ActionSelect, ActionSelect},
		},
		{
			name: "other group inside window selects",
			taps: []struct {
				id string
				at time.Duration
			}{{"a", 0}, {"b", 50 * time.Millisecond}, {"b", 100 * time.Millisecond}},
			want: []Action{ActionSelect, ActionSelect, ActionToggleExpand},
		},
		{
			name: "triple tap starts over",
			taps: []struct {
				id string
				at time.Duration
			}{{"a", 0}, {"a", 10 * time.Millisecond}, {"a", 20 * time.Millisecond}},
			want: []Action{ActionSelect, ActionToggleExpand, ActionSelect},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: start}
			d := NewTapDetector(clock, 0)
			for i, tap := range tt.taps {
				clock.now = start.Add(tap.at)
				assert.Equal(t, tt.want[i], d.Tap(tap.id), "tap %d", i)
			}
		})
	}
}

func TestTapDetectorReset(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	d := NewTapDetector(clock, time.Second)

	d.Tap("a")
	d.Reset()
	assert.Equal(t, ActionSelect, d.Tap("a"))
}
