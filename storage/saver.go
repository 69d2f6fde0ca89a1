package storage

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/aguxez/foodpick/models"
)

const DefaultDebounce = 250 * time.Millisecond

// Saver writes the latest snapshot after a quiet period. MarkDirty is cheap
// and may be called on every keystroke; Flush writes immediately.
type Saver struct {
	adapter  *Adapter
	snapshot func() []models.Group
	debounce time.Duration

	mu      sync.Mutex
	dirty   bool
	timer   *time.Timer
	closed  bool
	writeMu sync.Mutex // serializes writes so the last snapshot wins
}

func NewSaver(adapter *Adapter, snapshot func() []models.Group, debounce time.Duration) *Saver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Saver{
		adapter:  adapter,
		snapshot: snapshot,
		debounce: debounce,
	}
}

func (s *Saver) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.Flush(context.Background()); err != nil {
			log.Printf("Failed to save groups: %v", err)
		}
	})
}

func (s *Saver) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Flush writes the current snapshot if there are unsaved changes. On error
// the dirty flag stays set so the next flush retries.
func (s *Saver) Flush(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if err := s.adapter.Save(ctx, s.snapshot()); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}

// Close stops the timer and flushes what is pending. Later MarkDirty calls
// are ignored.
func (s *Saver) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.Flush(ctx)
}
