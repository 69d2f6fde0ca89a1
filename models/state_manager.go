package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrFoodNotFound  = errors.New("food not found")
	ErrAmbiguousRef  = errors.New("reference matches more than one entry")
)

// minPrefixLen keeps one or two characters from matching half the list.
const minPrefixLen = 4

// StateManager handles thread-safe state management
type StateManager struct {
	mu       sync.RWMutex
	groups   []Group
	onChange func()
}

func NewStateManager(groups []Group) *StateManager {
	sm := &StateManager{}
	sm.groups = cloneGroups(groups)
	return sm
}

// OnChange registers fn to be called after every successful mutation. fn runs
// without the lock held.
func (s *StateManager) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *StateManager) changed() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Replace swaps the whole group list, e.g. after loading from storage.
func (s *StateManager) Replace(groups []Group) {
	s.mu.Lock()
	s.groups = cloneGroups(groups)
	s.mu.Unlock()
	s.changed()
}

func (s *StateManager) Groups() []Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneGroups(s.groups)
}

func (s *StateManager) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups)
}

func (s *StateManager) Group(id string) (Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Group{}, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	return s.groups[i].clone(), nil
}

// Position returns the index of the group in the list, or -1.
func (s *StateManager) Position(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id)
}

// Resolve finds a group by full ID, exact title or unique ID prefix, in that
// order.
func (s *StateManager) Resolve(ref string) (Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(ref); i >= 0 {
		return s.groups[i].clone(), nil
	}
	for _, g := range s.groups {
		if g.Title == ref {
			return g.clone(), nil
		}
	}

	match := -1
	if len(ref) >= minPrefixLen {
		for i, g := range s.groups {
			if strings.HasPrefix(g.ID, ref) {
				if match >= 0 {
					return Group{}, fmt.Errorf("%w: %s", ErrAmbiguousRef, ref)
				}
				match = i
			}
		}
	}
	if match >= 0 {
		return s.groups[match].clone(), nil
	}
	return Group{}, fmt.Errorf("%w: %s", ErrGroupNotFound, ref)
}

// ResolveFood finds a food in the group by full ID, exact name or unique ID
// prefix, in that order.
func (s *StateManager) ResolveFood(groupID, ref string) (Food, error) {
	g, err := s.Group(groupID)
	if err != nil {
		return Food{}, err
	}

	for _, f := range g.Foods {
		if f.ID == ref {
			return f, nil
		}
	}
	for _, f := range g.Foods {
		if f.Name == ref {
			return f, nil
		}
	}

	match := -1
	if len(ref) >= minPrefixLen {
		for i, f := range g.Foods {
			if strings.HasPrefix(f.ID, ref) {
				if match >= 0 {
					return Food{}, fmt.Errorf("%w: %s", ErrAmbiguousRef, ref)
				}
				match = i
			}
		}
	}
	if match >= 0 {
		return g.Foods[match], nil
	}
	return Food{}, fmt.Errorf("%w: %s", ErrFoodNotFound, ref)
}

// AddGroup appends a new empty group. Empty titles are ignored.
func (s *StateManager) AddGroup(title string) (Group, bool) {
	if title == "" {
		return Group{}, false
	}
	g := NewGroup(title)

	s.mu.Lock()
	s.groups = append(s.groups, g)
	s.mu.Unlock()

	s.changed()
	return g.clone(), true
}

// DeleteGroup removes the group and returns the position it had.
func (s *StateManager) DeleteGroup(id string) (int, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return -1, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	s.groups = append(s.groups[:i], s.groups[i+1:]...)
	s.mu.Unlock()

	s.changed()
	return i, nil
}

func (s *StateManager) RenameGroup(id, title string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	s.groups[i].Title = title
	s.mu.Unlock()

	s.changed()
	return nil
}

// AddFood appends a food to the group. Empty names are ignored and reported
// with ok == false.
func (s *StateManager) AddFood(groupID, name string) (Food, bool, error) {
	s.mu.Lock()
	i := s.indexOf(groupID)
	if i < 0 {
		s.mu.Unlock()
		return Food{}, false, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	if name == "" {
		s.mu.Unlock()
		return Food{}, false, nil
	}
	f := NewFood(name)
	s.groups[i].Foods = append(s.groups[i].Foods, f)
	s.mu.Unlock()

	s.changed()
	return f, true, nil
}

func (s *StateManager) RenameFood(groupID, foodID, name string) error {
	s.mu.Lock()
	gi, fi, err := s.locateFood(groupID, foodID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.groups[gi].Foods[fi].Name = name
	s.mu.Unlock()

	s.changed()
	return nil
}

func (s *StateManager) DeleteFood(groupID, foodID string) error {
	s.mu.Lock()
	gi, fi, err := s.locateFood(groupID, foodID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	foods := s.groups[gi].Foods
	s.groups[gi].Foods = append(foods[:fi], foods[fi+1:]...)
	s.mu.Unlock()

	s.changed()
	return nil
}

// ReplaceFoods sets the foods of the group with the given title, appending a
// new group when none matches.
func (s *StateManager) ReplaceFoods(title string, names []string) Group {
	fresh := NewGroup(title, names...)

	s.mu.Lock()
	var out Group
	found := false
	for i := range s.groups {
		if s.groups[i].Title == title {
			s.groups[i].Foods = fresh.Foods
			out = s.groups[i].clone()
			found = true
			break
		}
	}
	if !found {
		s.groups = append(s.groups, fresh)
		out = fresh.clone()
	}
	s.mu.Unlock()

	s.changed()
	return out
}

func (s *StateManager) indexOf(id string) int {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *StateManager) locateFood(groupID, foodID string) (int, int, error) {
	gi := s.indexOf(groupID)
	if gi < 0 {
		return -1, -1, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	for fi := range s.groups[gi].Foods {
		if s.groups[gi].Foods[fi].ID == foodID {
			return gi, fi, nil
		}
	}
	return -1, -1, fmt.Errorf("%w: %s", ErrFoodNotFound, foodID)
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g.clone()
	}
	return out
}
