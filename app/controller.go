// Package app holds the application controller shared by the TUI and the
// CLI. It owns the group store together with the UI-only state (selection,
// expanded groups, last pick) and talks to persistence and the external
// lookup through injected interfaces.
package app

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aguxez/foodpick/models"
)

// Persister is told about every change and flushed on exit.
type Persister interface {
	MarkDirty()
	Flush(ctx context.Context) error
	Close(ctx context.Context) error
}

// Opener hands a food name to an external map search.
type Opener interface {
	Open(ctx context.Context, name string) (string, error)
}

type Deps struct {
	Store     *models.StateManager
	Persister Persister
	Opener    Opener
	Rand      *rand.Rand
	Clock     Clock

	DoubleTapWindow time.Duration
}

type Controller struct {
	store     *models.StateManager
	persister Persister
	opener    Opener
	intn      func(int) int
	taps      *TapDetector

	mu       sync.Mutex
	selected string
	expanded map[string]bool
	picked   string
}

func New(d Deps) *Controller {
	if d.Store == nil {
		d.Store = models.NewStateManager(nil)
	}
	c := &Controller{
		store:     d.Store,
		persister: d.Persister,
		opener:    d.Opener,
		intn:      rand.IntN,
		taps:      NewTapDetector(d.Clock, d.DoubleTapWindow),
		expanded:  make(map[string]bool),
	}
	if d.Rand != nil {
		c.intn = d.Rand.IntN
	}
	if d.Persister != nil {
		d.Store.OnChange(d.Persister.MarkDirty)
	}
	return c
}

func (c *Controller) Store() *models.StateManager {
	return c.store
}

func (c *Controller) Groups() []models.Group {
	return c.store.Groups()
}

func (c *Controller) AddGroup(title string) (models.Group, bool) {
	return c.store.AddGroup(title)
}

func (c *Controller) RenameGroup(id, title string) error {
	return c.store.RenameGroup(id, title)
}

func (c *Controller) AddFood(groupID, name string) (models.Food, bool, error) {
	return c.store.AddFood(groupID, name)
}

func (c *Controller) RenameFood(groupID, foodID, name string) error {
	return c.store.RenameFood(groupID, foodID, name)
}

// ImportFoods replaces the foods of the group titled title, creating the
// group if needed.
func (c *Controller) ImportFoods(title string, names []string) models.Group {
	return c.store.ReplaceFoods(title, names)
}

// Reset drops everything and installs the seed groups.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.selected = ""
	c.picked = ""
	c.expanded = make(map[string]bool)
	c.mu.Unlock()
	c.taps.Reset()
	c.store.Replace(models.SeedGroups())
}

// ConfirmDeleteGroup prepares the deletion of a group. Nothing is removed
// until the returned confirmation is accepted.
func (c *Controller) ConfirmDeleteGroup(id string) (*Confirmation, error) {
	g, err := c.store.Group(id)
	if err != nil {
		return nil, err
	}
	return &Confirmation{
		Title:   deleteTitle,
		Message: fmt.Sprintf("確認要刪除［%s］清單嗎?", g.Title),
		accept:  func() error { return c.deleteGroup(id) },
	}, nil
}

func (c *Controller) deleteGroup(id string) error {
	selPos := -1
	c.mu.Lock()
	if c.selected != "" {
		selPos = c.store.Position(c.selected)
	}
	c.mu.Unlock()

	pos, err := c.store.DeleteGroup(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.expanded, id)
	if selPos >= pos {
		c.selected = ""
	}
	return nil
}

func (c *Controller) ConfirmDeleteFood(groupID, foodID string) (*Confirmation, error) {
	f, err := c.store.ResolveFood(groupID, foodID)
	if err != nil {
		return nil, err
	}
	return &Confirmation{
		Title:   deleteTitle,
		Message: fmt.Sprintf("確認要刪除［%s］食物嗎?", f.Name),
		accept:  func() error { return c.store.DeleteFood(groupID, f.ID) },
	}, nil
}

func (c *Controller) ToggleExpand(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.expanded[id] {
		delete(c.expanded, id)
	} else {
		c.expanded[id] = true
	}
}

func (c *Controller) IsExpanded(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded[id]
}

func (c *Controller) SelectGroup(id string) error {
	if _, err := c.store.Group(id); err != nil {
		return err
	}
	c.mu.Lock()
	c.selected = id
	c.mu.Unlock()
	return nil
}

// Selected returns the selected group, if any.
func (c *Controller) Selected() (models.Group, bool) {
	c.mu.Lock()
	id := c.selected
	c.mu.Unlock()
	if id == "" {
		return models.Group{}, false
	}
	g, err := c.store.Group(id)
	if err != nil {
		return models.Group{}, false
	}
	return g, true
}

func (c *Controller) SelectedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Tap selects the group, or toggles its expansion when it is the second tap
// on the same group inside the double tap window.
func (c *Controller) Tap(id string) (Action, error) {
	if _, err := c.store.Group(id); err != nil {
		return ActionSelect, err
	}
	action := c.taps.Tap(id)
	switch action {
	case ActionToggleExpand:
		c.ToggleExpand(id)
	default:
		c.mu.Lock()
		c.selected = id
		c.mu.Unlock()
	}
	return action, nil
}

// PickRandom draws one food of the selected group uniformly. With no
// selection or an empty group the pick is cleared and ok is false.
func (c *Controller) PickRandom() (string, bool) {
	g, ok := c.Selected()
	if !ok || len(g.Foods) == 0 {
		c.mu.Lock()
		c.picked = ""
		c.mu.Unlock()
		return "", false
	}

	food := g.Foods[c.intn(len(g.Foods))].Name
	c.mu.Lock()
	c.picked = food
	c.mu.Unlock()
	return food, true
}

func (c *Controller) PickedFood() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.picked
}

// Lookup opens the map search for name. Failures are logged and returned.
func (c *Controller) Lookup(ctx context.Context, name string) (string, error) {
	if c.opener == nil {
		return "", fmt.Errorf("lookup %q: no opener configured", name)
	}
	u, err := c.opener.Open(ctx, name)
	if err != nil {
		log.Printf("Failed to open map search for %q: %v", name, err)
		return u, err
	}
	return u, nil
}

func (c *Controller) Flush(ctx context.Context) error {
	if c.persister == nil {
		return nil
	}
	return c.persister.Flush(ctx)
}

// Close flushes pending changes; call it once on exit.
func (c *Controller) Close(ctx context.Context) error {
	if c.persister == nil {
		return nil
	}
	return c.persister.Close(ctx)
}
