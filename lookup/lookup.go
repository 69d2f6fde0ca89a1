// Package lookup sends a food name to a map search.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"strings"

	"github.com/pkg/browser"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

var ErrNoOpener = errors.New("no handler available to open URL")

// SearchURL builds the maps search URL for a food name.
func SearchURL(name string) string {
	return mapsSearchURL + url.QueryEscape(name)
}

// Handler opens a URL with one particular program.
type Handler struct {
	Name string
	Args []string // the URL is appended
}

// Runner abstracts process execution so tests never spawn programs.
type Runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
	// OpenURL hands u to the system's default URL handler.
	OpenURL(u string) error
}

type systemRunner struct{}

func (systemRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (systemRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (systemRunner) OpenURL(u string) error {
	return browser.OpenURL(u)
}

func init() {
	// The browser helpers print to the terminal, which would tear the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener tries the map application handler first and falls back to the
// system URL handler.
type Opener struct {
	mapHandler *Handler
	runner     Runner
}

// NewOpener builds an opener. mapCommand may be empty; otherwise it is split
// on spaces into program and leading arguments.
func NewOpener(mapCommand string) *Opener {
	return NewOpenerWithRunner(mapCommand, systemRunner{})
}

func NewOpenerWithRunner(mapCommand string, runner Runner) *Opener {
	o := &Opener{runner: runner}
	if fields := strings.Fields(mapCommand); len(fields) > 0 {
		o.mapHandler = &Handler{Name: fields[0], Args: fields[1:]}
	}
	return o
}

// Open opens the maps search for name and returns the URL it used.
func (o *Opener) Open(ctx context.Context, name string) (string, error) {
	u := SearchURL(name)
	return u, o.OpenURL(ctx, u)
}

func (o *Opener) OpenURL(ctx context.Context, u string) error {
	var errs []error
	if h := o.mapHandler; h != nil {
		if _, err := o.runner.LookPath(h.Name); err == nil {
			args := append(append([]string(nil), h.Args...), u)
			err := o.runner.Run(ctx, h.Name, args...)
			if err == nil {
				return nil
			}
			errs = append(errs, fmt.Errorf("map handler: %w", err))
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	err := o.runner.OpenURL(u)
	if err == nil {
		return nil
	}
	errs = append(errs, fmt.Errorf("system handler: %w", err))
	return fmt.Errorf("%w: %w", ErrNoOpener, errors.Join(errs...))
}
