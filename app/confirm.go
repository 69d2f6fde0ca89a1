package app

import (
	"errors"
	"sync"
)

const deleteTitle = "刪除警告"

var ErrAlreadyAnswered = errors.New("confirmation already answered")

// Confirmation is a pending destructive action waiting for a yes or no.
type Confirmation struct {
	Title   string
	Message string

	once   sync.Once
	accept func() error
}

// Accept runs the action. A confirmation can be answered once.
func (c *Confirmation) Accept() error {
	err := ErrAlreadyAnswered
	c.once.Do(func() {
		err = c.accept()
	})
	return err
}

// Cancel drops the action.
func (c *Confirmation) Cancel() {
	c.once.Do(func() {})
}

// NewConfirmation wraps an arbitrary action, e.g. a full reset.
func NewConfirmation(title, message string, accept func() error) *Confirmation {
	return &Confirmation{Title: title, Message: message, accept: accept}
}
