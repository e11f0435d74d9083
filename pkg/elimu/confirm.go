package elimu

import (
	"context"
	"strings"
	"sync"
)

// Deleter issues the actual DELETE for an id, typically a service's Delete
// method.
type Deleter func(ctx context.Context, id string) error

// DeleteConfirmation models the delete-with-confirmation flow: Request
// stores the pending id and opens the prompt, Confirm issues exactly one
// delete for it, Cancel closes the prompt leaving backend state untouched.
type DeleteConfirmation struct {
	mu      sync.Mutex
	deleter Deleter
	pending string
	open    bool
}

// NewDeleteConfirmation binds a confirmation flow to a deleter
func NewDeleteConfirmation(deleter Deleter) *DeleteConfirmation {
	return &DeleteConfirmation{deleter: deleter}
}

// Request stores the id and opens the prompt. No request is issued yet.
func (d *DeleteConfirmation) Request(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = id
	d.open = true
	return nil
}

// Pending returns the stored id and whether the prompt is open
func (d *DeleteConfirmation) Pending() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending, d.open
}

// Cancel closes the prompt without issuing anything
func (d *DeleteConfirmation) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = ""
	d.open = false
}

// Confirm issues exactly one delete for the pending id and closes the
// prompt. The pending id is consumed either way; a failed delete needs a
// fresh Request to retry.
func (d *DeleteConfirmation) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if !d.open || d.pending == "" {
		d.mu.Unlock()
		return ErrNothingPending
	}
	id := d.pending
	d.pending = ""
	d.open = false
	d.mu.Unlock()

	return d.deleter(ctx, id)
}
