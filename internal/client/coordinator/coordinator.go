// Package coordinator owns the view state of the roster client: which mode
// is shown, which record is being edited, the loaded records and the search
// query. It drives the store and reports outcomes through a Notifier.
//
//	          Add / Edit(id)
//	browse ------------------> compose
//	   ^                          |
//	   +-- View / Cancel / Submit-+
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/roster/internal/client/store"
	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster"
)

type Mode string

const (
	ModeCompose Mode = "compose"
	ModeBrowse  Mode = "browse"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrSubmitInProgress  = errors.New("submission already in progress")
)

// State is a snapshot of the view state.
type State struct {
	Mode     Mode
	Editing  *roster.Student
	Students []roster.Student
	Loading  bool
	Query    string
}

type Coordinator struct {
	store     store.Store
	notifier  Notifier
	confirmer Confirmer
	log       logging.Logger

	mu         sync.Mutex
	state      State
	submitting bool
	seq        uint64
	closed     bool
}

func New(s store.Store, n Notifier, c Confirmer, log logging.Logger) *Coordinator {
	return &Coordinator{
		store:     s,
		notifier:  n,
		confirmer: c,
		log:       log,
		state:     State{Mode: ModeCompose, Students: []roster.Student{}},
	}
}

// State returns a copy that is safe to read while the coordinator changes.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Students = append([]roster.Student(nil), c.state.Students...)
	if c.state.Editing != nil {
		e := *c.state.Editing
		s.Editing = &e
	}
	return s
}

// Visible returns the records matching the current search query.
func (c *Coordinator) Visible() []roster.Student {
	c.mu.Lock()
	defer c.mu.Unlock()
	return roster.Filter(c.state.Students, c.state.Query)
}

func (c *Coordinator) Search(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query = query
}

func (c *Coordinator) Add() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Mode = ModeCompose
	c.state.Editing = nil
}

func (c *Coordinator) View() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Mode = ModeBrowse
	c.state.Editing = nil
}

// Edit opens the record with the given id in compose mode. Only valid
// while browsing.
func (c *Coordinator) Edit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Mode != ModeBrowse {
		return fmt.Errorf("edit from %s: %w", c.state.Mode, ErrInvalidTransition)
	}
	s, ok := c.find(id)
	if !ok {
		return fmt.Errorf("student %s: %w", id, common.ErrNotFound)
	}
	c.state.Mode = ModeCompose
	c.state.Editing = &s
	return nil
}

func (c *Coordinator) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Mode != ModeCompose {
		return fmt.Errorf("cancel from %s: %w", c.state.Mode, ErrInvalidTransition)
	}
	c.state.Mode = ModeBrowse
	c.state.Editing = nil
	return nil
}

// Submit validates f and creates a new record, or updates the one being
// edited. On success the list is reloaded and the coordinator moves to
// browse; on failure the compose state is kept.
func (c *Coordinator) Submit(ctx context.Context, f roster.Fields) error {
	c.mu.Lock()
	if c.state.Mode != ModeCompose {
		mode := c.state.Mode
		c.mu.Unlock()
		return fmt.Errorf("submit from %s: %w", mode, ErrInvalidTransition)
	}
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	if errs := roster.Validate(f); len(errs) > 0 {
		c.mu.Unlock()
		c.notifier.Error(MsgFixValidation)
		return errs.Err()
	}
	c.submitting = true
	var editing *roster.Student
	if c.state.Editing != nil {
		e := *c.state.Editing
		editing = &e
	}
	c.mu.Unlock()

	var err error
	if editing == nil {
		var created *roster.Student
		created, err = c.store.Create(ctx, f)
		if err == nil {
			c.log.Debug(ctx, "student created", "id", created.ID)
		}
	} else {
		err = c.store.Update(ctx, editing.ID, f)
		if err == nil {
			c.log.Debug(ctx, "student updated", "id", editing.ID)
		}
	}

	if err != nil {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()

		c.log.Error(ctx, "error saving student", "error", err)
		c.notifier.Error(MsgSaveFailed)
		return err
	}

	if editing == nil {
		c.notifier.Success(MsgAdded)
	} else {
		c.notifier.Success(MsgUpdated)
	}

	_ = c.refresh(ctx)

	c.mu.Lock()
	c.submitting = false
	if !c.closed {
		c.state.Editing = nil
		c.state.Mode = ModeBrowse
	}
	c.mu.Unlock()
	return nil
}

// Delete asks for confirmation and removes the record. A declined prompt
// leaves everything untouched.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.state.Mode != ModeBrowse {
		mode := c.state.Mode
		c.mu.Unlock()
		return fmt.Errorf("delete from %s: %w", mode, ErrInvalidTransition)
	}
	s, ok := c.find(id)
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("student %s: %w", id, common.ErrNotFound)
	}

	prompt := fmt.Sprintf("Are you sure you want to delete %s's record?", s.FullName())
	yes, err := c.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !yes {
		return nil
	}

	delErr := c.store.Delete(ctx, id)
	if delErr != nil {
		c.log.Error(ctx, "error deleting student", "id", id, "error", delErr)
		c.notifier.Error(MsgDeleteFailed)
	} else {
		c.log.Debug(ctx, "student deleted", "id", id)
		c.notifier.Success(MsgDeleted)
	}

	_ = c.refresh(ctx)
	return delErr
}

// Mount loads the records once. While the load is outstanding
// State().Loading is true. A failure keeps the previous list.
func (c *Coordinator) Mount(ctx context.Context) error {
	return c.refresh(ctx)
}

// Close discards the results of loads and submissions that are still in
// flight.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.state.Loading = false
}

func (c *Coordinator) refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.seq++
	seq := c.seq
	c.state.Loading = true
	c.mu.Unlock()

	students, err := c.store.List(ctx)

	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		return nil
	}
	c.state.Loading = false
	if err == nil {
		c.state.Students = students
	}
	c.mu.Unlock()

	if err != nil {
		if store.IsDecodeError(err) {
			c.log.Error(ctx, "stored student list is corrupt", "key", store.StudentsKey, "error", err)
		} else {
			c.log.Error(ctx, "error loading students", "error", err)
		}
		c.notifier.Error(MsgLoadFailed)
		return err
	}
	return nil
}

// find must be called with mu held.
func (c *Coordinator) find(id string) (roster.Student, bool) {
	for _, s := range c.state.Students {
		if s.ID == id {
			return s, true
		}
	}
	return roster.Student{}, false
}
