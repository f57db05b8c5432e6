// Package state owns the in-memory application state.
//
// A single Controller holds bills, categories, users and companies behind a
// RWMutex. Reads hand out copies. Every mutation is written through the
// storage.Store first and only committed to memory once the store accepts
// it, so a failed write leaves the controller exactly as it was.
package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jay4webdev/Bill-Tracker/internal/lifecycle"
	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/storage"
)

// EventKind says what kind of change an Event reports.
type EventKind int

const (
	EventRefreshed EventKind = iota
	EventBillsChanged
	EventBillsImported
	EventCategoriesChanged
	EventUsersChanged
	EventCompaniesChanged
)

// Event is delivered to observers after a change is committed.
type Event struct {
	Kind EventKind

	// Imported is the number of bills added by an EventBillsImported.
	Imported int

	// Snapshot is a private copy of the state after the change.
	Snapshot *models.Snapshot
}

// Observer is notified after each committed change, outside the lock.
type Observer func(Event)

// Controller is the single owner of application state.
type Controller struct {
	store  storage.Store
	clock  lifecycle.Clock
	logger *slog.Logger
	newID  func() string

	mu        sync.RWMutex
	snap      *models.Snapshot
	observers []Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used to decide what "today" is.
func WithClock(clock lifecycle.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithIDGenerator overrides the UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// New creates a controller with empty state. Call Refresh to load it.
func New(store storage.Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		clock:  lifecycle.NewSystemClock(time.Local),
		logger: slog.Default(),
		newID:  uuid.NewString,
		snap:   &models.Snapshot{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Today returns the current date on the controller's clock.
func (c *Controller) Today() models.Date {
	return lifecycle.Today(c.clock)
}

// Refresh replaces memory with a fresh load from the store. Bills pass
// through load-mode reconciliation and currency defaulting.
func (c *Controller) Refresh(ctx context.Context) error {
	snap, err := c.store.Load(ctx)
	if err != nil {
		return syncFailed(err)
	}
	changed := lifecycle.NormalizeLoaded(snap.Bills, c.Today())

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	c.logger.Debug("state refreshed",
		"bills", len(snap.Bills),
		"categories", len(snap.Categories),
		"users", len(snap.Users),
		"companies", len(snap.Companies),
		"reconciled", changed,
	)
	c.notify(Event{Kind: EventRefreshed})
	return nil
}

// Run refreshes state every interval until ctx is cancelled. Failures are
// logged and the previous state is kept.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.logger.Warn("periodic sync failed", "error", err)
			}
		}
	}
}

// Snapshot returns a copy of the whole state.
func (c *Controller) Snapshot() *models.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := c.snap.Clone()
	lifecycle.ReconcileAll(snap.Bills, c.Today(), lifecycle.ModeLoad)
	return snap
}

// notify hands every observer its own copy of the current state.
func (c *Controller) notify(ev Event) {
	if len(c.observers) == 0 {
		return
	}
	for _, o := range c.observers {
		ev.Snapshot = c.Snapshot()
		o(ev)
	}
}
