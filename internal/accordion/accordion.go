// Package accordion holds the state manager behind an accordion widget: the
// per-panel open flags, the single/multi-select policy that changes them, the
// snapshot written to storage after every change, and the directives handed
// to whatever renders the panels.
package accordion

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shhac/accordion/internal/domain"
	apperrors "github.com/shhac/accordion/internal/errors"
	"github.com/shhac/accordion/internal/logging"
	"github.com/shhac/accordion/internal/storage"
)

// Accordion owns one accordion's state and its persistence.
//
// Every action runs to completion before the next one is accepted:
//  1. the transition is computed on a clone of the live store
//  2. the clone's snapshot is written through the repository
//  3. only after a successful write does the clone become the live store
//  4. renderers are handed the new directives
//
// A call made while another action is still in flight (typically a renderer
// calling back into the accordion) returns ErrBusy and changes nothing.
type Accordion struct {
	mu   sync.Mutex
	busy bool

	repo   storage.Repository
	key    string
	logger *slog.Logger
	strict bool

	store       *Store
	defaultOpen int
	renderers   []Renderer
}

// Option configures an Accordion.
type Option func(*Accordion)

// WithKey sets the storage key. Defaults to DefaultKey.
func WithKey(key string) Option {
	return func(a *Accordion) { a.key = key }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accordion) { a.logger = logging.Component(logger, "accordion") }
}

// WithStrict makes out-of-range panel indices fail loudly instead of being
// logged and ignored. Meant for development builds and tests.
func WithStrict(strict bool) Option {
	return func(a *Accordion) { a.strict = strict }
}

// WithRenderer registers a renderer at construction time.
func WithRenderer(r Renderer) Option {
	return func(a *Accordion) { a.renderers = append(a.renderers, r) }
}

// New creates an uninitialized accordion persisting through repo.
func New(repo storage.Repository, opts ...Option) *Accordion {
	a := &Accordion{
		repo:   repo,
		key:    DefaultKey,
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init builds the state for panelCount panels. A valid stored snapshot is
// restored; a missing, malformed or stale one is replaced by a fresh state
// with only defaultOpen open, which is persisted immediately.
// Init runs once; Reset is the way back to defaults.
func (a *Accordion) Init(panelCount, defaultOpen int) error {
	store, err := NewStore(panelCount)
	if err != nil {
		return err
	}
	if defaultOpen < 0 || defaultOpen >= panelCount {
		return fmt.Errorf("default open panel: %w", apperrors.IndexError{Index: defaultOpen, Count: panelCount})
	}

	if !a.begin() {
		return apperrors.ErrBusy
	}
	defer a.end()

	a.mu.Lock()
	initialized := a.store != nil
	a.mu.Unlock()
	if initialized {
		return apperrors.ErrAlreadyInitialized
	}

	return a.initialize(store, defaultOpen)
}

// initialize fills store from storage or defaults and makes it live.
// The caller holds the busy flag.
func (a *Accordion) initialize(store *Store, defaultOpen int) error {
	panelCount := store.Len()
	if err := a.restoreInto(store); err != nil {
		a.logger.Info("initializing fresh state",
			slog.Int("panels", panelCount),
			slog.Int("default_open", defaultOpen),
			slog.String("reason", err.Error()))

		if err := store.Restore(domain.NewAccordionState(panelCount, defaultOpen)); err != nil {
			return err
		}
		if err := a.persist(store.Snapshot()); err != nil {
			// The panels still work from memory; the next successful action rewrites the snapshot.
			a.logger.Error("failed to persist initial state", slog.Any("error", err))
		}
	}

	renderers := a.commit(store, defaultOpen)
	a.render(renderers, Sync(store.Snapshot()))
	return nil
}

// restoreInto loads the stored snapshot into store. Any error means store was
// not changed and the caller should fall back to the default state.
func (a *Accordion) restoreInto(store *Store) error {
	blob, ok, err := a.repo.Get(a.key)
	if err != nil {
		a.logger.Warn("failed to read stored state", slog.String("key", a.key), slog.Any("error", err))
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !ok {
		return fmt.Errorf("no snapshot under %q", a.key)
	}

	state, err := DecodeSnapshot(blob)
	if err == nil {
		err = store.Restore(state)
	}
	if err != nil {
		classified := apperrors.ClassifyError(err, a.strict)
		a.logger.Warn("discarding stored state",
			slog.String("key", a.key),
			slog.String("title", classified.Title),
			slog.Any("error", err))
		return err
	}

	a.logger.Debug("restored stored state",
		slog.String("key", a.key),
		slog.Any("open", store.Snapshot().OpenIndices()),
		slog.Bool("multi_select", store.MultiSelect()))
	return nil
}

// TogglePanel handles a click on panel index.
func (a *Accordion) TogglePanel(index int) error {
	return a.apply("toggle panel", func(s *Store) error {
		return TogglePanel(s, index)
	}, slog.Int("index", index))
}

// ToggleMultiSelect handles a change of the multi-select control.
func (a *Accordion) ToggleMultiSelect(checked bool) error {
	return a.apply("toggle multi-select", func(s *Store) error {
		ToggleMultiSelect(s, checked)
		return nil
	}, slog.Bool("checked", checked))
}

// Reset discards the stored snapshot and returns to the default state.
func (a *Accordion) Reset() error {
	if !a.begin() {
		return apperrors.ErrBusy
	}
	defer a.end()

	a.mu.Lock()
	live, defaultOpen := a.store, a.defaultOpen
	a.mu.Unlock()
	if live == nil {
		return apperrors.ErrNotInitialized
	}

	if err := a.repo.Delete(a.key); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	a.logger.Info("stored state cleared", slog.String("key", a.key))

	store, err := NewStore(live.Len())
	if err != nil {
		return err
	}
	return a.initialize(store, defaultOpen)
}

func (a *Accordion) apply(action string, mutate func(*Store) error, attrs ...any) error {
	if !a.begin() {
		a.logger.Debug("ignoring re-entrant action", slog.String("action", action))
		return apperrors.ErrBusy
	}
	defer a.end()

	a.mu.Lock()
	live, defaultOpen := a.store, a.defaultOpen
	a.mu.Unlock()
	if live == nil {
		return apperrors.ErrNotInitialized
	}

	next := live.Clone()
	if err := mutate(next); err != nil {
		return a.handle(action, err)
	}

	snapshot := next.Snapshot()
	if err := a.persist(snapshot); err != nil {
		a.logger.Error("action not applied, persist failed",
			slog.String("action", action),
			slog.Any("error", err))
		return err
	}

	renderers := a.commit(next, defaultOpen)

	a.logger.Debug(action, append(attrs,
		slog.Any("open", snapshot.OpenIndices()),
		slog.Bool("multi_select", next.MultiSelect()))...)

	a.render(renderers, Sync(snapshot))
	return nil
}

// handle decides whether a policy error reaches the caller.
func (a *Accordion) handle(action string, err error) error {
	classified := apperrors.ClassifyError(err, a.strict)
	if classified.Recovery == apperrors.RecoverIgnore {
		a.logger.Error("ignoring invalid action",
			slog.String("action", action),
			slog.Any("error", err))
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}

func (a *Accordion) persist(state domain.AccordionState) error {
	blob, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}
	if err := a.repo.Set(a.key, blob); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// commit swaps in the new live store and returns the renderers to notify.
func (a *Accordion) commit(store *Store, defaultOpen int) []Renderer {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store = store
	a.defaultOpen = defaultOpen
	renderers := make([]Renderer, len(a.renderers))
	copy(renderers, a.renderers)
	return renderers
}

func (a *Accordion) render(renderers []Renderer, d Directives) {
	for _, r := range renderers {
		r.Apply(d)
	}
}

// Attach registers a renderer. If the accordion is already initialized the
// renderer is drawn immediately.
func (a *Accordion) Attach(r Renderer) {
	a.mu.Lock()
	a.renderers = append(a.renderers, r)
	store := a.store
	var d Directives
	if store != nil {
		d = Sync(store.Snapshot())
	}
	a.mu.Unlock()

	if store != nil {
		r.Apply(d)
	}
}

// CurrentDirectives returns the directives for the live state. Before Init it
// returns empty directives.
func (a *Accordion) CurrentDirectives() Directives {
	return Sync(a.State())
}

// State returns a copy of the live state.
func (a *Accordion) State() domain.AccordionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		return domain.AccordionState{}
	}
	return a.store.Snapshot()
}

// PanelCount returns the configured panel count, or 0 before Init.
func (a *Accordion) PanelCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		return 0
	}
	return a.store.Len()
}

// Busy reports whether an action is in flight.
func (a *Accordion) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

func (a *Accordion) begin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.busy {
		return false
	}
	a.busy = true
	return true
}

func (a *Accordion) end() {
	a.mu.Lock()
	a.busy = false
	a.mu.Unlock()
}

// IsBusy reports whether err came from a rejected re-entrant call.
func IsBusy(err error) bool {
	return errors.Is(err, apperrors.ErrBusy)
}
