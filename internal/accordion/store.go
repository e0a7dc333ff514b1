package accordion

import (
	"fmt"

	"github.com/shhac/accordion/internal/domain"
	apperrors "github.com/shhac/accordion/internal/errors"
)

// Store is the authoritative in-memory model of one accordion: an open flag
// per panel plus the multi-select flag. The panel count is fixed at
// construction. Store never persists anything itself.
type Store struct {
	open        []bool
	multiSelect bool
}

// NewStore creates a store for panelCount panels, all closed, single-select.
func NewStore(panelCount int) (*Store, error) {
	if panelCount < 1 {
		return nil, fmt.Errorf("panel count must be at least 1, got %d", panelCount)
	}
	return &Store{open: make([]bool, panelCount)}, nil
}

// Len returns the configured panel count.
func (s *Store) Len() int {
	return len(s.open)
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.open) {
		return apperrors.IndexError{Index: index, Count: len(s.open)}
	}
	return nil
}

// Open reports whether panel index is open.
func (s *Store) Open(index int) (bool, error) {
	if err := s.checkIndex(index); err != nil {
		return false, err
	}
	return s.open[index], nil
}

// SetOpen sets one panel's flag.
func (s *Store) SetOpen(index int, value bool) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.open[index] = value
	return nil
}

// SetAllOpen sets every panel's flag to value.
func (s *Store) SetAllOpen(value bool) {
	for i := range s.open {
		s.open[i] = value
	}
}

// MultiSelect reports the current mode.
func (s *Store) MultiSelect() bool {
	return s.multiSelect
}

// SetMultiSelect sets the mode flag.
func (s *Store) SetMultiSelect(value bool) {
	s.multiSelect = value
}

// Snapshot returns a copy of the current state that shares nothing with the store.
func (s *Store) Snapshot() domain.AccordionState {
	panels := make([]domain.PanelState, len(s.open))
	for i, open := range s.open {
		panels[i].IsOpen = open
	}
	return domain.AccordionState{Panels: panels, MultiSelect: s.multiSelect}
}

// Restore replaces the store contents with state. A state with a different
// panel count is rejected with a SchemaError and the store is left untouched.
func (s *Store) Restore(state domain.AccordionState) error {
	if len(state.Panels) != len(s.open) {
		return apperrors.SchemaError{Want: len(s.open), Got: len(state.Panels)}
	}
	for i, p := range state.Panels {
		s.open[i] = p.IsOpen
	}
	s.multiSelect = state.MultiSelect
	return nil
}

// Clone returns an independent store with the same contents.
func (s *Store) Clone() *Store {
	open := make([]bool, len(s.open))
	copy(open, s.open)
	return &Store{open: open, multiSelect: s.multiSelect}
}
