package accordion

// Toggle policy. Mode is not a separate state machine: it only changes how
// TogglePanel computes the next state.
//
// Single-select, panel i clicked:
//
//	closed -> every panel closed, then i opened   ("collapse others, open i")
//	open   -> every panel closed, i stays closed  ("collapse everything")
//
// Multi-select, panel i clicked: i flips, nothing else changes.
//
// Leaving multi-select only flips the flag. Panels opened in multi-select
// stay open until the next panel toggle collapses them; normalization is
// lazy on purpose because eager collapsing would change what the user sees.

// TogglePanel applies a click on panel index to store.
// The index is checked before anything is mutated.
func TogglePanel(store *Store, index int) error {
	wasOpen, err := store.Open(index)
	if err != nil {
		return err
	}

	if store.MultiSelect() {
		return store.SetOpen(index, !wasOpen)
	}

	store.SetAllOpen(false)
	if wasOpen {
		return nil
	}
	return store.SetOpen(index, true)
}

// ToggleMultiSelect sets the mode flag. Panel flags are not touched.
func ToggleMultiSelect(store *Store, value bool) {
	store.SetMultiSelect(value)
}
