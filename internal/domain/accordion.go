package domain

// PanelState holds the open/closed flag of one panel.
type PanelState struct {
	IsOpen bool `json:"isOpen"`
}

// AccordionState is the whole persisted state of one accordion.
// Panels is ordered by panel index; the index is the panel's identity.
type AccordionState struct {
	Panels      []PanelState `json:"panels"`
	MultiSelect bool         `json:"multiSelect"`
}

// NewAccordionState returns a single-select state with only defaultOpen open.
// A defaultOpen outside the panel range leaves every panel closed.
func NewAccordionState(panelCount, defaultOpen int) AccordionState {
	panels := make([]PanelState, panelCount)
	if defaultOpen >= 0 && defaultOpen < panelCount {
		panels[defaultOpen].IsOpen = true
	}
	return AccordionState{Panels: panels}
}

// Equal reports whether both states have the same per-panel flags and mode.
func (s AccordionState) Equal(other AccordionState) bool {
	if s.MultiSelect != other.MultiSelect || len(s.Panels) != len(other.Panels) {
		return false
	}
	for i := range s.Panels {
		if s.Panels[i] != other.Panels[i] {
			return false
		}
	}
	return true
}

// OpenIndices returns the indices of open panels in ascending order.
func (s AccordionState) OpenIndices() []int {
	open := []int{}
	for i, p := range s.Panels {
		if p.IsOpen {
			open = append(open, i)
		}
	}
	return open
}
