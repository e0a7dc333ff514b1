package accordion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shhac/accordion/internal/domain"
	apperrors "github.com/shhac/accordion/internal/errors"
)

// DefaultKey is the storage key a snapshot is written under unless overridden.
const DefaultKey = "componentState"

// wireState mirrors domain.AccordionState with pointer fields so that a
// missing or null field can be told apart from a zero value.
type wireState struct {
	Panels      *[]*domain.PanelState `json:"panels"`
	MultiSelect *bool                 `json:"multiSelect"`
}

// EncodeSnapshot serializes the whole state. Every mutation writes the full
// snapshot; there is no incremental update.
func EncodeSnapshot(state domain.AccordionState) ([]byte, error) {
	if state.Panels == nil {
		state.Panels = []domain.PanelState{}
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored blob. Anything that is not exactly one JSON
// object with a "panels" array of objects and a boolean "multiSelect" is
// reported as ErrMalformedSnapshot.
func DecodeSnapshot(blob []byte) (domain.AccordionState, error) {
	dec := json.NewDecoder(bytes.NewReader(blob))

	var wire wireState
	if err := dec.Decode(&wire); err != nil {
		return domain.AccordionState{}, malformed("decode: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.AccordionState{}, malformed("trailing data after snapshot")
	}
	if wire.Panels == nil {
		return domain.AccordionState{}, malformed("missing panels")
	}
	if wire.MultiSelect == nil {
		return domain.AccordionState{}, malformed("missing multiSelect")
	}

	panels := make([]domain.PanelState, len(*wire.Panels))
	for i, p := range *wire.Panels {
		if p == nil {
			return domain.AccordionState{}, malformed("panel %d is null", i)
		}
		panels[i] = *p
	}

	return domain.AccordionState{Panels: panels, MultiSelect: *wire.MultiSelect}, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrMalformedSnapshot, fmt.Sprintf(format, args...))
}
