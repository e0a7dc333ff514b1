package accordion

import (
	"testing"

	"github.com/shhac/accordion/internal/domain"
	apperrors "github.com/shhac/accordion/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSnapshot_Layout(t *testing.T) {
	state := domain.AccordionState{
		Panels:      []domain.PanelState{{IsOpen: true}, {IsOpen: false}},
		MultiSelect: true,
	}

	blob, err := EncodeSnapshot(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{"panels":[{"isOpen":true},{"isOpen":false}],"multiSelect":true}`, string(blob))
}

func TestEncodeSnapshot_NilPanels(t *testing.T) {
	blob, err := EncodeSnapshot(domain.AccordionState{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"panels":[],"multiSelect":false}`, string(blob))
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t, 5)
	s.SetMultiSelect(true)
	require.NoError(t, s.SetOpen(1, true))
	require.NoError(t, s.SetOpen(4, true))

	blob, err := EncodeSnapshot(s.Snapshot())
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(blob)
	require.NoError(t, err)

	restored := newTestStore(t, 5)
	require.NoError(t, restored.Restore(decoded))
	assert.True(t, s.Snapshot().Equal(restored.Snapshot()))
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	blobs := map[string]string{
		"empty":              ``,
		"not json":           `componentState`,
		"null":               `null`,
		"array":              `[true, false]`,
		"missing panels":     `{"multiSelect":false}`,
		"null panels":        `{"panels":null,"multiSelect":false}`,
		"missing mode":       `{"panels":[{"isOpen":true}]}`,
		"panels not array":   `{"panels":{"isOpen":true},"multiSelect":false}`,
		"panel not object":   `{"panels":[true],"multiSelect":false}`,
		"null panel":         `{"panels":[null],"multiSelect":false}`,
		"isOpen not bool":    `{"panels":[{"isOpen":"yes"}],"multiSelect":false}`,
		"trailing data":      `{"panels":[],"multiSelect":false} {}`,
		"old array layout":   `{"descriptionStates":[true,false],"multiSelect":false}`,
		"multiSelect string": `{"panels":[],"multiSelect":"true"}`,
	}

	for name, blob := range blobs {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSnapshot([]byte(blob))
			assert.ErrorIs(t, err, apperrors.ErrMalformedSnapshot)
		})
	}
}

func TestDecodeSnapshot_IgnoresUnknownFields(t *testing.T) {
	state, err := DecodeSnapshot([]byte(`{"panels":[{"isOpen":true,"extra":1}],"multiSelect":false,"version":2}`))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, state.OpenIndices())
}
