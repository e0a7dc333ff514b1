package accordion

import (
	"math/rand"
	"testing"

	apperrors "github.com/shhac/accordion/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTogglePanel_SingleSelect(t *testing.T) {
	tests := []struct {
		name   string
		open   []int
		toggle int
		want   []int
	}{
		{"open closed panel closes others", []int{0}, 1, []int{1}},
		{"re-click open panel closes all", []int{2}, 2, []int{}},
		{"open from all closed", nil, 3, []int{3}},
		{"normalizes leftover multi-open", []int{1, 2}, 3, []int{3}},
		{"clicking one of several open closes everything", []int{1, 2}, 2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, 5)
			for _, i := range tt.open {
				require.NoError(t, s.SetOpen(i, true))
			}

			require.NoError(t, TogglePanel(s, tt.toggle))
			assert.Equal(t, tt.want, s.Snapshot().OpenIndices())
		})
	}
}

func TestTogglePanel_CollapseOnReclick(t *testing.T) {
	s := newTestStore(t, 4)
	require.NoError(t, s.SetOpen(2, true))

	require.NoError(t, TogglePanel(s, 2))
	assert.Empty(t, s.Snapshot().OpenIndices(), "re-click collapses everything")

	require.NoError(t, TogglePanel(s, 2))
	assert.Equal(t, []int{2}, s.Snapshot().OpenIndices(), "third click reopens only that panel")
}

func TestTogglePanel_MultiSelectIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := newTestStore(t, 6)
	s.SetMultiSelect(true)

	for step := 0; step < 200; step++ {
		i := rng.Intn(6)
		before := s.Snapshot()

		require.NoError(t, TogglePanel(s, i))

		after := s.Snapshot()
		for j := range after.Panels {
			if j == i {
				assert.NotEqual(t, before.Panels[j], after.Panels[j], "step %d: panel %d should flip", step, i)
				continue
			}
			assert.Equal(t, before.Panels[j], after.Panels[j], "step %d: panel %d must not change", step, j)
		}
	}
}

func TestTogglePanel_SingleSelectInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 5, 9} {
		s := newTestStore(t, n)
		require.NoError(t, s.SetOpen(0, true))

		for step := 0; step < 300; step++ {
			require.NoError(t, TogglePanel(s, rng.Intn(n)))
			assert.LessOrEqual(t, len(s.Snapshot().OpenIndices()), 1, "n=%d step=%d", n, step)
		}
	}
}

func TestTogglePanel_OutOfRangeDoesNotMutate(t *testing.T) {
	s := newTestStore(t, 3)
	require.NoError(t, s.SetOpen(1, true))

	err := TogglePanel(s, 3)
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
	assert.Equal(t, []int{1}, s.Snapshot().OpenIndices(), "range check happens before collapsing")
}

func TestToggleMultiSelect_LeavesPanelsAlone(t *testing.T) {
	s := newTestStore(t, 4)
	s.SetMultiSelect(true)
	require.NoError(t, s.SetOpen(1, true))
	require.NoError(t, s.SetOpen(3, true))

	ToggleMultiSelect(s, false)

	assert.False(t, s.MultiSelect())
	assert.Equal(t, []int{1, 3}, s.Snapshot().OpenIndices(), "normalization is lazy")
}
