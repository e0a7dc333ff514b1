package panels

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/shhac/accordion/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	catalog := Default()
	assert.Len(t, catalog.Panels, 5)
	assert.Equal(t, 0, catalog.DefaultOpen)
	assert.NoError(t, Validate(catalog))
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	catalog, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), catalog)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panels.yaml")
	content := `
name: shipping
default_open: 1
panels:
  - title: Delivery times
    description: Two to five working days.
  - title: Returns
    description: Free within 30 days.
  - title: Tracking
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	catalog, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shipping", catalog.Name)
	assert.Equal(t, 1, catalog.DefaultOpen)
	require.Len(t, catalog.Panels, 3)
	assert.Equal(t, "Returns", catalog.Panels[1].Title)
	assert.Empty(t, catalog.Panels[2].Description)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		is   error
	}{
		{"empty", ``, nil},
		{"no panels", "name: x\npanels: []\n", nil},
		{"unknown key", "panels:\n  - title: a\n    colour: red\n", nil},
		{"blank title", "panels:\n  - title: '  '\n", nil},
		{"default out of range", "default_open: 2\npanels:\n  - title: a\n  - title: b\n", apperrors.ErrIndexOutOfRange},
		{"not yaml", "panels: [", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestParse_ValidationErrorField(t *testing.T) {
	_, err := Parse([]byte("panels:\n  - title: ok\n  - title: ''\n"))

	var vErr apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "panels[1].title", vErr.Field)
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(Default())
	require.NoError(t, err)

	back, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, Default(), back)
}
