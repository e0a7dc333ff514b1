// Package panels discovers the panels an accordion shows: a YAML catalog file
// or the built-in default set.
package panels

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shhac/accordion/internal/domain"
	apperrors "github.com/shhac/accordion/internal/errors"
)

// Default returns the built-in catalog used when no file is configured.
func Default() domain.Catalog {
	return domain.Catalog{
		Name:        "faq",
		DefaultOpen: 0,
		Panels: []domain.Panel{
			{
				Title:       "What is an accordion?",
				Description: "A vertically stacked list of panels. Clicking a title reveals or hides its description.",
			},
			{
				Title:       "How many panels can be open?",
				Description: "One at a time by default. Tick \"multi-select\" to open several at once.",
			},
			{
				Title:       "What happens when I click an open panel?",
				Description: "It closes. In single-select mode every panel ends up closed.",
			},
			{
				Title:       "Is my layout remembered?",
				Description: "Yes. The open panels and the mode are saved after every click and restored on the next start.",
			},
			{
				Title:       "What if the panels change?",
				Description: "A saved layout for a different number of panels is discarded and the default panel opens again.",
			},
		},
	}
}

// Load reads a catalog from a YAML file. An empty path yields Default().
func Load(path string) (domain.Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (domain.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var catalog domain.Catalog
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Catalog{}, fmt.Errorf("empty catalog")
		}
		return domain.Catalog{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if err := Validate(catalog); err != nil {
		return domain.Catalog{}, err
	}
	return catalog, nil
}

// Validate checks that a catalog can back an accordion.
func Validate(catalog domain.Catalog) error {
	if len(catalog.Panels) == 0 {
		return apperrors.ValidationError{Field: "panels", Message: "at least one panel is required"}
	}
	for i, p := range catalog.Panels {
		if strings.TrimSpace(p.Title) == "" {
			return apperrors.ValidationError{
				Field:   fmt.Sprintf("panels[%d].title", i),
				Message: "title must not be empty",
			}
		}
	}
	if catalog.DefaultOpen < 0 || catalog.DefaultOpen >= len(catalog.Panels) {
		return fmt.Errorf("default_open: %w", apperrors.IndexError{Index: catalog.DefaultOpen, Count: len(catalog.Panels)})
	}
	return nil
}

// Marshal renders a catalog as YAML, used by the CLI to print the default catalog.
func Marshal(catalog domain.Catalog) ([]byte, error) {
	out, err := yaml.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}
