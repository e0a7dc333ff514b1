package domain

// Panel is the content of one collapsible unit: a clickable title and the
// description revealed when the panel is open.
type Panel struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Catalog is the ordered list of panels shown by one accordion.
type Catalog struct {
	Name        string  `yaml:"name" json:"name"`
	DefaultOpen int     `yaml:"default_open" json:"default_open"`
	Panels      []Panel `yaml:"panels" json:"panels"`
}
