package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CollapsiblePanel is one accordion panel: a clickable header with an
// expand/collapse icon and a description that is only shown when open.
//
// The panel never flips itself. A tap is reported through OnTapped and the
// visuals only follow the bound open flag.
type CollapsiblePanel struct {
	widget.BaseWidget

	Index    int
	OnTapped func(index int)

	header      *widget.Button
	description *widget.Label
	open        bool
}

// NewCollapsiblePanel creates a panel bound to title, description and open.
func NewCollapsiblePanel(index int, title, description binding.String, open binding.Bool) *CollapsiblePanel {
	p := &CollapsiblePanel{Index: index}

	p.header = widget.NewButtonWithIcon("", theme.MenuExpandIcon(), func() {
		if p.OnTapped != nil {
			p.OnTapped(p.Index)
		}
	})
	p.header.Alignment = widget.ButtonAlignLeading
	p.header.IconPlacement = widget.ButtonIconLeadingText
	bindButtonText(p.header, title)

	p.description = widget.NewLabelWithData(description)
	p.description.Wrapping = fyne.TextWrapWord
	p.description.Hide()

	p.ExtendBaseWidget(p)

	open.AddListener(binding.NewDataListener(func() {
		if v, err := open.Get(); err == nil {
			p.SetOpen(v)
		}
	}))
	return p
}

func bindButtonText(b *widget.Button, text binding.String) {
	if v, err := text.Get(); err == nil {
		b.SetText(v)
	}
	text.AddListener(binding.NewDataListener(func() {
		if v, err := text.Get(); err == nil && v != b.Text {
			b.SetText(v)
		}
	}))
}

// SetOpen shows or hides the description and swaps the header icon.
func (p *CollapsiblePanel) SetOpen(open bool) {
	if p.open == open {
		return
	}
	p.open = open

	if open {
		p.header.SetIcon(theme.MenuDropDownIcon())
		p.description.Show()
	} else {
		p.header.SetIcon(theme.MenuExpandIcon())
		p.description.Hide()
	}
	p.Refresh()
}

// IsOpen reports the last state passed to SetOpen.
func (p *CollapsiblePanel) IsOpen() bool {
	return p.open
}

// Header returns the tappable header, mainly for tests.
func (p *CollapsiblePanel) Header() *widget.Button {
	return p.header
}

// DescriptionVisible reports whether the description is currently shown.
func (p *CollapsiblePanel) DescriptionVisible() bool {
	return p.description.Visible()
}

// CreateRenderer implements fyne.Widget.
func (p *CollapsiblePanel) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewPadded(p.description)
	return widget.NewSimpleRenderer(container.NewVBox(p.header, body))
}
