package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/accordion/internal/errors"
)

// ShowStateError displays a classified error with its title and a
// hint about what happened to the panels. Ignorable errors show nothing.
func ShowStateError(err error, strict bool, window fyne.Window) {
	if err == nil {
		return
	}

	stateErr := apperrors.ClassifyError(err, strict)
	if stateErr.Recovery == apperrors.RecoverIgnore {
		return
	}

	msgLabel := widget.NewLabel(err.Error())
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if hint := RecoveryHint(stateErr); hint != "" {
		content.Add(widget.NewSeparator())
		hintLabel := widget.NewLabel(hint)
		hintLabel.Wrapping = fyne.TextWrapWord
		content.Add(hintLabel)
	}

	d := dialog.NewCustom(stateErr.Title, "Close", content, window)
	d.Resize(fyne.NewSize(420, 220))
	d.Show()
}

// RecoveryHint describes the effect of an error on the visible panels.
func RecoveryHint(stateErr *apperrors.StateError) string {
	switch stateErr.Recovery {
	case apperrors.RecoverDefault:
		return "The saved layout was discarded and the default panel was opened."
	case apperrors.RecoverNone:
		if stateErr.Severity == apperrors.SeverityFatal {
			return "This is a bug in the caller. Nothing was changed."
		}
		return "The change was not saved, so the panels were left as they were."
	}
	return ""
}

// StatusLevel maps a classified error to a status bar level.
func StatusLevel(stateErr *apperrors.StateError) string {
	switch stateErr.Severity {
	case apperrors.SeverityInfo:
		return "info"
	case apperrors.SeverityWarning:
		return "warning"
	}
	return "error"
}
