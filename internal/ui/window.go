package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/accordion/internal/accordion"
	"github.com/shhac/accordion/internal/domain"
	apperrors "github.com/shhac/accordion/internal/errors"
	"github.com/shhac/accordion/internal/model"
	uierrors "github.com/shhac/accordion/internal/ui/errors"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	Catalog() domain.Catalog
	Logger() *slog.Logger
	Accordion() *accordion.Accordion
	Strict() bool
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	fyneApp fyne.App
	window  fyne.Window
	state   *model.ApplicationState
	logger  *slog.Logger
	app     AppController

	view      *AccordionView
	statusBar *uierrors.StatusBar
	resetBtn  *widget.Button
}

// NewMainWindow creates a new main window with the application layout:
// mode toggle on top, the panels in the middle, status bar at the bottom.
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	catalog := app.Catalog()
	state := model.NewApplicationState(catalog)
	title := catalog.Name
	if title == "" {
		title = "Accordion"
	}

	mw := &MainWindow{
		fyneApp: fyneApp,
		window:  fyneApp.NewWindow(title),
		state:   state,
		logger:  app.Logger(),
		app:     app,
	}

	mw.view = NewAccordionView(state, mw.logger)
	mw.statusBar = uierrors.NewStatusBar(state.Status)
	mw.resetBtn = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), mw.handleReset)

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupKeyboardShortcuts()
	mw.setupMainMenu()

	mw.window.Resize(fyne.NewSize(520, 640))

	return mw
}

// wireCallbacks connects the view to the controller and routes errors.
func (w *MainWindow) wireCallbacks() {
	w.view.SetOnError(w.handleError)
	w.view.Bind(w.app.Accordion())
}

func (w *MainWindow) handleError(err error) {
	stateErr := apperrors.ClassifyError(err, w.app.Strict())
	w.state.Status.Set(uierrors.StatusLevel(stateErr), fmt.Sprintf("%s: %v", stateErr.Title, err))
	uierrors.ShowStateError(err, w.app.Strict(), w.window)
}

func (w *MainWindow) handleReset() {
	dialog.ShowConfirm("Reset layout", "Forget the saved layout and open the default panel?", func(ok bool) {
		if ok {
			w.Reset()
		}
	}, w.window)
}

// Reset clears the stored layout without asking.
func (w *MainWindow) Reset() {
	if err := w.app.Accordion().Reset(); err != nil {
		w.view.fail("reset", err)
		return
	}
	w.logger.Info("layout reset")
	w.state.Status.Set("info", "Layout reset")
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌──────────────────────────────┐
//	│  Mode toggle                 │
//	├──────────────────────────────┤
//	│  Panel 0                     │
//	│  Panel 1 (description)       │
//	│  ...                         │
//	├──────────────────────────────┤
//	│  Status Bar          [Reset] │
//	└──────────────────────────────┘
func (w *MainWindow) SetContent() {
	bottom := container.NewBorder(nil, nil, nil, w.resetBtn, w.statusBar)
	w.window.SetContent(container.NewBorder(nil, bottom, nil, nil, w.view))
}

func (w *MainWindow) setupMainMenu() {
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Multi-select", w.view.ToggleMode),
		fyne.NewMenuItem("Reset Layout", w.handleReset),
	)
	themeMenu := ThemeMenu(w.fyneApp)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
		fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(viewMenu, themeMenu, helpMenu))
}

// State returns the bindings the window's widgets follow.
func (w *MainWindow) State() *model.ApplicationState {
	return w.state
}

// View returns the accordion view.
func (w *MainWindow) View() *AccordionView {
	return w.view
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
