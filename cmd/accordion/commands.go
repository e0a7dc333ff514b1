package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shhac/accordion/internal/accordion"
	accordionApp "github.com/shhac/accordion/internal/app"
	apperrors "github.com/shhac/accordion/internal/errors"
	"github.com/shhac/accordion/internal/panels"
	"github.com/shhac/accordion/internal/tui"
	"github.com/shhac/accordion/internal/ui"
)

type rootOptions struct {
	v          *viper.Viper
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: accordionApp.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "accordion",
		Short: "Collapsible panels that remember how you left them",
		Long: `accordion shows a list of panels whose descriptions open and close on click.
In single-select mode opening a panel closes the others; in multi-select mode
panels open independently. The layout is saved after every change.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runGUI()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default ~/.config/accordion/config.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.Bool("strict", false, "fail on out-of-range panel indices instead of ignoring them")
	flags.String("backend", "", "storage backend: memory, json or sqlite")
	flags.String("storage", "", "storage directory (default ~/.accordion)")
	flags.String("key", "", "storage key the layout is saved under")
	flags.String("panels", "", "YAML panel catalog")
	flags.String("theme", "", "GUI theme: system, light or dark")

	for key, flag := range map[string]string{
		"debug":        "debug",
		"strict":       "strict",
		"backend":      "backend",
		"storage_path": "storage",
		"key":          "key",
		"panels_file":  "panels",
		"theme":        "theme",
	} {
		_ = opts.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		opts.guiCmd(),
		opts.tuiCmd(),
		opts.showCmd(),
		opts.toggleCmd(),
		opts.modeCmd(),
		opts.resetCmd(),
		opts.panelsCmd(),
	)
	return rootCmd
}

func (o *rootOptions) config() (*accordionApp.Config, error) {
	return accordionApp.LoadConfig(o.v, o.configFile)
}

// open builds the app for headless commands; logs are mirrored to stderr.
func (o *rootOptions) open(stderr io.Writer) (*accordionApp.App, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return accordionApp.New(cfg, accordionApp.WithConsole(stderr))
}

func (o *rootOptions) guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runGUI()
		},
	}
}

// runGUI is the desktop entry point with panic recovery.
func (o *rootOptions) runGUI() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting accordion")

	cfg, err := o.config()
	if err != nil {
		return err
	}

	fyneApp := fyneapp.NewWithID("com.shhac.accordion")
	ui.LoadThemePreference(fyneApp, cfg.Theme)

	a, err := accordionApp.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer a.Close()

	mainWindow := ui.NewMainWindow(fyneApp, a)

	// Run the application (blocking)
	a.Run(mainWindow.Window())

	a.Logger().Info("application shutdown complete")
	return nil
}

func (o *rootOptions) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the panels in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			// The terminal belongs to bubbletea; logs only go to the file.
			a, err := accordionApp.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return tui.Start(a.Accordion(), a.Catalog(), a.Logger(), cfg.Strict)
		},
	}
}

func (o *rootOptions) showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			return printDirectives(cmd.OutOrStdout(), a, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print directives as JSON")
	return cmd
}

func (o *rootOptions) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <index>",
		Short: "Click the title of panel <index> (0-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q is not a number", args[0])
			}

			a, err := o.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			// A command line typo is never worth ignoring silently.
			if count := a.Accordion().PanelCount(); index < 0 || index >= count {
				return apperrors.IndexError{Index: index, Count: count}
			}
			if err := a.Accordion().TogglePanel(index); err != nil {
				return err
			}
			return printDirectives(cmd.OutOrStdout(), a, false)
		},
	}
}

func (o *rootOptions) modeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mode <single|multi>",
		Short:     "Switch between single- and multi-select",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"single", "multi"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var multi bool
			switch args[0] {
			case "single", "off":
				multi = false
			case "multi", "on":
				multi = true
			default:
				return fmt.Errorf("mode %q: want single or multi", args[0])
			}

			a, err := o.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Accordion().ToggleMultiSelect(multi); err != nil {
				return err
			}
			return printDirectives(cmd.OutOrStdout(), a, false)
		},
	}
}

func (o *rootOptions) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Accordion().Reset(); err != nil {
				return err
			}
			return printDirectives(cmd.OutOrStdout(), a, false)
		},
	}
}

func (o *rootOptions) panelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panels",
		Short: "Print the panel catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config()
			if err != nil {
				return err
			}
			catalog, err := panels.Load(cfg.PanelsFile)
			if err != nil {
				return err
			}
			out, err := panels.Marshal(catalog)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func printDirectives(w io.Writer, a *accordionApp.App, asJSON bool) error {
	d := a.Accordion().CurrentDirectives()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	catalog := a.Catalog()
	for _, p := range d.Panels {
		mark := "[ ]"
		if p.Visibility() == accordion.Open {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s %d %s\n", mark, p.Index, catalog.Panels[p.Index].Title)
	}
	mode := "single"
	if d.MultiSelect {
		mode = "multi"
	}
	fmt.Fprintf(w, "mode: %s\n", mode)
	return nil
}
