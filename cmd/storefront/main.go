package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"storefront/internal/debug"
	"storefront/internal/version"
	"storefront/pkg/app"
	"storefront/pkg/config"
	"storefront/pkg/gui/theme"
	"storefront/pkg/prefs"
	"storefront/pkg/storage"
)

const (
	staticWidth  = 100
	staticHeight = 30
)

type options struct {
	backend     string
	debug       bool
	showVersion bool
}

// session bundles an opened store with the function that releases it.
type session struct {
	cfg     *config.Config
	store   *prefs.Store
	logPath string
	close   func() error
}

func openSession(opts *options) (*session, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := config.Load(opts.backend)
	if err != nil {
		return nil, err
	}
	if cfg.Backend != config.BackendMemory {
		if err := config.EnsureDataDir(); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	var logger *debug.DebugLogger
	var logPath string
	if opts.debug {
		logger = debug.Init()
		logPath = logger.Path()
	}

	st, closeStorage, err := storage.Open(cfg)
	if err != nil {
		debug.Log("storage: %v, falling back to memory", err)
		fmt.Fprintf(os.Stderr, "Warning: %v; preferences will not be saved\n", err)
		st, closeStorage = storage.NewMemoryStorage(), func() error { return nil }
	}

	store := prefs.Init(st)
	return &session{
		cfg:     cfg,
		store:   store,
		logPath: logPath,
		close: func() error {
			err := prefs.Shutdown()
			if cerr := closeStorage(); cerr != nil && err == nil {
				err = cerr
			}
			if logger != nil {
				debug.Set(nil)
				logger.Close()
			}
			return err
		},
	}, nil
}

func runStorefront(opts *options) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	model := app.NewModel(s.store, app.Options{
		Cart:    app.SampleCart(app.SampleProducts()),
		Detect:  theme.DetectDarkBackground,
		LogPath: s.logPath,
	})

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(app.Render(model, staticWidth, staticHeight))
		return nil
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Listeners may run inside Update, so the send must not block the loop.
	unsubscribe := s.store.Subscribe(func(next, prev prefs.State) {
		if next.Theme != prev.Theme {
			go p.Send(app.PrefsChangedMsg{State: next})
		}
	})
	defer unsubscribe()

	if s.cfg.Backend == config.BackendFile {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		path := filepath.Join(s.cfg.DataDir, storage.StateFileName)
		if err := storage.Watch(ctx, path, func() { s.store.Rehydrate() }); err != nil {
			debug.Log("watch: %v", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}
	return nil
}

func newThemeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.close()

			fmt.Fprintln(cmd.OutOrStdout(), s.store.Theme())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Save a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(prefs.ThemeLight), string(prefs.ThemeDark), string(prefs.ThemeSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := prefs.ParseTheme(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(opts)
			if err != nil {
				return err
			}
			if err := s.store.SetTheme(t); err != nil {
				s.close()
				return err
			}
			if err := s.close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	})

	return cmd
}

func newPrefsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs",
		Short: "Print the current preference state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.close()

			data, err := json.MarshalIndent(s.store.State(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	var rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "A terminal storefront",
		Long: `Storefront renders a product catalog with a header, a collapsible
category sidebar and a cart sheet.

The theme is saved between runs; the sidebar and loading state are not.

Keys:
  t    cycle theme (light, dark, system)
  b    toggle the sidebar
  c    toggle the cart sheet
  r    refresh
  ?    show all keybindings
  ^D   show the preference action log
  q    quit

Examples:
  storefront                  # Launch the storefront
  storefront theme set dark   # Save the dark theme
  storefront --storage sqlite # Keep preferences in SQLite`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.showVersion {
				fmt.Println(version.Short())
				return nil
			}
			return runStorefront(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.backend, "storage", config.BackendFile, "Preference storage: file, sqlite or memory")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write a debug log to the data directory")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newThemeCmd(opts), newPrefsCmd(opts), newVersionCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
