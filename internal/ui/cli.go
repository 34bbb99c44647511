package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/config"
	"github.com/crewsync/crewsync/internal/state"
	"github.com/crewsync/crewsync/internal/store"
	"github.com/crewsync/crewsync/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	svc    *state.Service
	kv     *store.SQLite
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given service and config.
// svc may be nil; commands that need it open the store lazily.
func NewApp(svc *state.Service, cfg *config.Config) *App {
	a := &App{svc: svc, config: cfg}

	a.root = &cobra.Command{
		Use:   "crewsync",
		Short: "A terminal dashboard for cross-timezone team coordination",
		Long: `Crewsync keeps track of your schedule and your teammates' schedules
across timezones, and finds the hours when enough of you are awake
to actually collaborate.

Profiles travel between machines as share strings: run "crewsync share"
to export yours and "crewsync import" to add a teammate's.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.svc, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.statusCmd())
	a.root.AddCommand(a.windowsCmd())
	a.root.AddCommand(a.shareCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.memberCmd())
	a.root.AddCommand(a.presetsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("crewsync %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureService opens the snapshot store and state service on first use.
func (a *App) ensureService() error {
	if a.svc != nil {
		return nil
	}

	kv, err := store.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}
	a.kv = kv
	a.svc = state.NewService(kv)

	if a.config.UI.NoColor {
		DisableColor()
	}
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the snapshot store if it was opened.
func (a *App) Close() error {
	if a.kv == nil {
		return nil
	}
	return a.kv.Close()
}
