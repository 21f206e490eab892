// Package cli provides the command-line interface for seamap.
//
// Commands resolve their collaborators lazily through requireServices, so
// the root flags (--config-dir, --data-dir) are parsed before any store is
// opened.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seamap/internal/adapters/driven/mapview"
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/core/ports/driving"
	"github.com/custodia-labs/seamap/internal/core/services"
	"github.com/custodia-labs/seamap/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
	dataDir   string
)

// ErrNotConfigured is returned when a command runs before services are set.
var ErrNotConfigured = errors.New("services not configured")

// Options carries the directories resolved from the root flags.
type Options struct {
	ConfigDir string
	DataDir   string
}

// Services holds the collaborators commands run against.
type Services struct {
	Store    driven.InitiativeStore
	Settings driving.SettingsService
	// Close releases the store. May be nil.
	Close func() error
}

// Bootstrap builds Services once the root flags are known.
type Bootstrap func(Options) (*Services, error)

var (
	bootstrap Bootstrap
	svc       *Services
)

var rootCmd = &cobra.Command{
	Use:   "seamap",
	Short: "Browse solidarity-economy initiatives on a terminal map",
	Long: `seamap shows initiatives from a co-operative dataset as markers on a
terminal map, with a sidebar that keeps a back/forward history of searches
and selections.

Import a CSV dataset first, then search it, open the TUI, or drive the
same map from an AI assistant with the MCP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.seamap)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.seamap/data)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that opens stores and settings.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices sets the collaborators directly, bypassing Bootstrap.
func SetServices(s *Services) {
	svc = s
}

// Execute runs the root command and releases any opened store.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

func requireServices() (*Services, error) {
	if svc != nil {
		return svc, nil
	}
	if bootstrap == nil {
		return nil, ErrNotConfigured
	}

	s, err := bootstrap(Options{ConfigDir: configDir, DataDir: dataDir})
	if err != nil {
		return nil, err
	}
	if s == nil || s.Store == nil || s.Settings == nil {
		return nil, ErrNotConfigured
	}
	svc = s
	return svc, nil
}

func closeServices() {
	if svc == nil || svc.Close == nil {
		return
	}
	if err := svc.Close(); err != nil {
		logger.Warn("closing store: %v", err)
	}
}

// session bundles a running map for one command.
type session struct {
	*services.Session
	canvas   *mapview.Canvas
	settings *domain.AppSettings
}

// newSession wires a fresh bus and presenters to a headless canvas.
// source may be nil for commands that do not import.
func newSession(s *Services, source driven.InitiativeSource) (*session, error) {
	settings, err := s.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	canvas := mapview.NewCanvas()
	return &session{
		Session:  services.NewSession(s.Store, source, canvas, settings.Map),
		canvas:   canvas,
		settings: settings,
	}, nil
}
