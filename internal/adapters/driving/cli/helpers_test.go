package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seamap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/services"
)

// setupTestServices installs an in-memory store seeded with three
// initiatives and returns a cleanup function that restores global state.
func setupTestServices() func() {
	store := memory.NewInitiativeStore()
	//nolint:errcheck // seed data is valid
	store.SaveAll(context.Background(), []*domain.Initiative{
		{ID: "R001", Name: "Zeal Bakery", Postcode: "OX1 1AA", Homepage: "http://zeal.coop", Lat: 51.75, Lng: -1.25, Geolocated: true},
		{ID: "R002", Name: "Zeal Housing", Postcode: "L1 1AA", Lat: 53.4, Lng: -2.98, Geolocated: true},
		{ID: "R003", Name: "Mill Workers"},
	})

	SetServices(&Services{
		Store:    store,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})

	return func() {
		SetServices(nil)
		SetBootstrap(nil)
		configDir, dataDir = "", ""
		searchLimit, searchJSON = 0, false
		importWatch = false
		selectJSON, selectRender = false, false
		selectCols, selectRows = 80, 24
		rootCmd.SetIn(nil)
		resetContexts(rootCmd)
	}
}

// resetContexts clears the context cobra stores on each command during a
// run. A subcommand keeps the first context it was given otherwise, so a
// later ExecuteContext would not reach it.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // nil lets the next run inherit
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}

// execute runs the root command with args and returns everything written.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	defer resetContexts(rootCmd)

	err := rootCmd.Execute()
	return buf.String(), err
}
