package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change map layout, dataset and search settings.

Settings are stored in config.toml in the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting by key.

Keys:
  map.sidebar_width     - columns covered by the sidebar
  map.viewport_height   - map height, half is kept clear when zooming
  map.tooltip_z_offset  - stacking bump for a marker with an open tooltip
  dataset.backend       - sqlite or memory
  dataset.path          - CSV file read by import and the memory backend
  search.limit          - maximum search results, 0 for no limit`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Choose the dataset backend",
	Long: `Choose where initiatives are kept.

Available backends:
  sqlite - Imported once into the local database
  memory - Read from the CSV at dataset.path on every start`,
	RunE: runSettingsBackend,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Map]")
	cmd.Printf("  Sidebar width: %d\n", settings.Map.SidebarWidth)
	cmd.Printf("  Viewport height: %d\n", settings.Map.ViewportHeight)
	cmd.Printf("  Tooltip z-offset: %d\n", settings.Map.TooltipZOffset)
	cmd.Println()

	cmd.Println("[Dataset]")
	cmd.Printf("  Backend: %s\n", settings.Dataset.Backend.Description())
	if settings.Dataset.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Dataset.Path)
	} else {
		cmd.Printf("  Path: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Search]")
	if settings.Search.Limit > 0 {
		cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	} else {
		cmd.Printf("  Limit: none\n")
	}

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	value, err := settingValue(settings, args[0])
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := s.Settings.SetValue(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func runSettingsBackend(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Select Dataset Backend")
	cmd.Println("----------------------")
	backends := domain.AllDatasetBackends()
	current := 1
	for i, b := range backends {
		marker := " "
		if b == settings.Dataset.Backend {
			marker = "*"
			current = i + 1
		}
		cmd.Printf(" %s%d. %s\n", marker, i+1, b.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	selected := backends[parseChoice(readLine(reader), len(backends), current)-1]

	path := settings.Dataset.Path
	if selected == domain.DatasetBackendMemory {
		if path != "" {
			cmd.Printf("CSV path [%s]: ", path)
		} else {
			cmd.Print("CSV path: ")
		}
		if input := readLine(reader); input != "" {
			path = input
		}
	}

	if err := s.Settings.SetDatasetBackend(selected, path); err != nil {
		return fmt.Errorf("failed to set dataset backend: %w", err)
	}
	cmd.Printf("\nDataset backend set to: %s\n", selected.Description())
	return nil
}

// settingValue formats one setting for output.
func settingValue(settings *domain.AppSettings, key string) (string, error) {
	switch key {
	case services.KeySidebarWidth:
		return strconv.Itoa(settings.Map.SidebarWidth), nil
	case services.KeyViewportHeight:
		return strconv.Itoa(settings.Map.ViewportHeight), nil
	case services.KeyTooltipZOffset:
		return strconv.Itoa(settings.Map.TooltipZOffset), nil
	case services.KeyDatasetBackend:
		return settings.Dataset.Backend.String(), nil
	case services.KeyDatasetPath:
		return settings.Dataset.Path, nil
	case services.KeySearchLimit:
		return strconv.Itoa(settings.Search.Limit), nil
	default:
		return "", fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
