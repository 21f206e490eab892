package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seamap/internal/adapters/driven/dataset/csvfile"
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import [csv]",
	Short: "Import initiatives from a CSV file",
	Long: `Replaces the stored dataset with the initiatives in a CSV file.

The header row locates columns by name. Both the co-ops UK export headers
(CUK Organisation ID, Registered Name, Website, Postcode, Latitude, Longitude)
and short headers (id, name, homepage, postcode, lat, lng) are accepted.

Without an argument the dataset.path setting is used. With --watch the
command keeps running and imports the file again whenever it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var importWatch bool

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "re-import when the file changes")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	path := settings.Dataset.Path
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no CSV file given and dataset.path is not set")
	}

	sess, err := newSession(s, csvfile.NewSource(path))
	if err != nil {
		return err
	}
	defer sess.Close()

	count, err := sess.Dataset.Import(cmd.Context())
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d initiatives from %s\n", count, path)
	if settings.Dataset.Backend == domain.DatasetBackendMemory {
		cmd.Println("Note: the memory backend does not keep the dataset between runs.")
	}
	if !importWatch {
		return nil
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", path)
	return csvfile.NewWatcher(path).Watch(cmd.Context(), func() {
		count, err := sess.Dataset.Import(cmd.Context())
		if err != nil {
			logger.Warn("re-import failed: %v", err)
			return
		}
		cmd.Printf("Re-imported %d initiatives\n", count)
	})
}
