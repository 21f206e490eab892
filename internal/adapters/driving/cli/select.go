package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

var (
	selectJSON   bool
	selectRender bool
	selectCols   int
	selectRows   int
)

var selectCmd = &cobra.Command{
	Use:   "select <id>...",
	Short: "Select initiatives on a headless map",
	Long: `Loads the dataset onto a map without a screen and selects initiatives
the way the TUI does. The first ID is opened from the sidebar, which zooms the
map to it; each further ID is toggled onto the selection.

Prints the resulting selection and marker layers. Use --render to also draw
the map as text, or --json for the raw map state.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().BoolVar(&selectJSON, "json", false, "output map state as JSON")
	selectCmd.Flags().BoolVar(&selectRender, "render", false, "draw the map as text")
	selectCmd.Flags().IntVar(&selectCols, "cols", 80, "map width in cells when rendering")
	selectCmd.Flags().IntVar(&selectRows, "rows", 24, "map height in cells when rendering")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	sess, err := newSession(s, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	if _, err := sess.Dataset.Load(ctx); err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	for i, id := range args {
		initiative, err := sess.Dataset.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("initiative %q: %w", id, err)
		}
		if i == 0 {
			err = sess.Interactions.ClickInitiative(initiative, sess.settings.Map.SidebarWidth)
		} else {
			err = sess.Interactions.ToggleMarker(initiative)
		}
		if err != nil {
			return err
		}
	}

	if selectJSON {
		data, err := json.MarshalIndent(sess.canvas.State(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal map state: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	current, _ := sess.Sidebar.Current()
	cmd.Printf("Selection (%d): %s\n", current.Len(), strings.Join(labels(current.Initiatives()), ", "))
	cmd.Printf("Selected markers: %s\n", joinOrNone(sess.Markers().Selected()))

	if fit, ok := sess.canvas.View(); ok {
		cmd.Printf("View: %s\n", describeFit(fit))
	}

	if selectRender {
		cmd.Println()
		for _, row := range sess.canvas.Render(selectCols, selectRows) {
			cmd.Println(strings.TrimRight(row, " "))
		}
	}
	return nil
}

func labels(initiatives []*domain.Initiative) []string {
	out := make([]string, len(initiatives))
	for i, in := range initiatives {
		out[i] = in.Label()
	}
	return out
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	return strings.Join(ids, ", ")
}

func describeFit(fit domain.FitBounds) string {
	b := fit.Bounds
	return fmt.Sprintf("%.4f,%.4f to %.4f,%.4f (padding %d,%d)",
		b.MinLat, b.MinLng, b.MaxLat, b.MaxLng,
		fit.Padding.TopLeft.X, fit.Padding.TopLeft.Y)
}
