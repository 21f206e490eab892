package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search initiatives",
	Long: `Finds initiatives whose name or postcode contains the query,
ignoring case. Results are ordered by name.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = search.limit setting)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchRecord is the JSON form of a search result.
type searchRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Homepage string   `json:"homepage,omitempty"`
	Postcode string   `json:"postcode,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	s, err := requireServices()
	if err != nil {
		return err
	}
	sess, err := newSession(s, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	limit := searchLimit
	if limit <= 0 {
		limit = sess.settings.Search.Limit
	}

	results, err := sess.Dataset.Search(cmd.Context(), query, domain.SearchOptions{Limit: limit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []*domain.Initiative) error {
	records := make([]searchRecord, 0, len(results))
	for _, in := range results {
		rec := searchRecord{ID: in.ID, Name: in.Name, Homepage: in.Homepage, Postcode: in.Postcode}
		if in.HasGeoLocation() {
			lat, lng := in.Lat, in.Lng
			rec.Lat, rec.Lng = &lat, &lng
		}
		records = append(records, rec)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []*domain.Initiative) error {
	if len(results) == 0 {
		cmd.Println("No initiatives found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, in := range results {
		// Format: [N] Name (ID)
		cmd.Printf("  [%d] %s (%s)\n", i+1, in.Label(), in.ID)
		if in.Postcode != "" {
			cmd.Printf("      Postcode: %s\n", in.Postcode)
		}
		if in.Homepage != "" {
			cmd.Printf("      %s\n", in.Homepage)
		}
		if !in.HasGeoLocation() {
			cmd.Println("      (not on the map)")
		}
	}
	cmd.Println()
	cmd.Printf("%d found\n", len(results))
	return nil
}
