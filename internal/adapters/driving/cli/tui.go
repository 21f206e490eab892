package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/seamap/internal/adapters/driving/tui"
)

// ErrNotATerminal is returned when the TUI is started without a terminal.
var ErrNotATerminal = errors.New("the TUI needs an interactive terminal")

// isTerminal reports whether stdin is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal map",
	Long: `Launch the interactive terminal map for seamap.

The sidebar lists the current selection and keeps a history of searches and
selections; the map draws every initiative with a known location.

Controls:
  /        - Search
  ↑/k, ↓/j - Move through the list (shows the tooltip)
  Enter    - Open the initiative and zoom to it
  Space    - Toggle the initiative in the selection
  s        - Make the initiative the only selection
  [ / ]    - Back / forward through history
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	s, err := requireServices()
	if err != nil {
		return err
	}
	if !isTerminal() {
		return ErrNotATerminal
	}
	sess, err := newSession(s, nil)
	if err != nil {
		return err
	}
	defer sess.Close()

	ports := tui.NewPorts(sess.Dataset, sess.Sidebar, sess.Interactions, sess.canvas)
	ports.Markers = sess.Markers()
	ports.Settings = s.Settings

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())
	sess.Sidebar.SetView(app)

	if _, err := sess.Dataset.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
