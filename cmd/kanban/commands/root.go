package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kanbanlists/internal/app"
	"kanbanlists/internal/tui"
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Flags are bound per call so each tree
// is independent.
func NewRootCmd() *cobra.Command {
	var noAltScreen bool

	root := &cobra.Command{
		Use:          "kanban",
		Short:        "Browse the seed kanban lists",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := tui.NewModel(app.InitialBoard())

			opts := []tea.ProgramOption{
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if !noAltScreen {
				opts = append(opts, tea.WithAltScreen())
			}

			if _, err := tea.NewProgram(&model, opts...).Run(); err != nil {
				return fmt.Errorf("run viewer: %w", err)
			}
			return nil
		},
	}

	root.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	root.AddCommand(showCmd())
	return root
}
