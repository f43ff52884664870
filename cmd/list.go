package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <corpus-root>",
		Short: "List the projects a scan would visit",
		Long: `List the project directories under the corpus root that contain source
files, after --skip and --limit are applied, with their file counts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd).List(commandContext(cmd), scanArgs(m.Path(args[0])))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
