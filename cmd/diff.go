package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/domain"
	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old-report> <new-report>",
		Short: "Compare two findings reports",
		Long: `Print a unified diff of two reports written by scan, followed by the
number of findings added and removed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newWorkflow(cmd).Diff(commandContext(cmd), domain.DiffArgs{
				Old: m.Path(args[0]),
				New: m.Path(args[1]),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
