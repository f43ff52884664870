package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/domain"
	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Analyze a single source file",
		Long: `Analyze one file as a one-file project and print its findings, class
count, superclass and whether it contains a forwarding method.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newWorkflow(cmd).Inspect(commandContext(cmd), domain.InspectArgs{Path: m.Path(args[0])})
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
