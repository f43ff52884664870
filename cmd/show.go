package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// showCmd represents the config command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the settings in effect after merging defaults, jia.yaml, JIA_*
environment variables and flags, as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
