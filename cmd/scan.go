package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/domain"
	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

const scanLongDescription = `Scan every project directory under the corpus root, write one block per
file with findings to the report and print the corpus counters.

Each finding is tagged STORING_THIS when the constructor stores or passes
"this", or DOWN_CALL when it invokes a method on the object under
construction.`

var (
	parallelFlag    int
	outputFlag      string
	fileTimeoutFlag time.Duration
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <corpus-root>",
		Short: "Scan a corpus for escaping constructors",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newWorkflow(cmd).Scan(commandContext(cmd), scanArgs(m.Path(args[0])))
			return err
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "path of the findings report")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().DurationVar(&fileTimeoutFlag, fileTimeoutFlagName, viper.GetDuration(fileTimeoutConfigKey), "maximum time spent parsing one file (0 = no limit)")
	bindFlagToConfig(cmd.Flags().Lookup(fileTimeoutFlagName), fileTimeoutConfigKey)
}

// scanArgs collects the effective scan settings from flags, env and config.
func scanArgs(root m.Path) domain.ScanArgs {
	return domain.ScanArgs{
		Root:        root,
		Output:      m.Path(viper.GetString(outputConfigKey)),
		Skip:        viper.GetInt(skipConfigKey),
		Limit:       viper.GetInt(limitConfigKey),
		Threads:     viper.GetInt(parallelConfigKey),
		Extension:   viper.GetString(extensionConfigKey),
		Exclude:     viper.GetStringSlice(excludeConfigKey),
		FileTimeout: viper.GetDuration(fileTimeoutConfigKey),
	}
}
