// Package cmd provides the root command and CLI setup for jia.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/adapter"
	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/controller"
	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var javaParser adapter.JavaParserAdapter
var reportStore adapter.ReportStore

// Root-level flags shared by the commands that discover projects.
var (
	excludePatterns []string
	extensionFlag   string
	limitFlag       int
	skipFlag        int
	verboseFlag     bool
	logFileFlag     string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	javaParser = adapter.NewTreeSitterJavaAdapter()
	reportStore = adapter.NewTextReportStore(fsAdapter)
}

const rootLongDescription = `jia scans a corpus of Java projects for constructors that let the object
under construction escape before it is fully initialized: storing "this",
passing "this" to other code, or calling overridable methods on it.

The corpus root holds one directory per project; every .java file below a
project directory is analyzed.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "jia",
		Short:         "Java constructor escape analysis",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching glob, relative to the project (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVar(&extensionFlag, extensionFlagName, viper.GetString(extensionConfigKey), "suffix of the source files to analyze")
	bindFlagToConfig(flags.Lookup(extensionFlagName), extensionConfigKey)

	flags.IntVar(&limitFlag, limitFlagName, viper.GetInt(limitConfigKey), "maximum number of projects to scan (0 = all)")
	bindFlagToConfig(flags.Lookup(limitFlagName), limitConfigKey)

	flags.IntVar(&skipFlag, skipFlagName, viper.GetInt(skipConfigKey), "number of projects to skip")
	bindFlagToConfig(flags.Lookup(skipFlagName), skipConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow wires the domain workflow for one command invocation, so the
// UI writes to that command's output and the analyzer sees the parsed flags.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	analyzer := domain.NewUnitAnalyzer(fsAdapter, javaParser, viper.GetDuration(fileTimeoutConfigKey))
	scanner := domain.NewCorpusScanner(fsAdapter, analyzer)

	return domain.NewWorkflow(fsAdapter, reportStore, ui, scanner, analyzer)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
