package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const javaGrammarModule = "github.com/tree-sitter/tree-sitter-java"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the jia build and Java grammar versions",
		Long: "Displays the jia release, the Go toolchain it was built with and the\n" +
			"tree-sitter Java grammar that decides which sources parse.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			for _, line := range versionLines(info, ok) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders build info. Builds without module information, such
// as plain `go run`, report a development build.
func versionLines(info *debug.BuildInfo, ok bool) []string {
	if !ok || info == nil {
		return []string{"jia (devel)"}
	}

	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	lines := []string{
		fmt.Sprintf("jia %s", version),
		fmt.Sprintf("go: %s", info.GoVersion),
	}

	for _, dep := range info.Deps {
		if dep.Path == javaGrammarModule {
			lines = append(lines, fmt.Sprintf("java grammar: %s", dep.Version))
			break
		}
	}

	return lines
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
