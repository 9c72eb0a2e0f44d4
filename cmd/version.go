package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// grammarModule is reported alongside the tool version since it decides
// which Rust syntax the parser accepts.
const grammarModule = "github.com/smacker/go-tree-sitter"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the rooze build version, the Go version and the Rust grammar version it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("rooze version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)

			if grammar := grammarVersion(info); grammar != "" {
				cmd.Println("grammar version\t", grammar)
			}
		},
	}
}

func grammarVersion(info *debug.BuildInfo) string {
	for _, dep := range info.Deps {
		if dep.Path != grammarModule {
			continue
		}

		if dep.Replace != nil {
			return dep.Replace.Version
		}

		return dep.Version
	}

	return ""
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
