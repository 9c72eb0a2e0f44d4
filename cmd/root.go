// Package cmd provides the root command and CLI setup for rooze.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/rooze/internal/adapter"
	"gooze.dev/pkg/rooze/internal/controller"
	"gooze.dev/pkg/rooze/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var rustFileAdapter adapter.RustFileAdapter
var cargoTool adapter.Tool
var discoverer domain.Discoverer

var dirFlag string
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	rustFileAdapter = adapter.NewLocalRustFileAdapter()
	cargoTool = adapter.NewCargoTool(fsAdapter)
	discoverer = domain.NewDiscoverer(cargoTool, fsAdapter, rustFileAdapter)
}

const rootLongDescription = `Rooze finds mutants in a Rust source tree: functions whose body can be
replaced by a plausible value of their return type. If the tests still pass
with a mutant applied, they probably do not check that function's result.

The tree is read through its Cargo.toml, starting from every lib and bin
target and following ` + "`mod name;`" + ` declarations into other files.`

const listLongDescription = `List the mutants of the crate or workspace in DIR (default: the
current directory, or the configured dir).

Paths are filtered with globs (--file, --exclude) and mutant names with
regular expressions (--re, --exclude-re).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooze",
		Short: "Rust mutant discovery tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&dirFlag, dirFlagName, "d", defaultDir, "root directory of the crate or workspace")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dirFlagName), dirConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow builds a workflow writing to cmd's output.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	return domain.NewWorkflow(discoverer, ui)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// An interrupt cancels the command's context, which stops discovery before
// the next file.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
