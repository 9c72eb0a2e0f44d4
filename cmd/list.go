package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/rooze/internal/controller"
	"gooze.dev/pkg/rooze/internal/domain"
	m "gooze.dev/pkg/rooze/internal/model"
)

var listFilesFlag bool
var listDiffFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List mutants, or the files they were found in",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := viper.GetString(dirConfigKey)
			if len(args) == 1 {
				root = args[0]
			}

			format, err := controller.ParseFormat(viper.GetString(listFormatConfigKey))
			if err != nil {
				return err
			}

			return newWorkflow(cmd).List(cmd.Context(), domain.ListArgs{
				Root:     m.Path(root),
				Options:  discoveryOptions(),
				Files:    listFilesFlag,
				Diff:     listDiffFlag,
				Format:   format,
				Parallel: viper.GetInt(listParallelConfigKey),
			})
		},
	}

	configureListFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func configureListFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringArrayP(examineGlobFlagName, "f", nil, "only mutate files matching this glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(examineGlobFlagName), examineGlobsConfigKey)

	flags.StringArrayP(excludeGlobFlagName, "e", nil, "skip files matching this glob (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeGlobFlagName), excludeGlobsConfigKey)

	flags.StringArrayP(examineNameFlagName, "F", nil, "only list mutants whose name matches this regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(examineNameFlagName), examineNamesConfigKey)

	flags.StringArrayP(excludeNameFlagName, "E", nil, "skip mutants whose name matches this regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeNameFlagName), excludeNamesConfigKey)

	flags.StringArray(errorValueFlagName, nil, "expression to return as Err(...) from functions returning Result (can be repeated)")
	bindFlagToConfig(flags.Lookup(errorValueFlagName), errorValuesConfigKey)

	flags.StringP(listFormatFlagName, "o", defaultListFormat, "output format: text, json or yaml")
	bindFlagToConfig(flags.Lookup(listFormatFlagName), listFormatConfigKey)

	flags.IntP(listParallelFlagName, "j", defaultListParallel, "number of diffs rendered in parallel")
	bindFlagToConfig(flags.Lookup(listParallelFlagName), listParallelConfigKey)

	flags.BoolVar(&listFilesFlag, listFilesFlagName, false, "list visited files instead of mutants")
	flags.BoolVar(&listDiffFlag, listDiffFlagName, false, "show the diff of each mutant")
}

func discoveryOptions() domain.Options {
	return domain.Options{
		ExamineGlobs: viper.GetStringSlice(examineGlobsConfigKey),
		ExcludeGlobs: viper.GetStringSlice(excludeGlobsConfigKey),
		ExamineNames: viper.GetStringSlice(examineNamesConfigKey),
		ExcludeNames: viper.GetStringSlice(excludeNamesConfigKey),
		ErrorValues:  viper.GetStringSlice(errorValuesConfigKey),
		Logger:       slog.Default(),
	}
}
