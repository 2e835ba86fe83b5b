package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verdict-dev/verdict/internal/domain"
	m "github.com/verdict-dev/verdict/internal/model"
)

var runParallelFlag int
var runWorkDirFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run tests and display normalized outcomes",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := newWorkflow()
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Paths:      parsePaths(args),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				TestSuffix: viper.GetString(testSuffixKey),
				WorkDir:    runWorkDirFlag,
				Workers:    viper.GetInt(runParallelConfigKey),
				Reports:    m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for test execution")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().StringVarP(&runWorkDirFlag, "workdir", "w", "", "working directory for the runner command")
}
