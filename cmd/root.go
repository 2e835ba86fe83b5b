// Package cmd provides the root command and CLI setup for verdict.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/verdict-dev/verdict/internal/adapter"
	"github.com/verdict-dev/verdict/internal/controller"
	"github.com/verdict-dev/verdict/internal/domain"
	m "github.com/verdict-dev/verdict/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters test files for applicable commands.
var excludePatterns []string

// verboseFlag bumps the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const pathPatternsHelp = `Test files are discovered by suffix (files.test_suffix, default *Test.php)
under the given paths (default: current directory).`

const rootLongDescription = `Verdict runs your test suite through an external runner, normalizes every
raw outcome event into a display-ready record (icon, color, description)
and renders the results on the terminal.

` + pathPatternsHelp

const runLongDescription = `Run the configured test runner for the given paths and display the
normalized outcomes as they arrive.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verdict",
		Short: "Test outcome normalizer and reporter",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for normalized run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude test files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newWorkflow assembles the workflow from config-dependent pieces. Called
// from RunE so the runner command and name table reflect the loaded config.
func newWorkflow() (domain.Workflow, error) {
	runner := adapter.NewLocalRunnerAdapter(
		viper.GetStringSlice(runnerCommandKey),
		time.Duration(viper.GetInt64(runnerTimeoutKey))*time.Second,
	)

	names, err := loadNameTable()
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(fsAdapter, runner, reportStore, ui, names), nil
}

func loadNameTable() (*domain.NameTable, error) {
	cases := make(map[string]domain.CaseNames)

	if viper.IsSet(namesConfigKey) {
		if err := viper.UnmarshalKey(namesConfigKey, &cases); err != nil {
			return nil, fmt.Errorf("decode %s config: %w", namesConfigKey, err)
		}
	}

	return domain.NewNameTable(cases), nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
