package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/verdict-dev/verdict/internal/domain"
	m "github.com/verdict-dev/verdict/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View a previously saved run report",
		Long:  "View a previously saved run report from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow, err := newWorkflow()
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			return workflow.View(cmd.Context(), domain.ViewArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
