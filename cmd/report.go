package cmd

import (
	"github.com/mmuldo/tintmatch/project"
	"github.com/mmuldo/tintmatch/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report PROJECT",
	Short: "Renders a report of a mixing project",
	Long: `Reads an exported project (JSON), scores every iteration against the
target color and renders the result through a pongo2 template.

Projects saved before L*a*b* targets were recorded get their target
computed from the RGB values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.LoadFile(args[0])
		if err != nil {
			return err
		}
		logger.Printf("loaded %q with %d iterations", p.Name, len(p.Iterations))

		tpl, err := report.Load(viper.GetString("template"))
		if err != nil {
			return err
		}

		return report.Render(cmd.OutOrStdout(), tpl, p, threshold())
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("template", "t", "", "pongo2 template to render instead of the built-in one")
	viper.BindPFlag("template", reportCmd.Flags().Lookup("template"))
}
