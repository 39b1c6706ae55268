package cmd

import (
	"fmt"

	"github.com/mmuldo/tintmatch/colorlab"
	"github.com/spf13/cobra"
)

// labCmd represents the lab command
var labCmd = &cobra.Command{
	Use:   "lab (HEX | R G B)",
	Short: "Converts an sRGB color to L*a*b*",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rgb, err := parseRGB(args)
		if err != nil {
			return err
		}

		lab := colorlab.RGBToLab(rgb).Round(2)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %.2f %.2f %.2f\n", rgb.Hex(), lab.L, lab.A, lab.B)
		return nil
	},
}

// rgbCmd represents the rgb command
var rgbCmd = &cobra.Command{
	Use:   "rgb L A B",
	Short: "Converts an L*a*b* color to sRGB",
	Long: `Converts an L*a*b* color to sRGB. Colors outside the sRGB gamut are
clamped channel by channel.

Flags are not parsed, so negative a* and b* values can be given directly.`,
	Args:               cobra.ExactArgs(3),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		lab, err := parseLab(args)
		if err != nil {
			return err
		}

		rgb := colorlab.LabToRGB(lab)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d %d %d\n", rgb.Hex(), rgb.R, rgb.G, rgb.B)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labCmd)
	rootCmd.AddCommand(rgbCmd)
}
