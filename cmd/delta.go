package cmd

import (
	"fmt"

	"github.com/mmuldo/tintmatch/colorlab"
	"github.com/spf13/cobra"
)

var (
	deltaRGB   bool
	deltaCheck bool
)

// deltaCmd represents the delta command
var deltaCmd = &cobra.Command{
	Use:   "delta TARGET CURRENT",
	Short: "Measures the CIEDE2000 difference between two colors",
	Long: `Measures the CIEDE2000 difference between a target and a current color.

Colors are given as L* a* b* triples, or with --rgb as hex colors or R G B
triples. dL, da and db are signed (target - current). --check also prints
the go-chromath CIEDE2000 value for comparison.

Put -- before the colors when any value is negative:

  tintmatch delta -- 50 2.5 0 56 -27 -3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, current, err := parsePair(args, deltaRGB)
		if err != nil {
			return err
		}

		d := colorlab.DeltaE(target, current)
		verdict := "no match"
		if d.Matches(threshold()) {
			verdict = "match"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dL=%.2f da=%.2f db=%.2f dE=%.4f %s",
			colorlab.Round(d.DL, 2), colorlab.Round(d.DA, 2), colorlab.Round(d.DB, 2), d.DE, verdict)
		if deltaCheck {
			fmt.Fprintf(out, " chromath=%.4f", colorlab.ChromathCIEDE2000(target, current))
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deltaCmd)

	deltaCmd.Flags().BoolVar(&deltaRGB, "rgb", false, "colors are sRGB instead of L*a*b*")
	deltaCmd.Flags().BoolVar(&deltaCheck, "check", false, "also print go-chromath's CIEDE2000 value")
}

func parsePair(args []string, rgb bool) (colorlab.Lab, colorlab.Lab, error) {
	if !rgb {
		if len(args) != 6 {
			return colorlab.Lab{}, colorlab.Lab{}, fmt.Errorf("expected 6 values, got %d", len(args))
		}
		t, err := parseLab(args[:3])
		if err != nil {
			return colorlab.Lab{}, colorlab.Lab{}, err
		}
		c, err := parseLab(args[3:])
		return t, c, err
	}

	var n int
	switch len(args) {
	case 2:
		n = 1
	case 6:
		n = 3
	default:
		return colorlab.Lab{}, colorlab.Lab{}, fmt.Errorf("expected 2 hex colors or 6 channels, got %d values", len(args))
	}
	t, err := parseRGB(args[:n])
	if err != nil {
		return colorlab.Lab{}, colorlab.Lab{}, err
	}
	c, err := parseRGB(args[n:])
	if err != nil {
		return colorlab.Lab{}, colorlab.Lab{}, err
	}
	return colorlab.RGBToLab(t), colorlab.RGBToLab(c), nil
}
