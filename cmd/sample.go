package cmd

import (
	"fmt"

	"github.com/mmuldo/tintmatch/colorlab"
	"github.com/mmuldo/tintmatch/image"
	"github.com/mmuldo/tintmatch/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	swatchPath   string
	sampleTarget string
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample IMAGE",
	Short: "Samples candidate target colors from an image",
	Long: `Quantizes an image, groups its colors that are perceptually close and
lists the remaining candidates by prevalence with their L*a*b* values.

With --target the candidate closest to the given hex color is marked. With
--swatch the candidates are also drawn into a PNG.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num := viper.GetInt("sample.colors")
		logger.Printf("quantizing %s to %d colors", args[0], num)

		ccl, err := image.Sample(args[0], num)
		if err != nil {
			return err
		}
		ccl = palette.Distinguish(ccl, viper.GetFloat64("sample.distance"))

		nearest := -1
		if sampleTarget != "" {
			rgb, err := colorlab.ParseHex(sampleTarget)
			if err != nil {
				return err
			}
			i, d, ok := palette.Nearest(colorlab.RGBToLab(rgb), ccl)
			if ok {
				nearest = i
				logger.Printf("nearest to %s is %s, dE=%.2f", rgb.Hex(), ccl[i].RGB.Hex(), d.DE)
			}
		}

		out := cmd.OutOrStdout()
		for i, cc := range ccl {
			mark := ""
			if i == nearest {
				mark = " *"
			}
			lab := cc.Lab.Round(2)
			fmt.Fprintf(out, "%s %6.2f %7.2f %7.2f %d%s\n", cc.RGB.Hex(), lab.L, lab.A, lab.B, cc.Count, mark)
		}

		if swatchPath != "" {
			size := viper.GetInt("sample.swatch_size")
			if err := palette.WriteSwatch(swatchPath, palette.Swatch(ccl.RGBs(), size, 4)); err != nil {
				return err
			}
			logger.Printf("wrote %s", swatchPath)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVarP(&swatchPath, "swatch", "s", "", "write the candidates to a PNG swatch")
	sampleCmd.Flags().StringVar(&sampleTarget, "target", "", "mark the candidate closest to this hex color")
	sampleCmd.Flags().IntP("colors", "n", 8, "number of colors to quantize to")
	sampleCmd.Flags().Float64("distance", 10, "CIEDE2000 distance under which colors are grouped")
	viper.BindPFlag("sample.colors", sampleCmd.Flags().Lookup("colors"))
	viper.BindPFlag("sample.distance", sampleCmd.Flags().Lookup("distance"))
}
