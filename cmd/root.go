package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logger  = log.New(io.Discard, "tintmatch: ", 0)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tintmatch",
	Short: "Matches mixed paint colors against a target",
	Long: `tintmatch converts colors between sRGB and CIE L*a*b*, measures how far
a mixed color is from its target with CIEDE2000, samples candidate target
colors from reference images and renders reports of mixing sessions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetOutput(os.Stderr)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.SetPrefix("tintmatch: ")
		log.SetFlags(0)
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tintmatch.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().Float64("threshold", defaultThreshold, "CIEDE2000 difference at or below which colors match")
	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))

	setDefaults()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".tintmatch")
	}

	viper.SetEnvPrefix("tintmatch")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Println("using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// threshold returns the configured match threshold, falling back to the
// default when it is negative.
func threshold() float64 {
	if t := viper.GetFloat64("threshold"); t >= 0 {
		return t
	}
	return defaultThreshold
}
