package cmd

import (
	"github.com/mmuldo/tintmatch/project"
	"github.com/spf13/viper"
)

const defaultThreshold = project.DefaultThreshold

func setDefaults() {
	viper.SetDefault("threshold", defaultThreshold)
	viper.SetDefault("template", "")
	viper.SetDefault("sample.colors", 8)
	viper.SetDefault("sample.distance", 10.0)
	viper.SetDefault("sample.swatch_size", 100)
}
