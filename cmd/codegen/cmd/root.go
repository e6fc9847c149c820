package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/harvester/mediaconvert/pkg/config"
)

var (
	AppVersion = "dev"

	options config.CommonOptions
)

var RootCmd = &cobra.Command{
	Use:     "codegen",
	Short:   "MediaConvert model code generator",
	Long:    "Generates accessors, enum helpers and the kind registry for the MediaConvert model types",
	Version: AppVersion,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return options.SetupLogging(os.Stdout)
	},
	SilenceUsage: true,
}

func init() {
	debug := config.EnvGetBool("DEBUG", false)
	trace := config.EnvGetBool("TRACE", false)

	RootCmd.PersistentFlags().BoolVar(&options.Debug, "debug", debug, "set logging level to debug")
	RootCmd.PersistentFlags().BoolVar(&options.Trace, "trace", trace, "set logging level to trace")
	RootCmd.PersistentFlags().StringVar(&options.LogFormat, "log-format", os.Getenv("LOG_FORMAT"), "log format, text or json")
}
