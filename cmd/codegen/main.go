package main

import (
	"github.com/spf13/cobra"

	"github.com/harvester/mediaconvert/cmd/codegen/cmd"
	_ "github.com/harvester/mediaconvert/cmd/codegen/cmd/cleanup"
	_ "github.com/harvester/mediaconvert/cmd/codegen/cmd/generate"
)

func main() {
	cobra.CheckErr(cmd.RootCmd.Execute())
}
