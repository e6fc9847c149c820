package cleanup

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/harvester/mediaconvert/cmd/codegen/cmd"
	"github.com/harvester/mediaconvert/pkg/codegen"
)

var dir string

var cleanupCmd = &cobra.Command{
	Use:   "cleanup [--dir DIR]",
	Short: "Remove generated files",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		removed, err := codegen.Cleanup(dir)
		if err != nil {
			return err
		}
		logrus.Infof("removed %d generated files", len(removed))
		return nil
	},
}

func init() {
	cleanupCmd.Flags().StringVar(&dir, "dir", "./pkg/apis", "directory to clean recursively")

	cmd.RootCmd.AddCommand(cleanupCmd)
}
