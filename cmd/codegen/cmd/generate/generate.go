package generate

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/harvester/mediaconvert/cmd/codegen/cmd"
	"github.com/harvester/mediaconvert/pkg/codegen"
)

var (
	dir    string
	verify bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [--dir DIR] [--verify]",
	Short: "Generate model accessors",
	Long: `Generate the zz_generated files of an API package.

This command will:
1. Parse the hand-written types of the package.
2. Report lint warnings on field names.
3. Write zz_generated_record.go, zz_generated_enum.go and zz_generated_register.go,
   or with --verify, fail when the files on disk differ from what would be written.
`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return codegen.Run(context.Background(), codegen.Options{Dir: dir, Verify: verify})
	},
}

func init() {
	generateCmd.Flags().StringVar(&dir, "dir", "./pkg/apis/mediaconvert.io/v1", "API package directory")
	generateCmd.Flags().BoolVar(&verify, "verify", false, "check that generated files are up to date instead of writing them")

	cmd.RootCmd.AddCommand(generateCmd)
}
