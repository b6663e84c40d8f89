// projgen deterministically generates the Xcode project.pbxproj manifest
// for the DuEasy app tree.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// version is the semantic version (set via -ldflags).
var version = "dev"

var (
	cfgFile string
	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "projgen [base-dir]",
	Short: "Generate the Xcode project manifest",
	Long: titleStyle.Render("projgen") + subtitleStyle.Render(" - deterministic Xcode project generator") + `

projgen scans <base-dir>/<app> for source files and regenerates
<app>.xcodeproj/project.pbxproj from scratch. Output is fully
deterministic: an unchanged tree always produces a byte-identical
manifest, so regeneration diffs cleanly in version control.

Settings come from projgen.toml in the base directory (see
'projgen init'), PROJGEN_* environment variables, or the built-in
DuEasy defaults. base-dir defaults to the current directory.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := "."
		if len(args) > 0 {
			baseDir = args[0]
		}
		return runGenerate(baseDir, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <base-dir>/projgen.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the manifest to stdout instead of writing it")

	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
