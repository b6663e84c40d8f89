package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/thepesz/dueasy/internal/project"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [base-dir]",
	Short: "Write a default projgen.toml",
	Long: `Write a projgen.toml with the built-in defaults into the base
directory, as a starting point for overrides. Refuses to overwrite an
existing file unless --force is given.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := "."
		if len(args) > 0 {
			baseDir = args[0]
		}
		return runInit(baseDir, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func runInit(baseDir string, stdout io.Writer) error {
	path := filepath.Join(baseDir, project.ConfigFileName+"."+project.ConfigFileExt)

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := toml.Marshal(project.Default())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	header := "# projgen configuration. Values shown are the defaults.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(stdout, "wrote %s\n", path)
	return nil
}
