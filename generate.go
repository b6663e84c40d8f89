package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/thepesz/dueasy/internal/discover"
	"github.com/thepesz/dueasy/internal/pbx"
	"github.com/thepesz/dueasy/internal/pbxid"
	"github.com/thepesz/dueasy/internal/project"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// runGenerate is the whole pipeline: load config, discover source files,
// assemble the manifest, write it atomically. Any error aborts before the
// existing manifest is touched.
func runGenerate(baseDir string, stdout io.Writer) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("resolving base directory: %w", err)
	}
	info, err := os.Stat(baseDir)
	if err != nil {
		return fmt.Errorf("base directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", baseDir)
	}

	cfg, cfgPath, err := project.Load(baseDir, cfgFile)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		logger.Debug("loaded config", "path", cfgPath)
	} else {
		logger.Debug("no config file found, using defaults")
	}

	files, err := discover.Files(baseDir, discover.Options{
		SourceDir:  cfg.AppName,
		Ext:        cfg.SourceExt,
		ExcludeDir: cfg.ExcludeDir,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	logger.Debug("discovered source files", "count", len(files))

	doc := pbx.Build(files, cfg, pbxid.DefaultStructure())
	manifest := pbx.Encode(doc)

	if dryRun {
		_, err := io.WriteString(stdout, manifest)
		return err
	}

	outRel := cfg.OutputPath()
	outPath := filepath.Join(baseDir, filepath.FromSlash(outRel))
	if err := pbx.WriteFileAtomic(outPath, []byte(manifest)); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	_, _ = fmt.Fprintf(stdout, "Generated %s with %d source files\n", outRel, len(files))
	return nil
}
