// Package discover finds the source files that belong in the generated
// project manifest.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// SourceFile is a discovered source file. RelPath is slash-separated and
// relative to the base directory (e.g. "DuEasy/Views/Home.swift"), which
// is the form the manifest records.
type SourceFile struct {
	Name    string
	RelPath string
}

// Options controls a discovery walk.
type Options struct {
	// SourceDir is the subdirectory of the base directory to scan.
	SourceDir string
	// Ext is the source file extension to match, including the dot.
	Ext string
	// ExcludeDir names a directory skipped at any depth.
	ExcludeDir string
}

// Files walks <baseDir>/<SourceDir> and returns every file matching
// Ext, sorted lexicographically by RelPath so the manifest is stable
// regardless of filesystem enumeration order.
//
// A missing base or source directory is an error; a walk that finds
// nothing is not. Files under ExcludeDir (at any depth), hidden files
// and directories, symlinks, and files matched by the base directory's
// .gitignore are skipped.
func Files(baseDir string, opts Options) ([]SourceFile, error) {
	sourceRoot := filepath.Join(baseDir, opts.SourceDir)
	info, err := os.Stat(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source directory %s: not a directory", sourceRoot)
	}

	gi := loadGitignore(baseDir)

	var results []SourceFile

	err = filepath.WalkDir(sourceRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()

		if d.IsDir() {
			if path == sourceRoot {
				return nil
			}
			if name == opts.ExcludeDir || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		if filepath.Ext(name) != opts.Ext {
			return nil
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		results = append(results, SourceFile{Name: name, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", sourceRoot, err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].RelPath < results[j].RelPath
	})

	return results, nil
}

func loadGitignore(baseDir string) *ignore.GitIgnore {
	path := filepath.Join(baseDir, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
