// Package pbx assembles and renders the project.pbxproj manifest.
package pbx

import (
	"github.com/thepesz/dueasy/internal/discover"
	"github.com/thepesz/dueasy/internal/pbxid"
	"github.com/thepesz/dueasy/internal/project"
)

// BuildFile is one entry in the PBXBuildFile section, tying a build-file
// identifier to the file reference it compiles.
type BuildFile struct {
	ID        string
	FileRefID string
	Name      string
}

// FileReference is one entry in the PBXFileReference section.
type FileReference struct {
	ID   string
	Name string
	Path string
}

// LocaleRef is one localization variant of Localizable.strings.
type LocaleRef struct {
	ID   string
	Code string
}

// Document is the fully assembled manifest, ready for rendering. The
// BuildFiles and FileRefs slices are index-aligned: entry i of each
// describes the same source file, which keeps the four per-file lists in
// the rendered output (build files, file references, group children,
// sources phase) in 1:1 correspondence by construction.
type Document struct {
	App string
	IDs pbxid.Structure

	BuildFiles []BuildFile
	FileRefs   []FileReference
	Locales    []LocaleRef

	BundleID         string
	DeploymentTarget string
	MarketingVersion string
	AppCategory      string
	CameraUsage      string
	CalendarsUsage   string
	ExcludeDir       string
}

// Build assembles a Document from the discovered source files. Both
// per-file identifiers are derived in a single pass so an entry can never
// appear in one dynamic list without appearing in the others.
func Build(files []discover.SourceFile, cfg project.Config, ids pbxid.Structure) *Document {
	doc := &Document{
		App: cfg.AppName,
		IDs: ids,

		BundleID:         cfg.BundleID,
		DeploymentTarget: cfg.DeploymentTarget,
		MarketingVersion: cfg.MarketingVersion,
		AppCategory:      cfg.AppCategory,
		CameraUsage:      cfg.CameraUsage,
		CalendarsUsage:   cfg.CalendarsUsage,
		ExcludeDir:       cfg.ExcludeDir,
	}

	for _, f := range files {
		refID := pbxid.FileRef(f.RelPath)
		doc.FileRefs = append(doc.FileRefs, FileReference{
			ID:   refID,
			Name: f.Name,
			Path: f.RelPath,
		})
		doc.BuildFiles = append(doc.BuildFiles, BuildFile{
			ID:        pbxid.BuildFile(f.RelPath),
			FileRefID: refID,
			Name:      f.Name,
		})
	}

	for _, code := range cfg.Locales {
		doc.Locales = append(doc.Locales, LocaleRef{
			ID:   pbxid.LocaleRef(code),
			Code: code,
		})
	}

	return doc
}
