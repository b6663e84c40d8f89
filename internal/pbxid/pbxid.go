// Package pbxid derives the 24-character identifiers used to key objects
// in a project.pbxproj manifest.
package pbxid

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Derive returns a 24-character uppercase hexadecimal identifier for key.
// The same key always yields the same identifier, across runs and
// platforms, so regenerating an unchanged tree produces a byte-identical
// manifest. Truncating the 128-bit digest to 96 bits leaves collisions
// possible in principle; for the tens-to-hundreds of files a project
// holds, the risk is accepted rather than eliminated.
func Derive(key string) string {
	sum := md5.Sum([]byte(key))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:24])
}

// FileRef returns the file-reference identifier for a source file,
// keyed by its slash-separated path relative to the base directory.
func FileRef(relPath string) string {
	return Derive("fileref_" + relPath)
}

// BuildFile returns the build-file identifier for a source file.
func BuildFile(relPath string) string {
	return Derive("buildfile_" + relPath)
}

// LocaleRef returns the file-reference identifier for a localization
// variant (one per configured locale).
func LocaleRef(code string) string {
	return Derive("localeref_" + code)
}

// Structure is the closed set of fixed identifiers for structural nodes
// that exist regardless of which source files are discovered.
type Structure struct {
	Project       string
	MainGroup     string
	ProductsGroup string
	AppGroup      string
	Product       string
	Target        string

	AssetsRef           string
	AssetsBuild         string
	PreviewAssetsRef    string
	PreviewAssetsBuild  string
	InfoPlistRef        string
	PreviewContentGroup string

	ResourcesGroup   string
	LocalizableGroup string
	LocalizableBuild string

	ProjectDebugConfig   string
	ProjectReleaseConfig string
	TargetDebugConfig    string
	TargetReleaseConfig  string
	ProjectConfigList    string
	TargetConfigList     string

	SourcesPhase    string
	FrameworksPhase string
	ResourcesPhase  string
}

// DefaultStructure returns the fixed identifiers the manifest has always
// used. Changing any of these would churn every checked-in manifest diff.
func DefaultStructure() Structure {
	return Structure{
		Project:       "E1000012282F0012",
		MainGroup:     "E100000A282F000A",
		ProductsGroup: "E100000C282F000C",
		AppGroup:      "E100000B282F000B",
		Product:       "E1000007282F0007",
		Target:        "E100000E282F000E",

		AssetsRef:           "E1000004282F0004",
		AssetsBuild:         "E1000003282F0003",
		PreviewAssetsRef:    "E1000006282F0006",
		PreviewAssetsBuild:  "E1000005282F0005",
		InfoPlistRef:        "E1000008282F0008",
		PreviewContentGroup: "E100000D282F000D",

		ResourcesGroup:   "E100001A282F001A",
		LocalizableGroup: "E100001B282F001B",
		LocalizableBuild: "E100001E282F001E",

		ProjectDebugConfig:   "E1000014282F0014",
		ProjectReleaseConfig: "E1000015282F0015",
		TargetDebugConfig:    "E1000016282F0016",
		TargetReleaseConfig:  "E1000017282F0017",
		ProjectConfigList:    "E1000013282F0013",
		TargetConfigList:     "E100000F282F000F",

		SourcesPhase:    "E1000010282F0010",
		FrameworksPhase: "E1000009282F0009",
		ResourcesPhase:  "E1000011282F0011",
	}
}
