package pbx

import (
	"fmt"
	"strings"
	"testing"

	"github.com/thepesz/dueasy/internal/discover"
	"github.com/thepesz/dueasy/internal/pbxid"
	"github.com/thepesz/dueasy/internal/project"
)

func buildDefault(files ...discover.SourceFile) *Document {
	return Build(files, project.Default(), pbxid.DefaultStructure())
}

var twoFiles = []discover.SourceFile{
	{Name: "Main.swift", RelPath: "DuEasy/Main.swift"},
	{Name: "Home.swift", RelPath: "DuEasy/Views/Home.swift"},
}

func TestBuildCorrespondence(t *testing.T) {
	t.Parallel()

	doc := buildDefault(twoFiles...)

	if len(doc.BuildFiles) != len(twoFiles) || len(doc.FileRefs) != len(twoFiles) {
		t.Fatalf("got %d build files and %d file refs, want %d of each",
			len(doc.BuildFiles), len(doc.FileRefs), len(twoFiles))
	}
	for i, f := range twoFiles {
		bf, ref := doc.BuildFiles[i], doc.FileRefs[i]
		if bf.FileRefID != ref.ID {
			t.Errorf("entry %d: build file points at %s, file ref is %s", i, bf.FileRefID, ref.ID)
		}
		if ref.ID != pbxid.FileRef(f.RelPath) {
			t.Errorf("entry %d: file ref ID %s, want %s", i, ref.ID, pbxid.FileRef(f.RelPath))
		}
		if bf.ID != pbxid.BuildFile(f.RelPath) {
			t.Errorf("entry %d: build file ID %s, want %s", i, bf.ID, pbxid.BuildFile(f.RelPath))
		}
		if ref.Path != f.RelPath || ref.Name != f.Name || bf.Name != f.Name {
			t.Errorf("entry %d: names/paths do not match source file %v", i, f)
		}
	}

	if len(doc.Locales) != 2 || doc.Locales[0].Code != "en" || doc.Locales[1].Code != "pl" {
		t.Errorf("Locales = %v", doc.Locales)
	}
	if doc.Locales[0].ID != "F64E914FC67FE3B6AB7D6ADE" {
		t.Errorf("en locale ref ID = %s", doc.Locales[0].ID)
	}
}

func TestEncodeDeterminism(t *testing.T) {
	t.Parallel()

	first := Encode(buildDefault(twoFiles...))
	second := Encode(buildDefault(twoFiles...))
	if first != second {
		t.Error("encoding the same document twice produced different output")
	}
}

func TestEncodeTwoFiles(t *testing.T) {
	t.Parallel()

	out := Encode(buildDefault(twoFiles...))

	// Exact build-file entries, derived identifiers included.
	wantLines := []string{
		"\t\t5F9D7383EA238B84ADCEAB19 /* Main.swift in Sources */ = {isa = PBXBuildFile; fileRef = 9149ECFE20B8F88D1E23E22E /* Main.swift */; };\n",
		"\t\t81F67412A6B982D16FAC0A57 /* Home.swift in Sources */ = {isa = PBXBuildFile; fileRef = CE6A2E2F29C721CFFC7E278C /* Home.swift */; };\n",
		"\t\t9149ECFE20B8F88D1E23E22E /* Main.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = \"DuEasy/Main.swift\"; sourceTree = SOURCE_ROOT; };\n",
		"\t\tCE6A2E2F29C721CFFC7E278C /* Home.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = \"DuEasy/Views/Home.swift\"; sourceTree = SOURCE_ROOT; };\n",
		"\t\t\t\t9149ECFE20B8F88D1E23E22E /* Main.swift */,\n",
		"\t\t\t\t5F9D7383EA238B84ADCEAB19 /* Main.swift in Sources */,\n",
		"\t\t\t\t81F67412A6B982D16FAC0A57 /* Home.swift in Sources */,\n",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("output missing line %q", line)
		}
	}

	// Each dynamic list holds exactly one entry per file.
	counts := map[string]int{
		"in Sources */ = {isa = PBXBuildFile": 2,
		"sourceTree = SOURCE_ROOT":            2,
		"in Sources */,":                      2,
	}
	for marker, want := range counts {
		if got := strings.Count(out, marker); got != want {
			t.Errorf("marker %q appears %d times, want %d", marker, got, want)
		}
	}
}

func TestEncodeSectionOrder(t *testing.T) {
	t.Parallel()

	out := Encode(buildDefault(twoFiles...))

	sections := []string{
		"PBXBuildFile",
		"PBXFileReference",
		"PBXFrameworksBuildPhase",
		"PBXGroup",
		"PBXVariantGroup",
		"PBXNativeTarget",
		"PBXProject",
		"PBXResourcesBuildPhase",
		"PBXSourcesBuildPhase",
		"XCBuildConfiguration",
		"XCConfigurationList",
	}
	last := -1
	for _, name := range sections {
		begin := fmt.Sprintf("/* Begin %s section */", name)
		end := fmt.Sprintf("/* End %s section */", name)
		bi := strings.Index(out, begin)
		ei := strings.Index(out, end)
		if bi < 0 || ei < 0 {
			t.Fatalf("section %s missing", name)
		}
		if bi < last {
			t.Errorf("section %s out of order", name)
		}
		if ei < bi {
			t.Errorf("section %s end precedes begin", name)
		}
		last = bi
	}
}

func TestEncodeStaticContent(t *testing.T) {
	t.Parallel()

	out := Encode(buildDefault(twoFiles...))

	static := []string{
		"// !$*UTF8*$!\n{\n\tarchiveVersion = 1;\n",
		"\tobjectVersion = 56;\n",
		"E1000004282F0004 /* Assets.xcassets */",
		"E1000006282F0006 /* Preview Assets.xcassets */",
		"E1000008282F0008 /* Info.plist */",
		"E100001B282F001B /* Localizable.strings */ = {\n\t\t\tisa = PBXVariantGroup;\n",
		"\t\t\tdevelopmentRegion = en;\n",
		"\t\t\t\ten,\n\t\t\t\tBase,\n\t\t\t\tpl,\n",
		"ASETCATALOG_COMPILER_GENERATE_SWIFT_ASSET_SYMBOL_EXTENSIONS = YES;\n",
		"\t\t\t\tSWIFT_OPTIMIZATION_LEVEL = \"-Onone\";\n",
		"\t\t\t\tSWIFT_COMPILATION_MODE = wholemodule;\n",
		"\t\t\t\tPRODUCT_BUNDLE_IDENTIFIER = com.dueasy.app;\n",
		"\t\t\t\tIPHONEOS_DEPLOYMENT_TARGET = 17.0;\n",
		"\t\t\t\tDEVELOPMENT_ASSET_PATHS = \"\\\"DuEasy/Preview Content\\\"\";\n",
		"\trootObject = E1000012282F0012 /* Project object */;\n}\n",
	}
	for _, want := range static {
		if !strings.Contains(out, want) {
			t.Errorf("output missing static content %q", want)
		}
	}

	// Debug and Release variants of both configuration levels.
	for _, id := range []string{
		"E1000014282F0014 /* Debug */",
		"E1000015282F0015 /* Release */",
		"E1000016282F0016 /* Debug */",
		"E1000017282F0017 /* Release */",
	} {
		if !strings.Contains(out, id) {
			t.Errorf("output missing configuration block %q", id)
		}
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	t.Parallel()

	out := Encode(buildDefault())

	if strings.Contains(out, "in Sources */") {
		t.Error("empty input produced source entries")
	}
	for _, name := range []string{"PBXBuildFile", "PBXFileReference", "PBXSourcesBuildPhase", "XCBuildConfiguration"} {
		if !strings.Contains(out, fmt.Sprintf("/* Begin %s section */", name)) {
			t.Errorf("empty input dropped section %s", name)
		}
	}
	// Resource build files are static and must survive an empty tree.
	if !strings.Contains(out, "E1000003282F0003 /* Assets.xcassets in Resources */") {
		t.Error("empty input dropped the assets build file")
	}
}

func TestEncodeCustomApp(t *testing.T) {
	t.Parallel()

	cfg := project.Default()
	cfg.AppName = "Ledger"
	cfg.BundleID = "com.example.ledger"
	cfg.Locales = []string{"en"}
	cfg.CameraUsage = "Ledger scans receipts with your camera."
	cfg.CalendarsUsage = "Ledger schedules reminders in your calendar."

	files := []discover.SourceFile{{Name: "App.swift", RelPath: "Ledger/App.swift"}}
	out := Encode(Build(files, cfg, pbxid.DefaultStructure()))

	for _, want := range []string{
		"path = \"Ledger/App.swift\";",
		"productName = Ledger;",
		"PRODUCT_BUNDLE_IDENTIFIER = com.example.ledger;\n",
		"Ledger.app",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "DuEasy") {
		t.Error("custom app output still mentions the default app name")
	}
	if strings.Contains(out, "\t\t\t\tpl,\n") {
		t.Error("single-locale output still lists pl")
	}
}
