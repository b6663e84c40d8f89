package pbx

import (
	"fmt"
	"path"
	"strings"
)

// Encode renders the document into the pbxproj text grammar: tab
// indentation, `/* name */` comments after identifiers, and trailing
// semicolons. Xcode rejects manifests that deviate from this shape, so
// every section renderer emits it byte-exactly. Sections appear in the
// fixed order Xcode writes them.
func Encode(doc *Document) string {
	var b strings.Builder

	b.WriteString("// !$*UTF8*$!\n")
	b.WriteString("{\n")
	b.WriteString("\tarchiveVersion = 1;\n")
	b.WriteString("\tclasses = {\n")
	b.WriteString("\t};\n")
	b.WriteString("\tobjectVersion = 56;\n")
	b.WriteString("\tobjects = {\n\n")

	sections := []func(*strings.Builder, *Document){
		buildFileSection,
		fileReferenceSection,
		frameworksPhaseSection,
		groupSection,
		variantGroupSection,
		nativeTargetSection,
		projectSection,
		resourcesPhaseSection,
		sourcesPhaseSection,
		buildConfigurationSection,
		configurationListSection,
	}
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		section(&b, doc)
	}

	b.WriteString("\t};\n")
	fmt.Fprintf(&b, "\trootObject = %s /* Project object */;\n", doc.IDs.Project)
	b.WriteString("}\n")

	return b.String()
}

func buildFileSection(b *strings.Builder, doc *Document) {
	b.WriteString("/* Begin PBXBuildFile section */\n")
	for _, bf := range doc.BuildFiles {
		fmt.Fprintf(b, "\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
			bf.ID, bf.Name, bf.FileRefID, bf.Name)
	}
	ids := doc.IDs
	fmt.Fprintf(b, "\t\t%s /* Assets.xcassets in Resources */ = {isa = PBXBuildFile; fileRef = %s /* Assets.xcassets */; };\n",
		ids.AssetsBuild, ids.AssetsRef)
	fmt.Fprintf(b, "\t\t%s /* Preview Assets.xcassets in Resources */ = {isa = PBXBuildFile; fileRef = %s /* Preview Assets.xcassets */; };\n",
		ids.PreviewAssetsBuild, ids.PreviewAssetsRef)
	fmt.Fprintf(b, "\t\t%s /* Localizable.strings in Resources */ = {isa = PBXBuildFile; fileRef = %s /* Localizable.strings */; };\n",
		ids.LocalizableBuild, ids.LocalizableGroup)
	b.WriteString("/* End PBXBuildFile section */\n")
}

func fileReferenceSection(b *strings.Builder, doc *Document) {
	b.WriteString("/* Begin PBXFileReference section */\n")
	for _, ref := range doc.FileRefs {
		fmt.Fprintf(b, "\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = \"%s\"; sourceTree = SOURCE_ROOT; };\n",
			ref.ID, ref.Name, fileType(path.Ext(ref.Path)), ref.Path)
	}
	ids := doc.IDs
	fmt.Fprintf(b, "\t\t%s /* %s.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; path = %s.app; sourceTree = BUILT_PRODUCTS_DIR; };\n",
		ids.Product, doc.App, doc.App)
	fmt.Fprintf(b, "\t\t%s /* Assets.xcassets */ = {isa = PBXFileReference; lastKnownFileType = folder.assetcatalog; path = Assets.xcassets; sourceTree = \"<group>\"; };\n",
		ids.AssetsRef)
	fmt.Fprintf(b, "\t\t%s /* Preview Assets.xcassets */ = {isa = PBXFileReference; lastKnownFileType = folder.assetcatalog; path = \"Preview Assets.xcassets\"; sourceTree = \"<group>\"; };\n",
		ids.PreviewAssetsRef)
	fmt.Fprintf(b, "\t\t%s /* Info.plist */ = {isa = PBXFileReference; lastKnownFileType = text.plist.xml; path = Info.plist; sourceTree = \"<group>\"; };\n",
		ids.InfoPlistRef)
	for _, loc := range doc.Locales {
		fmt.Fprintf(b, "\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = text.plist.strings; name = %s; path = %s.lproj/Localizable.strings; sourceTree = \"<group>\"; };\n",
			loc.ID, loc.Code, loc.Code, loc.Code)
	}
	b.WriteString("/* End PBXFileReference section */\n")
}

func frameworksPhaseSection(b *strings.Builder, doc *Document) {
	b.WriteString("/* Begin PBXFrameworksBuildPhase section */\n")
	fmt.Fprintf(b, "\t\t%s /* Frameworks */ = {\n", doc.IDs.FrameworksPhase)
	b.WriteString("\t\t\tisa = PBXFrameworksBuildPhase;\n")
	b.WriteString("\t\t\tbuildActionMask = 2147483647;\n")
	b.WriteString("\t\t\tfiles = (\n")
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXFrameworksBuildPhase section */\n")
}

func groupSection(b *strings.Builder, doc *Document) {
	ids := doc.IDs
	b.WriteString("/* Begin PBXGroup section */\n")

	fmt.Fprintf(b, "\t\t%s = {\n", ids.MainGroup)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", ids.AppGroup, doc.App)
	fmt.Fprintf(b, "\t\t\t\t%s /* Products */,\n", ids.ProductsGroup)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	fmt.Fprintf(b, "\t\t%s /* Products */ = {\n", ids.ProductsGroup)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* %s.app */,\n", ids.Product, doc.App)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tname = Products;\n")
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", ids.AppGroup, doc.App)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	for _, ref := range doc.FileRefs {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", ref.ID, ref.Name)
	}
	fmt.Fprintf(b, "\t\t\t\t%s /* Info.plist */,\n", ids.InfoPlistRef)
	fmt.Fprintf(b, "\t\t\t\t%s /* Assets.xcassets */,\n", ids.AssetsRef)
	fmt.Fprintf(b, "\t\t\t\t%s /* Resources */,\n", ids.ResourcesGroup)
	fmt.Fprintf(b, "\t\t\t\t%s /* Preview Content */,\n", ids.PreviewContentGroup)
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tpath = %s;\n", doc.App)
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	fmt.Fprintf(b, "\t\t%s /* Resources */ = {\n", ids.ResourcesGroup)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* Localizable.strings */,\n", ids.LocalizableGroup)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tpath = Resources;\n")
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	fmt.Fprintf(b, "\t\t%s /* Preview Content */ = {\n", ids.PreviewContentGroup)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* Preview Assets.xcassets */,\n", ids.PreviewAssetsRef)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tpath = \"Preview Content\";\n")
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	b.WriteString("/* End PBXGroup section */\n")
}

func variantGroupSection(b *strings.Builder, doc *Document) {
	b.WriteString("/* Begin PBXVariantGroup section */\n")
	fmt.Fprintf(b, "\t\t%s /* Localizable.strings */ = {\n", doc.IDs.LocalizableGroup)
	b.WriteString("\t\t\tisa = PBXVariantGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	for _, loc := range doc.Locales {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", loc.ID, loc.Code)
	}
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tname = Localizable.strings;\n")
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXVariantGroup section */\n")
}

func nativeTargetSection(b *strings.Builder, doc *Document) {
	ids := doc.IDs
	b.WriteString("/* Begin PBXNativeTarget section */\n")
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", ids.Target, doc.App)
	b.WriteString("\t\t\tisa = PBXNativeTarget;\n")
	fmt.Fprintf(b, "\t\t\tbuildConfigurationList = %s /* Build configuration list for PBXNativeTarget \"%s\" */;\n",
		ids.TargetConfigList, doc.App)
	b.WriteString("\t\t\tbuildPhases = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* Sources */,\n", ids.SourcesPhase)
	fmt.Fprintf(b, "\t\t\t\t%s /* Frameworks */,\n", ids.FrameworksPhase)
	fmt.Fprintf(b, "\t\t\t\t%s /* Resources */,\n", ids.ResourcesPhase)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tbuildRules = (\n")
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tdependencies = (\n")
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tname = %s;\n", doc.App)
	fmt.Fprintf(b, "\t\t\tproductName = %s;\n", doc.App)
	fmt.Fprintf(b, "\t\t\tproductReference = %s /* %s.app */;\n", ids.Product, doc.App)
	b.WriteString("\t\t\tproductType = \"com.apple.product-type.application\";\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXNativeTarget section */\n")
}

func projectSection(b *strings.Builder, doc *Document) {
	ids := doc.IDs
	b.WriteString("/* Begin PBXProject section */\n")
	fmt.Fprintf(b, "\t\t%s /* Project object */ = {\n", ids.Project)
	b.WriteString("\t\t\tisa = PBXProject;\n")
	b.WriteString("\t\t\tattributes = {\n")
	b.WriteString("\t\t\t\tBuildIndependentTargetsInParallel = 1;\n")
	b.WriteString("\t\t\t\tLastSwiftUpdateCheck = 1500;\n")
	b.WriteString("\t\t\t\tLastUpgradeCheck = 1500;\n")
	b.WriteString("\t\t\t\tTargetAttributes = {\n")
	fmt.Fprintf(b, "\t\t\t\t\t%s = {\n", ids.Target)
	b.WriteString("\t\t\t\t\t\tCreatedOnToolsVersion = 15.0;\n")
	b.WriteString("\t\t\t\t\t};\n")
	b.WriteString("\t\t\t\t};\n")
	b.WriteString("\t\t\t};\n")
	fmt.Fprintf(b, "\t\t\tbuildConfigurationList = %s /* Build configuration list for PBXProject \"%s\" */;\n",
		ids.ProjectConfigList, doc.App)
	b.WriteString("\t\t\tcompatibilityVersion = \"Xcode 14.0\";\n")
	fmt.Fprintf(b, "\t\t\tdevelopmentRegion = %s;\n", doc.Locales[0].Code)
	b.WriteString("\t\t\thasScannedForEncodings = 0;\n")
	b.WriteString("\t\t\tknownRegions = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s,\n", doc.Locales[0].Code)
	b.WriteString("\t\t\t\tBase,\n")
	for _, loc := range doc.Locales[1:] {
		fmt.Fprintf(b, "\t\t\t\t%s,\n", loc.Code)
	}
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tmainGroup = %s;\n", ids.MainGroup)
	fmt.Fprintf(b, "\t\t\tproductRefGroup = %s /* Products */;\n", ids.ProductsGroup)
	b.WriteString("\t\t\tprojectDirPath = \"\";\n")
	b.WriteString("\t\t\tprojectRoot = \"\";\n")
	b.WriteString("\t\t\ttargets = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", ids.Target, doc.App)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXProject section */\n")
}

func resourcesPhaseSection(b *strings.Builder, doc *Document) {
	ids := doc.IDs
	b.WriteString("/* Begin PBXResourcesBuildPhase section */\n")
	fmt.Fprintf(b, "\t\t%s /* Resources */ = {\n", ids.ResourcesPhase)
	b.WriteString("\t\t\tisa = PBXResourcesBuildPhase;\n")
	b.WriteString("\t\t\tbuildActionMask = 2147483647;\n")
	b.WriteString("\t\t\tfiles = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* Preview Assets.xcassets in Resources */,\n", ids.PreviewAssetsBuild)
	fmt.Fprintf(b, "\t\t\t\t%s /* Assets.xcassets in Resources */,\n", ids.AssetsBuild)
	fmt.Fprintf(b, "\t\t\t\t%s /* Localizable.strings in Resources */,\n", ids.LocalizableBuild)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXResourcesBuildPhase section */\n")
}

func sourcesPhaseSection(b *strings.Builder, doc *Document) {
	b.WriteString("/* Begin PBXSourcesBuildPhase section */\n")
	fmt.Fprintf(b, "\t\t%s /* Sources */ = {\n", doc.IDs.SourcesPhase)
	b.WriteString("\t\t\tisa = PBXSourcesBuildPhase;\n")
	b.WriteString("\t\t\tbuildActionMask = 2147483647;\n")
	b.WriteString("\t\t\tfiles = (\n")
	for _, bf := range doc.BuildFiles {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s in Sources */,\n", bf.ID, bf.Name)
	}
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXSourcesBuildPhase section */\n")
}

func buildConfigurationSection(b *strings.Builder, doc *Document) {
	ids := doc.IDs
	b.WriteString("/* Begin XCBuildConfiguration section */\n")
	renderConfiguration(b, ids.ProjectDebugConfig, "Debug", doc.projectSettings(true))
	renderConfiguration(b, ids.ProjectReleaseConfig, "Release", doc.projectSettings(false))
	renderConfiguration(b, ids.TargetDebugConfig, "Debug", doc.targetSettings())
	renderConfiguration(b, ids.TargetReleaseConfig, "Release", doc.targetSettings())
	b.WriteString("/* End XCBuildConfiguration section */\n")
}

func renderConfiguration(b *strings.Builder, id, name string, settings []setting) {
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", id, name)
	b.WriteString("\t\t\tisa = XCBuildConfiguration;\n")
	b.WriteString("\t\t\tbuildSettings = {\n")
	for _, s := range settings {
		if s.list != nil {
			fmt.Fprintf(b, "\t\t\t\t%s = (\n", s.key)
			for _, item := range s.list {
				fmt.Fprintf(b, "\t\t\t\t\t%s,\n", item)
			}
			b.WriteString("\t\t\t\t);\n")
			continue
		}
		fmt.Fprintf(b, "\t\t\t\t%s = %s;\n", s.key, s.value)
	}
	b.WriteString("\t\t\t};\n")
	fmt.Fprintf(b, "\t\t\tname = %s;\n", name)
	b.WriteString("\t\t};\n")
}

func configurationListSection(b *strings.Builder, doc *Document) {
	ids := doc.IDs
	b.WriteString("/* Begin XCConfigurationList section */\n")

	fmt.Fprintf(b, "\t\t%s /* Build configuration list for PBXProject \"%s\" */ = {\n", ids.ProjectConfigList, doc.App)
	b.WriteString("\t\t\tisa = XCConfigurationList;\n")
	b.WriteString("\t\t\tbuildConfigurations = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* Debug */,\n", ids.ProjectDebugConfig)
	fmt.Fprintf(b, "\t\t\t\t%s /* Release */,\n", ids.ProjectReleaseConfig)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tdefaultConfigurationIsVisible = 0;\n")
	b.WriteString("\t\t\tdefaultConfigurationName = Release;\n")
	b.WriteString("\t\t};\n")

	fmt.Fprintf(b, "\t\t%s /* Build configuration list for PBXNativeTarget \"%s\" */ = {\n", ids.TargetConfigList, doc.App)
	b.WriteString("\t\t\tisa = XCConfigurationList;\n")
	b.WriteString("\t\t\tbuildConfigurations = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* Debug */,\n", ids.TargetDebugConfig)
	fmt.Fprintf(b, "\t\t\t\t%s /* Release */,\n", ids.TargetReleaseConfig)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tdefaultConfigurationIsVisible = 0;\n")
	b.WriteString("\t\t\tdefaultConfigurationName = Release;\n")
	b.WriteString("\t\t};\n")

	b.WriteString("/* End XCConfigurationList section */\n")
}

// fileType maps a source extension to the lastKnownFileType Xcode records.
func fileType(ext string) string {
	switch ext {
	case ".swift":
		return "sourcecode.swift"
	case ".m":
		return "sourcecode.c.objc"
	case ".h":
		return "sourcecode.c.h"
	default:
		return "text"
	}
}
