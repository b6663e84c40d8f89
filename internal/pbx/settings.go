package pbx

import "fmt"

// setting is one buildSettings entry. value is emitted verbatim after the
// equals sign (quoting included, where Xcode quotes); a non-nil list is
// rendered as a parenthesized multi-line value instead.
type setting struct {
	key   string
	value string
	list  []string
}

// projectSettings returns the project-level buildSettings for the Debug or
// Release configuration. The two variants share a common base; the order
// and spelling of keys (including the historical ASETCATALOG misspelling)
// match the manifest the consuming project already carries.
func (d *Document) projectSettings(debug bool) []setting {
	s := []setting{
		{key: "ALWAYS_SEARCH_USER_PATHS", value: "NO"},
		{key: "ASETCATALOG_COMPILER_GENERATE_SWIFT_ASSET_SYMBOL_EXTENSIONS", value: "YES"},
		{key: "CLANG_ANALYZER_NONNULL", value: "YES"},
		{key: "CLANG_ANALYZER_NUMBER_OBJECT_CONVERSION", value: "YES_AGGRESSIVE"},
		{key: "CLANG_CXX_LANGUAGE_STANDARD", value: `"gnu++20"`},
		{key: "CLANG_ENABLE_MODULES", value: "YES"},
		{key: "CLANG_ENABLE_OBJC_ARC", value: "YES"},
		{key: "CLANG_ENABLE_OBJC_WEAK", value: "YES"},
		{key: "CLANG_WARN_BLOCK_CAPTURE_AUTORELEASING", value: "YES"},
		{key: "CLANG_WARN_BOOL_CONVERSION", value: "YES"},
		{key: "CLANG_WARN_COMMA", value: "YES"},
		{key: "CLANG_WARN_CONSTANT_CONVERSION", value: "YES"},
		{key: "CLANG_WARN_DEPRECATED_OBJC_IMPLEMENTATIONS", value: "YES"},
		{key: "CLANG_WARN_DIRECT_OBJC_ISA_USAGE", value: "YES_ERROR"},
		{key: "CLANG_WARN_DOCUMENTATION_COMMENTS", value: "YES"},
		{key: "CLANG_WARN_EMPTY_BODY", value: "YES"},
		{key: "CLANG_WARN_ENUM_CONVERSION", value: "YES"},
		{key: "CLANG_WARN_INFINITE_RECURSION", value: "YES"},
		{key: "CLANG_WARN_INT_CONVERSION", value: "YES"},
		{key: "CLANG_WARN_NON_LITERAL_NULL_CONVERSION", value: "YES"},
		{key: "CLANG_WARN_OBJC_IMPLICIT_RETAIN_SELF", value: "YES"},
		{key: "CLANG_WARN_OBJC_LITERAL_CONVERSION", value: "YES"},
		{key: "CLANG_WARN_OBJC_ROOT_CLASS", value: "YES_ERROR"},
		{key: "CLANG_WARN_QUOTED_INCLUDE_IN_FRAMEWORK_HEADER", value: "YES"},
		{key: "CLANG_WARN_RANGE_LOOP_ANALYSIS", value: "YES"},
		{key: "CLANG_WARN_STRICT_PROTOTYPES", value: "YES"},
		{key: "CLANG_WARN_SUSPICIOUS_MOVE", value: "YES"},
		{key: "CLANG_WARN_UNGUARDED_AVAILABILITY", value: "YES_AGGRESSIVE"},
		{key: "CLANG_WARN_UNREACHABLE_CODE", value: "YES"},
		{key: "CLANG_WARN__DUPLICATE_METHOD_MATCH", value: "YES"},
		{key: "COPY_PHASE_STRIP", value: "NO"},
	}

	if debug {
		s = append(s, setting{key: "DEBUG_INFORMATION_FORMAT", value: "dwarf"})
	} else {
		s = append(s,
			setting{key: "DEBUG_INFORMATION_FORMAT", value: `"dwarf-with-dsym"`},
			setting{key: "ENABLE_NS_ASSERTIONS", value: "NO"},
		)
	}

	s = append(s, setting{key: "ENABLE_STRICT_OBJC_MSGSEND", value: "YES"})
	if debug {
		s = append(s, setting{key: "ENABLE_TESTABILITY", value: "YES"})
	}
	s = append(s,
		setting{key: "ENABLE_USER_SCRIPT_SANDBOXING", value: "YES"},
		setting{key: "GCC_C_LANGUAGE_STANDARD", value: "gnu17"},
	)
	if debug {
		s = append(s, setting{key: "GCC_DYNAMIC_NO_PIC", value: "NO"})
	}
	s = append(s, setting{key: "GCC_NO_COMMON_BLOCKS", value: "YES"})
	if debug {
		s = append(s,
			setting{key: "GCC_OPTIMIZATION_LEVEL", value: "0"},
			setting{key: "GCC_PREPROCESSOR_DEFINITIONS", list: []string{`"DEBUG=1"`, `"$(inherited)"`}},
		)
	}
	s = append(s,
		setting{key: "GCC_WARN_64_TO_32_BIT_CONVERSION", value: "YES"},
		setting{key: "GCC_WARN_ABOUT_RETURN_TYPE", value: "YES_ERROR"},
		setting{key: "GCC_WARN_UNDECLARED_SELECTOR", value: "YES"},
		setting{key: "GCC_WARN_UNINITIALIZED_AUTOS", value: "YES_AGGRESSIVE"},
		setting{key: "GCC_WARN_UNUSED_FUNCTION", value: "YES"},
		setting{key: "GCC_WARN_UNUSED_VARIABLE", value: "YES"},
		setting{key: "IPHONEOS_DEPLOYMENT_TARGET", value: d.DeploymentTarget},
		setting{key: "LOCALIZATION_PREFERS_STRING_CATALOGS", value: "YES"},
	)
	if debug {
		s = append(s, setting{key: "MTL_ENABLE_DEBUG_INFO", value: "INCLUDE_SOURCE"})
	} else {
		s = append(s, setting{key: "MTL_ENABLE_DEBUG_INFO", value: "NO"})
	}
	s = append(s, setting{key: "MTL_FAST_MATH", value: "YES"})
	if debug {
		s = append(s, setting{key: "ONLY_ACTIVE_ARCH", value: "YES"})
	}
	s = append(s, setting{key: "SDKROOT", value: "iphoneos"})
	if debug {
		s = append(s,
			setting{key: "SWIFT_ACTIVE_COMPILATION_CONDITIONS", value: `"DEBUG $(inherited)"`},
			setting{key: "SWIFT_OPTIMIZATION_LEVEL", value: `"-Onone"`},
		)
	} else {
		s = append(s,
			setting{key: "SWIFT_COMPILATION_MODE", value: "wholemodule"},
			setting{key: "VALIDATE_PRODUCT", value: "YES"},
		)
	}

	return s
}

// targetSettings returns the target-level buildSettings; Debug and Release
// use the same list.
func (d *Document) targetSettings() []setting {
	return []setting{
		{key: "ASETCATALOG_COMPILER_APPICON_NAME", value: "AppIcon"},
		{key: "ASETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME", value: "AccentColor"},
		{key: "CODE_SIGN_STYLE", value: "Automatic"},
		{key: "CURRENT_PROJECT_VERSION", value: "1"},
		{key: "DEVELOPMENT_ASSET_PATHS", value: fmt.Sprintf(`"\"%s/%s\""`, d.App, d.ExcludeDir)},
		{key: "ENABLE_PREVIEWS", value: "YES"},
		{key: "GENERATE_INFOPLIST_FILE", value: "YES"},
		{key: "INFOPLIST_FILE", value: d.App + "/Info.plist"},
		{key: "INFOPLIST_KEY_CFBundleDisplayName", value: d.App},
		{key: "INFOPLIST_KEY_LSApplicationCategoryType", value: fmt.Sprintf("%q", d.AppCategory)},
		{key: "INFOPLIST_KEY_NSCameraUsageDescription", value: fmt.Sprintf("%q", d.CameraUsage)},
		{key: "INFOPLIST_KEY_NSCalendarsUsageDescription", value: fmt.Sprintf("%q", d.CalendarsUsage)},
		{key: "INFOPLIST_KEY_UIApplicationSceneManifest_Generation", value: "YES"},
		{key: "INFOPLIST_KEY_UIApplicationSupportsIndirectInputEvents", value: "YES"},
		{key: "INFOPLIST_KEY_UILaunchScreen_Generation", value: "YES"},
		{key: "INFOPLIST_KEY_UISupportedInterfaceOrientations_iPad", value: `"UIInterfaceOrientationPortrait UIInterfaceOrientationPortraitUpsideDown UIInterfaceOrientationLandscapeLeft UIInterfaceOrientationLandscapeRight"`},
		{key: "INFOPLIST_KEY_UISupportedInterfaceOrientations_iPhone", value: `"UIInterfaceOrientationPortrait UIInterfaceOrientationLandscapeLeft UIInterfaceOrientationLandscapeRight"`},
		{key: "LD_RUNPATH_SEARCH_PATHS", list: []string{`"$(inherited)"`, `"@executable_path/Frameworks"`}},
		{key: "MARKETING_VERSION", value: d.MarketingVersion},
		{key: "PRODUCT_BUNDLE_IDENTIFIER", value: d.BundleID},
		{key: "PRODUCT_NAME", value: `"$(TARGET_NAME)"`},
		{key: "SWIFT_EMIT_LOC_STRINGS", value: "YES"},
		{key: "SWIFT_VERSION", value: "5.0"},
		{key: "TARGETED_DEVICE_FAMILY", value: `"1,2"`},
	}
}
