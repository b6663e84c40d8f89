// Package project handles generator configuration using Viper.
package project

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "projgen"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "PROJGEN"
)

// Config holds the project knobs that feed the generated manifest. Every
// field has a default matching the DuEasy app, so running with no config
// file reproduces the manifest the repository has always carried.
type Config struct {
	// AppName names the app: it is the source subdirectory scanned for
	// sources, the target name, and the product name.
	AppName string `mapstructure:"app_name" toml:"app_name"`
	// BundleID is the product bundle identifier.
	BundleID string `mapstructure:"bundle_id" toml:"bundle_id"`
	// SourceExt is the source file extension, including the dot.
	SourceExt string `mapstructure:"source_ext" toml:"source_ext"`
	// ExcludeDir is a directory name skipped during discovery at any depth.
	ExcludeDir string `mapstructure:"exclude_dir" toml:"exclude_dir"`
	// Output is the manifest path relative to the base directory. Empty
	// means "<AppName>.xcodeproj/project.pbxproj".
	Output string `mapstructure:"output" toml:"output"`
	// Locales lists the localization variants; the first entry is the
	// development region.
	Locales []string `mapstructure:"locales" toml:"locales"`

	DeploymentTarget string `mapstructure:"deployment_target" toml:"deployment_target"`
	MarketingVersion string `mapstructure:"marketing_version" toml:"marketing_version"`
	AppCategory      string `mapstructure:"app_category" toml:"app_category"`
	CameraUsage      string `mapstructure:"camera_usage" toml:"camera_usage"`
	CalendarsUsage   string `mapstructure:"calendars_usage" toml:"calendars_usage"`
}

// Default returns the configuration for the DuEasy app.
func Default() Config {
	return Config{
		AppName:          "DuEasy",
		BundleID:         "com.dueasy.app",
		SourceExt:        ".swift",
		ExcludeDir:       "Preview Content",
		Locales:          []string{"en", "pl"},
		DeploymentTarget: "17.0",
		MarketingVersion: "1.0",
		AppCategory:      "public.app-category.productivity",
		CameraUsage:      "DuEasy uses your camera to scan documents like invoices and receipts.",
		CalendarsUsage:   "DuEasy adds payment due dates to your calendar so you never miss a deadline.",
	}
}

// OutputPath returns the manifest path relative to the base directory,
// applying the default when Output is unset.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return path.Join(c.AppName+".xcodeproj", "project.pbxproj")
}

// Load resolves the configuration for baseDir: defaults, then an optional
// projgen.toml in the base directory (or the explicit configFile), then
// PROJGEN_* environment variables. A missing config file is not an error.
// The returned path names the config file actually read, or "" if none.
func Load(baseDir, configFile string) (Config, string, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("app_name", defaults.AppName)
	v.SetDefault("bundle_id", defaults.BundleID)
	v.SetDefault("source_ext", defaults.SourceExt)
	v.SetDefault("exclude_dir", defaults.ExcludeDir)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("locales", defaults.Locales)
	v.SetDefault("deployment_target", defaults.DeploymentTarget)
	v.SetDefault("marketing_version", defaults.MarketingVersion)
	v.SetDefault("app_category", defaults.AppCategory)
	v.SetDefault("camera_usage", defaults.CameraUsage)
	v.SetDefault("calendars_usage", defaults.CalendarsUsage)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(baseDir)
	}

	resolvedPath := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		// No config file found, use defaults.
	} else {
		resolvedPath = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, "", err
	}

	return cfg, resolvedPath, nil
}

func (c Config) validate() error {
	if c.AppName == "" {
		return errors.New("config: app_name must not be empty")
	}
	if !strings.HasPrefix(c.SourceExt, ".") {
		return fmt.Errorf("config: source_ext %q must start with a dot", c.SourceExt)
	}
	if len(c.Locales) == 0 {
		return errors.New("config: at least one locale is required")
	}
	return nil
}
