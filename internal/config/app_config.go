// Package config loads lsdir defaults from an explicitly named configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/temirov/lsdir/internal/types"
)

// defaultConfigType is used for configuration files whose extension viper does not recognize.
const defaultConfigType = "yaml"

// LoadOptions controls how application configuration is located.
type LoadOptions struct {
	// WorkingDirectory resolves a relative ExplicitFilePath.
	WorkingDirectory string
	// ExplicitFilePath names the configuration file. When empty nothing is read.
	ExplicitFilePath string
}

// ApplicationConfiguration holds listing defaults. Nil pointers mean "not set".
type ApplicationConfiguration struct {
	ShowAll *bool  `mapstructure:"show_all"`
	Format  string `mapstructure:"format"`
}

// LoadApplicationConfiguration reads the file named by options.ExplicitFilePath.
// No other file is consulted.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	if options.ExplicitFilePath == "" {
		return ApplicationConfiguration{}, nil
	}
	path := options.ExplicitFilePath
	if !filepath.IsAbs(path) && options.WorkingDirectory != "" {
		path = filepath.Join(options.WorkingDirectory, path)
	}

	loaded, loadErr := loadConfigurationFromPath(path)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	if loaded.Format != "" && !types.IsSupportedFormat(loaded.Format) {
		return ApplicationConfiguration{}, fmt.Errorf("unsupported format %q in configuration %s", loaded.Format, path)
	}
	return loaded, nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if !slices.Contains(viper.SupportedExts, strings.TrimPrefix(filepath.Ext(path), ".")) {
		reader.SetConfigType(defaultConfigType)
	}
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	config.Format = strings.ToLower(strings.TrimSpace(config.Format))
	return config, nil
}

// ShowAllOrDefault returns the configured show_all value or fallback when unset.
func (config ApplicationConfiguration) ShowAllOrDefault(fallback bool) bool {
	if config.ShowAll == nil {
		return fallback
	}
	return *config.ShowAll
}

// FormatOrDefault returns the configured format or fallback when unset.
func (config ApplicationConfiguration) FormatOrDefault(fallback string) string {
	if config.Format == "" {
		return fallback
	}
	return config.Format
}
