package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	globalConfigDirectoryName = ".treepp"
	configFileName            = ".treepp.yaml"
)

// LoadOptions controls how file-backed defaults are discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// FileDefaults holds the subset of Config that may be overridden by a
// layered global-then-local YAML file, mirroring the merge-by-override
// shape used throughout this corpus's configuration layer. CLI flags
// always win over these; they only seed Config's zero value.
type FileDefaults struct {
	Threads      *int   `mapstructure:"threads"`
	Charset      string `mapstructure:"charset"`
	OutputFormat string `mapstructure:"output_format"`
	Gitignore    *bool  `mapstructure:"gitignore"`
	Report       *bool  `mapstructure:"report"`
}

// LoadFileDefaults loads ~/.treepp/.treepp.yaml then ./.treepp.yaml (or
// options.ExplicitFilePath in place of the local file), with the local
// file's fields overriding the global file's.
func LoadFileDefaults(options LoadOptions) (FileDefaults, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return FileDefaults{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged FileDefaults

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, globalConfigDirectoryName, configFileName)
		globalDefaults, loadErr := loadFileDefaultsFromPath(globalPath)
		if loadErr != nil {
			return FileDefaults{}, loadErr
		}
		merged = merged.merge(globalDefaults)
	}

	localPath, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return FileDefaults{}, resolveErr
	}
	if localPath != "" {
		localDefaults, loadErr := loadFileDefaultsFromPath(localPath)
		if loadErr != nil {
			return FileDefaults{}, loadErr
		}
		merged = merged.merge(localDefaults)
	}

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolute, err := filepath.Abs(explicitPath)
			if err != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
			}
			return absolute, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, configFileName), nil
}

func loadFileDefaultsFromPath(path string) (FileDefaults, error) {
	if path == "" {
		return FileDefaults{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return FileDefaults{}, nil
		}
		return FileDefaults{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return FileDefaults{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return FileDefaults{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var defaults FileDefaults
	if decodeErr := reader.Unmarshal(&defaults); decodeErr != nil {
		return FileDefaults{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return defaults, nil
}

func (d FileDefaults) merge(override FileDefaults) FileDefaults {
	result := d
	if override.Threads != nil {
		result.Threads = cloneInt(override.Threads)
	}
	if override.Charset != "" {
		result.Charset = override.Charset
	}
	if override.OutputFormat != "" {
		result.OutputFormat = override.OutputFormat
	}
	if override.Gitignore != nil {
		result.Gitignore = cloneBool(override.Gitignore)
	}
	if override.Report != nil {
		result.Report = cloneBool(override.Report)
	}
	return result
}

// ApplyTo seeds fields on cfg that the CLI layer left at their zero value,
// i.e. file defaults never override an explicit flag. Callers apply this
// before Config.Validate.
func (d FileDefaults) ApplyTo(cfg *Config, threadsExplicit, gitignoreExplicit, reportExplicit bool) {
	if d.Threads != nil && !threadsExplicit {
		cfg.Threads = *d.Threads
	}
	if d.Charset == "ascii" {
		cfg.ASCII = true
	}
	if d.Gitignore != nil && !gitignoreExplicit {
		cfg.Gitignore = *d.Gitignore
	}
	if d.Report != nil && !reportExplicit {
		cfg.Report = *d.Report
	}
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
