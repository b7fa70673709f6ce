package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/webwatch/internal/errorwrapper"
	"gopkg.in/yaml.v3"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. -config command-line flag
// 2. WEBWATCH_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// 4. config.yaml / config.json in the executable's directory
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if _, err := os.Stat(configFilePathFlag); err == nil {
			return configFilePathFlag
		}
	}

	envPath := os.Getenv("WEBWATCH_CONFIG_PATH")
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	cwd, errCwd := os.Getwd()
	exePath, errExe := os.Executable()
	exeDir := ""
	if errExe == nil {
		exeDir = filepath.Dir(exePath)
	}

	defaultFiles := []string{"config.yaml", "config.json"}
	locations := []string{}

	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if errExe == nil && exeDir != "" && (errCwd != nil || exeDir != cwd) {
		locations = append(locations, exeDir)
	}

	for _, loc := range locations {
		for _, file := range defaultFiles {
			path := filepath.Join(loc, file)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// LoadGlobalConfig loads the global configuration. When no file is found the
// defaults are returned unchanged. The loaded config is validated before being
// returned.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "config validation failed")
	}

	return cfg, nil
}

// parseConfigContent decodes YAML or JSON depending on the file extension.
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return errorwrapper.WrapError(err, "invalid JSON config")
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errorwrapper.WrapError(err, "invalid YAML config")
		}
	}
	return nil
}
