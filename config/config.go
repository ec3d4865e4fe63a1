package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/svcman/errors"
	"github.com/grovetools/svcman/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// ConfigFileNames are the project file names searched for, in priority order.
var ConfigFileNames = []string{
	"svcman.yml",
	"svcman.yaml",
	".svcman.yml",
	".svcman.yaml",
	"svcman.toml",
}

var overrideFileNames = []string{
	"svcman.override.yml",
	"svcman.override.yaml",
	"svcman.override.toml",
}

// Load reads a single configuration file and applies defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the configuration for the current working directory:
// 1. Global config ($XDG_CONFIG_HOME/svcman/svcman.yml) - base layer
// 2. Project config (svcman.yml, searched upward) - overrides global
// 3. Local override (svcman.override.yml next to the project file)
// A missing configuration is not an error; defaults are returned.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads merged configuration starting the project search at startDir.
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger is LoadFrom with an explicit logger for discovery tracing.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	finalConfig := &Config{}

	globalPath := findInDir(paths.ConfigDir(), ConfigFileNames)
	if globalPath != "" {
		logger.WithField("path", globalPath).Debug("Loading global configuration")
		globalConfig, err := loadLayer(globalPath)
		if err != nil {
			return nil, err
		}
		finalConfig = mergeConfigs(finalConfig, globalConfig)
	}

	projectPath := findUpward(startDir)
	if projectPath != "" && !samePath(projectPath, globalPath) {
		logger.WithField("path", projectPath).Debug("Loading project configuration")
		projectConfig, err := loadLayer(projectPath)
		if err != nil {
			return nil, err
		}
		finalConfig = mergeConfigs(finalConfig, projectConfig)

		if overridePath := findInDir(filepath.Dir(projectPath), overrideFileNames); overridePath != "" {
			logger.WithField("path", overridePath).Debug("Applying override configuration")
			overrideConfig, err := loadLayer(overridePath)
			if err != nil {
				return nil, err
			}
			finalConfig = mergeConfigs(finalConfig, overrideConfig)
		}
	}

	if len(finalConfig.Sources) == 0 {
		logger.Debug("No configuration file found, using defaults")
	}

	finalConfig.SetDefaults()
	if err := finalConfig.Validate(); err != nil {
		return nil, err
	}
	return finalConfig, nil
}

// LoadFromBytes parses, validates and defaults a configuration document.
// format is "yaml" or "toml".
func LoadFromBytes(data []byte, format string) (*Config, error) {
	cfg, err := parseDocument(data, format, "<bytes>")
	if err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile returns the nearest project configuration file at or above
// startDir, falling back to the global configuration file.
func FindConfigFile(startDir string) (string, error) {
	if path := findUpward(startDir); path != "" {
		return path, nil
	}
	if path := findInDir(paths.ConfigDir(), ConfigFileNames); path != "" {
		return path, nil
	}
	return "", errors.ConfigNotFound(startDir)
}

// FormatForPath returns the document format implied by a file extension.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// ReadDocument reads a configuration file into a generic map after
// environment expansion, without validation.
func ReadDocument(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}
	return decodeRaw([]byte(expandEnvVars(string(data))), FormatForPath(path), path)
}

func loadLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := parseDocument(data, FormatForPath(path), path)
	if err != nil {
		return nil, err
	}
	cfg.Sources = []string{path}
	return cfg, nil
}

func parseDocument(data []byte, format, origin string) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	raw, err := decodeRaw(expanded, format, origin)
	if err != nil {
		return nil, err
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to build configuration schema")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.ConfigValidation(origin, err)
	}

	var cfg Config
	switch format {
	case "toml":
		if err := toml.Unmarshal(expanded, &cfg); err != nil {
			return nil, parseError(origin, err)
		}
		for key, value := range raw {
			if reservedKeys[key] {
				continue
			}
			if cfg.Extensions == nil {
				cfg.Extensions = make(map[string]interface{})
			}
			cfg.Extensions[key] = value
		}
	default:
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, parseError(origin, err)
		}
	}
	return &cfg, nil
}

func decodeRaw(data []byte, format, origin string) (map[string]interface{}, error) {
	raw := make(map[string]interface{})
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}

	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &raw)
	case "yaml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unsupported config format %q", format))
	}
	if err != nil {
		return nil, parseError(origin, err)
	}
	return raw, nil
}

func parseError(origin string, err error) error {
	return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config").
		WithDetail("path", origin)
}

func findUpward(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}
	for {
		if path := findInDir(dir, ConfigFileNames); path != "" {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func findInDir(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} references.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
