package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultSourceCommand = "systemctl"
	DefaultUnitType      = "service"
	DefaultTheme         = "kanagawa"
)

// DefaultPrivilege is prepended to every state-changing unit operation.
var DefaultPrivilege = []string{"sudo"}

// SourceConfig describes how the unit listing is produced.
type SourceConfig struct {
	Command  string   `yaml:"command,omitempty" toml:"command,omitempty" jsonschema:"description=Executable used to list units (default: systemctl)"`
	Args     []string `yaml:"args,omitempty" toml:"args,omitempty" jsonschema:"description=Arguments passed to the listing command; derived from unit_type when empty"`
	UnitType string   `yaml:"unit_type,omitempty" toml:"unit_type,omitempty" jsonschema:"description=Unit type to list such as service or timer,pattern=^[a-z]+$"`
	Hide     []string `yaml:"hide,omitempty" toml:"hide,omitempty" jsonschema:"description=Glob patterns of unit names to leave out of the listing"`
}

// ControlConfig describes how unit operations are executed after the TUI exits.
type ControlConfig struct {
	Command   string   `yaml:"command,omitempty" toml:"command,omitempty" jsonschema:"description=Executable used to control units (default: systemctl)"`
	Privilege []string `yaml:"privilege,omitempty" toml:"privilege,omitempty" jsonschema:"description=Command prefix for privileged operations (default: [sudo]); an empty list runs unprivileged"`
	Confirm   *bool    `yaml:"confirm,omitempty" toml:"confirm,omitempty" jsonschema:"description=Ask for confirmation before running the selected operation"`
}

// KeybindingSectionConfig maps action names (e.g. "start", "page_down") to key combinations.
type KeybindingSectionConfig map[string][]string

// TUIConfig holds interactive interface settings.
type TUIConfig struct {
	Keybindings KeybindingSectionConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" jsonschema:"description=Key overrides keyed by action name"`
}

// Config is the svcman configuration file.
type Config struct {
	Version string        `yaml:"version,omitempty" toml:"version,omitempty" jsonschema:"description=Configuration format version"`
	Theme   string        `yaml:"theme,omitempty" toml:"theme,omitempty" jsonschema:"description=Color theme,enum=kanagawa,enum=gruvbox,enum=terminal"`
	Source  SourceConfig  `yaml:"source,omitempty" toml:"source,omitempty" jsonschema:"description=Unit listing settings"`
	Control ControlConfig `yaml:"control,omitempty" toml:"control,omitempty" jsonschema:"description=Unit control settings"`
	TUI     *TUIConfig    `yaml:"tui,omitempty" toml:"tui,omitempty" jsonschema:"description=Interactive interface settings"`

	// Extensions captures top-level sections owned by other packages (logging).
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`

	// Sources lists the files merged into this configuration, lowest priority first.
	Sources []string `yaml:"-" toml:"-" jsonschema:"-"`
}

// reservedKeys are the top-level keys decoded into typed fields.
var reservedKeys = map[string]bool{
	"version": true,
	"theme":   true,
	"source":  true,
	"control": true,
	"tui":     true,
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Source.Command == "" {
		c.Source.Command = DefaultSourceCommand
	}
	if c.Source.UnitType == "" {
		c.Source.UnitType = DefaultUnitType
	}
	if c.Control.Command == "" {
		c.Control.Command = DefaultSourceCommand
	}
	if c.Control.Privilege == nil {
		c.Control.Privilege = append([]string(nil), DefaultPrivilege...)
	}
}

// ConfirmOperations reports whether operations need an interactive confirmation.
func (c *Config) ConfirmOperations() bool {
	return c.Control.Confirm != nil && *c.Control.Confirm
}

// UnmarshalExtension decodes the extension section stored under key into target.
// A missing key leaves target untouched.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
