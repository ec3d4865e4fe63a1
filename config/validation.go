package config

import (
	"fmt"
	"regexp"

	"github.com/grovetools/svcman/command"
	"github.com/grovetools/svcman/errors"
	"github.com/moby/patternmatcher"
)

var unitTypeRegex = regexp.MustCompile(`^[a-z]+$`)

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	sb := command.NewSafeBuilder()

	if err := sb.Validate("executable", c.Source.Command); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid source.command").
			WithDetail("command", c.Source.Command)
	}
	if err := sb.Validate("executable", c.Control.Command); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid control.command").
			WithDetail("command", c.Control.Command)
	}
	if len(c.Control.Privilege) > 0 {
		if err := sb.Validate("executable", c.Control.Privilege[0]); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid control.privilege").
				WithDetail("privilege", c.Control.Privilege)
		}
	}

	if c.Source.UnitType != "" && !unitTypeRegex.MatchString(c.Source.UnitType) {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("invalid source.unit_type '%s'", c.Source.UnitType)).
			WithDetail("unit_type", c.Source.UnitType)
	}

	if _, err := patternmatcher.New(c.Source.Hide); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid source.hide pattern").
			WithDetail("hide", c.Source.Hide)
	}

	if c.TUI != nil {
		for action, keys := range c.TUI.Keybindings {
			for _, key := range keys {
				if key == "" {
					return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("empty key for action '%s'", action)).
						WithDetail("action", action)
				}
			}
		}
	}

	return nil
}
