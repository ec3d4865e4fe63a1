package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/svcman/command"
	"github.com/grovetools/svcman/errors"
	"github.com/grovetools/svcman/logging"
)

// Source produces the raw list lines, one per unit.
type Source interface {
	Lines(ctx context.Context) ([]string, error)
}

// DefaultListArgs returns the list-units arguments for unitType.
func DefaultListArgs(unitType string) []string {
	if unitType == "" {
		unitType = DefaultUnitType
	}
	return []string{
		"list-units",
		"--type=" + unitType,
		"--all",
		"--no-pager",
		"--no-legend",
		"--plain",
	}
}

// SystemctlSource runs systemctl list-units and returns its output lines.
type SystemctlSource struct {
	builder *command.SafeBuilder
	command string
	args    []string
}

// NewSystemctlSource returns a source running name with args. An empty name
// runs systemctl; nil args list units of type service.
func NewSystemctlSource(builder *command.SafeBuilder, name string, args []string) *SystemctlSource {
	if name == "" {
		name = "systemctl"
	}
	if args == nil {
		args = DefaultListArgs(DefaultUnitType)
	}
	return &SystemctlSource{builder: builder, command: name, args: args}
}

// Lines runs the list command and splits its output into lines.
func (s *SystemctlSource) Lines(ctx context.Context) ([]string, error) {
	cmd, err := s.builder.Build(ctx, s.command, s.args...)
	if err != nil {
		return nil, errors.LoadFailed(s.command, err)
	}

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.LoadFailed(cmd.String(), errors.CommandFailed(cmd.String(), err))
	}

	text := strings.TrimRight(string(out), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// StaticSource serves a fixed set of lines.
type StaticSource []string

// Lines returns the fixed lines.
func (s StaticSource) Lines(context.Context) ([]string, error) {
	return s, nil
}

// LoadOptions controls how raw lines become items.
type LoadOptions struct {
	// Width pads or cuts each line to the viewport width. Zero keeps lines as is.
	Width int
	// UnitType selects the name suffix, "service" when empty.
	UnitType string
	// Hide lists glob patterns of unit names to leave out.
	Hide []string
}

// Load fetches the lines from src and parses them into a Collection. Lines
// without a name and hidden units are dropped.
func Load(ctx context.Context, src Source, opts LoadOptions) (*Collection, error) {
	log := logging.NewLogger("services")

	unitType := opts.UnitType
	if unitType == "" {
		unitType = DefaultUnitType
	}
	suffix := UnitSuffix(unitType)

	var hide *patternmatcher.PatternMatcher
	if len(opts.Hide) > 0 {
		pm, err := patternmatcher.New(opts.Hide)
		if err != nil {
			return nil, errors.ConfigInvalid(fmt.Sprintf("source.hide: %v", err))
		}
		hide = pm
	}

	lines, err := src.Lines(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(lines))
	hidden := 0
	for _, raw := range lines {
		item, ok := ParseItem(raw, suffix, opts.Width)
		if !ok {
			continue
		}
		if hide != nil {
			matched, err := hide.MatchesOrParentMatches(item.Name)
			if err != nil {
				return nil, errors.ConfigInvalid(fmt.Sprintf("source.hide: %v", err))
			}
			if matched {
				hidden++
				continue
			}
		}
		items = append(items, item)
	}

	log.WithFields(logrus.Fields{
		"lines":  len(lines),
		"units":  len(items),
		"hidden": hidden,
		"width":  opts.Width,
	}).Debug("Loaded unit list")

	return NewCollection(items), nil
}
