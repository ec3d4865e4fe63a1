// Package cmd holds the svcman command tree.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/grovetools/svcman/cli"
	"github.com/grovetools/svcman/command"
	"github.com/grovetools/svcman/config"
	"github.com/grovetools/svcman/errors"
	"github.com/grovetools/svcman/logging"
	"github.com/grovetools/svcman/pkg/services"
	"github.com/grovetools/svcman/tui"
	"github.com/grovetools/svcman/tui/app"
	"github.com/grovetools/svcman/tui/keymap"
	"github.com/grovetools/svcman/tui/render"
	"github.com/grovetools/svcman/tui/theme"
)

// newBuilder creates the command builder used for listing and control.
var newBuilder = command.NewSafeBuilder

// confirm asks before a deferred operation runs.
var confirm = func(prompt string) (bool, error) {
	return confirmation.New(prompt, confirmation.No).RunPrompt()
}

// NewRootCmd returns the svcman command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand("svcman", "Browse and control systemd units")
	root.Long = heredoc.Doc(`
		Browse systemd units in a modal terminal interface.

		Type a count before a motion to repeat it, i to filter by unit name,
		/ to search, and s, x, r, R, e or d to start, stop, reload, restart,
		enable or disable the selected unit. The interface closes before the
		operation runs so that privilege prompts reach the terminal.
	`)
	root.Example = heredoc.Doc(`
		# browse services
		svcman

		# browse timers with the gruvbox theme
		svcman --unit-type timer --theme gruvbox

		# ask before running an operation
		SVCMAN_CONFIRM=true svcman
	`)
	root.Args = cobra.NoArgs

	addOverrideFlags(root.PersistentFlags())
	root.Flags().Bool("confirm", false, "Ask before running an operation")

	v := cli.NewViper()
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cli.BindFlags(v, cmd, "theme", "unit-type", "confirm"); err != nil {
			return err
		}
		return runTUI(cmd, v)
	}

	root.AddCommand(newListCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(cli.NewVersionCommand("svcman"))

	cli.ApplyStyledHelpRecursive(root)
	return root
}

func addOverrideFlags(flags *pflag.FlagSet) {
	flags.String("theme", "", "Color theme: kanagawa, gruvbox or terminal")
	flags.String("unit-type", "", "Unit type to list, e.g. service or timer")
}

// resolveConfig loads the configuration and applies flag and environment
// overrides on top of it.
func resolveConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	cfg, err := cli.LoadConfig(cli.GetOptions(cmd))
	if err != nil {
		return nil, err
	}

	if v.IsSet("theme") {
		cfg.Theme = v.GetString("theme")
	}
	if v.IsSet("unit-type") {
		cfg.Source.UnitType = v.GetString("unit-type")
	}
	if v.IsSet("confirm") {
		value := v.GetBool("confirm")
		cfg.Control.Confirm = &value
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigValidation("flags", err)
	}

	logging.SetConfig(cfg)
	theme.SetTheme(cfg.Theme)
	return cfg, nil
}

// loadCollection lists units with the configured source, fitting lines to width.
func loadCollection(ctx context.Context, cfg *config.Config, width int) (*services.Collection, error) {
	src := services.NewSystemctlSource(newBuilder(), cfg.Source.Command, listArgs(cfg))
	return services.Load(ctx, src, services.LoadOptions{
		Width:    width,
		UnitType: cfg.Source.UnitType,
		Hide:     cfg.Source.Hide,
	})
}

// listArgs returns the configured list arguments, or the defaults for the
// unit type.
func listArgs(cfg *config.Config) []string {
	if len(cfg.Source.Args) > 0 {
		return cfg.Source.Args
	}
	return services.DefaultListArgs(cfg.Source.UnitType)
}

func terminalSize() render.Size {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return render.Size{}
	}
	return render.Size{Rows: rows, Cols: cols}
}

func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := resolveConfig(cmd, v)
	if err != nil {
		return err
	}
	log := cli.GetLogger(cmd, "svcman")
	tui.InitializeTUI()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	size := terminalSize()
	items, err := loadCollection(ctx, cfg, size.Cols)
	if err != nil {
		return err
	}
	log.WithField("units", items.Total()).Debug("Loaded unit list")

	km := keymap.Load(cfg)
	a := app.New(items, app.Options{
		KeyMap: &km,
		Size:   size,
		Styles: theme.DefaultTheme.SpanStyles(),
	})

	session, err := app.Run(ctx, a)
	if err != nil {
		return err
	}
	op, ok := session.Pending()
	if !ok {
		return nil
	}
	return runOperation(ctx, cmd, cfg, op)
}

// runOperation executes the operation chosen in the interface, after the
// terminal has been restored.
func runOperation(ctx context.Context, cmd *cobra.Command, cfg *config.Config, op services.Operation) error {
	pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())

	if cfg.ConfirmOperations() {
		ok, err := confirm(fmt.Sprintf("Run %s?", op))
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeCanceled, "confirmation prompt failed")
		}
		if !ok {
			return errors.Canceled(op.String())
		}
	}

	exec := services.NewSystemctlExecutor(newBuilder(), services.ExecutorOptions{
		Command:   cfg.Control.Command,
		Privilege: cfg.Control.Privilege,
		Stdin:     cmd.InOrStdin(),
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
	})
	pretty.Command(exec.Argv(op))

	if err := exec.Execute(ctx, op); err != nil {
		pretty.ErrorPretty(fmt.Sprintf("%s failed", op), err)
		return err
	}
	if op.Kind != services.Status {
		pretty.Success(fmt.Sprintf("%s succeeded", op))
	}
	return nil
}
