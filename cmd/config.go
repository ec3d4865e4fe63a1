package cmd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/grovetools/svcman/cli"
	"github.com/grovetools/svcman/config"
	"github.com/grovetools/svcman/tui/theme"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect svcman configuration",
	}
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of svcman.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration in effect",
		Long: heredoc.Doc(`
			Load the global, project and override files, validate each against
			the schema and print the files that were merged.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cli.GetOptions(cmd))
			if err != nil {
				return err
			}

			t := theme.DefaultTheme
			out := cmd.OutOrStdout()
			if len(cfg.Sources) == 0 {
				fmt.Fprintln(out, t.Muted.Render("No configuration file found; using defaults."))
			} else {
				fmt.Fprintf(out, "%s %s\n", t.Success.Render("Valid:"), strings.Join(cfg.Sources, ", "))
			}
			fmt.Fprintf(out, "  unit type: %s\n  list:      %s %s\n  control:   %s\n",
				cfg.Source.UnitType,
				cfg.Source.Command, strings.Join(listArgs(cfg), " "),
				strings.Join(append(append([]string(nil), cfg.Control.Privilege...), cfg.Control.Command), " "),
			)
			return nil
		},
	}
}
