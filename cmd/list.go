package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/grovetools/svcman/cli"
	"github.com/grovetools/svcman/pkg/services"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the unit list",
		Long: heredoc.Doc(`
			Print the units the interface would show, after hide patterns
			and the optional name filter are applied.
		`),
		Example: heredoc.Doc(`
			# services whose name starts with "ssh"
			svcman list --filter ssh

			# timers as JSON
			svcman list --unit-type timer --json
		`),
		Args: cobra.NoArgs,
	}
	cmd.Flags().String("filter", "", "Keep units whose name starts with this text")

	v := cli.NewViper()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cli.BindFlags(v, cmd, "theme", "unit-type"); err != nil {
			return err
		}
		cfg, err := resolveConfig(cmd, v)
		if err != nil {
			return err
		}

		items, err := loadCollection(cmd.Context(), cfg, 0)
		if err != nil {
			return err
		}
		filter, _ := cmd.Flags().GetString("filter")
		items.Filter(filter)

		out := cmd.OutOrStdout()
		if cli.GetOptions(cmd).JSONOutput {
			units := items.Items()
			if units == nil {
				units = []services.Item{}
			}
			data, err := json.MarshalIndent(units, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		for _, item := range items.Items() {
			fmt.Fprintln(out, item.Line)
		}
		return nil
	}
	return cmd
}
