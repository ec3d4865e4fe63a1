package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/grovetools/svcman/cli"
	"github.com/grovetools/svcman/tui/keymap"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key reference",
		Long:  "Show the key bindings in effect, including overrides from tui.keybindings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			cfg, err := cli.LoadConfig(opts)
			if err != nil {
				return err
			}
			sections := keymap.Export(keymap.Load(cfg))

			if opts.JSONOutput {
				data, err := json.MarshalIndent(sections, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			md := keysMarkdown(sections)
			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(terminalWidth()),
			)
			if err != nil {
				return err
			}
			rendered, err := r.Render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	cmd.Flags().Bool("plain", false, "Print markdown without rendering")
	return cmd
}

func terminalWidth() int {
	if size := terminalSize(); size.Cols > 0 {
		return size.Cols
	}
	return 80
}

// keysMarkdown lays out the enabled bindings as one table per section.
func keysMarkdown(sections []keymap.SectionInfo) string {
	var b strings.Builder
	b.WriteString("# svcman keys\n")
	for _, s := range sections {
		var rows []keymap.BindingInfo
		for _, binding := range s.Bindings {
			if binding.Enabled && len(binding.Keys) > 0 {
				rows = append(rows, binding)
			}
		}
		if len(rows) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n## %s\n\n", s.Name)
		b.WriteString("| Keys | Action | Config key |\n|---|---|---|\n")
		for _, binding := range rows {
			keys := make([]string, len(binding.Keys))
			for i, k := range binding.Keys {
				keys[i] = "`" + k + "`"
			}
			configKey := binding.ConfigKey
			if configKey != "" {
				configKey = "`" + configKey + "`"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", strings.Join(keys, " "), binding.Description, configKey)
		}
	}
	return b.String()
}
