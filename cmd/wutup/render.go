package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wutup-dev/wutup/internal/errors"
)

func renderCmd(a *app) *cobra.Command {
	var (
		flags    tableFlags
		out      string
		fragment bool
		title    string
	)

	cmd := &cobra.Command{
		Use:       "render events|guests",
		Short:     "Render a table to HTML",
		ValidArgs: []string{"events", "guests"},
		Args:      tableArgs,
		Long: `Render an event stream or guest list table.

Rows come from --names or from a JSON/YAML document given with --data.

Examples:
  wutup render events --names Picnic,Hackathon
  wutup render guests --container party --names Ana,Bo --fragment
  wutup render events --data events.json --query '.events[] | .title' --out events.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.build(contextOf(cmd), a, args[0])
			if err != nil {
				return err
			}
			html, err := t.html(title, fragment)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = a.out.Write(html)
				return err
			}
			if err := os.WriteFile(out, html, 0644); err != nil {
				return errors.Newf(errors.CategoryCLI, "could not write %s", out).Wrap(err)
			}
			a.success("Wrote %s", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Write only the new tbody")
	cmd.Flags().StringVar(&title, "title", "", "Page title (default: the table heading)")

	return cmd
}
