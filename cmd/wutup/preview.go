package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wutup-dev/wutup/pkg/preview"
	"github.com/wutup-dev/wutup/pkg/stream"
)

func previewCmd(a *app) *cobra.Command {
	var flags tableFlags

	cmd := &cobra.Command{
		Use:       "preview events|guests",
		Short:     "Show a table in the terminal",
		ValidArgs: []string{"events", "guests"},
		Args:      tableArgs,
		Long: `Render a table and print its rows as a terminal table.

Examples:
  wutup preview events --names Picnic,Hackathon
  wutup preview guests --data https://example.com/guests.json --query '$.guests[*].name'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.build(contextOf(cmd), a, args[0])
			if err != nil {
				return err
			}
			out := preview.Table(stream.Body(t.doc, t.id))
			if out == "" {
				a.info("%s has no rows", t.id)
				return nil
			}
			fmt.Fprintln(a.out, out)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
