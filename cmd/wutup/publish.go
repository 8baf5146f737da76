package main

import (
	"github.com/spf13/cobra"

	"github.com/wutup-dev/wutup/pkg/publish"
)

func publishCmd(a *app) *cobra.Command {
	var (
		flags    tableFlags
		bucket   string
		prefix   string
		key      string
		title    string
		fragment bool
	)

	cmd := &cobra.Command{
		Use:       "publish events|guests",
		Short:     "Render a table and upload it to S3",
		ValidArgs: []string{"events", "guests"},
		Args:      tableArgs,
		Long: `Render a table and upload the HTML to S3-compatible storage.

Credentials are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.
Bucket, prefix, region, and endpoint default to the publish section of
the config file.

Examples:
  wutup publish events --names Picnic --bucket pages --key tonight.html
  wutup publish guests --data guests.yaml --key party/guests.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.build(contextOf(cmd), a, args[0])
			if err != nil {
				return err
			}
			html, err := t.html(title, fragment)
			if err != nil {
				return err
			}

			pub := a.cfg.Publish
			if bucket != "" {
				pub.Bucket = bucket
			}
			if prefix != "" {
				pub.Prefix = prefix
			}
			if key == "" {
				key = t.id + ".html"
			}

			client, err := publish.NewS3Client(pub)
			if err != nil {
				return err
			}
			loc, err := publish.New(client, pub.Bucket, pub.Prefix).
				WithLogger(a.logger).
				Publish(contextOf(cmd), key, html)
			if err != nil {
				return err
			}
			a.success("Published %s", loc)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from config)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key (default: <container>.html)")
	cmd.Flags().StringVar(&title, "title", "", "Page title (default: the table heading)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Upload only the new tbody")

	return cmd
}
