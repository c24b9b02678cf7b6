package main

import (
	"errors"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/manifest"
	"github.com/vango-dev/markup/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		dir    string
		key    string
		minify bool
	)

	cmd := &cobra.Command{
		Use:   "publish <manifest>",
		Short: "Render a manifest and publish it to a directory or S3 bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			m, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}
			page, err := m.Build()
			if err != nil {
				return err
			}

			var store publish.Store
			switch {
			case bucket != "":
				cfg, err := awsconfig.LoadDefaultConfig(ctx)
				if err != nil {
					return err
				}
				store = publish.NewS3Store(s3.NewFromConfig(cfg), bucket, prefix)
			case dir != "":
				store = publish.NewDirStore(dir)
			default:
				return errors.New("either --bucket or --dir is required")
			}

			if err := publish.Page(ctx, store, key, page, minify || m.Minimize); err != nil {
				return err
			}

			slog.Info("published", "manifest", args[0], "key", key)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to publish to")
	cmd.Flags().StringVar(&prefix, "prefix", "", "key prefix inside the bucket")
	cmd.Flags().StringVar(&dir, "dir", "", "local directory to publish to")
	cmd.Flags().StringVar(&key, "key", "index.html", "object key / file name for the document")
	cmd.Flags().BoolVar(&minify, "minify", false, "render without whitespace or comments")

	return cmd
}
