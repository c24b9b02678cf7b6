package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/manifest"
)

func renderCmd() *cobra.Command {
	var (
		out    string
		minify bool
	)

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render a manifest to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.LoadFile(args[0])
			if err != nil {
				return err
			}
			page, err := m.Build()
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			return page.Render(w, minify || m.Minimize)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVar(&minify, "minify", false, "render without whitespace or comments")

	return cmd
}
