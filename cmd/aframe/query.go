package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/JohnRodney/aframe/pkg/dom"
	"github.com/JohnRodney/aframe/pkg/render"
)

func queryCmd() *cobra.Command {
	var attrs bool
	var pretty bool

	cmd := &cobra.Command{
		Use:   "query FILE SELECTOR",
		Short: "Run a selector against an HTML file",
		Long: `Parse FILE and print every node matching SELECTOR, in document order.

With --attrs, the matches' attributes are merged into a single map
(later matches win) and printed as key=value lines instead.`,
		Example: `  aframe query scene.html 'a-box.visible'
  aframe query scene.html '[color=red]' --attrs`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := dom.Parse(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			matches := doc.SelectAll(args[1], nil)
			out := cmd.OutOrStdout()

			if attrs {
				merged := dom.MergeAttributes(matches...)
				keys := make([]string, 0, len(merged))
				for k := range merged {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "%s=%s\n", k, merged[k])
				}
				return nil
			}

			renderer := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			for _, n := range matches {
				html, err := renderer.RenderToString(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, html)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&attrs, "attrs", false, "print the merged attribute map instead of markup")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print matched markup")

	return cmd
}
