package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JohnRodney/aframe/pkg/format"
)

func fmtCmd() *cobra.Command {
	var named bool

	cmd := &cobra.Command{
		Use:   "fmt TEMPLATE [ARG...]",
		Short: "Interpolate a template string",
		Long: `Substitute {name} / {name=default} placeholders in a template.

Arguments are positional by default ({0}, {1}, ...). With --named, each
argument is a key=value pair matched case-insensitively against {key}
placeholders.`,
		Example: `  aframe fmt 'hello {0}' world
  aframe fmt --named 'color is {color=blue}' size=large`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fargs format.Args
			if rest := args[1:]; len(rest) > 0 {
				if named {
					m := format.Named{}
					for _, kv := range rest {
						k, v, ok := strings.Cut(kv, "=")
						if !ok {
							return fmt.Errorf("argument %q is not key=value", kv)
						}
						m[k] = v
					}
					fargs = m
				} else {
					fargs = format.Positional(rest)
				}
			}

			out, err := format.Format(args[0], fargs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&named, "named", false, "treat arguments as key=value pairs")

	return cmd
}
