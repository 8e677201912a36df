package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVarsCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "vars <file>",
		Short: "Print the variables table of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFile(args[0], mode)
			if err != nil {
				return err
			}
			for _, v := range f.Variables.Variables {
				fmt.Printf("%d\t%s\t%s\t%s\n", v.Declaration.Pos.Line, v.Kind(), v.Declaration.Text, v.Render())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "separator mode (auto, pipe, space, tsv)")

	return cmd
}
