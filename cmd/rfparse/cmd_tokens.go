package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/rfparse/format"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var (
		alignment bool
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "List every token of a file with its tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFile(args[0], mode)
			if err != nil {
				return err
			}
			var opts []format.LineOption
			if alignment {
				opts = append(opts, format.WithAlignment())
			}
			if err := format.NewLineEncoder(os.Stdout, opts...).Encode(f); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&alignment, "alignment", "a", false, "include pretty-align whitespace tokens")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "separator mode (auto, pipe, space, tsv)")

	return cmd
}
