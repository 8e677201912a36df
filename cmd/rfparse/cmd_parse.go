package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/rfparse/format"
	"github.com/dhamidi/rfparse/project"
	"github.com/dhamidi/rfparse/robot"
	"github.com/dhamidi/rfparse/robot/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var (
		outputFormat  string
		includeTokens bool
		mode          string
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a Robot Framework file and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFile(args[0], mode)
			if err != nil {
				return err
			}

			encoder, err := format.New(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			if includeTokens {
				if outputFormat != format.FormatJSON {
					return fmt.Errorf("--tokens requires json output, got %s", outputFormat)
				}
				encoder = format.NewJSONEncoder(os.Stdout, format.WithTokens())
			}
			if err := encoder.Encode(f); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", format.FormatJSON, "output format (json, line, source)")
	cmd.Flags().BoolVar(&includeTokens, "tokens", false, "include every token in json output")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "separator mode (auto, pipe, space, tsv); defaults to the project setting")

	return cmd
}

// parseFile reads and parses path. An empty mode falls back to the
// project configuration, then to detection.
func parseFile(path, mode string) (*robot.RobotFile, error) {
	cfg := project.DefaultConfig()
	if proj, err := project.Load(); err == nil {
		cfg = proj.Config
	}
	if mode != "" {
		cfg.Mode = mode
	}
	kind, forced, err := cfg.SeparatorMode()
	if err != nil {
		return nil, err
	}

	opts := []parser.Option{parser.WithFile(path)}
	if forced {
		opts = append(opts, parser.WithMode(kind))
	}

	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()
	return parser.ParseReader(r, opts...)
}
