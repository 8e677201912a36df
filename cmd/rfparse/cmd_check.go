package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/rfparse/project"
	"github.com/dhamidi/rfparse/robot/codebase"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report cells the parser could not place",
		Long: `Parse files or directories and report unknown cells, unknown settings,
unknown tables and malformed variable declarations. Directories are scanned
using the project configuration. Exits non-zero when an error is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runCheck(cmd.Context(), args)
		},
	}

	return cmd
}

func runCheck(ctx context.Context, paths []string) error {
	proj, err := project.Load()
	if err != nil {
		return err
	}

	errorCount := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		dir := path
		if !info.IsDir() {
			dir = filepath.Dir(path)
		}
		c := codebase.New(dir, codebase.WithConfig(proj.Config))

		if info.IsDir() {
			if err := c.ScanAll(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "scan %s: %v\n", path, err)
			}
		} else if err := c.ScanFile(path); err != nil {
			return err
		}

		for _, f := range c.Files() {
			for _, p := range codebase.Check(f.File) {
				fmt.Printf("%s:%s\n", f.Path, p)
				if p.Severity == codebase.SeverityError {
					errorCount++
				}
			}
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("%d errors found", errorCount)
	}
	return nil
}
