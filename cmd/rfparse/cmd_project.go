package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/rfparse/project"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Show the detected workspace and its configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject()
		},
	}

	return cmd
}

func runProject() error {
	proj, err := project.Load()
	if err != nil {
		return err
	}

	configFile := proj.ConfigFile
	if configFile == "" {
		configFile = "(defaults)"
	}
	fmt.Printf("Root:       %s\n", proj.RootDir)
	fmt.Printf("Config:     %s\n", configFile)
	fmt.Printf("Extensions: %s\n", strings.Join(proj.Config.Extensions, " "))
	fmt.Printf("Exclude:    %s\n", strings.Join(proj.Config.Exclude, " "))
	fmt.Printf("Workers:    %d\n", proj.Config.Workers)
	fmt.Printf("Mode:       %s\n", proj.Config.Mode)

	files, err := proj.Files(afero.NewOsFs())
	if err != nil {
		fmt.Printf("Files:      error: %v\n", err)
	} else {
		fmt.Printf("Files:      %d\n", len(files))
	}
	return nil
}
