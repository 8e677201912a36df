package main

import (
	"os"

	"github.com/dhamidi/rfparse/project"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

func main() {
	var (
		verbose int
		logFile string
	)

	rootCmd := &cobra.Command{
		Use:          "rfparse",
		Short:        "Parse and inspect Robot Framework files",
		SilenceUsage: true,
		Version:      version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose, logFile)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "raise log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVarsCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogging starts from the project's logLevel and raises it by
// one step per -v.
func configureLogging(verbose int, logFile string) {
	verbosity := -1
	if proj, err := project.Load(); err == nil {
		if v, err := proj.Config.Verbosity(); err == nil {
			verbosity = v
		}
	}
	verbosity += verbose
	if logFile != "" {
		commonlog.Configure(verbosity, &logFile)
	} else {
		commonlog.Configure(verbosity, nil)
	}
}
