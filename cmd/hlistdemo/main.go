// Command hlistdemo shows a HeterogeneousList in the terminal and checks list
// configurations.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xqrs/hlist"
)

var (
	errorColor      = color.New(color.FgRed, color.Bold)
	suggestionColor = color.New(color.FgYellow)
	okColor         = color.New(color.FgGreen, color.Bold)
)

// logOptions are the persistent logging flags shared by all subcommands.
type logOptions struct {
	file  string
	level string
}

func newRootCmd() *cobra.Command {
	var logs logOptions
	root := &cobra.Command{
		Use:   "hlistdemo",
		Short: "Demo of the hlist heterogeneous list",
		Long:  `hlistdemo runs a paginated heterogeneous list in the terminal and validates list configurations.`,
	}
	root.PersistentFlags().StringVar(&logs.file, "log-file", "", "append JSON logs to this file")
	root.PersistentFlags().StringVar(&logs.level, "log-level", "", "log level (debug|info|warn|error)")

	root.AddCommand(newRunCmd(&logs), newValidateCmd(&logs))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the logging flags. fileOnly keeps logs off the
// terminal, which belongs to the list while it runs.
func setupLogging(logs *logOptions, fileOnly bool) error {
	if logs.file != "" {
		if err := hlist.SetLogPath(logs.file); err != nil {
			return err
		}
	}
	if logs.level != "" {
		hlist.SetRawLogLevel(logs.level)
		hlist.SetInternalLogLevel(hlist.ParseLogLevel(logs.level))
	}
	if fileOnly {
		hlist.SetLogFileOnly()
	}
	return nil
}
