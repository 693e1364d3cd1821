package cmd

import (
	"fmt"
	"os"

	"github.com/sharedstate/blackboard/cmd/demo"
	"github.com/sharedstate/blackboard/cmd/perf"
	"github.com/sharedstate/blackboard/cmd/repl"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "blackboard",
		Short: "in-process typed key-value store",
		Long: fmt.Sprintf(`blackboard (v%s)

An in-process, heterogeneous key-value store with typed tables and
change-notification callbacks. The subcommands exercise the store's
public surface from the command line.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of blackboard",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("blackboard v%s\n", Version)
		},
	}
)

func init() {
	RootCmd.AddCommand(demo.DemoCmd)
	RootCmd.AddCommand(repl.ReplCmd)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
