package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ednadion/lamark/internal/core"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var configFile string

var rootCmd = &cobra.Command{
	Use:   "lamark",
	Short: "lamark converts constrained Markdown documents into Linked Art JSON-LD",
	Long: `lamark reads Markdown documents following a constrained nested-list grammar
and emits the corresponding Linked Art JSON-LD graphs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}
		if verboseTrace {
			core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
		}

		if configFile != "" {
			core.SetConfigPath(configFile)
		}
	},
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", `configuration file (default "lamark.toml")`)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
