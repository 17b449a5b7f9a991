package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
	quiet      bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lancedb-mcp",
	Short: "Install and run the lancedb-mcp-server prebuilt binary",
	Long: `lancedb-mcp is a front end for the lancedb-mcp-server prebuilt binary.

It downloads the release asset matching the host OS and CPU architecture at
install time, and hands invocations off to that binary at run time. Nothing
is compiled locally.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetHandler(cli.Default)
		if verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("Verbose logging enabled")
		} else if quiet {
			log.SetLevel(log.ErrorLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to packaging config file (default: .config/lancedb-mcp.yml)")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Increase log verbosity")
	RootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress progress output")

	RootCmd.AddCommand(InstallCommand)
	RootCmd.AddCommand(RunCommand)
	RootCmd.AddCommand(CheckCommand)
}
