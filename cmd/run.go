package cmd

import (
	"os"
	"path/filepath"

	"github.com/lancedb-mcp/launcher/pkg/config"
	"github.com/lancedb-mcp/launcher/pkg/install"
	"github.com/lancedb-mcp/launcher/pkg/launcher"
	"github.com/lancedb-mcp/launcher/pkg/platform"
	"github.com/spf13/cobra"
)

// RunCommand hands execution off to the installed binary. Flag parsing is
// disabled: this front end recognizes no flags of its own here, and every
// argument reaches the child verbatim and in order.
var RunCommand = &cobra.Command{
	Use:   "run [ARGS...]",
	Short: "Run the installed binary, forwarding all arguments",
	Long: `Run the installed lancedb-mcp-server binary as a child process.

Standard input, output, and error pass through unchanged, every argument is
forwarded verbatim, and this process exits with the child's own exit code.`,
	Example: `  lancedb-mcp run --db-path /data
  lancedb-mcp run --transport streamable-http --port 3000`,
	DisableFlagParsing: true,
	RunE:               runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return err
	}

	binDir, err := install.ResolveBinDir(cfg.BinDir)
	if err != nil {
		return err
	}

	code, err := launcher.Run(installedPath(binDir, cfg.Name), args)
	if err != nil {
		return err
	}
	if code != 0 {
		// Mirror the child's exit code exactly. Stdio is the child's own
		// inherited descriptors, so there is nothing left to flush.
		os.Exit(code)
	}
	return nil
}

// installedPath returns the expected path of the installed binary, with the
// platform extension. The host's tags are used unvalidated: on an
// unsupported platform no artifact can exist and the launcher reports that,
// not an install-time failure.
func installedPath(binDir, baseName string) string {
	return filepath.Join(binDir, baseName+platform.Host().ExeExt())
}
