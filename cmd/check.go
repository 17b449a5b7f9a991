package cmd

import (
	"fmt"

	"github.com/lancedb-mcp/launcher/pkg/asset"
	"github.com/lancedb-mcp/launcher/pkg/config"
	"github.com/lancedb-mcp/launcher/pkg/install"
	"github.com/lancedb-mcp/launcher/pkg/platform"
	"github.com/spf13/cobra"
)

// CheckCommand prints what an install on this host would do, without any
// network or filesystem writes.
var CheckCommand = &cobra.Command{
	Use:   "check",
	Short: "Show the resolved platform, asset URL, and install path",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return err
	}

	plat, err := platform.Detect()
	if err != nil {
		return err
	}

	locator := &asset.Locator{
		BaseName:    cfg.Name,
		Repo:        cfg.Repo,
		ReleaseHost: cfg.ReleaseHost,
		Version:     cfg.Version,
		Platform:    plat,
	}

	filename, err := locator.AssetFilename()
	if err != nil {
		return err
	}
	url, err := locator.DownloadURL()
	if err != nil {
		return err
	}
	binDir, err := install.ResolveBinDir(cfg.BinDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "platform:     %s\n", plat)
	fmt.Fprintf(out, "version:      %s\n", cfg.Version)
	fmt.Fprintf(out, "asset:        %s\n", filename)
	fmt.Fprintf(out, "download url: %s\n", url)
	fmt.Fprintf(out, "install path: %s\n", locator.FinalPath(binDir))
	return nil
}
