package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/lancedb-mcp/launcher/pkg/asset"
	"github.com/lancedb-mcp/launcher/pkg/config"
	"github.com/lancedb-mcp/launcher/pkg/fetch"
	"github.com/lancedb-mcp/launcher/pkg/httpclient"
	"github.com/lancedb-mcp/launcher/pkg/install"
	"github.com/lancedb-mcp/launcher/pkg/platform"
	"github.com/spf13/cobra"
)

var (
	// Flags for install command
	installBinDir string
	installDryRun bool
)

// InstallCommand downloads and installs the prebuilt binary for this host.
var InstallCommand = &cobra.Command{
	Use:   "install [VERSION]",
	Short: "Download and install the prebuilt binary for this platform",
	Long: `Download the release asset matching the host OS and CPU architecture and
install it atomically next to this front end.

The pipeline is a single attempt: resolve the platform, build the asset URL,
stream the download to a temporary file, then promote it with a rename. Any
failure abandons the attempt with a non-zero exit; nothing partial is ever
visible at the installed path.`,
	Example: `  # Install the packaged version
  lancedb-mcp install

  # Install a specific version
  lancedb-mcp install 1.2.0

  # Install the newest published release
  lancedb-mcp install latest

  # Verify the asset URL without downloading
  lancedb-mcp install --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	InstallCommand.Flags().StringVarP(&installBinDir, "bin-dir", "b", "", "Installation directory")
	InstallCommand.Flags().BoolVarP(&installDryRun, "dry-run", "n", false, "Validate the asset URL without installing")
}

// gitHubAPIBaseURL is the base URL for GitHub API calls (overridable for testing)
var gitHubAPIBaseURL = "https://api.github.com"

// gitHubRelease represents the GitHub API response for a release
type gitHubRelease struct {
	TagName string `json:"tag_name"`
}

// resolveVersion resolves "latest" to an actual release tag via the GitHub
// API; any other version is used as-is.
func resolveVersion(ctx context.Context, repo, version string) (string, error) {
	if version != "" && version != "latest" {
		return version, nil
	}

	log.Info("checking GitHub for latest tag")

	url := fmt.Sprintf("%s/repos/%s/releases/latest", gitHubAPIBaseURL, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := httpclient.NewAPI().Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("GitHub API returned status %d: %s", resp.StatusCode, string(body))
	}

	var release gitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("no tag_name found in GitHub response")
	}
	return release.TagName, nil
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return err
	}

	// Platform resolution comes first: an unsupported host fails before
	// any network activity.
	plat, err := platform.Detect()
	if err != nil {
		return err
	}
	log.Infof("Detected platform: %s", plat)

	version := cfg.Version
	if len(args) > 0 {
		version = args[0]
	}
	resolvedVersion, err := resolveVersion(ctx, cfg.Repo, version)
	if err != nil {
		return fmt.Errorf("failed to resolve version: %w", err)
	}
	versionNumber := strings.TrimPrefix(resolvedVersion, "v")
	log.Infof("Installing version: %s", versionNumber)

	locator := &asset.Locator{
		BaseName:    cfg.Name,
		Repo:        cfg.Repo,
		ReleaseHost: cfg.ReleaseHost,
		Version:     versionNumber,
		Platform:    plat,
	}

	assetURL, err := locator.DownloadURL()
	if err != nil {
		return err
	}
	log.Infof("Asset URL: %s", assetURL)

	if installDryRun {
		log.Info("Validating asset URL...")
		if err := validateURL(ctx, assetURL); err != nil {
			return fmt.Errorf("asset validation failed: %w", err)
		}
		log.Info("Asset URL is valid")
		return nil
	}

	binDir := installBinDir
	if binDir == "" {
		binDir = cfg.BinDir
	}
	binDir, err = install.ResolveBinDir(binDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("failed to create install directory: %w", err)
	}

	tmpPath := locator.TempPath(binDir)
	finalPath := locator.FinalPath(binDir)

	if err := fetch.Download(ctx, assetURL, tmpPath); err != nil {
		return err
	}
	if err := install.Finalize(tmpPath, finalPath); err != nil {
		return err
	}

	log.Infof("Installed %s", finalPath)
	return nil
}

// validateURL checks that a URL exists by making a HEAD request. Unlike the
// download itself this follows the full redirect chain: the point is only to
// confirm the asset is published.
func validateURL(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := httpclient.NewAPI().Do(req)
	if err != nil {
		return fmt.Errorf("failed to validate URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("URL returned status %d", resp.StatusCode)
	}
	return nil
}
