package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/apex/log"
	"github.com/lancedb-mcp/launcher/pkg/httpclient"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// StatusError indicates the final response carried a non-success status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download failed with status %d", e.Code)
}

// RedirectError indicates a redirect response that cannot be followed:
// either it carried no Location header, or a second redirect hop was
// requested. Exactly one hop is followed; release asset downloads redirect
// once, to the object store, and anything beyond that is a misbehaving
// server.
type RedirectError struct {
	Reason string
}

func (e *RedirectError) Error() string {
	return "redirect not followed: " + e.Reason
}

// Download fetches url and streams the body to destPath, creating or
// truncating it. One redirect hop is followed. On any failure destPath is
// removed; after a successful return it holds exactly the bytes of a
// complete transfer.
func Download(ctx context.Context, url, destPath string) error {
	client := httpclient.New()

	resp, err := get(ctx, client, url)
	if err != nil {
		return errors.Wrapf(err, "failed to fetch %s", url)
	}

	if isRedirect(resp.StatusCode) {
		location := resp.Header.Get("Location")
		resp.Body.Close()
		if location == "" {
			return &RedirectError{Reason: "response carried no Location header"}
		}
		target, perr := resp.Request.URL.Parse(location)
		if perr != nil {
			return &RedirectError{Reason: "unparseable Location header: " + location}
		}
		log.Debugf("following redirect to %s", target)

		resp, err = get(ctx, client, target.String())
		if err != nil {
			return errors.Wrapf(err, "failed to fetch redirect target %s", target)
		}
		if isRedirect(resp.StatusCode) {
			resp.Body.Close()
			return &RedirectError{Reason: "more than one redirect hop"}
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	return writeBody(resp, destPath)
}

// writeBody streams the response body to destPath. All exit paths run the
// same cleanup: the handle is closed, and the partial file is removed unless
// the transfer completed.
func writeBody(resp *http.Response, destPath string) (err error) {
	out, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(err, "failed to create temporary file")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close temporary file")
		}
		if err != nil {
			os.Remove(destPath)
		}
	}()

	var dst io.Writer = out
	total := resp.ContentLength
	switch {
	case total > 0 && progressEnabled():
		bar := progressbar.NewOptions64(total,
			progressbar.OptionSetDescription("downloading"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		dst = io.MultiWriter(out, bar)
	case total <= 0:
		log.Info("downloading, size unknown")
	}

	written, err := io.Copy(dst, resp.Body)
	if err != nil {
		return errors.Wrap(err, "download interrupted")
	}
	if total > 0 && written != total {
		return errors.Errorf("download truncated: got %d of %d bytes", written, total)
	}
	return nil
}

// progressEnabled reports whether the progress bar should render. Quiet mode
// raises the log level above Info; the bar follows the same switch.
func progressEnabled() bool {
	if logger, ok := log.Log.(*log.Logger); ok {
		return logger.Level <= log.InfoLevel
	}
	return true
}

func get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	return client.Do(req)
}

// isRedirect reports whether code is one of the standard moved-resource
// redirect statuses.
func isRedirect(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}
