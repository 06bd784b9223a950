package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadTemp fetches url into a new temporary file. The returned cleanup
// removes the file and must be called once the caller is done with it.
func DownloadTemp(ctx context.Context, client *http.Client, url, pattern string) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}

	return path, cleanup, nil
}
