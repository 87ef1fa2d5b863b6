// Package update prints an upgrade hint after explicit commands like
// install, based on a cached release tag. A hook run never touches the
// network: commits must stay fast and work offline.
package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prehook/prehook/internal/ui"
)

const (
	releasesURL = "https://api.github.com/repos/prehook/prehook/releases/latest"
	cacheMaxAge = 24 * time.Hour
	httpTimeout = 3 * time.Second
)

// Notify prints an upgrade hint to stderr when the cached release tag
// differs from the running version, then refreshes the cache in the
// background for the next invocation.
func Notify(current string) {
	path, err := cachePath()
	if err != nil {
		return
	}
	if tag := cachedTag(path); ShouldNotify(current, tag) {
		fmt.Fprintf(os.Stderr, "\n%s %s → %s\n",
			ui.Cyan("Update available:"), ui.Dim(current), ui.Cyan(tag))
		fmt.Fprintf(os.Stderr, "  %s\n", ui.Dim("go install github.com/prehook/prehook@latest"))
	}
	refresh(path)
}

// ShouldNotify reports whether a cached release tag warrants an upgrade
// hint: a real tag that names a different version than the running
// binary. Development builds never notify.
func ShouldNotify(current, tag string) bool {
	if tag == "" || current == "dev" {
		return false
	}
	return strings.TrimPrefix(tag, "v") != strings.TrimPrefix(current, "v")
}

// cachedTag reads the cached release tag, or "" when there is none.
func cachedTag(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// refresh fetches the latest release tag into the cache unless it is
// still fresh. The fetch runs detached; if the process exits first the
// cache simply stays stale until the next explicit command.
func refresh(path string) {
	if info, err := os.Stat(path); err == nil && time.Since(info.ModTime()) < cacheMaxAge {
		return
	}
	if os.Getenv("CI") != "" {
		return
	}

	go func() {
		client := &http.Client{Timeout: httpTimeout}
		resp, err := client.Get(releasesURL)
		if err != nil {
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return
		}

		var release struct {
			TagName string `json:"tag_name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&release); err != nil || release.TagName == "" {
			return
		}
		_ = os.WriteFile(path, []byte(release.TagName), 0644)
	}()
}

// cachePath returns ~/.config/prehook/latest-version, creating the
// directory if needed.
func cachePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, "prehook")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "latest-version"), nil
}
