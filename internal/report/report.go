// Package report writes build summaries to disk, the clipboard and the
// report archive.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/store"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned by Share when no system clipboard can
// be reached.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Saver records exported reports. *store.Archive implements it.
type Saver interface {
	SaveReport(r store.Report) error
}

// CopyFunc writes text to the clipboard.
type CopyFunc func(text string) error

// SystemClipboard copies through the OS clipboard.
func SystemClipboard(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

// FileName returns the export file name for a build at tier.
func FileName(tier model.Tier, now time.Time) string {
	name := string(tier)
	if name == "" {
		name = "none"
	}
	return fmt.Sprintf("summary-%s-%s.txt", name, now.Format("20060102-150405"))
}

// Export writes text into dir and returns the file path.
func Export(dir string, tier model.Tier, text string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(tier, now))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}
	return path, nil
}

// WriteTo writes text to an explicit path.
func WriteTo(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Archive records an exported summary. A nil saver is a no-op.
func Archive(saver Saver, s model.Summary, text, path string) (store.Report, error) {
	r := store.NewReport(s, text)
	r.ExportPath = path
	if saver == nil {
		return r, nil
	}
	if err := saver.SaveReport(r); err != nil {
		return r, fmt.Errorf("archiving report: %w", err)
	}
	return r, nil
}

// ShareResult describes where a shared summary ended up.
type ShareResult struct {
	Copied       bool
	FallbackPath string
}

// Share copies text to the clipboard. When the clipboard is unavailable the
// summary is exported to dir instead and the path is reported.
func Share(copyFn CopyFunc, dir string, tier model.Tier, text string, now time.Time) (ShareResult, error) {
	if copyFn == nil {
		copyFn = SystemClipboard
	}
	if err := copyFn(text); err == nil {
		return ShareResult{Copied: true}, nil
	}
	path, err := Export(dir, tier, text, now)
	if err != nil {
		return ShareResult{}, err
	}
	return ShareResult{FallbackPath: path}, nil
}
