package generator

import (
	"os"
	"path/filepath"
)

// LocateLatest finds the newest `*_<theme>_*.png` in dir. The script names
// its output itself, so the newest-by-mtime match is the best guess for "the
// file this run produced". Concurrent runs with the same theme can
// cross-deliver; see the locator tests for a demonstration of that limit.
func LocateLatest(dir, theme string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", &OutputNotFoundError{DirMissing: true}
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*_"+theme+"_*.png"))
	if err != nil || len(matches) == 0 {
		return "", &OutputNotFoundError{}
	}

	latest := ""
	var latestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest = m
			latestMod = mod
		}
	}
	if latest == "" {
		return "", &OutputNotFoundError{}
	}
	return latest, nil
}
