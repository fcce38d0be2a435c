package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsUnder reports whether path lies strictly inside dir once both are
// cleaned. A path equal to dir is not under it.
func IsUnder(path, dir string) bool {
	if !filepath.IsAbs(path) || !filepath.IsAbs(dir) {
		return false
	}
	path = filepath.Clean(path)
	dir = filepath.Clean(dir)
	if dir == "/" {
		return path != "/"
	}
	return strings.HasPrefix(path, dir+string(os.PathSeparator))
}
