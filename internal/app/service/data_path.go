package service

import (
	"path/filepath"
	"strings"
)

// ResolveDataPath maps a client supplied path onto dataDir. Relative paths are
// taken from dataDir; any path that ends up outside it is rejected.
func ResolveDataPath(dataDir, path string) (string, error) {
	base, err := filepath.Abs(dataDir)
	if err != nil {
		return "", ErrPathOutsideDataDir.Wrap(err)
	}

	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathOutsideDataDir
	}

	return target, nil
}
