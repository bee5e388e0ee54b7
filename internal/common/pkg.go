package common

import "path"

// PkgAlias returns the default import name of pkgPath, its last element, or
// "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
