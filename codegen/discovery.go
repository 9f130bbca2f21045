package codegen

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

// DiscoverPackages discovers Go packages in the given directory.
// If recursive is true, it scans subdirectories recursively.
func DiscoverPackages(dir string, recursive bool) ([]*PackageInfo, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}

	var packages []*PackageInfo
	err = filepath.Walk(absDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if path != absDir && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") ||
			base == "vendor" || base == "testdata") {
			return filepath.SkipDir
		}
		if !recursive && path != absDir {
			return filepath.SkipDir
		}

		pkg, err := build.ImportDir(path, 0)
		if err != nil || len(pkg.GoFiles) == 0 {
			// not a package
			return nil
		}
		files := make([]string, 0, len(pkg.GoFiles))
		for _, f := range pkg.GoFiles {
			if IsGenerated(f) {
				continue
			}
			files = append(files, filepath.Join(path, f))
		}
		packages = append(packages, &PackageInfo{
			Path:  pkg.ImportPath,
			Dir:   path,
			Name:  pkg.Name,
			Files: files,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}
	return packages, nil
}

// OutputFile returns the default generated file path for pkg.
func OutputFile(pkg *PackageInfo) string {
	return filepath.Join(pkg.Dir, pkg.Name+GeneratedSuffix)
}

// GeneratedSuffix ends the name of every generated file.
const GeneratedSuffix = "_jsonenc.go"

// IsGenerated reports whether the file name is one of ours.
func IsGenerated(name string) bool {
	return strings.HasSuffix(name, GeneratedSuffix)
}
