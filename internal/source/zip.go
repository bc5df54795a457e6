package source

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ExtractTable unpacks the one data file held by an extract archive into
// destDir and returns its path. Directories, __MACOSX resource forks and
// dotfiles are ignored; any other count than one data file is an error.
func ExtractTable(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", eris.Wrap(err, "zip: open archive")
	}
	defer r.Close() //nolint:errcheck

	var tables []*zip.File
	for _, f := range r.File {
		if isArchiveNoise(f) {
			continue
		}
		tables = append(tables, f)
	}

	if len(tables) != 1 {
		return "", eris.Errorf("zip: expected exactly 1 file, got %d", len(tables))
	}

	return extractFlat(tables[0], destDir)
}

func isArchiveNoise(f *zip.File) bool {
	if f.FileInfo().IsDir() {
		return true
	}
	if strings.HasPrefix(f.Name, "__MACOSX/") {
		return true
	}
	return strings.HasPrefix(path.Base(f.Name), ".")
}

// extractFlat writes f directly under destDir, dropping any folders the
// archive nests it in.
func extractFlat(f *zip.File, destDir string) (string, error) {
	if !filepath.IsLocal(filepath.FromSlash(f.Name)) {
		return "", eris.Errorf("zip: illegal path %q (zip slip attempt)", f.Name)
	}
	destPath := filepath.Join(destDir, path.Base(f.Name))

	rc, err := f.Open()
	if err != nil {
		return "", eris.Wrap(err, "zip: open entry")
	}
	defer rc.Close() //nolint:errcheck

	out, err := os.Create(destPath)
	if err != nil {
		return "", eris.Wrap(err, "zip: create file")
	}
	defer out.Close() //nolint:errcheck

	if _, err := io.Copy(out, rc); err != nil {
		return "", eris.Wrapf(err, "zip: write %s", path.Base(f.Name))
	}

	return destPath, nil
}
