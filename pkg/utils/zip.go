package utils

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ExtractZip unpacks source into destination. When extensions is non-empty,
// only file entries whose extension (without the dot) matches are written;
// directory entries are always created. Existing files are overwritten.
func ExtractZip(source string, destination string, extensions ...string) error {
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive: %w", err)
	}

	zipReader, err := zip.NewReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	if err := os.MkdirAll(destination, 0755); err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	for _, file := range zipReader.File {
		destPath := filepath.Join(destination, file.Name)
		if !strings.HasPrefix(destPath, filepath.Clean(destination)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes destination: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if len(extensions) > 0 {
			ext := strings.TrimPrefix(filepath.Ext(file.Name), ".")
			if !slices.Contains(extensions, ext) {
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}

		sourceFile, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to open file in archive: %w", err)
		}

		destFile, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, file.Mode().Perm()|0600)
		if err != nil {
			sourceFile.Close()
			return fmt.Errorf("failed to create file: %w", err)
		}

		_, err = io.Copy(destFile, sourceFile)
		sourceFile.Close()
		destFile.Close()
		if err != nil {
			return fmt.Errorf("failed to extract file: %w", err)
		}
	}

	return nil
}
