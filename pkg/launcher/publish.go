package launcher

import (
	"fmt"
	"os"
	"path/filepath"

	"limeal.fr/vlauncher/pkg/connectors"
	"limeal.fr/vlauncher/pkg/utils"
)

// Publish uploads a provisioned install root through a connector so another
// machine can seed its cache from it. Files whose remote checksum already
// matches are skipped.
func Publish(root string, connector connectors.Connector, progress ProgressCallback) error {
	type entry struct {
		relPath string
		size    int64
	}

	var files []entry
	var total int64
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		files = append(files, entry{relPath: filepath.ToSlash(relPath), size: info.Size()})
		total += info.Size()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk install root: %w", err)
	}

	var current int64
	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(file.relPath)))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file.relPath, err)
		}

		if !connector.HasFileWithChecksum(file.relPath, connectors.ChecksumTypeSHA1, utils.BytesSHA1(data)) {
			if err := connector.SendFileFromBytes(file.relPath, data); err != nil {
				return fmt.Errorf("failed to upload %s: %w", file.relPath, err)
			}
		}

		current += file.size
		if progress != nil {
			progress(current, total, file.relPath)
		}
	}

	return nil
}
