package connectors

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"limeal.fr/vlauncher/pkg/utils"
)

const FILE_SCHEME = "file"

type FileConnector struct {
	Path string
}

func (c *FileConnector) NewFromURI(uri string) Connector {
	// Example: file:///path/to/root or file://./relative
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil
	}

	finalPath := parsed.Host + parsed.Path
	if strings.HasPrefix(finalPath, "./") {
		pwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		finalPath = filepath.Join(pwd, strings.TrimPrefix(finalPath, "./"))
	}

	return &FileConnector{Path: finalPath}
}

func (c *FileConnector) GetURI() string {
	return FILE_SCHEME + "://" + c.Path
}

func (c *FileConnector) GetScheme() string {
	return FILE_SCHEME
}

func (c *FileConnector) Connect() error {
	return nil
}

func (c *FileConnector) IsConnected() bool {
	return true
}

func (c *FileConnector) Close() error {
	return nil
}

func (c *FileConnector) ReadFile(remotePath string, dest any) error {
	bytes, err := c.ReadFileBytes(remotePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return json.Unmarshal(bytes, dest)
}

func (c *FileConnector) ReadFileBytes(remotePath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(c.Path, remotePath))
}

func (c *FileConnector) SendFile(remotePath string, localPath string) error {
	return utils.CopyFile(localPath, filepath.Join(c.Path, remotePath))
}

func (c *FileConnector) SendFileFromBytes(remotePath string, data []byte, perm ...fs.FileMode) error {
	mode := fs.FileMode(0644)
	if len(perm) > 0 {
		mode = perm[0]
	}
	return utils.WriteFileAtomic(filepath.Join(c.Path, remotePath), data, mode)
}

func (c *FileConnector) HasFile(remotePath string) bool {
	_, err := os.Stat(filepath.Join(c.Path, remotePath))
	return err == nil
}

func (c *FileConnector) HasFileWithChecksum(remotePath string, checksumType ChecksumType, checksum string) bool {
	bytes, err := c.ReadFileBytes(remotePath)
	if err != nil {
		return false
	}

	switch checksumType {
	case ChecksumTypeSHA1:
		return utils.BytesSHA1(bytes) == checksum
	case ChecksumTypeSHA256:
		return utils.BytesSHA256(bytes) == checksum
	}
	return true
}
